package errors

import (
	"net/http"

	"github.com/pharod/boltnew-company-timeline/internal/shared/apperror"
)

var (
	ErrUnsupportedEventKind = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported event kind",
		http.StatusBadRequest,
	)

	ErrSyntheticEventKind = apperror.New(
		apperror.CodeInvalidState,
		"CURRENT_DATE is a render-time marker and cannot be recorded",
		http.StatusBadRequest,
	)

	ErrEventAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An event with this id already exists",
		http.StatusConflict,
	)

	ErrMultipleFilterDimensions = apperror.New(
		apperror.CodeInvalidInput,
		"Only one filter dimension may be set per request",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
