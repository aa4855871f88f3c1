package event

import (
	"errors"
	"strings"

	eventerrors "github.com/pharod/boltnew-company-timeline/internal/event/errors"
	"github.com/pharod/boltnew-company-timeline/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return eventerrors.ErrEventAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return eventerrors.ErrEventAlreadyExists
	}

	return err
}
