package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/event"
	"github.com/pharod/boltnew-company-timeline/internal/shared/apperror"
	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"go.uber.org/zap"
)

var ErrInvalidPeriod = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid period, expected year and month 1-12",
	http.StatusBadRequest,
)

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	Month(ctx context.Context, year, month int) (MonthSummaryResponse, error)
	Year(ctx context.Context, year int) (YearSummaryResponse, error)
}

type service struct {
	events event.Service
	logger *zap.Logger
}

func NewService(eventService event.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{
		events: eventService,
		logger: l,
	}
}

func (s *service) Month(ctx context.Context, year, month int) (MonthSummaryResponse, error) {
	if year <= 0 || month < 1 || month > 12 {
		return MonthSummaryResponse{}, ErrInvalidPeriod
	}

	log, err := s.events.Log(ctx)
	if err != nil {
		s.logger.Error("month summary load log failed", zap.Error(err))
		return MonthSummaryResponse{}, err
	}

	m := time.Month(month)
	totals := timeline.MonthSummary(log, year, m)

	return MonthSummaryResponse{
		Year:               year,
		Month:              m.String(),
		NewEmployees:       totals.NewEmployees,
		EmployeesLeft:      totals.EmployeesLeft,
		NewOpenings:        totals.NewOpenings,
		PositionsClosed:    totals.PositionsClosed,
		Raises:             totals.Raises,
		ProjectAssignments: totals.ProjectAssignments,
	}, nil
}

func (s *service) Year(ctx context.Context, year int) (YearSummaryResponse, error) {
	if year <= 0 {
		return YearSummaryResponse{}, ErrInvalidPeriod
	}

	log, err := s.events.Log(ctx)
	if err != nil {
		s.logger.Error("year summary load log failed", zap.Error(err))
		return YearSummaryResponse{}, err
	}

	totals := timeline.YearSummary(log, year)

	return YearSummaryResponse{
		Year:               year,
		NewEmployees:       totals.NewEmployees,
		EmployeesLeft:      totals.EmployeesLeft,
		NewOpenings:        totals.NewOpenings,
		PositionsClosed:    totals.PositionsClosed,
		Raises:             totals.Raises,
		ProjectAssignments: totals.ProjectAssignments,
		Growth:             timeline.YearGrowth(log, year),
	}, nil
}
