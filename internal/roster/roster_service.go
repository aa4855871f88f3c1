package roster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/event"
	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache keys for the replayed projections. The timeline cache consumer
// deletes these on every recorded event; the short TTL covers replicas that
// miss the invalidation.
const (
	CacheKey       = "roster:all"
	ActiveCacheKey = "roster:active"
)

//go:generate mockgen -source=roster_service.go -destination=mock/roster_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	Overview(ctx context.Context) (CompanyOverviewResponse, error)
}

type service struct {
	events event.Service
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(eventService event.Service, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("roster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.service")
	}
	return &service{
		events: eventService,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error) {
	cacheKey := CacheKey
	if activeOnly {
		cacheKey = ActiveCacheKey
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		ledger, err := s.replay(ctx)
		if err != nil {
			return nil, err
		}

		var employees []timeline.Employee
		if activeOnly {
			employees = ledger.Active()
		} else {
			employees = ledger.All()
		}
		resp := mapToListResponse(employees)

		if s.rdb != nil {
			if body, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, body, 5*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) Overview(ctx context.Context) (CompanyOverviewResponse, error) {
	log, err := s.events.Log(ctx)
	if err != nil {
		s.logger.Error("overview load log failed", zap.Error(err))
		return CompanyOverviewResponse{}, err
	}

	ledger := timeline.NewLedger()
	ledger.Replay(log)

	resp := CompanyOverviewResponse{
		ActiveEmployees: len(ledger.Active()),
		TotalEmployees:  len(ledger.All()),
	}

	// The latest COMPANY_INFO snapshot names the company; the log is in
	// ascending order so the last match wins.
	for _, ev := range log {
		if ev.Kind == timeline.KindCompanyInfo && ev.CompanyInfo != nil {
			resp.Name = ev.CompanyInfo.Name
			resp.SnapshotCount = ev.CompanyInfo.EmployeeCount
		}
	}

	return resp, nil
}

func (s *service) replay(ctx context.Context) (*timeline.Ledger, error) {
	log, err := s.events.Log(ctx)
	if err != nil {
		s.logger.Error("roster load log failed", zap.Error(err))
		return nil, err
	}

	ledger := timeline.NewLedger()
	ledger.Replay(log)
	return ledger, nil
}

func mapToResponse(emp timeline.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Position:  emp.Position,
		Project:   emp.Project,
		Salary:    emp.Salary,
		StartDate: emp.StartDate.UTC().Format("2006-01-02"),
		Status:    string(emp.Status),
	}
	if !emp.EndDate.IsZero() {
		resp.EndDate = emp.EndDate.UTC().Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(employees []timeline.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		res[i] = mapToResponse(emp)
	}
	return res
}
