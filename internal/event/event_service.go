package event

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	eventerrors "github.com/pharod/boltnew-company-timeline/internal/event/errors"
	"github.com/pharod/boltnew-company-timeline/internal/events"
	"github.com/pharod/boltnew-company-timeline/internal/messaging/kafka"
	"github.com/pharod/boltnew-company-timeline/internal/shared/contextutil"
	"github.com/pharod/boltnew-company-timeline/internal/shared/counter"
	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LogCacheKey holds the serialized event log; it is invalidated on every
// append, locally and via the cache consumer on other replicas.
const LogCacheKey = "timeline:log"

const eventSeqCounter = "timeline_event_seq"

//go:generate mockgen -source=event_service.go -destination=mock/event_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	Get(ctx context.Context, id string) (EventResponse, error)
	List(ctx context.Context, q ListQuery) ([]EventResponse, error)
	Timeline(ctx context.Context, q ListQuery) ([]TimelineEntryResponse, error)
	Log(ctx context.Context) ([]timeline.Event, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	factory *timeline.Factory
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("event.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		factory: timeline.NewFactory(),
		now:     func() time.Time { return time.Now().UTC() },
		logger:  l,
	}
}

func (s *service) Record(
	ctx context.Context,
	req CreateEventRequest,
) (EventResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("record event requested",
		zap.String("request_id", rid),
		zap.String("kind", req.Kind),
	)

	kind := timeline.Kind(req.Kind)
	if !kind.Valid() {
		s.logger.Warn("record event unsupported kind",
			zap.String("request_id", rid),
			zap.String("kind", req.Kind),
		)
		return EventResponse{}, eventerrors.ErrUnsupportedEventKind
	}
	if kind == timeline.KindCurrentDate {
		return EventResponse{}, eventerrors.ErrSyntheticEventKind
	}

	payload, err := buildPayload(req)
	if err != nil {
		s.logger.Warn("record event invalid payload", zap.String("request_id", rid), zap.Error(err))
		return EventResponse{}, err
	}

	ev, err := s.factory.Create(kind, payload)
	if err != nil {
		if errors.Is(err, timeline.ErrUnsupportedKind) {
			return EventResponse{}, eventerrors.ErrUnsupportedEventKind
		}
		return EventResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record event begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EventResponse{}, err
	}
	defer tx.Rollback()

	seq, err := s.counter.GetNextValue(ctx, eventSeqCounter)
	if err != nil {
		s.logger.Error("record event assign seq failed", zap.Error(err))
		return EventResponse{}, err
	}
	ev.Seq = seq

	rec := fromDomain(ev)
	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, &rec); err != nil {
		s.logger.Error("record event persist failed", zap.Error(err))
		return EventResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		integration := events.TimelineEventRecordedEvent{
			EventType:  "timeline_event_recorded",
			RequestID:  rid,
			EventID:    ev.ID,
			Kind:       string(ev.Kind),
			Seq:        ev.Seq,
			OccurredAt: ev.Timestamp,
		}
		body, err := json.Marshal(integration)
		if err != nil {
			s.logger.Error("marshal integration event failed", zap.String("request_id", rid), zap.Error(err))
			return EventResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "timeline_event",
			AggregateID:   ev.ID,
			EventType:     integration.EventType,
			Topic:         events.TimelineEventRecordedTopic,
			Payload:       body,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("record event outbox persist failed",
				zap.String("event_id", ev.ID),
				zap.Error(err),
			)
			return EventResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record event commit failed", zap.String("request_id", rid), zap.Error(err))
		return EventResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, LogCacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate log cache",
				zap.Error(err),
				zap.String("key", LogCacheKey),
			)
		}
	}

	s.logger.Info("record event success",
		zap.String("request_id", rid),
		zap.String("event_id", ev.ID),
		zap.String("kind", string(ev.Kind)),
		zap.Int64("seq", ev.Seq),
	)

	return mapToResponse(ev), nil
}

func (s *service) Get(ctx context.Context, id string) (EventResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get event failed", zap.String("event_id", id), zap.Error(err))
		return EventResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(rec.toDomain()), nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]EventResponse, error) {
	sel, err := buildSelection(q)
	if err != nil {
		return nil, err
	}

	log, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}

	filtered := timeline.Filter(log, sel)

	// Present newest-first; the filter preserved ascending log order.
	out := make([]EventResponse, 0, len(filtered))
	for i := len(filtered) - 1; i >= 0; i-- {
		out = append(out, mapToResponse(filtered[i]))
	}
	return out, nil
}

func (s *service) Timeline(ctx context.Context, q ListQuery) ([]TimelineEntryResponse, error) {
	sel, err := buildSelection(q)
	if err != nil {
		return nil, err
	}

	log, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}

	entries := timeline.Build(timeline.Filter(log, sel), s.now())

	out := make([]TimelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		row := TimelineEntryResponse{
			EventResponse: mapToResponse(entry.Event),
			NewYear:       entry.NewYear,
			NewMonth:      entry.NewMonth,
		}
		ts := entry.Event.Timestamp.UTC()
		if entry.NewYear {
			row.Year = ts.Year()
		}
		if entry.NewMonth {
			row.Month = ts.Month().String()
		}
		out = append(out, row)
	}
	return out, nil
}

// Log loads the full event log in replay order, serving from Redis when
// possible and deduplicating concurrent rebuilds with singleflight.
func (s *service) Log(ctx context.Context) ([]timeline.Event, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LogCacheKey).Result(); err == nil {
			var recs []EventRecord
			if json.Unmarshal([]byte(cached), &recs) == nil {
				return toDomainList(recs), nil
			}
		}
	}

	v, err, _ := s.sf.Do(LogCacheKey, func() (interface{}, error) {
		recs, err := s.repo.FindAllAscending(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if body, err := json.Marshal(recs); err == nil {
				s.rdb.Set(ctx, LogCacheKey, body, 5*time.Minute)
			}
		}

		return recs, nil
	})

	if err != nil {
		return nil, err
	}

	return toDomainList(v.([]EventRecord)), nil
}

func buildSelection(q ListQuery) (timeline.Selection, error) {
	set := 0
	for _, v := range []string{q.Type, q.Employee, q.JobOpening, q.Project} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return timeline.Selection{}, eventerrors.ErrMultipleFilterDimensions
	}

	switch {
	case q.Type != "":
		kind := timeline.Kind(q.Type)
		if !kind.Valid() {
			return timeline.Selection{}, eventerrors.ErrUnsupportedEventKind
		}
		return timeline.Selection{Dimension: timeline.DimensionEventType, Kind: kind}, nil
	case q.Employee != "":
		return timeline.Selection{Dimension: timeline.DimensionEmployee, Value: q.Employee}, nil
	case q.JobOpening != "":
		return timeline.Selection{Dimension: timeline.DimensionJobOpening, Value: q.JobOpening}, nil
	case q.Project != "":
		return timeline.Selection{Dimension: timeline.DimensionProject, Value: q.Project}, nil
	}
	return timeline.Selection{}, nil
}

func buildPayload(req CreateEventRequest) (timeline.Payload, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return timeline.Payload{}, eventerrors.ErrInvalidDate
	}
	lastDay, err := parseDate(req.LastDay)
	if err != nil {
		return timeline.Payload{}, eventerrors.ErrInvalidDate
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return timeline.Payload{}, eventerrors.ErrInvalidDate
	}

	return timeline.Payload{
		Name:               req.Name,
		StartDate:          startDate,
		LastDay:            lastDay,
		EffectiveDate:      effectiveDate,
		Position:           req.Position,
		Project:            req.Project,
		NewPosition:        req.NewPosition,
		NewProject:         req.NewProject,
		Salary:             req.Salary,
		OldSalary:          req.OldSalary,
		NewSalary:          req.NewSalary,
		Title:              req.Title,
		OpenPositions:      req.OpenPositions,
		RemainingPositions: req.RemainingPositions,
		NewEmployeeName:    req.NewEmployeeName,
		CompanyName:        req.CompanyName,
		EmployeeCount:      req.EmployeeCount,
		JobOpeningID:       req.JobOpeningID,
	}, nil
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", v)
}

var kindCaser = cases.Title(language.English)

func kindLabel(kind timeline.Kind) string {
	return kindCaser.String(strings.ToLower(strings.ReplaceAll(string(kind), "_", " ")))
}

func mapToResponse(ev timeline.Event) EventResponse {
	resp := EventResponse{
		ID:           ev.ID,
		Seq:          ev.Seq,
		Timestamp:    ev.Timestamp.UTC().Format(time.RFC3339),
		Kind:         string(ev.Kind),
		Label:        kindLabel(ev.Kind),
		JobOpeningID: ev.JobOpeningID,
	}
	if ev.EmployeeInfo != nil {
		resp.EmployeeInfo = &EmployeeInfoResponse{
			Name:          ev.EmployeeInfo.Name,
			StartDate:     formatDate(ev.EmployeeInfo.StartDate),
			LastDay:       formatDate(ev.EmployeeInfo.LastDay),
			EffectiveDate: formatDate(ev.EmployeeInfo.EffectiveDate),
			Position:      ev.EmployeeInfo.Position,
			Project:       ev.EmployeeInfo.Project,
			NewPosition:   ev.EmployeeInfo.NewPosition,
			NewProject:    ev.EmployeeInfo.NewProject,
		}
	}
	if ev.JobInfo != nil {
		resp.JobInfo = &JobInfoResponse{
			Title:              ev.JobInfo.Title,
			Project:            ev.JobInfo.Project,
			OpenPositions:      ev.JobInfo.OpenPositions,
			RemainingPositions: ev.JobInfo.RemainingPositions,
		}
	}
	if ev.SalaryInfo != nil {
		resp.SalaryInfo = &SalaryInfoResponse{
			Amount:    ev.SalaryInfo.Amount,
			OldAmount: ev.SalaryInfo.OldAmount,
			NewAmount: ev.SalaryInfo.NewAmount,
		}
	}
	if ev.CompanyInfo != nil {
		resp.CompanyInfo = &CompanyInfoResponse{
			Name:          ev.CompanyInfo.Name,
			EmployeeCount: ev.CompanyInfo.EmployeeCount,
		}
	}
	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
