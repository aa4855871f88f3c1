package summary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/event"
	"github.com/pharod/boltnew-company-timeline/internal/summary"
	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/stretchr/testify/assert"
)

type fakeEventService struct {
	LogFn func(ctx context.Context) ([]timeline.Event, error)
}

func (f *fakeEventService) Record(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	panic("not used")
}
func (f *fakeEventService) Get(ctx context.Context, id string) (event.EventResponse, error) {
	panic("not used")
}
func (f *fakeEventService) List(ctx context.Context, q event.ListQuery) ([]event.EventResponse, error) {
	panic("not used")
}
func (f *fakeEventService) Timeline(ctx context.Context, q event.ListQuery) ([]event.TimelineEntryResponse, error) {
	panic("not used")
}
func (f *fakeEventService) Log(ctx context.Context) ([]timeline.Event, error) {
	return f.LogFn(ctx)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activityLog() []timeline.Event {
	return []timeline.Event{
		{
			ID: "h1", Timestamp: day(2024, time.March, 4), Kind: timeline.KindNewEmployee,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Alice Smith"},
		},
		{
			ID: "h2", Timestamp: day(2024, time.March, 18), Kind: timeline.KindNewEmployee,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Bob Jones"},
		},
		{
			ID: "l1", Timestamp: day(2024, time.March, 22), Kind: timeline.KindEmployeeLeft,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Carol White"},
		},
		{
			ID: "j1", Timestamp: day(2024, time.March, 10), Kind: timeline.KindJobOpening,
			JobInfo: &timeline.JobInfo{Title: "Designer", Project: "Hermes"},
		},
		{
			ID: "r1", Timestamp: day(2024, time.March, 15), Kind: timeline.KindEmployeeRaise,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Eve Adams"},
			SalaryInfo:   &timeline.SalaryInfo{OldAmount: 80000, NewAmount: 88000},
		},
		{
			ID: "h3", Timestamp: day(2024, time.April, 2), Kind: timeline.KindNewEmployee,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Frank Moore"},
		},
		{
			ID: "t1", Timestamp: day(2025, time.January, 9), Kind: timeline.KindEmployeeTerminated,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Bob Jones"},
		},
	}
}

func TestSummaryService_Month(t *testing.T) {
	ctx := context.Background()

	svc := summary.NewService(&fakeEventService{
		LogFn: func(ctx context.Context) ([]timeline.Event, error) { return activityLog(), nil },
	})

	t.Run("march 2024", func(t *testing.T) {
		resp, err := svc.Month(ctx, 2024, 3)

		assert.NoError(t, err)
		assert.Equal(t, 2024, resp.Year)
		assert.Equal(t, "March", resp.Month)
		assert.Equal(t, 2, resp.NewEmployees)
		assert.Equal(t, 1, resp.EmployeesLeft)
		assert.Equal(t, 1, resp.NewOpenings)
		assert.Equal(t, 1, resp.Raises)
		assert.Equal(t, 0, resp.PositionsClosed)
		assert.Equal(t, 0, resp.ProjectAssignments)
	})

	t.Run("quiet month is all zeroes", func(t *testing.T) {
		resp, err := svc.Month(ctx, 2024, 12)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.NewEmployees)
		assert.Equal(t, 0, resp.EmployeesLeft)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := svc.Month(ctx, 2024, 13)
		assert.ErrorIs(t, err, summary.ErrInvalidPeriod)

		_, err = svc.Month(ctx, 0, 3)
		assert.ErrorIs(t, err, summary.ErrInvalidPeriod)
	})

	t.Run("log error propagates", func(t *testing.T) {
		broken := summary.NewService(&fakeEventService{
			LogFn: func(ctx context.Context) ([]timeline.Event, error) {
				return nil, errors.New("db error")
			},
		})
		_, err := broken.Month(ctx, 2024, 3)
		assert.Error(t, err)
	})
}

func TestSummaryService_Year(t *testing.T) {
	ctx := context.Background()

	svc := summary.NewService(&fakeEventService{
		LogFn: func(ctx context.Context) ([]timeline.Event, error) { return activityLog(), nil },
	})

	t.Run("2024 counts and growth", func(t *testing.T) {
		resp, err := svc.Year(ctx, 2024)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.NewEmployees)
		assert.Equal(t, 1, resp.EmployeesLeft)
		assert.Equal(t, 1, resp.NewOpenings)
		assert.Equal(t, 1, resp.Raises)
		assert.Equal(t, 2, resp.Growth)
	})

	t.Run("2025 shrinks", func(t *testing.T) {
		resp, err := svc.Year(ctx, 2025)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.NewEmployees)
		assert.Equal(t, 1, resp.EmployeesLeft)
		assert.Equal(t, -1, resp.Growth)
	})

	t.Run("invalid year", func(t *testing.T) {
		_, err := svc.Year(ctx, -1)
		assert.ErrorIs(t, err, summary.ErrInvalidPeriod)
	})
}
