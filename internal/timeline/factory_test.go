package timeline_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/stretchr/testify/assert"
)

func fixedFactory() *timeline.Factory {
	return timeline.NewFactory(
		timeline.WithClock(func() time.Time {
			return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
		}),
		timeline.WithIDSource(func() string { return "evt-1" }),
	)
}

func TestFactory_Create(t *testing.T) {
	f := fixedFactory()

	t.Run("new employee", func(t *testing.T) {
		ev, err := f.Create(timeline.KindNewEmployee, timeline.Payload{
			Name:         "Alice Smith",
			StartDate:    time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			Position:     "Backend Developer",
			Project:      "Apollo",
			Salary:       95000,
			JobOpeningID: "job-1",
		})
		assert.NoError(t, err)
		assert.Equal(t, "evt-1", ev.ID)
		assert.Equal(t, time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC), ev.Timestamp)
		assert.Equal(t, timeline.KindNewEmployee, ev.Kind)
		assert.Equal(t, "Alice Smith", ev.EmployeeInfo.Name)
		assert.Equal(t, "Backend Developer", ev.EmployeeInfo.Position)
		assert.Equal(t, int64(95000), ev.SalaryInfo.Amount)
		assert.Equal(t, "job-1", ev.JobOpeningID)
		assert.Nil(t, ev.JobInfo)
	})

	t.Run("raise carries both amounts", func(t *testing.T) {
		ev, err := f.Create(timeline.KindEmployeeRaise, timeline.Payload{
			Name:      "Alice Smith",
			OldSalary: 95000,
			NewSalary: 105000,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(95000), ev.SalaryInfo.OldAmount)
		assert.Equal(t, int64(105000), ev.SalaryInfo.NewAmount)
	})

	t.Run("position closed binds job and employee", func(t *testing.T) {
		ev, err := f.Create(timeline.KindPositionClosed, timeline.Payload{
			Title:              "QA Engineer",
			Project:            "Apollo",
			RemainingPositions: 1,
			NewEmployeeName:    "Bob Jones",
		})
		assert.NoError(t, err)
		assert.Equal(t, "QA Engineer", ev.JobInfo.Title)
		assert.Equal(t, 1, ev.JobInfo.RemainingPositions)
		assert.Equal(t, "Bob Jones", ev.EmployeeInfo.Name)
	})

	t.Run("company info", func(t *testing.T) {
		ev, err := f.Create(timeline.KindCompanyInfo, timeline.Payload{
			CompanyName:   "Nitka Technologies",
			EmployeeCount: 50,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Nitka Technologies", ev.CompanyInfo.Name)
		assert.Equal(t, 50, ev.CompanyInfo.EmployeeCount)
	})

	t.Run("unsupported kind fails fast", func(t *testing.T) {
		_, err := f.Create(timeline.Kind("EMPLOYEE_PROMOTED"), timeline.Payload{})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, timeline.ErrUnsupportedKind))
		assert.Contains(t, err.Error(), "EMPLOYEE_PROMOTED")
	})
}
