package timeline_test

import (
	"testing"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hire(id, name string, ts time.Time, position, project string, salary int64) timeline.Event {
	return timeline.Event{
		ID:        id,
		Timestamp: ts,
		Kind:      timeline.KindNewEmployee,
		EmployeeInfo: &timeline.EmployeeInfo{
			Name:      name,
			StartDate: ts,
			Position:  position,
			Project:   project,
		},
		SalaryInfo: &timeline.SalaryInfo{Amount: salary},
	}
}

func TestLedger_Replay(t *testing.T) {
	events := []timeline.Event{
		hire("e1", "Alice Smith", day(2024, time.January, 10), "Backend Developer", "Apollo", 90000),
		{
			ID:        "e2",
			Timestamp: day(2024, time.March, 1),
			Kind:      timeline.KindEmployeeRaise,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name:     "Alice Smith",
				Position: "Backend Developer",
				Project:  "Apollo",
			},
			SalaryInfo: &timeline.SalaryInfo{OldAmount: 90000, NewAmount: 105000},
		},
		{
			ID:        "e3",
			Timestamp: day(2024, time.May, 20),
			Kind:      timeline.KindProjectAssignment,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name:        "Alice Smith",
				NewPosition: "Senior Backend Developer",
				NewProject:  "Hermes",
			},
		},
		{
			ID:        "e4",
			Timestamp: day(2024, time.August, 30),
			Kind:      timeline.KindEmployeeTerminated,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name:     "Alice Smith",
				LastDay:  day(2024, time.August, 30),
				Position: "Senior Backend Developer",
				Project:  "Hermes",
			},
		},
	}

	ledger := timeline.NewLedger()
	ledger.Replay(events)

	emp, ok := ledger.Get("e1")
	assert.True(t, ok)
	assert.Equal(t, "Senior Backend Developer", emp.Position)
	assert.Equal(t, "Hermes", emp.Project)
	assert.Equal(t, int64(105000), emp.Salary)
	assert.Equal(t, timeline.StatusTerminated, emp.Status)
	assert.Equal(t, day(2024, time.August, 30), emp.EndDate)
	assert.Empty(t, ledger.Active())
}

func TestLedger_ReplayOrdersByTimestamp(t *testing.T) {
	// Shuffled input has to produce the same final state as chronological input.
	events := []timeline.Event{
		{
			ID:        "e2",
			Timestamp: day(2024, time.June, 1),
			Kind:      timeline.KindEmployeeRaise,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name: "Bob Jones",
			},
			SalaryInfo: &timeline.SalaryInfo{OldAmount: 80000, NewAmount: 92000},
		},
		hire("e1", "Bob Jones", day(2024, time.February, 1), "QA Engineer", "Apollo", 80000),
	}

	ledger := timeline.NewLedger()
	ledger.Replay(events)

	emp, ok := ledger.GetByName("Bob Jones")
	assert.True(t, ok)
	assert.Equal(t, int64(92000), emp.Salary)
	assert.Equal(t, timeline.StatusActive, emp.Status)
}

func TestLedger_SeqBreaksTimestampTies(t *testing.T) {
	ts := day(2024, time.April, 1)
	events := []timeline.Event{
		{
			ID:           "e2",
			Seq:          2,
			Timestamp:    ts,
			Kind:         timeline.KindEmployeeRaise,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Carol White"},
			SalaryInfo:   &timeline.SalaryInfo{OldAmount: 70000, NewAmount: 77000},
		},
		func() timeline.Event {
			ev := hire("e1", "Carol White", ts, "Designer", "Hermes", 70000)
			ev.Seq = 1
			return ev
		}(),
	}

	ledger := timeline.NewLedger()
	ledger.Replay(events)

	emp, _ := ledger.GetByName("Carol White")
	assert.Equal(t, int64(77000), emp.Salary)
}

func TestLedger_UnknownNameIsNoOp(t *testing.T) {
	ledger := timeline.NewLedger()
	ledger.Replay([]timeline.Event{
		{
			ID:           "e1",
			Timestamp:    day(2024, time.March, 3),
			Kind:         timeline.KindEmployeeLeft,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Nobody Here"},
		},
	})
	assert.Empty(t, ledger.All())
}

func TestLedger_NameCollisionLastWriteWins(t *testing.T) {
	events := []timeline.Event{
		hire("e1", "Dana Reed", day(2024, time.January, 5), "Developer", "Apollo", 85000),
		hire("e2", "Dana Reed", day(2024, time.June, 5), "QA Engineer", "Hermes", 75000),
		{
			ID:           "e3",
			Timestamp:    day(2024, time.September, 1),
			Kind:         timeline.KindEmployeeTerminated,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Dana Reed"},
		},
	}

	ledger := timeline.NewLedger()
	ledger.Replay(events)

	// Both records exist by id; the name index points at the later hire, so
	// the termination lands on it and the first hire stays active.
	first, _ := ledger.Get("e1")
	second, _ := ledger.Get("e2")
	assert.Equal(t, timeline.StatusActive, first.Status)
	assert.Equal(t, timeline.StatusTerminated, second.Status)

	byName, _ := ledger.GetByName("Dana Reed")
	assert.Equal(t, "e2", byName.ID)
}

func TestLedger_ActiveSortedByName(t *testing.T) {
	ledger := timeline.NewLedger()
	ledger.Replay([]timeline.Event{
		hire("e1", "Zoe Park", day(2024, time.January, 2), "Developer", "Apollo", 90000),
		hire("e2", "Adam Cole", day(2024, time.January, 3), "Developer", "Apollo", 90000),
		{
			ID:           "e3",
			Timestamp:    day(2024, time.February, 1),
			Kind:         timeline.KindEmployeeLeft,
			EmployeeInfo: &timeline.EmployeeInfo{Name: "Zoe Park"},
		},
	})

	active := ledger.Active()
	assert.Len(t, active, 1)
	assert.Equal(t, "Adam Cole", active[0].Name)

	all := ledger.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "Adam Cole", all[0].Name)
	assert.Equal(t, "Zoe Park", all[1].Name)
	assert.Equal(t, timeline.StatusLeft, all[1].Status)
}
