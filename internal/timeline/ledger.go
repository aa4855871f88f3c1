package timeline

import (
	"sort"
	"time"
)

type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusTerminated EmployeeStatus = "terminated"
	StatusLeft       EmployeeStatus = "left"
)

// Employee is the ledger's projection of one person's current state.
type Employee struct {
	ID        string
	Name      string
	Position  string
	Project   string
	Salary    int64
	StartDate time.Time
	EndDate   time.Time
	Status    EmployeeStatus
}

// Ledger is the derived view of current employee state, rebuilt by replaying
// the event log in chronological order. Records are keyed by the stable id the
// creating event assigned; names are a secondary index. Lifecycle events still
// address employees by name, so two employees sharing a name collide and the
// later record shadows the earlier one in the name index.
type Ledger struct {
	byID   map[string]*Employee
	byName map[string]*Employee
}

func NewLedger() *Ledger {
	return &Ledger{
		byID:   make(map[string]*Employee),
		byName: make(map[string]*Employee),
	}
}

// Replay applies events in ascending timestamp order (append order breaks
// ties). The input slice is not modified.
func (l *Ledger) Replay(events []Event) {
	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp.Equal(ordered[j].Timestamp) {
			return ordered[i].Seq < ordered[j].Seq
		}
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	for _, ev := range ordered {
		l.Apply(ev)
	}
}

// Apply folds a single event into the ledger. Events addressing an unknown
// name are soft no-ops; kinds outside the transition table have no effect.
func (l *Ledger) Apply(ev Event) {
	switch ev.Kind {
	case KindNewEmployee:
		if ev.EmployeeInfo == nil {
			return
		}
		start := ev.EmployeeInfo.StartDate
		if start.IsZero() {
			start = ev.Timestamp
		}
		emp := &Employee{
			ID:        ev.ID,
			Name:      ev.EmployeeInfo.Name,
			Position:  ev.EmployeeInfo.Position,
			Project:   ev.EmployeeInfo.Project,
			StartDate: start,
			Status:    StatusActive,
		}
		if ev.SalaryInfo != nil {
			emp.Salary = ev.SalaryInfo.Amount
		}
		l.byID[emp.ID] = emp
		l.byName[emp.Name] = emp

	case KindEmployeeTerminated:
		l.close(ev, StatusTerminated)

	case KindEmployeeLeft:
		l.close(ev, StatusLeft)

	case KindEmployeeRaise:
		if ev.EmployeeInfo == nil || ev.SalaryInfo == nil {
			return
		}
		if emp, ok := l.byName[ev.EmployeeInfo.Name]; ok {
			emp.Salary = ev.SalaryInfo.NewAmount
		}

	case KindProjectAssignment:
		if ev.EmployeeInfo == nil {
			return
		}
		if emp, ok := l.byName[ev.EmployeeInfo.Name]; ok {
			emp.Position = ev.EmployeeInfo.NewPosition
			emp.Project = ev.EmployeeInfo.NewProject
		}

	case KindCompanyInfo, KindJobOpening, KindJobCancelled, KindPositionClosed, KindCurrentDate:
		// No ledger effect.
	}
}

func (l *Ledger) close(ev Event, status EmployeeStatus) {
	if ev.EmployeeInfo == nil {
		return
	}
	emp, ok := l.byName[ev.EmployeeInfo.Name]
	if !ok {
		return
	}
	emp.Status = status
	emp.EndDate = ev.Timestamp
}

// Get looks an employee up by the stable id assigned at hire.
func (l *Ledger) Get(id string) (Employee, bool) {
	emp, ok := l.byID[id]
	if !ok {
		return Employee{}, false
	}
	return *emp, true
}

// GetByName looks an employee up via the name index.
func (l *Ledger) GetByName(name string) (Employee, bool) {
	emp, ok := l.byName[name]
	if !ok {
		return Employee{}, false
	}
	return *emp, true
}

// All returns every known employee sorted by name.
func (l *Ledger) All() []Employee {
	out := make([]Employee, 0, len(l.byID))
	for _, emp := range l.byID {
		out = append(out, *emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Active returns employees whose status is still active, sorted by name.
func (l *Ledger) Active() []Employee {
	out := make([]Employee, 0, len(l.byID))
	for _, emp := range l.byID {
		if emp.Status == StatusActive {
			out = append(out, *emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
