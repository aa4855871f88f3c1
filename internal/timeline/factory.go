package timeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedKind is returned by Factory.Create for kinds outside the
// closed enumeration.
var ErrUnsupportedKind = errors.New("unsupported event kind")

// Payload is the loosely-typed input a new event is shaped from. Only the
// fields relevant to the requested kind are read; the rest are ignored.
type Payload struct {
	Name          string
	StartDate     time.Time
	LastDay       time.Time
	EffectiveDate time.Time
	Position      string
	Project       string
	NewPosition   string
	NewProject    string

	Salary    int64
	OldSalary int64
	NewSalary int64

	Title              string
	OpenPositions      int
	RemainingPositions int
	NewEmployeeName    string

	CompanyName   string
	EmployeeCount int

	JobOpeningID string
}

// Factory constructs well-typed events. Clock and id source are injectable so
// tests get reproducible timestamps and identifiers.
type Factory struct {
	now   func() time.Time
	newID func() string
}

type FactoryOption func(*Factory)

func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) { f.now = now }
}

func WithIDSource(newID func() string) FactoryOption {
	return func(f *Factory) { f.newID = newID }
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds an event of the given kind from the payload. The id and
// timestamp are assigned here; nothing is appended to any log.
func (f *Factory) Create(kind Kind, data Payload) (Event, error) {
	ev := Event{
		ID:        f.newID(),
		Timestamp: f.now(),
		Kind:      kind,
	}

	switch kind {
	case KindNewEmployee:
		ev.EmployeeInfo = &EmployeeInfo{
			Name:      data.Name,
			StartDate: data.StartDate,
			Position:  data.Position,
			Project:   data.Project,
		}
		ev.SalaryInfo = &SalaryInfo{Amount: data.Salary}
		ev.JobOpeningID = data.JobOpeningID

	case KindEmployeeTerminated, KindEmployeeLeft:
		ev.EmployeeInfo = &EmployeeInfo{
			Name:     data.Name,
			LastDay:  data.LastDay,
			Position: data.Position,
			Project:  data.Project,
		}

	case KindEmployeeRaise:
		ev.EmployeeInfo = &EmployeeInfo{
			Name:          data.Name,
			EffectiveDate: data.EffectiveDate,
			Position:      data.Position,
			Project:       data.Project,
		}
		ev.SalaryInfo = &SalaryInfo{
			OldAmount: data.OldSalary,
			NewAmount: data.NewSalary,
		}

	case KindProjectAssignment:
		ev.EmployeeInfo = &EmployeeInfo{
			Name:          data.Name,
			EffectiveDate: data.EffectiveDate,
			NewPosition:   data.NewPosition,
			NewProject:    data.NewProject,
		}

	case KindJobOpening, KindJobCancelled:
		ev.JobInfo = &JobInfo{
			Title:         data.Title,
			Project:       data.Project,
			OpenPositions: data.OpenPositions,
		}

	case KindPositionClosed:
		ev.JobInfo = &JobInfo{
			Title:              data.Title,
			Project:            data.Project,
			RemainingPositions: data.RemainingPositions,
		}
		ev.EmployeeInfo = &EmployeeInfo{Name: data.NewEmployeeName}

	case KindCompanyInfo:
		ev.CompanyInfo = &CompanyInfo{
			Name:          data.CompanyName,
			EmployeeCount: data.EmployeeCount,
		}

	case KindCurrentDate:
		// Synthetic render-time marker, no payload.

	default:
		return Event{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	return ev, nil
}
