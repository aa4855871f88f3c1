package event

import (
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/timeline"
)

// EventRecord is the persisted shape of one timeline event. The tagged union
// flattens into nullable columns; which ones are set depends on Kind.
type EventRecord struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"uniqueIndex"`
	Kind      string    `gorm:"index"`
	Timestamp time.Time `gorm:"index"`

	EmployeeName  *string
	StartDate     *time.Time
	LastDay       *time.Time
	EffectiveDate *time.Time
	Position      *string
	Project       *string
	NewPosition   *string
	NewProject    *string

	SalaryAmount *int64
	OldSalary    *int64
	NewSalary    *int64

	JobTitle           *string
	JobProject         *string
	OpenPositions      *int
	RemainingPositions *int

	CompanyName   *string
	EmployeeCount *int

	JobOpeningID *string `gorm:"type:uuid"`

	CreatedAt time.Time
}

func (EventRecord) TableName() string {
	return "timeline_events"
}

// RecordFromDomain converts a domain event to its persisted shape. The
// seeder uses it to bulk-load generated logs.
func RecordFromDomain(ev timeline.Event) EventRecord {
	return fromDomain(ev)
}

func fromDomain(ev timeline.Event) EventRecord {
	rec := EventRecord{
		ID:        ev.ID,
		Seq:       ev.Seq,
		Kind:      string(ev.Kind),
		Timestamp: ev.Timestamp,
	}
	if ev.EmployeeInfo != nil {
		info := ev.EmployeeInfo
		rec.EmployeeName = strPtr(info.Name)
		rec.StartDate = timePtr(info.StartDate)
		rec.LastDay = timePtr(info.LastDay)
		rec.EffectiveDate = timePtr(info.EffectiveDate)
		rec.Position = strPtr(info.Position)
		rec.Project = strPtr(info.Project)
		rec.NewPosition = strPtr(info.NewPosition)
		rec.NewProject = strPtr(info.NewProject)
	}
	if ev.SalaryInfo != nil {
		rec.SalaryAmount = int64Ptr(ev.SalaryInfo.Amount)
		rec.OldSalary = int64Ptr(ev.SalaryInfo.OldAmount)
		rec.NewSalary = int64Ptr(ev.SalaryInfo.NewAmount)
	}
	if ev.JobInfo != nil {
		rec.JobTitle = strPtr(ev.JobInfo.Title)
		rec.JobProject = strPtr(ev.JobInfo.Project)
		rec.OpenPositions = intPtr(ev.JobInfo.OpenPositions)
		rec.RemainingPositions = intPtr(ev.JobInfo.RemainingPositions)
	}
	if ev.CompanyInfo != nil {
		rec.CompanyName = strPtr(ev.CompanyInfo.Name)
		rec.EmployeeCount = intPtr(ev.CompanyInfo.EmployeeCount)
	}
	if ev.JobOpeningID != "" {
		rec.JobOpeningID = &ev.JobOpeningID
	}
	return rec
}

func (rec EventRecord) toDomain() timeline.Event {
	ev := timeline.Event{
		ID:        rec.ID,
		Seq:       rec.Seq,
		Timestamp: rec.Timestamp,
		Kind:      timeline.Kind(rec.Kind),
	}
	switch ev.Kind {
	case timeline.KindNewEmployee, timeline.KindEmployeeTerminated, timeline.KindEmployeeLeft,
		timeline.KindEmployeeRaise, timeline.KindProjectAssignment, timeline.KindPositionClosed:
		ev.EmployeeInfo = &timeline.EmployeeInfo{
			Name:          strVal(rec.EmployeeName),
			StartDate:     timeVal(rec.StartDate),
			LastDay:       timeVal(rec.LastDay),
			EffectiveDate: timeVal(rec.EffectiveDate),
			Position:      strVal(rec.Position),
			Project:       strVal(rec.Project),
			NewPosition:   strVal(rec.NewPosition),
			NewProject:    strVal(rec.NewProject),
		}
	}
	switch ev.Kind {
	case timeline.KindNewEmployee, timeline.KindEmployeeRaise:
		ev.SalaryInfo = &timeline.SalaryInfo{
			Amount:    int64Val(rec.SalaryAmount),
			OldAmount: int64Val(rec.OldSalary),
			NewAmount: int64Val(rec.NewSalary),
		}
	}
	switch ev.Kind {
	case timeline.KindJobOpening, timeline.KindJobCancelled, timeline.KindPositionClosed:
		ev.JobInfo = &timeline.JobInfo{
			Title:              strVal(rec.JobTitle),
			Project:            strVal(rec.JobProject),
			OpenPositions:      intVal(rec.OpenPositions),
			RemainingPositions: intVal(rec.RemainingPositions),
		}
	}
	if ev.Kind == timeline.KindCompanyInfo {
		ev.CompanyInfo = &timeline.CompanyInfo{
			Name:          strVal(rec.CompanyName),
			EmployeeCount: intVal(rec.EmployeeCount),
		}
	}
	if rec.JobOpeningID != nil {
		ev.JobOpeningID = *rec.JobOpeningID
	}
	return ev
}

func toDomainList(recs []EventRecord) []timeline.Event {
	out := make([]timeline.Event, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeVal(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}

func int64Ptr(v int64) *int64 { return &v }

func int64Val(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func intPtr(v int) *int { return &v }

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
