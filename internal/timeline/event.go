package timeline

import "time"

// Kind is the closed enumeration of timeline event variants.
type Kind string

const (
	KindCompanyInfo        Kind = "COMPANY_INFO"
	KindNewEmployee        Kind = "NEW_EMPLOYEE"
	KindEmployeeTerminated Kind = "EMPLOYEE_TERMINATED"
	KindEmployeeLeft       Kind = "EMPLOYEE_LEFT"
	KindEmployeeRaise      Kind = "EMPLOYEE_RAISE"
	KindProjectAssignment  Kind = "PROJECT_ASSIGNMENT"
	KindJobOpening         Kind = "JOB_OPENING"
	KindJobCancelled       Kind = "JOB_CANCELLED"
	KindPositionClosed     Kind = "POSITION_CLOSED"
	KindCurrentDate        Kind = "CURRENT_DATE"
)

// Kinds lists every valid kind in declaration order.
var Kinds = []Kind{
	KindCompanyInfo,
	KindNewEmployee,
	KindEmployeeTerminated,
	KindEmployeeLeft,
	KindEmployeeRaise,
	KindProjectAssignment,
	KindJobOpening,
	KindJobCancelled,
	KindPositionClosed,
	KindCurrentDate,
}

func (k Kind) Valid() bool {
	switch k {
	case KindCompanyInfo, KindNewEmployee, KindEmployeeTerminated, KindEmployeeLeft,
		KindEmployeeRaise, KindProjectAssignment, KindJobOpening, KindJobCancelled,
		KindPositionClosed, KindCurrentDate:
		return true
	}
	return false
}

// EmployeeInfo carries the employee-facing fields of an event. Which fields are
// set depends on the kind: NEW_EMPLOYEE uses StartDate, terminations use
// LastDay/Position, raises use EffectiveDate/Position, reassignments use
// EffectiveDate/NewPosition/NewProject, POSITION_CLOSED only Name.
type EmployeeInfo struct {
	Name          string
	StartDate     time.Time
	LastDay       time.Time
	EffectiveDate time.Time
	Position      string
	Project       string
	NewPosition   string
	NewProject    string
}

type JobInfo struct {
	Title              string
	Project            string
	OpenPositions      int
	RemainingPositions int
}

type SalaryInfo struct {
	Amount    int64
	OldAmount int64
	NewAmount int64
}

type CompanyInfo struct {
	Name          string
	EmployeeCount int
}

// Event is one immutable entry of the append-only timeline log. Payload
// pointers are set per kind; consumers switch on Kind and must handle every
// variant.
type Event struct {
	ID        string
	Seq       int64
	Timestamp time.Time
	Kind      Kind

	EmployeeInfo *EmployeeInfo
	JobInfo      *JobInfo
	SalaryInfo   *SalaryInfo
	CompanyInfo  *CompanyInfo

	// JobOpeningID references the JOB_OPENING event a NEW_EMPLOYEE fills.
	// It is a cross-reference, not ownership: a dangling id means the
	// originating opening is unknown, never an error.
	JobOpeningID string
}

// EmployeeName returns the employee name the event carries, or "" when the
// variant has no employee payload.
func (e Event) EmployeeName() string {
	if e.EmployeeInfo == nil {
		return ""
	}
	return e.EmployeeInfo.Name
}

// Project returns the project the event is about, preferring the employee
// payload over the job payload.
func (e Event) Project() string {
	if e.EmployeeInfo != nil && e.EmployeeInfo.Project != "" {
		return e.EmployeeInfo.Project
	}
	if e.JobInfo != nil {
		return e.JobInfo.Project
	}
	return ""
}
