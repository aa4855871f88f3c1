package event

type CreateEventRequest struct {
	Kind string `json:"kind" binding:"required"`

	// Employee fields
	Name          string `json:"name"`
	StartDate     string `json:"start_date"`
	LastDay       string `json:"last_day"`
	EffectiveDate string `json:"effective_date"`
	Position      string `json:"position"`
	Project       string `json:"project"`
	NewPosition   string `json:"new_position"`
	NewProject    string `json:"new_project"`

	// Salary fields
	Salary    int64 `json:"salary"`
	OldSalary int64 `json:"old_salary"`
	NewSalary int64 `json:"new_salary"`

	// Job fields
	Title              string `json:"title"`
	OpenPositions      int    `json:"open_positions"`
	RemainingPositions int    `json:"remaining_positions"`
	NewEmployeeName    string `json:"new_employee_name"`

	// Company fields
	CompanyName   string `json:"company_name"`
	EmployeeCount int    `json:"employee_count"`

	JobOpeningID string `json:"job_opening_id"`
}

// ListQuery narrows the timeline by at most one dimension.
type ListQuery struct {
	Type       string
	Employee   string
	JobOpening string
	Project    string
}

type EmployeeInfoResponse struct {
	Name          string `json:"name"`
	StartDate     string `json:"start_date,omitempty"`
	LastDay       string `json:"last_day,omitempty"`
	EffectiveDate string `json:"effective_date,omitempty"`
	Position      string `json:"position,omitempty"`
	Project       string `json:"project,omitempty"`
	NewPosition   string `json:"new_position,omitempty"`
	NewProject    string `json:"new_project,omitempty"`
}

type JobInfoResponse struct {
	Title              string `json:"title"`
	Project            string `json:"project"`
	OpenPositions      int    `json:"open_positions,omitempty"`
	RemainingPositions int    `json:"remaining_positions"`
}

type SalaryInfoResponse struct {
	Amount    int64 `json:"amount,omitempty"`
	OldAmount int64 `json:"old_amount,omitempty"`
	NewAmount int64 `json:"new_amount,omitempty"`
}

type CompanyInfoResponse struct {
	Name          string `json:"name"`
	EmployeeCount int    `json:"employee_count"`
}

type EventResponse struct {
	ID           string                `json:"id"`
	Seq          int64                 `json:"seq,omitempty"`
	Timestamp    string                `json:"timestamp"`
	Kind         string                `json:"kind"`
	Label        string                `json:"label"`
	EmployeeInfo *EmployeeInfoResponse `json:"employee_info,omitempty"`
	JobInfo      *JobInfoResponse      `json:"job_info,omitempty"`
	SalaryInfo   *SalaryInfoResponse   `json:"salary_info,omitempty"`
	CompanyInfo  *CompanyInfoResponse  `json:"company_info,omitempty"`
	JobOpeningID string                `json:"job_opening_id,omitempty"`
}

// TimelineEntryResponse is one rendered timeline row: the event plus the
// year/month boundary markers the presentation draws headers from.
type TimelineEntryResponse struct {
	EventResponse
	NewYear  bool   `json:"new_year,omitempty"`
	NewMonth bool   `json:"new_month,omitempty"`
	Year     int    `json:"year,omitempty"`
	Month    string `json:"month,omitempty"`
}
