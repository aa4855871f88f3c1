package roster

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Project   string `json:"project"`
	Salary    int64  `json:"salary"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Status    string `json:"status"`
}

type CompanyOverviewResponse struct {
	Name            string `json:"name"`
	ActiveEmployees int    `json:"active_employees"`
	TotalEmployees  int    `json:"total_employees"`
	SnapshotCount   int    `json:"snapshot_count,omitempty"`
}
