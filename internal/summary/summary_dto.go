package summary

type MonthSummaryResponse struct {
	Year               int    `json:"year"`
	Month              string `json:"month"`
	NewEmployees       int    `json:"new_employees"`
	EmployeesLeft      int    `json:"employees_left"`
	NewOpenings        int    `json:"new_openings"`
	PositionsClosed    int    `json:"positions_closed"`
	Raises             int    `json:"raises"`
	ProjectAssignments int    `json:"project_assignments"`
}

type YearSummaryResponse struct {
	Year               int `json:"year"`
	NewEmployees       int `json:"new_employees"`
	EmployeesLeft      int `json:"employees_left"`
	NewOpenings        int `json:"new_openings"`
	PositionsClosed    int `json:"positions_closed"`
	Raises             int `json:"raises"`
	ProjectAssignments int `json:"project_assignments"`
	Growth             int `json:"growth"`
}
