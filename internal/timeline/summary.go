package timeline

import "time"

// Summary counts the per-category activity of one calendar window.
type Summary struct {
	NewEmployees       int
	EmployeesLeft      int
	NewOpenings        int
	PositionsClosed    int
	Raises             int
	ProjectAssignments int
}

// MonthEvents returns the events whose timestamp falls in the given calendar
// month (UTC).
func MonthEvents(events []Event, year int, month time.Month) []Event {
	out := make([]Event, 0)
	for _, ev := range events {
		ts := ev.Timestamp.UTC()
		if ts.Year() == year && ts.Month() == month {
			out = append(out, ev)
		}
	}
	return out
}

// YearEvents returns the events whose timestamp falls in the given calendar
// year (UTC).
func YearEvents(events []Event, year int) []Event {
	out := make([]Event, 0)
	for _, ev := range events {
		if ev.Timestamp.UTC().Year() == year {
			out = append(out, ev)
		}
	}
	return out
}

// MonthSummary reduces the events of one calendar month into counters.
// Departures combine EMPLOYEE_LEFT and EMPLOYEE_TERMINATED.
func MonthSummary(events []Event, year int, month time.Month) Summary {
	return tally(MonthEvents(events, year, month))
}

// YearSummary reduces the events of one calendar year into counters.
func YearSummary(events []Event, year int) Summary {
	return tally(YearEvents(events, year))
}

// YearGrowth is the net headcount delta of one year: +1 per hire, -1 per
// departure.
func YearGrowth(events []Event, year int) int {
	growth := 0
	for _, ev := range YearEvents(events, year) {
		switch ev.Kind {
		case KindNewEmployee:
			growth++
		case KindEmployeeLeft, KindEmployeeTerminated:
			growth--
		}
	}
	return growth
}

func tally(events []Event) Summary {
	var s Summary
	for _, ev := range events {
		switch ev.Kind {
		case KindNewEmployee:
			s.NewEmployees++
		case KindEmployeeLeft, KindEmployeeTerminated:
			s.EmployeesLeft++
		case KindJobOpening:
			s.NewOpenings++
		case KindPositionClosed:
			s.PositionsClosed++
		case KindEmployeeRaise:
			s.Raises++
		case KindProjectAssignment:
			s.ProjectAssignments++
		case KindCompanyInfo, KindJobCancelled, KindCurrentDate:
			// Not counted.
		}
	}
	return s
}
