package timeline

// Dimension is the axis a timeline view is narrowed by.
type Dimension string

const (
	DimensionNone       Dimension = ""
	DimensionEventType  Dimension = "eventType"
	DimensionEmployee   Dimension = "employee"
	DimensionJobOpening Dimension = "jobOpening"
	DimensionProject    Dimension = "project"
)

// Selection pairs a dimension with its value. Kind is consulted only for
// DimensionEventType, Value for the other dimensions. The zero Selection
// means no filtering.
type Selection struct {
	Dimension Dimension
	Kind      Kind
	Value     string
}

// Filter returns the subsequence of events matching the selection, preserving
// relative order. It never mutates the input and is idempotent: filtering an
// already-filtered log with the same selection is a no-op.
func Filter(events []Event, sel Selection) []Event {
	if sel.Dimension == DimensionNone {
		return events
	}

	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if matches(events, ev, sel) {
			out = append(out, ev)
		}
	}
	return out
}

func matches(log []Event, ev Event, sel Selection) bool {
	switch sel.Dimension {
	case DimensionEventType:
		return ev.Kind == sel.Kind

	case DimensionEmployee:
		return ev.EmployeeInfo != nil && ev.EmployeeInfo.Name == sel.Value

	case DimensionProject:
		if ev.EmployeeInfo != nil && ev.EmployeeInfo.Project == sel.Value {
			return true
		}
		return ev.JobInfo != nil && ev.JobInfo.Project == sel.Value

	case DimensionJobOpening:
		return matchesJobOpening(log, ev, sel.Value)
	}

	return true
}

// matchesJobOpening implements the three-part union for the job-opening
// dimension:
//
//  1. any event whose job payload carries the selected title
//     (openings, cancellations, closed positions),
//  2. a termination or leaving event whose position is the title and whose
//     project matches the project of the opening with that title,
//  3. a NEW_EMPLOYEE whose JobOpeningID resolves to an opening with that
//     title and project.
//
// When several openings share a title the most recent one by timestamp
// provides the project binding. Dangling JobOpeningID references simply fail
// to match.
func matchesJobOpening(log []Event, ev Event, title string) bool {
	if ev.JobInfo != nil && ev.JobInfo.Title == title {
		return true
	}

	if ev.EmployeeInfo == nil {
		return false
	}

	opening, found := latestOpening(log, title)
	if !found {
		return false
	}
	project := opening.JobInfo.Project

	switch ev.Kind {
	case KindEmployeeTerminated, KindEmployeeLeft:
		return ev.EmployeeInfo.Position == title && ev.EmployeeInfo.Project == project

	case KindNewEmployee:
		ref, ok := findByID(log, ev.JobOpeningID)
		if !ok || ref.JobInfo == nil {
			return false
		}
		return ref.JobInfo.Title == title && ref.JobInfo.Project == project
	}

	return false
}

func latestOpening(log []Event, title string) (Event, bool) {
	var best Event
	found := false
	for _, ev := range log {
		if ev.Kind != KindJobOpening || ev.JobInfo == nil || ev.JobInfo.Title != title {
			continue
		}
		if !found || ev.Timestamp.After(best.Timestamp) {
			best = ev
			found = true
		}
	}
	return best, found
}

func findByID(log []Event, id string) (Event, bool) {
	if id == "" {
		return Event{}, false
	}
	for _, ev := range log {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}
