package sample

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pharod/boltnew-company-timeline/internal/timeline"
)

// Config drives the generator. Targets are the expected totals for the whole
// window; daily probabilities are derived from them.
type Config struct {
	CompanyName      string
	InitialEmployees int
	Start            time.Time
	End              time.Time
	TargetOpenings   int
	TargetFills      int
	TargetLeaves     int
	TargetTerminates int
	Seed             int64
}

func DefaultConfig() Config {
	return Config{
		CompanyName:      "Nitka Technologies",
		InitialEmployees: 50,
		Start:            time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:              time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		TargetOpenings:   10,
		TargetFills:      10,
		TargetLeaves:     10,
		TargetTerminates: 10,
		Seed:             1,
	}
}

type openPosition struct {
	title   string
	project string
	count   int
}

// Generator produces a reproducible historical event log. All randomness
// comes from the seeded source in Config.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	ledger *timeline.Ledger
	open   map[string]*openPosition
	openID []string
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		ledger: timeline.NewLedger(),
		open:   make(map[string]*openPosition),
	}
}

// Generate builds the full sample log: a COMPANY_INFO snapshot, hire events
// for the initial workforce predating the window, then day-by-day openings,
// fills, raises-free lifecycle churn and backfills across the window. Events
// come back sorted ascending by timestamp with Seq assigned in append order.
func (g *Generator) Generate() []timeline.Event {
	events := make([]timeline.Event, 0, 256)

	events = append(events, g.initialHires()...)

	events = append(events, timeline.Event{
		ID:        uuid.NewString(),
		Timestamp: g.cfg.Start,
		Kind:      timeline.KindCompanyInfo,
		CompanyInfo: &timeline.CompanyInfo{
			Name:          g.cfg.CompanyName,
			EmployeeCount: g.cfg.InitialEmployees,
		},
	})

	totalDays := int(g.cfg.End.Sub(g.cfg.Start).Hours() / 24)
	if totalDays < 1 {
		totalDays = 1
	}
	pOpening := float64(g.cfg.TargetOpenings) / float64(totalDays)
	pFill := float64(g.cfg.TargetFills) / float64(totalDays)
	pLeave := float64(g.cfg.TargetLeaves) / float64(totalDays*50)
	pTerminate := float64(g.cfg.TargetTerminates) / float64(totalDays*50)

	for day := g.cfg.Start; !day.After(g.cfg.End); day = day.AddDate(0, 0, 1) {
		daily := g.generateDay(day, pOpening, pFill, pLeave, pTerminate)
		for _, ev := range daily {
			g.ledger.Apply(ev)
		}
		events = append(events, daily...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	for i := range events {
		events[i].Seq = int64(i + 1)
	}
	return events
}

// initialHires turns the pre-existing workforce into real NEW_EMPLOYEE events
// scattered over the years before the window so the ledger can be rebuilt
// from the log alone.
func (g *Generator) initialHires() []timeline.Event {
	events := make([]timeline.Event, 0, g.cfg.InitialEmployees)
	for i := 0; i < g.cfg.InitialEmployees; i++ {
		role := pick(g.rng, roles)
		monthsAgo := g.rng.Intn(24) + 1
		hired := g.cfg.Start.AddDate(-2, -monthsAgo, 0)
		ev := timeline.Event{
			ID:        uuid.NewString(),
			Timestamp: hired,
			Kind:      timeline.KindNewEmployee,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name:      randomName(g.rng),
				StartDate: hired,
				Position:  role,
				Project:   pick(g.rng, projects),
			},
			SalaryInfo: &timeline.SalaryInfo{Amount: salaryForRole(g.rng, role)},
		}
		g.ledger.Apply(ev)
		events = append(events, ev)
	}
	return events
}

func (g *Generator) generateDay(day time.Time, pOpening, pFill, pLeave, pTerminate float64) []timeline.Event {
	events := make([]timeline.Event, 0, 4)

	if g.chance(pOpening) {
		title := pick(g.rng, roles)
		project := pick(g.rng, projects)
		count := 1
		if g.rng.Float64() >= 0.7 {
			count = 2
		}
		events = append(events, g.addOpening(day, title, project, count))
	}

	// Walk open positions in insertion order so a fixed seed yields a fixed log.
	for _, id := range append([]string(nil), g.openID...) {
		pos, ok := g.open[id]
		if !ok || pos.count == 0 || !g.chance(pFill) {
			continue
		}
		name := randomName(g.rng)

		events = append(events, timeline.Event{
			ID:        uuid.NewString(),
			Timestamp: day,
			Kind:      timeline.KindNewEmployee,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name:      name,
				StartDate: day,
				Position:  pos.title,
				Project:   pos.project,
			},
			SalaryInfo:   &timeline.SalaryInfo{Amount: salaryForRole(g.rng, pos.title)},
			JobOpeningID: id,
		})

		pos.count--
		events = append(events, timeline.Event{
			ID:        uuid.NewString(),
			Timestamp: day,
			Kind:      timeline.KindPositionClosed,
			JobInfo: &timeline.JobInfo{
				Title:              pos.title,
				Project:            pos.project,
				RemainingPositions: pos.count,
			},
			EmployeeInfo: &timeline.EmployeeInfo{Name: name},
		})
		if pos.count == 0 {
			g.removeOpening(id)
		}
	}

	for _, emp := range g.ledger.Active() {
		if !g.chance(pLeave + pTerminate) {
			continue
		}
		kind := timeline.KindEmployeeLeft
		if g.chance(pTerminate / (pLeave + pTerminate)) {
			kind = timeline.KindEmployeeTerminated
		}
		events = append(events, timeline.Event{
			ID:        uuid.NewString(),
			Timestamp: day,
			Kind:      kind,
			EmployeeInfo: &timeline.EmployeeInfo{
				Name:     emp.Name,
				LastDay:  day,
				Position: emp.Position,
				Project:  emp.Project,
			},
		})
		// Backfill the vacated seat.
		events = append(events, g.addOpening(day, emp.Position, emp.Project, 1))
	}

	return events
}

func (g *Generator) addOpening(day time.Time, title, project string, count int) timeline.Event {
	id := uuid.NewString()
	g.open[id] = &openPosition{title: title, project: project, count: count}
	g.openID = append(g.openID, id)
	return timeline.Event{
		ID:        id,
		Timestamp: day,
		Kind:      timeline.KindJobOpening,
		JobInfo: &timeline.JobInfo{
			Title:         title,
			Project:       project,
			OpenPositions: count,
		},
	}
}

func (g *Generator) removeOpening(id string) {
	delete(g.open, id)
	for i, openID := range g.openID {
		if openID == id {
			g.openID = append(g.openID[:i], g.openID[i+1:]...)
			break
		}
	}
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}
