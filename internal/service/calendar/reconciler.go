package calendar

import (
	"context"
	"fmt"

	"github.com/paielab/paie-gateway/internal/domain/calendar"
	"github.com/paielab/paie-gateway/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// API is the slice of the payroll backend the reconciler talks to.
// Implemented by paieapi.Session.
type API interface {
	PlannedCalendar(ctx context.Context, employeeID string, year, month int) ([]calendar.PlannedDay, error)
	ActualHours(ctx context.Context, employeeID string, year, month int) ([]calendar.ActualDay, error)
	SavePlannedCalendar(ctx context.Context, employeeID string, year, month int, days []calendar.PlannedDay) error
	SaveActualHours(ctx context.Context, employeeID string, year, month int, days []calendar.ActualDay) error
	CalculatePayrollEvents(ctx context.Context, employeeID string, year, month int) error
}

// Reconciler owns the editable state of one employee-month. It merges the
// sparse server-side override lists into a complete month, applies local
// edits, and pushes everything back on save.
//
// A reconciler is owned by a single caller and is not safe for concurrent
// use: every mutation is expected to come from one interaction loop, the
// way the calendar view drives it. SaveMonth snapshots the sequences when
// called, so edits made while a save is in flight only land in the next
// save.
type Reconciler struct {
	api API

	cal       *calendar.MonthCalendar
	selection map[int]struct{}

	loading bool
	saving  bool
}

func NewReconciler(api API) *Reconciler {
	return &Reconciler{
		api:       api,
		selection: make(map[int]struct{}),
	}
}

// Calendar returns the currently loaded month, or nil before any load.
func (r *Reconciler) Calendar() *calendar.MonthCalendar {
	return r.cal
}

// Loading reports whether a LoadMonth call is in flight.
func (r *Reconciler) Loading() bool { return r.loading }

// Saving reports whether a SaveMonth call is in flight.
func (r *Reconciler) Saving() bool { return r.saving }

// SetMonth replaces the loaded state wholesale with an already built
// month, for callers that carry the edited month themselves. The
// selection is cleared, as on any month change.
func (r *Reconciler) SetMonth(cal *calendar.MonthCalendar) {
	r.cal = cal
	r.ClearSelection()
}

// LoadMonth fetches both override lists for the employee-month, merges
// them over a synthesized skeleton and replaces the in-memory state. On
// any fetch or parse failure nothing is committed: the previously loaded
// month, if any, stays as it was.
func (r *Reconciler) LoadMonth(ctx context.Context, employeeID string, year, month int) error {
	if validator.IsEmpty(employeeID) {
		return fmt.Errorf("%w: employee id is required", calendar.ErrLoadCalendar)
	}
	if year < 1900 {
		return fmt.Errorf("%w: implausible year %d", calendar.ErrLoadCalendar, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range", calendar.ErrLoadCalendar, month)
	}

	r.loading = true
	defer func() { r.loading = false }()

	var (
		plannedOverrides []calendar.PlannedDay
		actualOverrides  []calendar.ActualDay
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plannedOverrides, err = r.api.PlannedCalendar(gctx, employeeID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		actualOverrides, err = r.api.ActualHours(gctx, employeeID, year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrLoadCalendar, err)
	}

	planned := MergePlanned(BuildSkeleton(year, month), plannedOverrides)
	actual := BuildActual(planned, actualOverrides)

	r.cal = &calendar.MonthCalendar{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Planned:    planned,
		Actual:     actual,
	}
	r.ClearSelection()
	return nil
}

// SaveMonth writes both override lists back, concurrently, then asks the
// backend to recompute payroll events for the month. The recompute call
// is only issued once both writes succeeded; a failed write reports
// ErrSaveCalendar and a failed recompute reports ErrRecompute, so the
// caller can tell whether the data itself is safe. Local edits are never
// discarded on failure.
func (r *Reconciler) SaveMonth(ctx context.Context) error {
	if r.cal == nil {
		return calendar.ErrNoMonthLoaded
	}

	r.saving = true
	defer func() { r.saving = false }()

	// Snapshot so edits made while the writes are in flight go into the
	// next save instead of racing this one.
	snap := r.cal.Clone()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.api.SavePlannedCalendar(gctx, snap.EmployeeID, snap.Year, snap.Month, snap.Planned)
	})
	g.Go(func() error {
		return r.api.SaveActualHours(gctx, snap.EmployeeID, snap.Year, snap.Month, snap.Actual)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrSaveCalendar, err)
	}

	if err := r.api.CalculatePayrollEvents(ctx, snap.EmployeeID, snap.Year, snap.Month); err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrRecompute, err)
	}
	return nil
}

// BuildSkeleton synthesizes the default month: Saturdays and Sundays are
// weekend, everything else is a work day with no hours assumed.
func BuildSkeleton(year, month int) []calendar.PlannedDay {
	days := calendar.DaysInMonth(year, month)
	out := make([]calendar.PlannedDay, days)
	for day := 1; day <= days; day++ {
		out[day-1] = calendar.PlannedDay{Day: day, Type: calendar.DefaultDayType(year, month, day)}
	}
	return out
}

// MergePlanned overlays the sparse server overrides onto the skeleton.
// An override supersedes the synthesized default for its day; days
// without an override keep the default.
func MergePlanned(skeleton []calendar.PlannedDay, overrides []calendar.PlannedDay) []calendar.PlannedDay {
	byDay := make(map[int]calendar.PlannedDay, len(overrides))
	for _, ov := range overrides {
		byDay[ov.Day] = ov
	}

	out := make([]calendar.PlannedDay, len(skeleton))
	for i, def := range skeleton {
		out[i] = def
		ov, ok := byDay[def.Day]
		if !ok {
			continue
		}
		if ov.Type.Valid() {
			out[i].Type = ov.Type
		}
		out[i].PlannedHours = ov.PlannedHours
	}
	return out
}

// BuildActual derives the as-worked sequence: day and type come from the
// merged planned entry for display coherence, hours from the override
// when one exists.
func BuildActual(planned []calendar.PlannedDay, overrides []calendar.ActualDay) []calendar.ActualDay {
	byDay := make(map[int]*float64, len(overrides))
	for _, ov := range overrides {
		byDay[ov.Day] = ov.ActualHours
	}

	out := make([]calendar.ActualDay, len(planned))
	for i, p := range planned {
		out[i] = calendar.ActualDay{Day: p.Day, Type: p.Type}
		if hours, ok := byDay[p.Day]; ok {
			out[i].ActualHours = hours
		}
	}
	return out
}
