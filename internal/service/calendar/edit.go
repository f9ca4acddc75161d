package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/paielab/paie-gateway/internal/domain/calendar"
)

// UpdateDay overlays the supplied fields onto one day of the loaded
// month. Fields absent from the patch are left unchanged; a day type,
// when present, is written to both the planned and the actual entry so
// the two stay coherent for display. No range validation happens here:
// the editors upstream decide what numbers are sane.
func (r *Reconciler) UpdateDay(day int, patch calendar.DayPatch) error {
	if r.cal == nil {
		return calendar.ErrNoMonthLoaded
	}
	if day < 1 || day > r.cal.Days() {
		return calendar.ErrDayOutOfRange
	}

	applyPatch(&r.cal.Planned[day-1], &r.cal.Actual[day-1], patch)
	return nil
}

// BulkUpdateDays applies one shared patch to every selected day. Two
// rules on top of the single-day merge:
//
//   - a non-work day type in the patch forces planned hours to null on
//     every affected day;
//   - when the patch carries no type but does carry positive hours, the
//     day type is inferred as work. Planned hours win the tie-break over
//     actual hours, not that it changes the outcome: either one infers
//     work.
//
// The selection set is not cleared here; the caller clears it once the
// apply is done.
func (r *Reconciler) BulkUpdateDays(days []int, patch calendar.DayPatch) error {
	if r.cal == nil {
		return calendar.ErrNoMonthLoaded
	}
	if len(days) == 0 {
		return calendar.ErrNoDaysSelected
	}
	for _, day := range days {
		if day < 1 || day > r.cal.Days() {
			return calendar.ErrDayOutOfRange
		}
	}

	inferred := inferBulkType(patch)

	for _, day := range days {
		planned := &r.cal.Planned[day-1]
		actual := &r.cal.Actual[day-1]

		applyPatch(planned, actual, patch)

		if patch.Type != nil && *patch.Type != calendar.DayTypeWork {
			planned.PlannedHours = nil
		}
		if patch.Type == nil && inferred != nil {
			planned.Type = *inferred
			actual.Type = *inferred
		}
	}
	return nil
}

// ApplyWeekTemplate rewrites the planned sequence from a Monday..Friday
// hours template. Saturdays, Sundays and days already typed holiday or
// leave are never touched. A weekday whose template entry parses to a
// positive number becomes a work day with those hours; an empty, zero or
// unparseable entry blanks the day out to weekend, which is how a
// part-time weekday is expressed without a sixth day type.
func (r *Reconciler) ApplyWeekTemplate(tpl calendar.WeekTemplate) error {
	if r.cal == nil {
		return calendar.ErrNoMonthLoaded
	}

	for i := range r.cal.Planned {
		day := &r.cal.Planned[i]

		weekday := calendar.WeekdayOf(r.cal.Year, r.cal.Month, day.Day)
		if weekday < time.Monday || weekday > time.Friday {
			continue
		}
		if day.Type == calendar.DayTypeHoliday || day.Type == calendar.DayTypeLeave {
			continue
		}

		if hours, ok := parseTemplateHours(tpl[weekday]); ok {
			day.Type = calendar.DayTypeWork
			day.PlannedHours = &hours
		} else {
			day.Type = calendar.DayTypeWeekend
			day.PlannedHours = nil
		}
	}
	return nil
}

// applyPatch is the field-level merge shared by the single-day and bulk
// editors.
func applyPatch(planned *calendar.PlannedDay, actual *calendar.ActualDay, patch calendar.DayPatch) {
	if patch.Type != nil {
		planned.Type = *patch.Type
		actual.Type = *patch.Type
	}
	if patch.PlannedHours.Set {
		planned.PlannedHours = patch.PlannedHours.Value
	}
	if patch.ActualHours.Set {
		actual.ActualHours = patch.ActualHours.Value
	}
}

// inferBulkType returns the work type when a typeless patch carries
// positive hours, nil otherwise.
func inferBulkType(patch calendar.DayPatch) *calendar.DayType {
	work := calendar.DayTypeWork
	if patch.PlannedHours.Set && patch.PlannedHours.Value != nil && *patch.PlannedHours.Value > 0 {
		return &work
	}
	if patch.ActualHours.Set && patch.ActualHours.Value != nil && *patch.ActualHours.Value > 0 {
		return &work
	}
	return nil
}

// parseTemplateHours parses one template entry. Decimal commas are
// accepted, the hours inputs being typed by French-speaking users.
func parseTemplateHours(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
