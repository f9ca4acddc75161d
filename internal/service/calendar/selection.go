package calendar

import (
	"sort"

	"github.com/paielab/paie-gateway/internal/domain/calendar"
)

// Selection tracking for bulk edits. The set is scoped to the loaded
// month: LoadMonth and SetMonth clear it.

// ToggleDay records a click on a day cell. A plain click (additive
// false) replaces the whole selection with just that day; a
// modifier-click (additive true) toggles the day's membership in the
// existing set.
func (r *Reconciler) ToggleDay(day int, additive bool) error {
	if r.cal == nil {
		return calendar.ErrNoMonthLoaded
	}
	if day < 1 || day > r.cal.Days() {
		return calendar.ErrDayOutOfRange
	}

	if !additive {
		r.selection = map[int]struct{}{day: {}}
		return nil
	}

	if _, ok := r.selection[day]; ok {
		delete(r.selection, day)
	} else {
		r.selection[day] = struct{}{}
	}
	return nil
}

// SelectedDays returns the current selection in ascending day order.
func (r *Reconciler) SelectedDays() []int {
	out := make([]int, 0, len(r.selection))
	for day := range r.selection {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}

// ClearSelection empties the selection set, after a bulk apply or an
// explicit cancel.
func (r *Reconciler) ClearSelection() {
	r.selection = make(map[int]struct{})
}
