package calendar

import (
	"fmt"
	"time"
)

// DayType classifies one calendar day. The values are the ones exchanged
// with the payroll API, so they are kept in French on purpose.
type DayType string

const (
	DayTypeWork      DayType = "travail"
	DayTypeLeave     DayType = "conge"
	DayTypeHoliday   DayType = "ferie"
	DayTypeSickLeave DayType = "arret_maladie"
	DayTypeWeekend   DayType = "weekend"
)

// DayTypeValues lists every accepted day type, for validation messages.
var DayTypeValues = []string{
	string(DayTypeWork),
	string(DayTypeLeave),
	string(DayTypeHoliday),
	string(DayTypeSickLeave),
	string(DayTypeWeekend),
}

// Valid reports whether t is one of the known day types.
func (t DayType) Valid() bool {
	switch t {
	case DayTypeWork, DayTypeLeave, DayTypeHoliday, DayTypeSickLeave, DayTypeWeekend:
		return true
	}
	return false
}

// ParseDayType converts a wire value into a DayType. Unknown values are
// rejected here so they never propagate past the API boundary.
func ParseDayType(s string) (DayType, error) {
	t := DayType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayType, s)
	}
	return t, nil
}

// PlannedDay is one day of the prospective schedule.
// PlannedHours is non-nil only when Type is DayTypeWork.
type PlannedDay struct {
	Day          int
	Type         DayType
	PlannedHours *float64
}

// ActualDay is one day of the as-worked record. Type mirrors the planned
// entry for display coherence and is not independently authoritative.
type ActualDay struct {
	Day         int
	Type        DayType
	ActualHours *float64
}

// MonthCalendar is the reconciled view of one employee-month. Both
// sequences always cover every day of the month, 1..DaysInMonth, in
// ascending order, however sparse the server-side overrides were.
type MonthCalendar struct {
	EmployeeID string
	Year       int
	Month      int
	Planned    []PlannedDay
	Actual     []ActualDay
}

// Days returns the number of days covered by the calendar.
func (c *MonthCalendar) Days() int {
	return len(c.Planned)
}

// Clone returns a deep copy, so a save can snapshot the state it was
// given while the caller keeps editing.
func (c *MonthCalendar) Clone() *MonthCalendar {
	if c == nil {
		return nil
	}
	out := &MonthCalendar{
		EmployeeID: c.EmployeeID,
		Year:       c.Year,
		Month:      c.Month,
		Planned:    make([]PlannedDay, len(c.Planned)),
		Actual:     make([]ActualDay, len(c.Actual)),
	}
	for i, p := range c.Planned {
		out.Planned[i] = PlannedDay{Day: p.Day, Type: p.Type, PlannedHours: copyHours(p.PlannedHours)}
	}
	for i, a := range c.Actual {
		out.Actual[i] = ActualDay{Day: a.Day, Type: a.Type, ActualHours: copyHours(a.ActualHours)}
	}
	return out
}

func copyHours(v *float64) *float64 {
	if v == nil {
		return nil
	}
	h := *v
	return &h
}

// OptionalHours is an hours field with explicit presence tracking, so
// "field omitted" and "field cleared to null" stay distinguishable in
// partial updates.
type OptionalHours struct {
	Set   bool
	Value *float64
}

// Hours builds a present hours value.
func Hours(v float64) OptionalHours {
	return OptionalHours{Set: true, Value: &v}
}

// ClearHours builds an explicit clear (present, null).
func ClearHours() OptionalHours {
	return OptionalHours{Set: true}
}

// DayPatch is a field-level partial update for one day. Nil / unset
// fields are left untouched by the merge.
type DayPatch struct {
	Type         *DayType
	PlannedHours OptionalHours
	ActualHours  OptionalHours
}

// WeekTemplate maps Monday..Friday to an hours string. It is a generation
// rule, not persisted state: applying it overwrites matching weekdays of
// the loaded month, skipping days already typed holiday or leave.
type WeekTemplate map[time.Weekday]string

// DaysInMonth returns the number of days in the given month, leap years
// included. Day 0 of the next month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOf returns the weekday of a day number within the given month.
func WeekdayOf(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DefaultDayType is the synthesized type for a day without an override:
// weekend on Saturday and Sunday, work otherwise.
func DefaultDayType(year, month, day int) DayType {
	switch WeekdayOf(year, month, day) {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	}
	return DayTypeWork
}
