package calendar

import "errors"

// Calendar domain errors
var (
	// Load/save failures, one per step so handlers can tell the user
	// whether their data reached the backend.
	ErrLoadCalendar  = errors.New("unable to load calendar data")
	ErrSaveCalendar  = errors.New("calendar data was not saved")
	ErrRecompute     = errors.New("calendar saved but payroll event computation failed")

	// Edit errors
	ErrNoMonthLoaded  = errors.New("no month loaded")
	ErrDayOutOfRange  = errors.New("day is outside the loaded month")
	ErrDuplicateDay   = errors.New("duplicate day in calendar sequence")
	ErrInvalidDayType = errors.New("unknown day type")
	ErrNoDaysSelected = errors.New("no days selected")
)
