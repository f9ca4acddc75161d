package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

// Wire shapes shared with the payroll API. Field names match the API's
// Pydantic models exactly.

type PlannedDayDTO struct {
	Day          int      `json:"jour"`
	Type         string   `json:"type"`
	PlannedHours *float64 `json:"heures_prevues"`
}

type ActualDayDTO struct {
	Day         int      `json:"jour"`
	Type        *string  `json:"type"`
	ActualHours *float64 `json:"heures_faites"`
}

// ToEntity rejects unknown day types at the boundary.
func (d PlannedDayDTO) ToEntity() (PlannedDay, error) {
	t, err := ParseDayType(d.Type)
	if err != nil {
		return PlannedDay{}, err
	}
	return PlannedDay{Day: d.Day, Type: t, PlannedHours: d.PlannedHours}, nil
}

func (d ActualDayDTO) ToEntity(fallback DayType) (ActualDay, error) {
	t := fallback
	if d.Type != nil {
		parsed, err := ParseDayType(*d.Type)
		if err != nil {
			return ActualDay{}, err
		}
		t = parsed
	}
	return ActualDay{Day: d.Day, Type: t, ActualHours: d.ActualHours}, nil
}

func PlannedToDTO(days []PlannedDay) []PlannedDayDTO {
	out := make([]PlannedDayDTO, len(days))
	for i, d := range days {
		out[i] = PlannedDayDTO{Day: d.Day, Type: string(d.Type), PlannedHours: d.PlannedHours}
	}
	return out
}

func ActualToDTO(days []ActualDay) []ActualDayDTO {
	out := make([]ActualDayDTO, len(days))
	for i, d := range days {
		t := string(d.Type)
		out[i] = ActualDayDTO{Day: d.Day, Type: &t, ActualHours: d.ActualHours}
	}
	return out
}

// OptionalHoursDTO unmarshals an hours field while keeping track of
// whether the key was present at all: absent leaves Set false, an
// explicit null sets Set with a nil value.
type OptionalHoursDTO struct {
	OptionalHours
}

func (o *OptionalHoursDTO) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o OptionalHoursDTO) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// MonthPayload is the full editable month as the gateway's own clients
// submit it back for transforms and saves.
type MonthPayload struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Planned    []PlannedDayDTO `json:"calendrier_prevu"`
	Actual     []ActualDayDTO  `json:"calendrier_reel"`
}

func (p *MonthPayload) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(p.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if p.Year < 1900 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 1900 or later"})
	}
	if p.Month < 1 || p.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	for _, d := range p.Planned {
		if !validator.IsInSlice(d.Type, DayTypeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "calendrier_prevu",
				Message: "type must be one of: " + strings.Join(DayTypeValues, ", "),
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity rebuilds a MonthCalendar from a submitted payload. Day types
// are re-validated, and both sequences are canonicalized to one entry
// per day 1..daysInMonth in ascending order, whatever order or coverage
// the client submitted: days without an entry get the synthesized
// default, duplicated or out-of-range days are rejected. The day-indexed
// editors rely on that shape.
func (p *MonthPayload) ToEntity() (*MonthCalendar, error) {
	days := DaysInMonth(p.Year, p.Month)

	plannedByDay := make(map[int]PlannedDay, len(p.Planned))
	for _, dto := range p.Planned {
		day, err := dto.ToEntity()
		if err != nil {
			return nil, err
		}
		if day.Day < 1 || day.Day > days {
			return nil, fmt.Errorf("%w: calendrier_prevu day %d", ErrDayOutOfRange, day.Day)
		}
		if _, ok := plannedByDay[day.Day]; ok {
			return nil, fmt.Errorf("%w: calendrier_prevu day %d", ErrDuplicateDay, day.Day)
		}
		plannedByDay[day.Day] = day
	}

	cal := &MonthCalendar{
		EmployeeID: p.EmployeeID,
		Year:       p.Year,
		Month:      p.Month,
		Planned:    make([]PlannedDay, days),
		Actual:     make([]ActualDay, days),
	}
	for day := 1; day <= days; day++ {
		entry, ok := plannedByDay[day]
		if !ok {
			entry = PlannedDay{Day: day, Type: DefaultDayType(p.Year, p.Month, day)}
		}
		cal.Planned[day-1] = entry
	}

	actualByDay := make(map[int]ActualDay, len(p.Actual))
	for _, dto := range p.Actual {
		if dto.Day < 1 || dto.Day > days {
			return nil, fmt.Errorf("%w: calendrier_reel day %d", ErrDayOutOfRange, dto.Day)
		}
		day, err := dto.ToEntity(cal.Planned[dto.Day-1].Type)
		if err != nil {
			return nil, err
		}
		if _, ok := actualByDay[day.Day]; ok {
			return nil, fmt.Errorf("%w: calendrier_reel day %d", ErrDuplicateDay, day.Day)
		}
		actualByDay[day.Day] = day
	}
	for day := 1; day <= days; day++ {
		planned := cal.Planned[day-1]
		entry := ActualDay{Day: day, Type: planned.Type}
		if a, ok := actualByDay[day]; ok {
			entry.Type = a.Type
			entry.ActualHours = a.ActualHours
		}
		cal.Actual[day-1] = entry
	}
	return cal, nil
}

// MonthResponse is what GetMonth and the transform operations return.
type MonthResponse struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Planned    []PlannedDayDTO `json:"calendrier_prevu"`
	Actual     []ActualDayDTO  `json:"calendrier_reel"`
}

func MonthResponseFromEntity(cal *MonthCalendar) MonthResponse {
	return MonthResponse{
		EmployeeID: cal.EmployeeID,
		Year:       cal.Year,
		Month:      cal.Month,
		Planned:    PlannedToDTO(cal.Planned),
		Actual:     ActualToDTO(cal.Actual),
	}
}

// DayPatchDTO carries a field-level partial update. Omitted keys leave
// the field untouched; an explicit null clears it.
type DayPatchDTO struct {
	Type         *string          `json:"type,omitempty"`
	PlannedHours OptionalHoursDTO `json:"heures_prevues"`
	ActualHours  OptionalHoursDTO `json:"heures_faites"`
}

func (d *DayPatchDTO) Validate() error {
	var errs validator.ValidationErrors

	if d.Type != nil && !validator.IsInSlice(*d.Type, DayTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(DayTypeValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (d *DayPatchDTO) ToEntity() (DayPatch, error) {
	patch := DayPatch{
		PlannedHours: d.PlannedHours.OptionalHours,
		ActualHours:  d.ActualHours.OptionalHours,
	}
	if d.Type != nil {
		t, err := ParseDayType(*d.Type)
		if err != nil {
			return DayPatch{}, err
		}
		patch.Type = &t
	}
	return patch, nil
}

type UpdateDayRequest struct {
	MonthPayload
	Day   int         `json:"day"`
	Patch DayPatchDTO `json:"patch"`
}

func (r *UpdateDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.MonthPayload.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, validator.ValidationError{Field: "day", Message: "day must be between 1 and 31"})
	}
	if err := r.Patch.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkUpdateRequest struct {
	MonthPayload
	Days  []int       `json:"days"`
	Patch DayPatchDTO `json:"patch"`
}

func (r *BulkUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.MonthPayload.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "at least one day is required"})
	}
	if err := r.Patch.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTemplateRequest applies a Monday..Friday hours template to the
// submitted month. Keys are weekday indexes, 1=Monday .. 5=Friday.
type ApplyTemplateRequest struct {
	MonthPayload
	Template map[int]string `json:"template"`
}

func (r *ApplyTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.MonthPayload.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	for weekday := range r.Template {
		if weekday < 1 || weekday > 5 {
			errs = append(errs, validator.ValidationError{
				Field:   "template",
				Message: "weekday keys must be between 1 (Monday) and 5 (Friday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToTemplate converts the request keys to time.Weekday. Monday is 1 in
// both numberings, so the cast is direct.
func (r *ApplyTemplateRequest) ToTemplate() WeekTemplate {
	tpl := make(WeekTemplate, len(r.Template))
	for weekday, hours := range r.Template {
		tpl[time.Weekday(weekday)] = hours
	}
	return tpl
}

type SaveMonthRequest struct {
	MonthPayload
}
