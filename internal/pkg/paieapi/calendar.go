package paieapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/paielab/paie-gateway/internal/domain/calendar"
)

// Calendar endpoints. The override lists are sparse: the backend only
// stores days that differ from the synthesized defaults.

type plannedCalendarResponse struct {
	Planned []calendar.PlannedDayDTO `json:"calendrier_prevu"`
}

type actualHoursResponse struct {
	Actual []calendar.ActualDayDTO `json:"calendrier_reel"`
}

type savePlannedCalendarRequest struct {
	Year    int                      `json:"year"`
	Month   int                      `json:"month"`
	Planned []calendar.PlannedDayDTO `json:"calendrier_prevu"`
}

type saveActualHoursRequest struct {
	Year   int                     `json:"year"`
	Month  int                     `json:"month"`
	Actual []calendar.ActualDayDTO `json:"calendrier_reel"`
}

type calculatePayrollEventsRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func monthQuery(year, month int) url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	return q
}

// PlannedCalendar fetches the sparse planned overrides for one
// employee-month. Unknown day types are rejected here, before they can
// reach the reconciler.
func (s *Session) PlannedCalendar(ctx context.Context, employeeID string, year, month int) ([]calendar.PlannedDay, error) {
	var resp plannedCalendarResponse
	path := fmt.Sprintf("/api/employees/%s/planned-calendar", employeeID)
	if err := s.get(ctx, path, monthQuery(year, month), &resp); err != nil {
		return nil, err
	}

	out := make([]calendar.PlannedDay, 0, len(resp.Planned))
	for _, dto := range resp.Planned {
		day, err := dto.ToEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

// ActualHours fetches the sparse as-worked overrides. The type carried by
// an override is display-only; the reconciler replaces it with the merged
// planned type anyway.
func (s *Session) ActualHours(ctx context.Context, employeeID string, year, month int) ([]calendar.ActualDay, error) {
	var resp actualHoursResponse
	path := fmt.Sprintf("/api/employees/%s/actual-hours", employeeID)
	if err := s.get(ctx, path, monthQuery(year, month), &resp); err != nil {
		return nil, err
	}

	out := make([]calendar.ActualDay, 0, len(resp.Actual))
	for _, dto := range resp.Actual {
		day, err := dto.ToEntity(calendar.DayTypeWork)
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

// SavePlannedCalendar replaces the stored planned list for the month.
func (s *Session) SavePlannedCalendar(ctx context.Context, employeeID string, year, month int, days []calendar.PlannedDay) error {
	path := fmt.Sprintf("/api/employees/%s/planned-calendar", employeeID)
	return s.postJSON(ctx, path, savePlannedCalendarRequest{
		Year:    year,
		Month:   month,
		Planned: calendar.PlannedToDTO(days),
	}, nil)
}

// SaveActualHours replaces the stored as-worked list for the month.
func (s *Session) SaveActualHours(ctx context.Context, employeeID string, year, month int, days []calendar.ActualDay) error {
	path := fmt.Sprintf("/api/employees/%s/actual-hours", employeeID)
	return s.postJSON(ctx, path, saveActualHoursRequest{
		Year:   year,
		Month:  month,
		Actual: calendar.ActualToDTO(days),
	}, nil)
}

// CalculatePayrollEvents asks the backend to rederive payroll events from
// the saved calendar. The response body carries nothing we use.
func (s *Session) CalculatePayrollEvents(ctx context.Context, employeeID string, year, month int) error {
	path := fmt.Sprintf("/api/employees/%s/calculate-payroll-events", employeeID)
	return s.postJSON(ctx, path, calculatePayrollEventsRequest{Year: year, Month: month}, nil)
}
