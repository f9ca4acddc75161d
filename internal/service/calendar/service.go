package calendar

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/calendar"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
)

type calendarServiceImpl struct {
	client *paieapi.Client
}

func NewCalendarService(client *paieapi.Client) calendar.CalendarService {
	return &calendarServiceImpl{client: client}
}

// GetMonth implements calendar.CalendarService.
func (s *calendarServiceImpl) GetMonth(ctx context.Context, token, employeeID string, year, month int) (calendar.MonthResponse, error) {
	rec := NewReconciler(s.client.WithToken(token))
	if err := rec.LoadMonth(ctx, employeeID, year, month); err != nil {
		return calendar.MonthResponse{}, err
	}
	return calendar.MonthResponseFromEntity(rec.Calendar()), nil
}

// UpdateDay implements calendar.CalendarService. The month travels with
// the request, so the transform needs no backend round trip.
func (s *calendarServiceImpl) UpdateDay(req calendar.UpdateDayRequest) (calendar.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthResponse{}, err
	}

	rec, err := seedReconciler(&req.MonthPayload)
	if err != nil {
		return calendar.MonthResponse{}, err
	}
	patch, err := req.Patch.ToEntity()
	if err != nil {
		return calendar.MonthResponse{}, err
	}
	if err := rec.UpdateDay(req.Day, patch); err != nil {
		return calendar.MonthResponse{}, err
	}
	return calendar.MonthResponseFromEntity(rec.Calendar()), nil
}

// BulkUpdate implements calendar.CalendarService.
func (s *calendarServiceImpl) BulkUpdate(req calendar.BulkUpdateRequest) (calendar.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthResponse{}, err
	}

	rec, err := seedReconciler(&req.MonthPayload)
	if err != nil {
		return calendar.MonthResponse{}, err
	}
	patch, err := req.Patch.ToEntity()
	if err != nil {
		return calendar.MonthResponse{}, err
	}
	if err := rec.BulkUpdateDays(req.Days, patch); err != nil {
		return calendar.MonthResponse{}, err
	}
	return calendar.MonthResponseFromEntity(rec.Calendar()), nil
}

// ApplyTemplate implements calendar.CalendarService.
func (s *calendarServiceImpl) ApplyTemplate(req calendar.ApplyTemplateRequest) (calendar.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthResponse{}, err
	}

	rec, err := seedReconciler(&req.MonthPayload)
	if err != nil {
		return calendar.MonthResponse{}, err
	}
	if err := rec.ApplyWeekTemplate(req.ToTemplate()); err != nil {
		return calendar.MonthResponse{}, err
	}
	return calendar.MonthResponseFromEntity(rec.Calendar()), nil
}

// SaveMonth implements calendar.CalendarService.
func (s *calendarServiceImpl) SaveMonth(ctx context.Context, token string, req calendar.SaveMonthRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	cal, err := req.MonthPayload.ToEntity()
	if err != nil {
		return err
	}

	rec := NewReconciler(s.client.WithToken(token))
	rec.SetMonth(cal)
	return rec.SaveMonth(ctx)
}

// seedReconciler builds a reconciler around a submitted month. Transforms
// are local, so no API session is attached.
func seedReconciler(payload *calendar.MonthPayload) (*Reconciler, error) {
	cal, err := payload.ToEntity()
	if err != nil {
		return nil, err
	}
	rec := NewReconciler(nil)
	rec.SetMonth(cal)
	return rec, nil
}
