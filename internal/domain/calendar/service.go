package calendar

import (
	"context"
)

// CalendarService defines the month reconciliation operations exposed to
// the HTTP layer.
type CalendarService interface {
	// GetMonth loads and reconciles one employee-month: full skeleton,
	// sparse server overrides merged in.
	GetMonth(ctx context.Context, token, employeeID string, year, month int) (MonthResponse, error)

	// UpdateDay applies a field-level partial update to one day of a
	// submitted month and returns the transformed month.
	UpdateDay(req UpdateDayRequest) (MonthResponse, error)

	// BulkUpdate applies one shared partial update to several days.
	BulkUpdate(req BulkUpdateRequest) (MonthResponse, error)

	// ApplyTemplate applies a Monday..Friday hours template to the
	// submitted month's planned sequence.
	ApplyTemplate(req ApplyTemplateRequest) (MonthResponse, error)

	// SaveMonth writes both override lists back to the payroll API and,
	// only if both writes succeed, triggers payroll event recomputation.
	SaveMonth(ctx context.Context, token string, req SaveMonthRequest) error
}
