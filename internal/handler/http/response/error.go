package response

import (
	"errors"
	"net/http"

	"github.com/paielab/paie-gateway/internal/domain/auth"
	"github.com/paielab/paie-gateway/internal/domain/calendar"
	"github.com/paielab/paie-gateway/internal/domain/employee"
	"github.com/paielab/paie-gateway/internal/domain/payslip"
	"github.com/paielab/paie-gateway/internal/domain/saisie"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrSessionExpired):
		Unauthorized(w, "Session expired")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, err.Error())

	// Calendar domain errors. Save and recompute failures get distinct
	// messages so the caller knows whether the data itself is safe.
	case errors.Is(err, calendar.ErrLoadCalendar):
		BadGateway(w, "Unable to load calendar data")
	case errors.Is(err, calendar.ErrSaveCalendar):
		BadGateway(w, "Calendar data was not saved, please retry")
	case errors.Is(err, calendar.ErrRecompute):
		BadGateway(w, "Calendar saved, but payroll event computation failed and must be retried")
	case errors.Is(err, calendar.ErrDayOutOfRange),
		errors.Is(err, calendar.ErrDuplicateDay),
		errors.Is(err, calendar.ErrInvalidDayType),
		errors.Is(err, calendar.ErrNoDaysSelected),
		errors.Is(err, calendar.ErrNoMonthLoaded):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrContractNotFound):
		NotFound(w, "No contract document for this employee")

	// Saisie domain errors
	case errors.Is(err, saisie.ErrMonthlyInputNotFound):
		NotFound(w, "Monthly input not found")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrGenerationFailed):
		BadGateway(w, "Payslip generation failed")

	// Default
	default:
		var apiErr *paieapi.APIError
		if errors.As(err, &apiErr) {
			BadGateway(w, apiErr.Message)
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
