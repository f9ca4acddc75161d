package payslip

import (
	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

// GeneratePayslipRequest triggers backend-side payslip generation for
// one employee-month. Generation reads the saved calendar and saisies,
// so callers save those first.
type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid uuid"})
	}
	if r.Year < 1900 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 1900 or later"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayslipInfo is one generated document.
type PayslipInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
	URL   string `json:"url"`
}
