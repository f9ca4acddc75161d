package paieapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/paielab/paie-gateway/internal/domain/payslip"
)

type generatePayslipWire struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

// GeneratePayslip asks the backend to render the payslip PDF for an
// employee-month.
func (s *Session) GeneratePayslip(ctx context.Context, employeeID string, year, month int) error {
	return s.postJSON(ctx, "/api/actions/generate-payslip", generatePayslipWire{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}, nil)
}

// EmployeePayslips lists the documents generated for an employee.
func (s *Session) EmployeePayslips(ctx context.Context, employeeID string) ([]payslip.PayslipInfo, error) {
	var resp []payslip.PayslipInfo
	path := fmt.Sprintf("/api/employees/%s/payslips", employeeID)
	if err := s.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeletePayslip removes a generated document.
func (s *Session) DeletePayslip(ctx context.Context, payslipID string) error {
	if err := s.del(ctx, fmt.Sprintf("/api/payslips/%s", payslipID)); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return payslip.ErrPayslipNotFound
		}
		return err
	}
	return nil
}
