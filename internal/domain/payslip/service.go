package payslip

import "context"

// PayslipService triggers and lists backend-generated payslip documents.
type PayslipService interface {
	// Generate asks the backend to produce the payslip for an
	// employee-month.
	Generate(ctx context.Context, token string, req GeneratePayslipRequest) error

	// ListForEmployee returns the documents generated for an employee.
	ListForEmployee(ctx context.Context, token, employeeID string) ([]PayslipInfo, error)

	// Delete removes a generated document.
	Delete(ctx context.Context, token, payslipID string) error
}
