package payslip

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/employee"
	"github.com/paielab/paie-gateway/internal/domain/payslip"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

type payslipServiceImpl struct {
	client *paieapi.Client
}

func NewPayslipService(client *paieapi.Client) payslip.PayslipService {
	return &payslipServiceImpl{client: client}
}

// Generate implements payslip.PayslipService.
func (s *payslipServiceImpl) Generate(ctx context.Context, token string, req payslip.GeneratePayslipRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.client.WithToken(token).GeneratePayslip(ctx, req.EmployeeID, req.Year, req.Month)
}

// ListForEmployee implements payslip.PayslipService.
func (s *payslipServiceImpl) ListForEmployee(ctx context.Context, token, employeeID string) ([]payslip.PayslipInfo, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, employee.ErrInvalidEmployeeID
	}
	return s.client.WithToken(token).EmployeePayslips(ctx, employeeID)
}

// Delete implements payslip.PayslipService.
func (s *payslipServiceImpl) Delete(ctx context.Context, token, payslipID string) error {
	return s.client.WithToken(token).DeletePayslip(ctx, payslipID)
}
