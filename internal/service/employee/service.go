package employee

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/employee"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

type employeeServiceImpl struct {
	client *paieapi.Client
}

func NewEmployeeService(client *paieapi.Client) employee.EmployeeService {
	return &employeeServiceImpl{client: client}
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, token string) ([]employee.EmployeeResponse, error) {
	return s.client.WithToken(token).Employees(ctx)
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, token, employeeID string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}
	return s.client.WithToken(token).Employee(ctx, employeeID)
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.client.WithToken(token).CreateEmployee(ctx, req)
}

// ContractURL implements employee.EmployeeService.
func (s *employeeServiceImpl) ContractURL(ctx context.Context, token, employeeID string) (employee.ContractURLResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return employee.ContractURLResponse{}, employee.ErrInvalidEmployeeID
	}
	return s.client.WithToken(token).ContractURL(ctx, employeeID)
}
