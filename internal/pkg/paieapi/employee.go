package paieapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/paielab/paie-gateway/internal/domain/employee"
)

// Employees returns every employee record.
func (s *Session) Employees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var resp []employee.EmployeeResponse
	if err := s.get(ctx, "/api/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Employee returns one record by id.
func (s *Session) Employee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	var resp employee.EmployeeResponse
	path := fmt.Sprintf("/api/employees/%s", employeeID)
	if err := s.get(ctx, path, nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}
	return resp, nil
}

// CreateEmployee registers an employee and their contract.
func (s *Session) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	var resp employee.EmployeeResponse
	if err := s.postJSON(ctx, "/api/employees", req, &resp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return resp, nil
}

// ContractURL returns the link to the generated contract document.
func (s *Session) ContractURL(ctx context.Context, employeeID string) (employee.ContractURLResponse, error) {
	var resp employee.ContractURLResponse
	path := fmt.Sprintf("/api/employees/%s/contract", employeeID)
	if err := s.get(ctx, path, nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return employee.ContractURLResponse{}, employee.ErrContractNotFound
		}
		return employee.ContractURLResponse{}, err
	}
	return resp, nil
}
