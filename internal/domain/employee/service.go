package employee

import "context"

// EmployeeService is thin orchestration over the payroll API's employee
// endpoints: records and contracts are persisted backend-side.
type EmployeeService interface {
	// List returns every employee record.
	List(ctx context.Context, token string) ([]EmployeeResponse, error)

	// Get returns one employee by id.
	Get(ctx context.Context, token, employeeID string) (EmployeeResponse, error)

	// Create registers an employee and their contract.
	Create(ctx context.Context, token string, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ContractURL returns the link to the generated contract document.
	ContractURL(ctx context.Context, token, employeeID string) (ContractURLResponse, error)
}
