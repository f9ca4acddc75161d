package saisie

import "context"

// SaisieService manages monthly variable-pay entries through the payroll
// API.
type SaisieService interface {
	// Catalogue returns the reusable bonus definitions.
	Catalogue(ctx context.Context, token string) ([]PrimeCatalogueItem, error)

	// List returns every entry for a month, company-wide.
	List(ctx context.Context, token string, year, month int) ([]MonthlyInputResponse, error)

	// ListForEmployee returns one employee's entries for a month.
	ListForEmployee(ctx context.Context, token, employeeID string, year, month int) ([]MonthlyInputResponse, error)

	// Create stores a batch of entries.
	Create(ctx context.Context, token string, req CreateMonthlyInputsRequest) error

	// Delete removes one entry.
	Delete(ctx context.Context, token, inputID string) error
}
