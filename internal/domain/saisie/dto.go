// Package saisie covers the monthly variable-pay entries ("saisies"):
// bonuses, expense reimbursements and advances keyed on employee-month.
package saisie

import (
	"github.com/paielab/paie-gateway/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MonthlyInputResponse is one stored entry.
type MonthlyInputResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	IsSociallyTaxed bool            `json:"is_socially_taxed"`
	IsTaxable       bool            `json:"is_taxable"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// CreateMonthlyInputRequest is one entry of a bulk create. Amounts are
// decimals end to end; they only become floats at the API boundary.
type CreateMonthlyInputRequest struct {
	EmployeeID      string          `json:"employee_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	IsSociallyTaxed bool            `json:"is_socially_taxed"`
	IsTaxable       bool            `json:"is_taxable"`
}

func (r *CreateMonthlyInputRequest) Validate() error {
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
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be non-zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateMonthlyInputsRequest is the bulk create payload, one shared
// month applied by the saisie editor to several employees at once.
type CreateMonthlyInputsRequest struct {
	Inputs []CreateMonthlyInputRequest `json:"inputs"`
}

func (r *CreateMonthlyInputsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Inputs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "inputs", Message: "at least one input is required"})
	}
	for _, input := range r.Inputs {
		if err := input.Validate(); err != nil {
			errs = append(errs, err.(validator.ValidationErrors)...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PrimeCatalogueItem is one reusable bonus definition from the shared
// catalogue.
type PrimeCatalogueItem struct {
	ID                     string `json:"id"`
	Label                  string `json:"libelle"`
	SubjectToContributions bool   `json:"soumise_a_cotisations"`
	SubjectToTax           bool   `json:"soumise_a_impot"`
}
