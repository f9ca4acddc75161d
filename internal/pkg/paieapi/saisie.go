package paieapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paielab/paie-gateway/internal/domain/saisie"
)

// monthlyInputWire is the backend's shape: amounts travel as JSON
// numbers, so the decimal is converted at this boundary only.
type monthlyInputWire struct {
	ID              string  `json:"id,omitempty"`
	EmployeeID      string  `json:"employee_id"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Amount          float64 `json:"amount"`
	IsSociallyTaxed bool    `json:"is_socially_taxed"`
	IsTaxable       bool    `json:"is_taxable"`
	CreatedAt       string  `json:"created_at,omitempty"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

// PrimesCatalogue returns the reusable bonus definitions.
func (s *Session) PrimesCatalogue(ctx context.Context) ([]saisie.PrimeCatalogueItem, error) {
	var resp []saisie.PrimeCatalogueItem
	if err := s.get(ctx, "/api/primes-catalogue", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MonthlyInputs returns every stored entry for the month, company-wide.
func (s *Session) MonthlyInputs(ctx context.Context, year, month int) ([]saisie.MonthlyInputResponse, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var wire []saisie.MonthlyInputResponse
	if err := s.get(ctx, "/api/monthly-inputs", q, &wire); err != nil {
		return nil, err
	}
	return wire, nil
}

// EmployeeMonthlyInputs returns one employee's entries for the month.
func (s *Session) EmployeeMonthlyInputs(ctx context.Context, employeeID string, year, month int) ([]saisie.MonthlyInputResponse, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var wire []saisie.MonthlyInputResponse
	path := fmt.Sprintf("/api/employees/%s/monthly-inputs", employeeID)
	if err := s.get(ctx, path, q, &wire); err != nil {
		return nil, err
	}
	return wire, nil
}

// CreateMonthlyInputs stores a batch of entries in one call.
func (s *Session) CreateMonthlyInputs(ctx context.Context, inputs []saisie.CreateMonthlyInputRequest) error {
	wire := make([]monthlyInputWire, len(inputs))
	for i, input := range inputs {
		amount, _ := input.Amount.Float64()
		wire[i] = monthlyInputWire{
			EmployeeID:      input.EmployeeID,
			Year:            input.Year,
			Month:           input.Month,
			Name:            input.Name,
			Description:     input.Description,
			Amount:          amount,
			IsSociallyTaxed: input.IsSociallyTaxed,
			IsTaxable:       input.IsTaxable,
		}
	}
	return s.postJSON(ctx, "/api/monthly-inputs", wire, nil)
}

// DeleteMonthlyInput removes one entry.
func (s *Session) DeleteMonthlyInput(ctx context.Context, inputID string) error {
	if err := s.del(ctx, fmt.Sprintf("/api/monthly-inputs/%s", inputID)); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return saisie.ErrMonthlyInputNotFound
		}
		return err
	}
	return nil
}
