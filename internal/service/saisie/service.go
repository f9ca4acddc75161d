package saisie

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/saisie"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

type saisieServiceImpl struct {
	client *paieapi.Client
}

func NewSaisieService(client *paieapi.Client) saisie.SaisieService {
	return &saisieServiceImpl{client: client}
}

// Catalogue implements saisie.SaisieService.
func (s *saisieServiceImpl) Catalogue(ctx context.Context, token string) ([]saisie.PrimeCatalogueItem, error) {
	return s.client.WithToken(token).PrimesCatalogue(ctx)
}

// List implements saisie.SaisieService.
func (s *saisieServiceImpl) List(ctx context.Context, token string, year, month int) ([]saisie.MonthlyInputResponse, error) {
	return s.client.WithToken(token).MonthlyInputs(ctx, year, month)
}

// ListForEmployee implements saisie.SaisieService.
func (s *saisieServiceImpl) ListForEmployee(ctx context.Context, token, employeeID string, year, month int) ([]saisie.MonthlyInputResponse, error) {
	return s.client.WithToken(token).EmployeeMonthlyInputs(ctx, employeeID, year, month)
}

// Create implements saisie.SaisieService.
func (s *saisieServiceImpl) Create(ctx context.Context, token string, req saisie.CreateMonthlyInputsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.client.WithToken(token).CreateMonthlyInputs(ctx, req.Inputs)
}

// Delete implements saisie.SaisieService.
func (s *saisieServiceImpl) Delete(ctx context.Context, token, inputID string) error {
	if !validator.IsValidUUID(inputID) {
		return saisie.ErrMonthlyInputNotFound
	}
	return s.client.WithToken(token).DeleteMonthlyInput(ctx, inputID)
}
