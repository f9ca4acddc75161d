package saisie

import (
	"encoding/json"
	"testing"

	"github.com/paielab/paie-gateway/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CreateMonthlyInputRequest {
	return CreateMonthlyInputRequest{
		EmployeeID: "3f1c8f2e-9d44-4c1a-9a51-2f6a9c0de111",
		Year:       2024,
		Month:      6,
		Name:       "Prime exceptionnelle",
		Amount:     decimal.NewFromFloat(250.50),
	}
}

func TestCreateMonthlyInputRequest_Validate(t *testing.T) {
	t.Parallel()

	req := validInput()
	require.NoError(t, req.Validate())

	// Negative amounts are legitimate: advances and corrections.
	req.Amount = decimal.NewFromInt(-100)
	require.NoError(t, req.Validate())

	bad := CreateMonthlyInputRequest{EmployeeID: "nope", Year: 1500, Month: 0}
	err := bad.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "year")
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "amount")
}

func TestCreateMonthlyInputsRequest_Validate(t *testing.T) {
	t.Parallel()

	empty := CreateMonthlyInputsRequest{}
	err := empty.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "inputs")

	batch := CreateMonthlyInputsRequest{Inputs: []CreateMonthlyInputRequest{validInput(), validInput()}}
	assert.NoError(t, batch.Validate())
}

func TestCreateMonthlyInputRequest_DecimalJSON(t *testing.T) {
	t.Parallel()

	var req CreateMonthlyInputRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 1234.56}`), &req))

	// The amount survives as an exact decimal, not a float.
	assert.True(t, req.Amount.Equal(decimal.RequireFromString("1234.56")))
}
