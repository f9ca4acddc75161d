package employee

import (
	"testing"

	"github.com/paielab/paie-gateway/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FirstName:    "Marie",
		LastName:     "Durand",
		BirthDate:    "1990-04-12",
		HireDate:     "2024-01-15",
		ContractType: "cdi",
		WeeklyHours:  35,
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	require.NoError(t, req.Validate())

	// Contract type is case-insensitive.
	req.ContractType = "CDI"
	require.NoError(t, req.Validate())
}

func TestCreateEmployeeRequest_Validate_Errors(t *testing.T) {
	t.Parallel()

	bad := CreateEmployeeRequest{
		BirthDate:    "12/04/1990",
		HireDate:     "someday",
		ContractType: "freelance",
	}
	err := bad.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "date_naissance")
	assert.Contains(t, fields, "hire_date")
	assert.Contains(t, fields, "contract_type")
	assert.Contains(t, fields, "duree_hebdomadaire")
}
