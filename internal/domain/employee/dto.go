package employee

import (
	"strings"

	"github.com/paielab/paie-gateway/internal/pkg/validator"
)

// Contract types accepted by the payroll API.
var ContractTypeValues = []string{"cdi", "cdd", "alternance", "stage"}

// EmployeeResponse mirrors the payroll API's full employee record. The
// free-form sections (address, bank details, salary breakdown...) are
// carried through untouched: the gateway has no reason to interpret
// them.
type EmployeeResponse struct {
	ID               string         `json:"id"`
	FolderName       string         `json:"employee_folder_name"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	NIR              *string        `json:"nir"`
	BirthDate        *string        `json:"date_naissance"`
	BirthPlace       *string        `json:"lieu_naissance"`
	Nationality      *string        `json:"nationalite"`
	Address          map[string]any `json:"adresse"`
	BankDetails      map[string]any `json:"coordonnees_bancaires"`
	HireDate         *string        `json:"hire_date"`
	ContractType     *string        `json:"contract_type"`
	Status           *string        `json:"statut"`
	JobTitle         *string        `json:"job_title"`
	TrialPeriod      map[string]any `json:"periode_essai"`
	PartTime         *bool          `json:"is_temps_partiel"`
	WeeklyHours      *float64       `json:"duree_hebdomadaire"`
	BaseSalary       map[string]any `json:"salaire_de_base"`
	Classification   map[string]any `json:"classification_conventionnelle"`
	VariableElements map[string]any `json:"elements_variables"`
	BenefitsInKind   map[string]any `json:"avantages_en_nature"`
	PayrollSpecifics map[string]any `json:"specificites_paie"`
}

// CreateEmployeeRequest is the contract-creation form. Required fields
// follow the API's creation model; the nested sections are validated
// backend-side.
type CreateEmployeeRequest struct {
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	NIR              string         `json:"nir"`
	BirthDate        string         `json:"date_naissance"`
	BirthPlace       string         `json:"lieu_naissance"`
	Nationality      string         `json:"nationalite"`
	Address          map[string]any `json:"adresse"`
	BankDetails      map[string]any `json:"coordonnees_bancaires"`
	HireDate         string         `json:"hire_date"`
	ContractType     string         `json:"contract_type"`
	Status           string         `json:"statut"`
	JobTitle         string         `json:"job_title"`
	TrialPeriod      map[string]any `json:"periode_essai,omitempty"`
	PartTime         bool           `json:"is_temps_partiel"`
	WeeklyHours      float64        `json:"duree_hebdomadaire"`
	BaseSalary       map[string]any `json:"salaire_de_base"`
	Classification   map[string]any `json:"classification_conventionnelle"`
	VariableElements map[string]any `json:"elements_variables,omitempty"`
	BenefitsInKind   map[string]any `json:"avantages_en_nature,omitempty"`
	PayrollSpecifics map[string]any `json:"specificites_paie"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.BirthDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_naissance", Message: "date_naissance must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(strings.ToLower(r.ContractType), ContractTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type must be one of: " + strings.Join(ContractTypeValues, ", "),
		})
	}
	if r.WeeklyHours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "duree_hebdomadaire", Message: "duree_hebdomadaire must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ContractURLResponse points at the stored contract document, when one
// was generated.
type ContractURLResponse struct {
	URL *string `json:"url"`
}
