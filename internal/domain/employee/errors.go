package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidEmployeeID = errors.New("employee id is not a valid uuid")
	ErrContractNotFound = errors.New("no contract document for this employee")
)
