package payslip

import "errors"

// Payslip domain errors
var (
	ErrPayslipNotFound  = errors.New("payslip not found")
	ErrGenerationFailed = errors.New("payslip generation failed")
)
