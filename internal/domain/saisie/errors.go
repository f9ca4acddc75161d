package saisie

import "errors"

// Saisie domain errors
var (
	ErrMonthlyInputNotFound = errors.New("monthly input not found")
)
