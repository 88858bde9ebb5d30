package types

import "errors"

var (
	ErrInvalidName             = errors.New("must be lowercase alphanumeric characters or '-', and must start and end with an alphanumeric character")
	ErrNegatedName             = errors.New("must not start with 'no-', that prefix is reserved for negation")
	ErrInvalidAbbr             = errors.New("must be a single letter")
	ErrDuplicateName           = errors.New("is declared more than once")
	ErrDuplicateAbbr           = errors.New("abbreviation is used more than once")
	ErrValueNotAllowed         = errors.New("is not one of the allowed values")
	ErrValidatorStopValidation = errors.New("stop validation")
)
