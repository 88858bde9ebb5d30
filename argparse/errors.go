package argparse

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFlag             = errors.New("unknown flag")
	ErrMissingValue            = errors.New("missing value for option")
	ErrExtraValue              = errors.New("switch does not take a value")
	ErrUnknownOption           = errors.New("unknown option")
	ErrCannotNegateOption      = errors.New("cannot negate an option that takes a value")
	ErrNotNegatable            = errors.New("switch is not negatable")
	ErrMissingRequiredOption   = errors.New("missing required option")
	ErrInvalidLongOptionSyntax = errors.New("invalid long option syntax")
)

// ParseError is returned for every failed parse. Kind is one of the Err*
// sentinels above and Name is the flag name, abbreviation or raw token the
// error refers to.
type ParseError struct {
	Kind error
	Name string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnknownFlag:
		return fmt.Sprintf("%s: -%s", e.Kind, e.Name)
	case ErrInvalidLongOptionSyntax:
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}

	return fmt.Sprintf("%s: --%s", e.Kind, e.Name)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newError(kind error, name string) error {
	return &ParseError{Kind: kind, Name: name}
}
