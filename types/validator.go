package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	NameRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)
)

var converters = map[string]func(string) (interface{}, error){}

func RegisterConverter[T any](zero T, converter func(string) (T, error)) {
	converters[fmt.Sprintf("%T", zero)] = func(s string) (interface{}, error) {
		return converter(s)
	}
}

func init() {
	// string
	RegisterConverter("", func(s string) (string, error) {
		return s, nil
	})
	// bool
	RegisterConverter(false, func(s string) (bool, error) {
		return strconv.ParseBool(s)
	})
}

func fuzzyEqual(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type Validator[T any] interface {
	Validate(T) error
	Convert(string) (T, error)
}

type ValidatorFunction[T any] func(T) error

// MultiValidator runs validators in order. A validator returning
// ErrValidatorStopValidation accepts the value without running the rest.
func MultiValidator[T any](validators ...Validator[T]) Validator[T] {
	return ValidatorFunction[T](func(item T) error {
		for _, validator := range validators {
			if err := validator.Validate(item); err != nil {
				if errors.Is(err, ErrValidatorStopValidation) {
					return nil
				}

				return err
			}
		}

		return nil
	})
}

func NameValidator(name string, allowEmpty bool) Validator[string] {
	if name == "" {
		name = "name"
	}

	return ValidatorFunction[string](func(s string) error {
		if allowEmpty && s == "" {
			return nil
		}

		if s == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}

		if NameRegex.MatchString(s) {
			return nil
		}

		return fmt.Errorf("%s %q %w", name, s, ErrInvalidName)
	})
}

func NotNegatedValidator(name string) Validator[string] {
	return ValidatorFunction[string](func(s string) error {
		if strings.HasPrefix(s, "no-") {
			return fmt.Errorf("%s %q %w", name, s, ErrNegatedName)
		}

		return nil
	})
}

func AbbrValidator(name string) Validator[string] {
	return ValidatorFunction[string](func(s string) error {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || !unicode.IsLetter(r) {
			return fmt.Errorf("%s %q %w", name, s, ErrInvalidAbbr)
		}

		return nil
	})
}

// OneOfValidator accepts values equal to one of values, ignoring case and
// surrounding space.
func OneOfValidator(name string, values []string) Validator[string] {
	return ValidatorFunction[string](func(s string) error {
		for _, v := range values {
			if fuzzyEqual(v) == fuzzyEqual(s) {
				return nil
			}
		}

		return fmt.Errorf("%s %q %w [%s]", name, s, ErrValueNotAllowed, strings.Join(values, ", "))
	})
}

func EmptyValidator[T comparable](name string, empty bool) Validator[T] {
	if name == "" {
		name = "value"
	}

	return ValidatorFunction[T](func(s T) error {
		var a T

		if empty {
			if s != a {
				return fmt.Errorf("%s must be empty", name)
			}
		} else {
			if s == a {
				return fmt.Errorf("%s cannot be empty", name)
			}
		}

		return nil
	})
}

func OptionalEmptyValidator[T comparable]() Validator[T] {
	return ValidatorFunction[T](func(s T) error {
		var a T

		if s == a {
			return ErrValidatorStopValidation
		}

		return nil
	})
}

func (v ValidatorFunction[T]) Validate(val T) error {
	return v(val)
}

func (v ValidatorFunction[T]) Convert(val string) (T, error) {
	var zero T

	converter, ok := converters[fmt.Sprintf("%T", zero)]
	if !ok {
		return zero, fmt.Errorf("no converter for %T", zero)
	}

	ret, err := converter(val)
	if err != nil {
		return zero, err
	}

	return ret.(T), nil
}
