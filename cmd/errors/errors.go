package errors

import "errors"

var (
	ErrSubcommandRequired = errors.New("you must provide a subcommand")
	ErrUnexpectedArgs     = errors.New("unexpected arguments")
	ErrUnknownCommand     = func(path string) error {
		return errors.New("unknown command in grammar: " + path)
	}
	ErrInvalidOutput = func(output string) error {
		return errors.New("invalid output format: " + output + ", use text or yaml")
	}
)
