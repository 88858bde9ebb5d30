package constants

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	AppName            = "yargs"
	DefaultGrammarFile = "grammar.yaml"
)

var inTerm = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var stdinUsed = func() bool {
	if fi, err := os.Stdin.Stat(); err != nil {
		return false
	} else if fi.Mode()&os.ModeNamedPipe != 0 {
		return true
	} else {
		return false
	}
}()

func InTerm() bool {
	return inTerm
}

func StdinUsed() bool {
	return stdinUsed
}
