// Package argparse turns a list of command line tokens into flag values
// according to a declared Grammar.
//
// Recognized forms are -x (an abbreviation), --name, --name=value and
// --no-name for negatable switches. Options take their value from the
// following token unless given inline. The token "--" ends scanning and
// everything after it, along with every token no recognizer claims, is kept
// in Result.Rest in its original order.
//
// A grammar created with NewCommand resolves names it does not declare
// through its ancestors, so subcommands inherit global options:
//
//	root := argparse.NewNamedGrammar("app", "an example")
//	root.AddSwitch("verbose", 'v', "chatty output", false, true)
//	build := root.NewCommand("build", "build things")
//	build.Option("o", "output", &argparse.OptionOptions{Required: true})
//
//	res, err := argparse.ParseFrom(build, []string{"-v", "--output", "bin"})
//
// Grammars are copied at the start of every parse, so one Grammar can be
// parsed against from many goroutines.
package argparse

import "os"

// Parse parses the arguments of the running process, without the program
// name.
func Parse(g *Grammar) (*Result, error) {
	return ParseFrom(g, os.Args[1:])
}

// ParseFrom parses tokens against g. On failure the error is a *ParseError
// and no partial result is returned.
func ParseFrom(g *Grammar, tokens []string) (*Result, error) {
	s, err := seal(g)
	if err != nil {
		return nil, err
	}

	p := newParser(s, tokens)
	if err := p.parse(); err != nil {
		return nil, err
	}

	return newResult(p), nil
}
