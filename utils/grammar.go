package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/seventv/yargs/argparse"
	"github.com/seventv/yargs/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrGrammarExists = errors.New("grammar file already exists")

// ReadGrammar loads and validates a grammar file, "-" reads stdin.
func ReadGrammar(path string) (*types.GrammarFile, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeGrammar(data)
}

func DecodeGrammar(data []byte) (*types.GrammarFile, error) {
	g := &types.GrammarFile{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(g); err != nil {
		return nil, fmt.Errorf("invalid grammar file: %w", err)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func EncodeGrammar(g *types.GrammarFile) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	if err := enc.Encode(g); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteGrammar writes g to path unless a file is already there.
func WriteGrammar(path string, g *types.GrammarFile) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrGrammarExists)
	}

	data, err := EncodeGrammar(g)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// BuildGrammar registers every switch, option and command of a validated
// grammar file.
func BuildGrammar(g *types.GrammarFile) *argparse.Grammar {
	root := argparse.NewNamedGrammar(g.Name, g.Help)
	fill(root, g)
	return root
}

func fill(dst *argparse.Grammar, src *types.GrammarFile) {
	dst.AllowUnrecognized(src.AllowUnrecognized)

	for _, s := range src.Switches {
		dst.Switch(s.Abbr, s.Name, &argparse.SwitchOptions{
			Help:      s.Help,
			Default:   s.Default,
			Negatable: s.Negatable,
		})
	}

	for _, o := range src.Options {
		opts := &argparse.OptionOptions{
			Required:  o.Required,
			Help:      o.Help,
			ValueHelp: o.ValueHelp,
			Values:    o.Values,
		}
		if o.Default != nil {
			opts.Default = *o.Default
			opts.HasDefault = true
		}

		dst.Option(o.Abbr, o.Name, opts)
	}

	for _, cmd := range src.Commands {
		zap.S().Debugf("registering command %s under %q", cmd.Name, dst.Path())
		fill(dst.NewCommand(cmd.Name, cmd.Help), cmd)
	}
}

// SampleGrammar is written by the init command.
func SampleGrammar(name string) *types.GrammarFile {
	info := "info"

	return &types.GrammarFile{
		Name: name,
		Help: "An example grammar",
		Switches: []types.SwitchSpec{
			{Name: "verbose", Abbr: "v", Help: "Enable verbose output"},
			{Name: "color", Help: "Colorize output", Default: true, Negatable: true},
		},
		Options: []types.OptionSpec{
			{Name: "log-level", Abbr: "l", Help: "Log level", ValueHelp: "LEVEL", Values: []string{"debug", "info", "warn"}, Default: &info},
		},
		Commands: []*types.GrammarFile{
			{
				Name: "build",
				Help: "Build the project",
				Switches: []types.SwitchSpec{
					{Name: "release", Abbr: "r", Help: "Optimized build"},
				},
				Options: []types.OptionSpec{
					{Name: "output", Abbr: "o", Help: "Output path", ValueHelp: "PATH", Required: true},
				},
			},
		},
	}
}
