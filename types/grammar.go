package types

import (
	"fmt"
	"strings"
)

// GrammarFile is the on-disk description of a grammar. Commands have the
// same shape as the root and inherit its flags when parsing.
type GrammarFile struct {
	Name              string         `yaml:"name"`
	Help              string         `yaml:"help,omitempty"`
	AllowUnrecognized bool           `yaml:"allow_unrecognized,omitempty"`
	Switches          []SwitchSpec   `yaml:"switches,omitempty"`
	Options           []OptionSpec   `yaml:"options,omitempty"`
	Commands          []*GrammarFile `yaml:"commands,omitempty"`
}

type SwitchSpec struct {
	Name      string `yaml:"name"`
	Abbr      string `yaml:"abbr,omitempty"`
	Help      string `yaml:"help,omitempty"`
	Default   bool   `yaml:"default,omitempty"`
	Negatable bool   `yaml:"negatable,omitempty"`
}

type OptionSpec struct {
	Name      string   `yaml:"name"`
	Abbr      string   `yaml:"abbr,omitempty"`
	Help      string   `yaml:"help,omitempty"`
	ValueHelp string   `yaml:"value_help,omitempty"`
	Values    []string `yaml:"values,omitempty"`
	Default   *string  `yaml:"default,omitempty"`
	Required  bool     `yaml:"required,omitempty"`
}

// Validate checks names, abbreviations and defaults of g and all of its
// commands. The returned error names the offending entry.
func (g *GrammarFile) Validate() error {
	if g.Name == "" {
		return g.validate("grammar")
	}

	return g.validate(g.Name)
}

func (g *GrammarFile) validate(path string) error {
	names := map[string]bool{}
	abbrs := map[string]string{}

	nameValidator := MultiValidator(NameValidator("flag name", false), NotNegatedValidator("flag name"))
	abbrValidator := MultiValidator(OptionalEmptyValidator[string](), AbbrValidator("abbreviation"))

	check := func(name string, abbr string) error {
		if err := nameValidator.Validate(name); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if names[name] {
			return fmt.Errorf("%s: flag %s %w", path, name, ErrDuplicateName)
		}
		names[name] = true

		if err := abbrValidator.Validate(abbr); err != nil {
			return fmt.Errorf("%s: flag %s: %w", path, name, err)
		}

		if abbr != "" {
			if other, ok := abbrs[abbr]; ok {
				return fmt.Errorf("%s: flags %s and %s: %w", path, other, name, ErrDuplicateAbbr)
			}
			abbrs[abbr] = name
		}

		return nil
	}

	for _, s := range g.Switches {
		if err := check(s.Name, s.Abbr); err != nil {
			return err
		}
	}

	for _, o := range g.Options {
		if err := check(o.Name, o.Abbr); err != nil {
			return err
		}

		if o.Default != nil && len(o.Values) > 0 {
			if err := OneOfValidator("default of "+o.Name, o.Values).Validate(*o.Default); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	commands := map[string]bool{}
	for i, cmd := range g.Commands {
		if cmd == nil {
			return fmt.Errorf("%s: command %d is empty: %w", path, i, ErrInvalidName)
		}

		if err := NameValidator("command name", false).Validate(cmd.Name); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if commands[cmd.Name] {
			return fmt.Errorf("%s: command %s %w", path, cmd.Name, ErrDuplicateName)
		}
		commands[cmd.Name] = true

		if err := cmd.validate(strings.TrimSpace(path + " " + cmd.Name)); err != nil {
			return err
		}
	}

	return nil
}

// Command walks the command path below g.
func (g *GrammarFile) Command(path ...string) (*GrammarFile, bool) {
	cur := g
	for _, name := range path {
		var next *GrammarFile
		for _, cmd := range cur.Commands {
			if cmd.Name == name {
				next = cmd
				break
			}
		}

		if next == nil {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

func (g *GrammarFile) OptionByName(name string) (OptionSpec, bool) {
	for _, o := range g.Options {
		if o.Name == name {
			return o, true
		}
	}

	return OptionSpec{}, false
}
