package argparse

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Grammar is the set of switches and options a parser recognizes. A Grammar
// created with NewCommand falls back to its parent for names it does not
// declare itself.
type Grammar struct {
	name string
	help string

	flags map[string]*Flag
	order []*Flag

	allowUnrecognized bool

	commands map[string]*Grammar
	parent   *Grammar
}

func NewGrammar() *Grammar {
	return newGrammar("", "", nil)
}

// NewNamedGrammar returns a root grammar with a program name and help text,
// both only used when rendering usage.
func NewNamedGrammar(name string, help string) *Grammar {
	return newGrammar(name, help, nil)
}

func newGrammar(name string, help string, parent *Grammar) *Grammar {
	return &Grammar{
		name:     name,
		help:     help,
		flags:    map[string]*Flag{},
		commands: map[string]*Grammar{},
		parent:   parent,
	}
}

// NewCommand registers a child grammar. Parsing against the child resolves
// names it does not declare through g and g's own ancestors.
func (g *Grammar) NewCommand(name string, help string) *Grammar {
	if _, ok := g.commands[name]; ok {
		panic(fmt.Sprintf("command %s already exists", name))
	}

	cmd := newGrammar(name, help, g)
	g.commands[name] = cmd

	return cmd
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) Help() string {
	return g.help
}

func (g *Grammar) Parent() *Grammar {
	return g.parent
}

// Command returns the direct child grammar registered under name.
func (g *Grammar) Command(name string) (*Grammar, bool) {
	cmd, ok := g.commands[name]
	return cmd, ok
}

// Commands returns the child grammars sorted by name.
func (g *Grammar) Commands() []*Grammar {
	cmds := make([]*Grammar, 0, len(g.commands))
	for _, cmd := range g.commands {
		cmds = append(cmds, cmd)
	}

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})

	return cmds
}

// Path is the space separated list of command names from the root to g.
func (g *Grammar) Path() string {
	if g.parent == nil {
		return g.name
	}

	if p := g.parent.Path(); p != "" {
		return p + " " + g.name
	}

	return g.name
}

func (g *Grammar) AllowUnrecognized(allow bool) *Grammar {
	g.allowUnrecognized = allow
	return g
}

func (g *Grammar) AllowsUnrecognized() bool {
	return g.allowUnrecognized
}

// Flags returns the declared flags in registration order.
func (g *Grammar) Flags() []*Flag {
	flags := make([]*Flag, len(g.order))
	copy(flags, g.order)
	return flags
}

func (g *Grammar) FindByName(name string) (*Flag, bool) {
	f, ok := g.flags[name]
	return f, ok
}

// FindByAbbr returns the first flag, in registration order, declared with
// the abbreviation.
func (g *Grammar) FindByAbbr(abbr rune) (*Flag, bool) {
	for _, f := range g.order {
		if f.Abbr != 0 && f.Abbr == abbr {
			return f, true
		}
	}

	return nil, false
}

// AddSwitch registers a switch. A switch that defaultsToPresent is recorded
// as true when it does not appear in the arguments.
func (g *Grammar) AddSwitch(name string, abbr rune, help string, defaultsToPresent bool, negatable bool) *Grammar {
	g.addFlag(&Flag{
		Name:              name,
		Abbr:              abbr,
		Help:              help,
		Kind:              KindSwitch,
		Negatable:         negatable,
		DefaultsToPresent: defaultsToPresent,
	})

	return g
}

// AddOption registers an option taking exactly one value. defaultsTo may be
// nil. possibleValues are advisory and are not checked while parsing.
func (g *Grammar) AddOption(name string, abbr rune, help string, valueHelp string, possibleValues []string, defaultsTo *string, required bool) *Grammar {
	g.addFlag(&Flag{
		Name:           name,
		Abbr:           abbr,
		Help:           help,
		ValueHelp:      valueHelp,
		PossibleValues: possibleValues,
		Kind:           KindOption,
		Required:       required,
		Default:        defaultsTo,
	})

	return g
}

// Switch is AddSwitch taking a shorthand string, which may be empty, and an
// options struct.
func (g *Grammar) Switch(shorthand string, name string, options *SwitchOptions) *Grammar {
	if options == nil {
		options = &SwitchOptions{}
	}

	return g.AddSwitch(name, shorthandRune(shorthand), options.Help, options.Default, options.Negatable)
}

func (g *Grammar) Option(shorthand string, name string, options *OptionOptions) *Grammar {
	if options == nil {
		options = &OptionOptions{}
	}

	return g.AddOption(name, shorthandRune(shorthand), options.Help, options.ValueHelp, options.Values, options.defaultPtr(), options.Required)
}

func shorthandRune(shorthand string) rune {
	if shorthand == "" {
		return 0
	}

	if utf8.RuneCountInString(shorthand) > 1 {
		panic("shorthand must be a single character")
	}

	r, _ := utf8.DecodeRuneInString(shorthand)
	return r
}

func (g *Grammar) addFlag(f *Flag) {
	if f.Name == "" {
		panic("flag must have a name")
	}

	if _, ok := g.flags[f.Name]; ok {
		panic(fmt.Sprintf("flag %s already exists", f.Name))
	}

	g.flags[f.Name] = f
	g.order = append(g.order, f)
}
