package argparse

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	// KindSwitch takes no value, it is present, absent or negated.
	KindSwitch Kind = iota
	// KindOption requires exactly one value.
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindSwitch:
		return "switch"
	case KindOption:
		return "option"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Flag describes one recognized switch or option. A Flag is never modified
// once it has been registered with a Grammar.
type Flag struct {
	Name           string
	Abbr           rune
	Help           string
	ValueHelp      string
	PossibleValues []string

	Kind      Kind
	Negatable bool
	Required  bool

	// DefaultsToPresent is only meaningful for switches.
	DefaultsToPresent bool
	// Default is only meaningful for options, nil means no default.
	Default *string
}

func (f *Flag) IsSwitch() bool {
	return f.Kind == KindSwitch
}

func (f *Flag) IsOption() bool {
	return f.Kind == KindOption
}

func (f *Flag) hasDefault() bool {
	if f.IsSwitch() {
		return f.DefaultsToPresent
	}

	return f.Default != nil
}

func (f *Flag) defaultValue() Value {
	if f.IsSwitch() {
		return BoolValue(true)
	}

	return StringValue(*f.Default)
}

func (f *Flag) String() string {
	if f.Name != "" {
		return fmt.Sprintf("--%s", f.Name)
	}

	return fmt.Sprintf("-%c", f.Abbr)
}

type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueString
)

// Value is the recorded value of a flag. Switches always produce a
// ValueBool, options a ValueString; check Kind before extracting.
type Value struct {
	kind ValueKind
	b    bool
	s    string
}

func BoolValue(b bool) Value {
	return Value{kind: ValueBool, b: b}
}

func StringValue(s string) Value {
	return Value{kind: ValueString, s: s}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

// Bool returns the boolean and whether the value is a ValueBool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == ValueBool
}

// Str returns the string and whether the value is a ValueString.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == ValueString
}

func (v Value) String() string {
	if v.kind == ValueBool {
		return strconv.FormatBool(v.b)
	}

	return v.s
}

// Equal reports whether both values have the same kind and content. go-cmp
// compares Values through it.
func (v Value) Equal(o Value) bool {
	return v == o
}
