package argparse

import "sort"

// Result is the outcome of a successful parse.
type Result struct {
	Flags map[string]Value
	Rest  []string
}

func newResult(p *parser) *Result {
	return &Result{
		Flags: p.results,
		Rest:  p.rest,
	}
}

func (r *Result) Has(name string) bool {
	_, ok := r.Flags[name]
	return ok
}

// Bool returns the value of a switch, false when the switch was not given or
// name is an option.
func (r *Result) Bool(name string) bool {
	v, ok := r.Flags[name]
	if !ok {
		return false
	}

	b, _ := v.Bool()
	return b
}

// String returns the value of an option, empty when the option was not given
// or name is a switch.
func (r *Result) String(name string) string {
	v, ok := r.Flags[name]
	if !ok {
		return ""
	}

	s, _ := v.Str()
	return s
}

// Names returns the recorded flag names sorted.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Flags))
	for name := range r.Flags {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
