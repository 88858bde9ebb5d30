package argparse

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jinzhu/copier"
)

const (
	terminator   = "--"
	longPrefix   = "--"
	negatePrefix = "no-"
)

// scope is a sealed copy of one grammar level. Ancestors are only ever
// consulted for lookups, never written to.
type scope struct {
	name              string
	flags             []Flag
	byName            map[string]int
	allowUnrecognized bool
	parent            *scope
}

func seal(g *Grammar) (*scope, error) {
	s := &scope{
		name:              g.name,
		flags:             make([]Flag, len(g.order)),
		byName:            make(map[string]int, len(g.order)),
		allowUnrecognized: g.allowUnrecognized,
	}

	for i, f := range g.order {
		if err := copier.CopyWithOption(&s.flags[i], f, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}

		s.byName[f.Name] = i
	}

	if g.parent != nil {
		parent, err := seal(g.parent)
		if err != nil {
			return nil, err
		}

		s.parent = parent
	}

	return s, nil
}

func (s *scope) find(name string) (*Flag, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return nil, false
	}

	return &s.flags[idx], true
}

func (s *scope) findAbbr(abbr rune) (*Flag, bool) {
	for i := range s.flags {
		if s.flags[i].Abbr != 0 && s.flags[i].Abbr == abbr {
			return &s.flags[i], true
		}
	}

	if s.parent != nil {
		return s.parent.findAbbr(abbr)
	}

	return nil, false
}

type parser struct {
	name      string
	scope     *scope
	remaining []string
	results   map[string]Value
	rest      []string
}

func newParser(s *scope, tokens []string) *parser {
	remaining := make([]string, len(tokens))
	copy(remaining, tokens)

	return &parser{
		name:      s.name,
		scope:     s,
		remaining: remaining,
		results:   map[string]Value{},
		rest:      []string{},
	}
}

func (p *parser) current() string {
	return p.remaining[0]
}

func (p *parser) pop() string {
	tok := p.remaining[0]
	p.remaining = p.remaining[1:]
	return tok
}

func (p *parser) parse() error {
	for len(p.remaining) > 0 {
		tok := p.current()
		if tok == terminator {
			p.pop()
			break
		}

		handled, err := p.handleSoloOption()
		if !handled && err == nil {
			handled, err = p.handleLongOption()
		}

		if err != nil {
			if !p.passThrough(err) {
				return err
			}

			// already popped by the recognizer that failed to resolve it
			p.rest = append(p.rest, tok)
			continue
		}

		if !handled {
			p.rest = append(p.rest, p.pop())
		}
	}

	if err := p.finalize(); err != nil {
		return err
	}

	p.rest = append(p.rest, p.remaining...)
	p.remaining = nil

	return nil
}

// passThrough reports whether an unresolved name should be kept in rest
// instead of failing the parse.
func (p *parser) passThrough(err error) bool {
	if !p.scope.allowUnrecognized {
		return false
	}

	return errors.Is(err, ErrUnknownFlag) || errors.Is(err, ErrUnknownOption)
}

func (p *parser) finalize() error {
	for i := range p.scope.flags {
		f := &p.scope.flags[i]
		if _, ok := p.results[f.Name]; !ok && f.hasDefault() {
			p.results[f.Name] = f.defaultValue()
		}
	}

	for i := range p.scope.flags {
		f := &p.scope.flags[i]
		if _, ok := p.results[f.Name]; !ok && f.Required {
			return newError(ErrMissingRequiredOption, f.Name)
		}
	}

	return nil
}

// handleSoloOption claims tokens of the exact form -x.
func (p *parser) handleSoloOption() (bool, error) {
	tok := []rune(p.current())
	if len(tok) != 2 || tok[0] != '-' || !unicode.IsLetter(tok[1]) {
		return false, nil
	}

	p.pop()

	f, ok := p.scope.findAbbr(tok[1])
	if !ok {
		return true, newError(ErrUnknownFlag, string(tok[1]))
	}

	if f.IsSwitch() {
		p.results[f.Name] = BoolValue(true)
		return true, nil
	}

	if len(p.remaining) == 0 {
		return true, newError(ErrMissingValue, f.Name)
	}

	p.results[f.Name] = StringValue(p.pop())

	return true, nil
}

// handleLongOption claims tokens of the forms --name, --name=value and
// --no-name.
func (p *parser) handleLongOption() (bool, error) {
	tok := p.current()
	if !strings.HasPrefix(tok, longPrefix) {
		return false, nil
	}

	body := tok[len(longPrefix):]
	if strings.Count(body, "=") > 1 {
		p.pop()
		return true, newError(ErrInvalidLongOptionSyntax, tok)
	}

	name, value, hasValue := strings.Cut(body, "=")
	if hasValue && (value == "\n" || value == "\r") {
		return false, nil
	}

	p.pop()

	return true, p.resolveLong(p.scope, name, value, hasValue)
}

func (p *parser) resolveLong(s *scope, name string, value string, hasValue bool) error {
	if f, ok := s.find(name); ok {
		return p.recordLong(f, value, hasValue)
	}

	if strings.HasPrefix(name, negatePrefix) {
		base := strings.TrimPrefix(name, negatePrefix)

		f, ok := s.find(base)
		if !ok {
			if s.parent != nil {
				return p.resolveLong(s.parent, name, value, hasValue)
			}

			return newError(ErrUnknownOption, name)
		}

		if !f.IsSwitch() {
			return newError(ErrCannotNegateOption, base)
		}

		if !f.Negatable {
			return newError(ErrNotNegatable, base)
		}

		p.results[f.Name] = BoolValue(false)

		return nil
	}

	if s.parent != nil {
		return p.resolveLong(s.parent, name, value, hasValue)
	}

	return newError(ErrUnknownOption, name)
}

func (p *parser) recordLong(f *Flag, value string, hasValue bool) error {
	if f.IsSwitch() {
		if hasValue {
			return newError(ErrExtraValue, f.Name)
		}

		p.results[f.Name] = BoolValue(true)

		return nil
	}

	if !hasValue {
		if len(p.remaining) == 0 {
			return newError(ErrMissingValue, f.Name)
		}

		value = p.pop()
	}

	p.results[f.Name] = StringValue(value)

	return nil
}
