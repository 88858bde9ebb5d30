package argparse

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	root := testGrammar()
	build := root.NewCommand("build", "build the project")
	build.Option("o", "output", &OptionOptions{Help: "output path", Required: true})
	root.NewCommand("clean", "remove artifacts")

	rootUsage := Usage(root, "")
	for _, want := range []string{
		"Usage: \n   app [flags] [command]\n",
		"Available Commands:\n  build  build the project\n  clean  remove artifacts\n",
		"   -f, --flag",
		"   -c, --[no-]color",
		"colored output (default on)",
		"--level <LEVEL>",
		`log level [debug, info] (default "info")`,
	} {
		if !strings.Contains(rootUsage, want) {
			t.Errorf("Usage(root) missing %q in:\n%s", want, rootUsage)
		}
	}
	if strings.Contains(rootUsage, "[args...]") {
		t.Errorf("Usage(root) advertises extra args:\n%s", rootUsage)
	}
	if strings.Contains(rootUsage, "Global Flags") {
		t.Errorf("Usage(root) lists global flags:\n%s", rootUsage)
	}

	buildUsage := Usage(build, "missing output")
	for _, want := range []string{
		"missing output\n\nUsage: \n   app build [flags]\n",
		"\nFlags:\n   -o, --output string",
		"output path (required)",
		"\nGlobal Flags:\n   -f, --flag",
	} {
		if !strings.Contains(buildUsage, want) {
			t.Errorf("Usage(build) missing %q in:\n%s", want, buildUsage)
		}
	}
}

func TestGrammarPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(g *Grammar)
	}{
		{"duplicate name", func(g *Grammar) {
			g.AddSwitch("x", 0, "", false, false)
			g.AddOption("x", 0, "", "", nil, nil, false)
		}},
		{"empty name", func(g *Grammar) { g.AddSwitch("", 'x', "", false, false) }},
		{"long shorthand", func(g *Grammar) { g.Switch("xy", "x", nil) }},
		{"duplicate command", func(g *Grammar) {
			g.NewCommand("a", "")
			g.NewCommand("a", "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic")
				}
			}()

			tt.fn(NewGrammar())
		})
	}
}

func TestFindByAbbr(t *testing.T) {
	g := NewGrammar()
	g.AddSwitch("first", 'a', "", false, false)
	g.AddSwitch("second", 'a', "", false, false)
	g.AddSwitch("plain", 0, "", false, false)

	f, ok := g.FindByAbbr('a')
	if !ok || f.Name != "first" {
		t.Errorf("FindByAbbr('a') = %v, want first", f)
	}
	if _, ok := g.FindByAbbr(0); ok {
		t.Errorf("FindByAbbr(0) matched a flag without abbreviation")
	}
	if _, ok := g.FindByName("second"); !ok {
		t.Errorf("FindByName(second) not found")
	}
}

func TestUsageAllowUnrecognized(t *testing.T) {
	g := NewNamedGrammar("app", "").AllowUnrecognized(true)
	g.AddSwitch("flag", 'f', "", false, false)

	if !g.AllowsUnrecognized() {
		t.Fatalf("AllowsUnrecognized() = false")
	}

	if got := Usage(g, ""); !strings.Contains(got, "   app [flags] [args...]\n") {
		t.Errorf("Usage() missing args hint:\n%s", got)
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{BoolValue(true), BoolValue(true), true},
		{BoolValue(true), BoolValue(false), false},
		{StringValue("x"), StringValue("x"), true},
		{StringValue("true"), BoolValue(true), false},
		{StringValue(""), BoolValue(false), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	root := NewGrammar()
	child := root.NewCommand("build", "")

	if child.Parent() != root {
		t.Errorf("Parent() = %p, want %p", child.Parent(), root)
	}
	if root.Parent() != nil {
		t.Errorf("root Parent() = %p, want nil", root.Parent())
	}
}
