package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/seventv/yargs/argparse"
	cmdErrors "github.com/seventv/yargs/cmd/errors"
	"gopkg.in/yaml.v3"
)

const testGrammar = `
name: app
help: test app
switches:
  - name: verbose
    abbr: v
    negatable: true
options:
  - name: level
    abbr: l
    values: [debug, info]
    default: info
commands:
  - name: build
    help: build things
    switches:
      - name: release
        abbr: r
    options:
      - name: output
        abbr: o
        required: true
`

func writeGrammar(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grammar.yaml")
	if err := os.WriteFile(path, []byte(testGrammar), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func run(t *testing.T, argv ...string) (string, error) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	Args.ParseCmd.Output = "text"
	Args.ParseCmd.Command = ""
	Args.InitCmd.Name = ""

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append([]string{"--term"}, argv...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	path := writeGrammar(t)

	out, err := run(t, "-g", path, "parse", "-c", "build", "--", "-o", "bin", "--verbose", "x", "--", "-r")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	want := "output = \"bin\"\nverbose = true\nrest: [\"x\" \"-r\"]\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommandYAML(t *testing.T) {
	path := writeGrammar(t)

	out, err := run(t, "-g", path, "parse", "-o", "yaml", "--", "--no-verbose", "file")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	var got resultDocument
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not yaml: %v\n%s", err, out)
	}

	want := resultDocument{
		Flags: map[string]any{"verbose": false, "level": "info"},
		Rest:  []string{"file"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommandErrors(t *testing.T) {
	path := writeGrammar(t)

	if _, err := run(t, "-g", path, "parse", "-c", "build"); !errors.Is(err, argparse.ErrMissingRequiredOption) {
		t.Errorf("parse error = %v, want %v", err, argparse.ErrMissingRequiredOption)
	}
	if _, err := run(t, "-g", path, "parse", "--", "--nope"); !errors.Is(err, argparse.ErrUnknownOption) {
		t.Errorf("parse error = %v, want %v", err, argparse.ErrUnknownOption)
	}
	if _, err := run(t, "-g", path, "parse", "-c", "deploy"); err == nil || !strings.Contains(err.Error(), "deploy") {
		t.Errorf("parse error = %v, want unknown command", err)
	}
	if _, err := run(t, "-g", path, "parse", "-o", "json"); err == nil {
		t.Errorf("parse error = nil, want invalid output")
	}
	if _, err := run(t, "-g", filepath.Join(t.TempDir(), "missing.yaml"), "parse"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("parse error = %v, want not exist", err)
	}
}

func TestUsageCommand(t *testing.T) {
	path := writeGrammar(t)

	out, err := run(t, "-g", path, "usage", "build")
	if err != nil {
		t.Fatalf("usage error = %v", err)
	}

	for _, want := range []string{"app build [flags]", "-o, --output string", "Global Flags:", "--[no-]verbose"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}

func TestInitAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")

	if _, err := run(t, "-g", path, "init", "--name", "demo"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("grammar not written: %v", err)
	}

	if _, err := run(t, "-g", path, "init"); err == nil {
		t.Errorf("second init error = nil, want exists")
	}

	if _, err := run(t, "-g", path, "check"); err != nil {
		t.Errorf("check error = %v", err)
	}

	if _, err := run(t, "-g", path, "check", "extra"); !errors.Is(err, cmdErrors.ErrUnexpectedArgs) {
		t.Errorf("check extra error = %v, want %v", err, cmdErrors.ErrUnexpectedArgs)
	}
}

func TestRootRequiresSubcommand(t *testing.T) {
	if _, err := run(t); !errors.Is(err, cmdErrors.ErrSubcommandRequired) {
		t.Errorf("root error = %v, want %v", err, cmdErrors.ErrSubcommandRequired)
	}
}

func TestWithOption(t *testing.T) {
	tests := []struct {
		tokens []string
		want   []string
	}{
		{nil, []string{"--output", "bin"}},
		{[]string{"a"}, []string{"--output", "bin", "a"}},
		{[]string{"a", "--", "b", "--"}, []string{"--output", "bin", "a", "--", "b", "--"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, withOption(tt.tokens, "output", "bin")); diff != "" {
			t.Errorf("withOption(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
		}
	}
}

func TestWithOptionTerminatorAsValue(t *testing.T) {
	g := argparse.NewGrammar()
	g.Option("", "out", nil)
	g.Option("", "req", &argparse.OptionOptions{Required: true})

	tokens := []string{"--out", "--", "x"}
	if _, err := argparse.ParseFrom(g, tokens); !errors.Is(err, argparse.ErrMissingRequiredOption) {
		t.Fatalf("ParseFrom() error = %v, want %v", err, argparse.ErrMissingRequiredOption)
	}

	res, err := argparse.ParseFrom(g, withOption(tokens, "req", "v"))
	if err != nil {
		t.Fatalf("ParseFrom() error = %v", err)
	}

	if got := res.String("out"); got != "--" {
		t.Errorf("out = %q, want %q", got, "--")
	}
	if got := res.String("req"); got != "v" {
		t.Errorf("req = %q, want %q", got, "v")
	}
	if diff := cmp.Diff([]string{"x"}, res.Rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}
