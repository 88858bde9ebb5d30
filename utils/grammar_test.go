package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/seventv/yargs/argparse"
	"github.com/seventv/yargs/types"
)

const testGrammar = `
name: app
help: test app
switches:
  - name: verbose
    abbr: v
    negatable: true
  - name: color
    default: true
    negatable: true
options:
  - name: level
    abbr: l
    values: [debug, info]
    default: info
commands:
  - name: build
    switches:
      - name: release
        abbr: r
    options:
      - name: output
        abbr: o
        required: true
`

func TestDecodeGrammar(t *testing.T) {
	g, err := DecodeGrammar([]byte(testGrammar))
	if err != nil {
		t.Fatalf("DecodeGrammar() error = %v", err)
	}

	if g.Name != "app" || len(g.Switches) != 2 || len(g.Options) != 1 || len(g.Commands) != 1 {
		t.Fatalf("DecodeGrammar() = %+v", g)
	}
	if g.Options[0].Default == nil || *g.Options[0].Default != "info" {
		t.Errorf("level default = %v, want info", g.Options[0].Default)
	}
}

func TestDecodeGrammarErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown field", "name: app\nflags: []\n", nil},
		{"invalid name", "name: app\nswitches: [{name: Bad}]\n", types.ErrInvalidName},
		{"duplicate", "name: app\nswitches: [{name: a}]\noptions: [{name: a}]\n", types.ErrDuplicateName},
		{"null command", "name: app\ncommands:\n  - \n", types.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGrammar([]byte(tt.data))
			if err == nil {
				t.Fatal("DecodeGrammar() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeGrammar() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildGrammar(t *testing.T) {
	gf, err := DecodeGrammar([]byte(testGrammar))
	if err != nil {
		t.Fatalf("DecodeGrammar() error = %v", err)
	}

	root := BuildGrammar(gf)
	build, ok := root.Command("build")
	if !ok {
		t.Fatal("build command not registered")
	}

	res, err := argparse.ParseFrom(build, []string{"-v", "--output", "bin", "-r", "extra"})
	if err != nil {
		t.Fatalf("ParseFrom() error = %v", err)
	}

	want := map[string]argparse.Value{
		"verbose": argparse.BoolValue(true),
		"output":  argparse.StringValue("bin"),
		"release": argparse.BoolValue(true),
	}
	if diff := cmp.Diff(want, res.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"extra"}, res.Rest); diff != "" {
		t.Errorf("Rest mismatch (-want +got):\n%s", diff)
	}

	res, err = argparse.ParseFrom(root, []string{"--no-color"})
	if err != nil {
		t.Fatalf("ParseFrom() error = %v", err)
	}
	want = map[string]argparse.Value{
		"color": argparse.BoolValue(false),
		"level": argparse.StringValue("info"),
	}
	if diff := cmp.Diff(want, res.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}

	if _, err := argparse.ParseFrom(build, nil); !errors.Is(err, argparse.ErrMissingRequiredOption) {
		t.Errorf("ParseFrom() error = %v, want %v", err, argparse.ErrMissingRequiredOption)
	}
}

func TestWriteGrammar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")

	sample := SampleGrammar("demo")
	if err := WriteGrammar(path, sample); err != nil {
		t.Fatalf("WriteGrammar() error = %v", err)
	}

	if err := WriteGrammar(path, sample); !errors.Is(err, ErrGrammarExists) {
		t.Errorf("second WriteGrammar() error = %v, want %v", err, ErrGrammarExists)
	}

	got, err := ReadGrammar(path)
	if err != nil {
		t.Fatalf("ReadGrammar() error = %v", err)
	}
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("ReadGrammar() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadGrammar(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadGrammar(missing) error = %v, want not exist", err)
	}
}

func TestStrings(t *testing.T) {
	if got := MergeStrings("a", "", "b"); got != "a\nb" {
		t.Errorf("MergeStrings() = %q", got)
	}
	if got := OrStr("", "b"); got != "b" {
		t.Errorf("OrStr() = %q", got)
	}
}

func TestLoaderNonInteractive(t *testing.T) {
	done := Loader(LoaderOptions{FetchingText: "loading", SuccessText: "ok", FailureText: "failed"})
	done(true)
	// a second call is a no-op
	done(false)
}
