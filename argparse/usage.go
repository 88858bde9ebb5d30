package argparse

import (
	"fmt"
	"strings"
)

func makePadding(n int) string {
	return strings.Repeat(" ", n)
}

func valueHint(f *Flag) string {
	if f.IsSwitch() {
		return ""
	}

	if f.ValueHelp != "" {
		return "<" + f.ValueHelp + ">"
	}

	return "string"
}

func flagHelp(f *Flag) string {
	parts := []string{}
	if f.Help != "" {
		parts = append(parts, f.Help)
	}

	if len(f.PossibleValues) > 0 {
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(f.PossibleValues, ", ")))
	}

	if f.IsOption() && f.Default != nil {
		parts = append(parts, fmt.Sprintf("(default %q)", *f.Default))
	} else if f.IsSwitch() && f.DefaultsToPresent {
		parts = append(parts, "(default on)")
	}

	if f.Required {
		parts = append(parts, "(required)")
	}

	return strings.Join(parts, " ")
}

func flagLabel(f *Flag) string {
	name := f.Name
	if f.Negatable {
		name = "[no-]" + name
	}

	if hint := valueHint(f); hint != "" {
		return name + " " + hint
	}

	return name
}

// Usage renders the help text of g. Flags declared by ancestors are listed
// under Global Flags.
func Usage(g *Grammar, msg string) string {
	var b strings.Builder

	if msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}
	b.WriteString("Usage: \n   ")
	b.WriteString(g.Path())

	if len(g.order) > 0 {
		b.WriteString(" [flags]")
	}
	if len(g.commands) > 0 {
		b.WriteString(" [command]")
	}
	if g.AllowsUnrecognized() {
		b.WriteString(" [args...]")
	}

	b.WriteString("\n")
	if g.help != "" {
		b.WriteString(makePadding(len(g.Path()) / 2))
		b.WriteString(g.help)
		b.WriteString("\n")
	}

	if len(g.commands) > 0 {
		b.WriteString("\nAvailable Commands:\n")
		width := 0
		for _, cmd := range g.commands {
			if len(cmd.name) > width {
				width = len(cmd.name)
			}
		}

		for _, cmd := range g.Commands() {
			b.WriteString("  ")
			b.WriteString(cmd.name)
			b.WriteString(makePadding(width - len(cmd.name)))
			b.WriteString("  ")
			b.WriteString(cmd.help)
			b.WriteString("\n")
		}
	}

	var globalFlags []*Flag
	for p := g.Parent(); p != nil; p = p.Parent() {
		globalFlags = append(globalFlags, p.order...)
	}

	width := 0
	for _, f := range append(g.Flags(), globalFlags...) {
		if l := len(flagLabel(f)); l > width {
			width = l
		}
	}

	flagsWriter := func(flags []*Flag) {
		for _, f := range flags {
			label := flagLabel(f)

			b.WriteString("   ")
			if f.Abbr != 0 {
				b.WriteString("-")
				b.WriteRune(f.Abbr)
				b.WriteString(", ")
			} else {
				b.WriteString("    ")
			}
			b.WriteString("--")
			b.WriteString(label)
			b.WriteString(makePadding(width - len(label)))
			b.WriteString("  ")
			b.WriteString(flagHelp(f))
			b.WriteString("\n")
		}
	}

	if len(g.order) > 0 {
		b.WriteString("\nFlags:\n")
		flagsWriter(g.order)
	}

	if len(globalFlags) > 0 {
		b.WriteString("\nGlobal Flags:\n")
		flagsWriter(globalFlags)
	}

	return b.String()
}
