package types

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var faintColor = color.New(color.Faint)

type Selectable interface {
	Label() string
	Selected() string
	Details() string
	Match(input string) bool
}

type BasicSelectable struct {
	LabelStr    string
	SelectedStr string
	DetailsStr  string
}

func (b BasicSelectable) Label() string {
	return b.LabelStr
}

func (b BasicSelectable) Selected() string {
	return b.SelectedStr
}

func (b BasicSelectable) Details() string {
	return b.DetailsStr
}

func (b BasicSelectable) Match(input string) bool {
	return strings.Contains(strings.ToLower(b.SelectedStr), strings.ToLower(input))
}

// ValueSelectables turns the allowed values of an option into selector
// items.
func ValueSelectables(o OptionSpec) []Selectable {
	items := make([]Selectable, 0, len(o.Values))
	for _, v := range o.Values {
		item := BasicSelectable{
			LabelStr:    color.CyanString(v),
			SelectedStr: v,
		}
		if o.Default != nil && *o.Default == v {
			item.LabelStr = fmt.Sprintf("%s %s", item.LabelStr, faintColor.Sprint("(default)"))
		}

		items = append(items, item)
	}

	return items
}

func (g *GrammarFile) Label() string {
	return fmt.Sprintf("%s %s", color.CyanString(g.Name), faintColor.Sprint(g.Help))
}

func (g *GrammarFile) Selected() string {
	return g.Name
}

func (g *GrammarFile) Details() string {
	return fmt.Sprintf(`
--------- Command ----------
  %s	%s
  %s	%d
  %s	%d
  %s	%d
`,
		faintColor.Sprint("Name:"), g.Name,
		faintColor.Sprint("Switches:"), len(g.Switches),
		faintColor.Sprint("Options:"), len(g.Options),
		faintColor.Sprint("Commands:"), len(g.Commands),
	)
}

func (g *GrammarFile) Match(input string) bool {
	return strings.Contains(strings.ToLower(g.Name), strings.ToLower(input))
}
