package utils

import (
	"fmt"
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/seventv/yargs/logger"
	"github.com/seventv/yargs/types"
)

func Selector(short string, labelLong string, search bool, options []types.Selectable) (int, error) {
	type selection struct {
		Label    string
		Selected string
		Details  string
		idx      int

		Match func(input string) bool
	}

	items := make([]selection, 0, len(options))

	for idx, s := range options {
		items = append(items, selection{
			Label:    s.Label(),
			Selected: s.Selected(),
			Details:  s.Details(),
			Match:    s.Match,
			idx:      idx,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Selected < items[j].Selected
	})

	selected := fmt.Sprintf(`{{ "%s:" | faint }} {{ .Selected }}`, short)
	if short == "" {
		selected = ""
	}

	prompt := promptui.Select{
		Label:        labelLong,
		Items:        items,
		HideSelected: short == "",
		Templates: &promptui.SelectTemplates{
			Label:    "{{ .Label }}",
			Active:   "➔ {{ .Label }}",
			Inactive: "  {{ .Label }}",
			Selected: selected,
			Details:  "{{ .Details }}",
		},
	}

	if search {
		prompt.Searcher = func(input string, index int) bool {
			return items[index].Match(input)
		}
	}

	i, _, err := prompt.Run()
	if err != nil {
		return -1, err
	}

	return items[i].idx, nil
}

type PromptMessage[T comparable] struct {
	Label       string
	IsConfirm   bool
	HideEntered bool
	Validate    types.Validator[T]
	Default     string
	Templates   *promptui.PromptTemplates
}

func Prompt[T comparable](p PromptMessage[T]) (string, error) {
	valid := func(s string) error {
		t, err := p.Validate.Convert(s)
		if err != nil {
			return err
		}

		return p.Validate.Validate(t)
	}

	prompt := promptui.Prompt{
		Label:       p.Label,
		IsConfirm:   p.IsConfirm,
		Templates:   p.Templates,
		Default:     p.Default,
		HideEntered: p.HideEntered,
	}

	if !p.IsConfirm && p.Validate != nil {
		prompt.Validate = valid
	}

	return prompt.Run()
}

// PromptOptionValue asks for the value of an option, with a selector when
// the option declares its allowed values.
func PromptOptionValue(o types.OptionSpec) (string, error) {
	label := OrStr(o.ValueHelp, o.Name)
	logger.LoggerRewrite()

	if len(o.Values) > 0 {
		items := types.ValueSelectables(o)

		idx, err := Selector(o.Name, fmt.Sprintf("Select %s", label), true, items)
		if err != nil {
			return "", err
		}

		return items[idx].Selected(), nil
	}

	value, err := Prompt(PromptMessage[string]{
		Label:    label,
		Validate: types.EmptyValidator[string](o.Name, false),
	})
	if err != nil {
		return "", err
	}

	logger.Debugf("%s = %q", o.Name, value)

	return value, nil
}
