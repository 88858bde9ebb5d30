package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seventv/yargs/argparse"
	cmdErrors "github.com/seventv/yargs/cmd/errors"
	"github.com/seventv/yargs/cmd/ui"
	"github.com/seventv/yargs/logger"
	"github.com/seventv/yargs/types"
	"github.com/seventv/yargs/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	parseCmd.Flags().StringVarP(&Args.ParseCmd.Output, "output", "o", "text", "Output format, text or yaml")
	parseCmd.Flags().StringVarP(&Args.ParseCmd.Command, "command", "c", "", "Space separated path of the command grammar to parse against")

	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [-- tokens...]",
	Short: "Parse tokens against the grammar",
	Long: `Parse tokens against the grammar and print the recorded flags and the remaining tokens.
Pass the tokens after -- so they are not read as flags of this command.`,
	Example: `  yargs parse -- --verbose -l debug file.txt
  yargs parse -c build -- -o bin --release`,
	RunE: func(cmd *cobra.Command, tokens []string) error {
		if Args.ParseCmd.Output != "text" && Args.ParseCmd.Output != "yaml" {
			return cmdErrors.ErrInvalidOutput(Args.ParseCmd.Output)
		}

		g, target, err := grammarFor(strings.Fields(Args.ParseCmd.Command))
		if err != nil {
			return err
		}

		res, err := parseTokens(g, target, tokens)
		if err != nil {
			return err
		}

		out, err := formatResult(res, Args.ParseCmd.Output)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

// parseTokens parses tokens and, in interactive sessions, asks for every
// missing required option before parsing again.
func parseTokens(g *argparse.Grammar, target *types.GrammarFile, tokens []string) (*argparse.Result, error) {
	for {
		res, err := argparse.ParseFrom(g, tokens)
		if err == nil {
			return res, nil
		}

		var perr *argparse.ParseError
		if !errors.As(err, &perr) || perr.Kind != argparse.ErrMissingRequiredOption || !ui.UseInteractive() {
			return nil, err
		}

		spec, ok := target.OptionByName(perr.Name)
		if !ok {
			return nil, err
		}

		logger.Warnf("%s is required", perr.Name)

		value, promptErr := utils.PromptOptionValue(spec)
		if promptErr != nil {
			return nil, promptErr
		}

		tokens = withOption(tokens, perr.Name, value)
	}
}

// withOption puts --name value in front of tokens, where the parser is
// still scanning regardless of what follows.
func withOption(tokens []string, name string, value string) []string {
	return append([]string{"--" + name, value}, tokens...)
}

type resultDocument struct {
	Flags map[string]any `yaml:"flags"`
	Rest  []string       `yaml:"rest"`
}

func formatResult(res *argparse.Result, output string) (string, error) {
	if output == "yaml" {
		doc := resultDocument{
			Flags: make(map[string]any, len(res.Flags)),
			Rest:  res.Rest,
		}
		for name, v := range res.Flags {
			if b, ok := v.Bool(); ok {
				doc.Flags[name] = b
			} else {
				doc.Flags[name], _ = v.Str()
			}
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	lines := make([]string, 0, len(res.Flags)+1)
	for _, name := range res.Names() {
		v := res.Flags[name]

		var value string
		switch v.Kind() {
		case argparse.ValueBool:
			b, _ := v.Bool()
			if b {
				value = color.GreenString("true")
			} else {
				value = color.RedString("false")
			}
		case argparse.ValueString:
			s, _ := v.Str()
			value = fmt.Sprintf("%q", s)
		}

		lines = append(lines, fmt.Sprintf("%s = %s", color.CyanString(name), value))
	}

	if len(res.Rest) > 0 {
		lines = append(lines, fmt.Sprintf("%s %q", color.New(color.Faint).Sprint("rest:"), res.Rest))
	}

	return utils.MergeStrings(lines...) + "\n", nil
}
