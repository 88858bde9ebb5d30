package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/seventv/yargs/argparse"
	"github.com/seventv/yargs/cmd/args"
	cmdErrors "github.com/seventv/yargs/cmd/errors"
	"github.com/seventv/yargs/cmd/ui"
	"github.com/seventv/yargs/constants"
	"github.com/seventv/yargs/logger"
	"github.com/seventv/yargs/types"
	"github.com/seventv/yargs/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Args = args.Args

// GrammarFile is loaded from Args.Grammar on first use.
var GrammarFile = types.FutureFromFuncErr(func() (*types.GrammarFile, error) {
	zap.S().Debugf("reading grammar from %s", Args.Grammar)
	return utils.ReadGrammar(Args.Grammar)
})

func init() {
	rootCmd.PersistentFlags().BoolVar(&Args.Debug, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&Args.NonInteractive, "term", false, "Disable interactive mode")
	rootCmd.PersistentFlags().StringVarP(&Args.Grammar, "grammar", "g", constants.DefaultGrammarFile, "Grammar file to use, - reads stdin")

	cobra.OnInitialize(func() {
		if Args.Debug {
			logger.SetDebug(true)
		}

		GrammarFile.Reset()
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

// grammarFor builds the parser grammar for a space separated command path.
func grammarFor(path []string) (*argparse.Grammar, *types.GrammarFile, error) {
	gf, err := GrammarFile.Get()
	if err != nil {
		return nil, nil, err
	}

	target, ok := gf.Command(path...)
	if !ok {
		return nil, nil, cmdErrors.ErrUnknownCommand(strings.Join(path, " "))
	}

	g := utils.BuildGrammar(gf)
	for _, name := range path {
		g, _ = g.Command(name)
	}

	return g, target, nil
}

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "yargs parses command lines against a declared grammar",
	Long: `A tool to declare command line grammars in YAML and check how argument lists are parsed against them,
including nested commands inheriting the options of their parents.`,
	Args:          ui.SubCommandRequired(ui.NoArgs),
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		zap.S().Infof("* %s *\r", color.CyanString("yargs"))

		cmds := make([]ui.SelectableCommand, 0, len(cmd.Commands()))
		for _, cmd := range cmd.Commands() {
			if !cmd.Hidden && cmd.Name() != "help" {
				cmds = append(cmds, ui.CmdSelectable(cmd))
			}
		}

		return ui.RunSubCommand(cmd, cmds)
	},
}
