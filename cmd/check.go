package cmd

import (
	"github.com/fatih/color"
	"github.com/seventv/yargs/cmd/ui"
	"github.com/seventv/yargs/logger"
	"github.com/seventv/yargs/types"
	"github.com/seventv/yargs/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

type grammarStats struct {
	Switches int
	Options  int
	Commands int
	Required int
}

func countGrammar(g *types.GrammarFile) grammarStats {
	s := grammarStats{
		Switches: len(g.Switches),
		Options:  len(g.Options),
		Commands: len(g.Commands),
	}

	for _, o := range g.Options {
		if o.Required {
			s.Required++
		}
	}

	for _, cmd := range g.Commands {
		c := countGrammar(cmd)
		s.Switches += c.Switches
		s.Options += c.Options
		s.Commands += c.Commands
		s.Required += c.Required
	}

	return s
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the grammar file",
	Args:  ui.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		zap.S().Infof("* %s *", color.BlueString("yargs check"))

		done := utils.Loader(utils.LoaderOptions{
			FetchingText: "Reading " + Args.Grammar,
			SuccessText:  "Grammar is valid",
			FailureText:  "Grammar is invalid",
		})

		gf, err := GrammarFile.Get()
		done(err == nil)
		if err != nil {
			return err
		}

		// registration panics on anything the validator missed
		utils.BuildGrammar(gf)

		s := countGrammar(gf)
		logger.Infof("%s: %d switches, %d options (%d required), %d commands", gf.Name, s.Switches, s.Options, s.Required, s.Commands)

		return nil
	},
}
