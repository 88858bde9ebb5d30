package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/seventv/yargs/cmd/ui"
	"github.com/seventv/yargs/logger"
	"github.com/seventv/yargs/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	initCmd.Flags().StringVar(&Args.InitCmd.Name, "name", "", "Program name of the grammar, defaults to the working directory name")

	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample grammar file",
	Args:  ui.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		zap.S().Infof("* %s *", color.BlueString("yargs init"))

		wd, _ := os.Getwd()
		name := utils.OrStr(Args.InitCmd.Name, filepath.Base(wd))

		if err := utils.WriteGrammar(Args.Grammar, utils.SampleGrammar(name)); err != nil {
			return err
		}

		logger.Infof("grammar written to %s", Args.Grammar)

		return nil
	},
}
