package cmd

import (
	"fmt"

	"github.com/seventv/yargs/argparse"
	"github.com/seventv/yargs/cmd/ui"
	"github.com/seventv/yargs/types"
	"github.com/seventv/yargs/utils"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(usageCmd)
}

var usageCmd = &cobra.Command{
	Use:   "usage [command path...]",
	Short: "Print the usage of the grammar or one of its commands",
	RunE: func(cmd *cobra.Command, path []string) error {
		if len(path) == 0 && ui.UseInteractive() {
			picked, err := pickCommand()
			if err != nil {
				return err
			}

			path = picked
		}

		g, _, err := grammarFor(path)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), argparse.Usage(g, ""))
		return err
	},
}

// pickCommand offers the root and its direct commands in a selector.
func pickCommand() ([]string, error) {
	gf, err := GrammarFile.Get()
	if err != nil {
		return nil, err
	}

	if len(gf.Commands) == 0 {
		return nil, nil
	}

	items, err := types.FutureInterfacerArray[*types.GrammarFile, types.Selectable](types.FutureFrom(append([]*types.GrammarFile{gf}, gf.Commands...))).Get()
	if err != nil {
		return nil, err
	}

	idx, err := utils.Selector("command", "Select a command", true, items)
	if err != nil {
		return nil, err
	}

	if idx == 0 {
		return nil, nil
	}

	return []string{gf.Commands[idx-1].Name}, nil
}
