package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seventv/yargs/cmd/args"
	cmdErrors "github.com/seventv/yargs/cmd/errors"
	"github.com/seventv/yargs/constants"
	"github.com/seventv/yargs/types"
	"github.com/seventv/yargs/utils"
	"github.com/spf13/cobra"
)

var faintColor = color.New(color.Faint)

func UseInteractive() bool {
	return !args.Args.NonInteractive && constants.InTerm() && !constants.StdinUsed()
}

type SelectableCommand interface {
	types.Selectable
	Command() *cobra.Command
}

type cmdSelectable struct {
	Cmd *cobra.Command
}

func CmdSelectable(cmd *cobra.Command) SelectableCommand {
	return cmdSelectable{
		Cmd: cmd,
	}
}

func (c cmdSelectable) Command() *cobra.Command {
	return c.Cmd
}

func (c cmdSelectable) Label() string {
	return fmt.Sprintf("%s %s", color.CyanString(c.Cmd.Name()), faintColor.Sprint(c.Cmd.Short))
}

func (c cmdSelectable) Selected() string {
	return c.Cmd.Name()
}

func (c cmdSelectable) Details() string {
	return ""
}

func (c cmdSelectable) Match(input string) bool {
	return false
}

// SubCommandRequired fails outside interactive sessions, where the user
// cannot be asked to pick a subcommand.
func SubCommandRequired(next ...cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if !UseInteractive() {
			return cmdErrors.ErrSubcommandRequired
		}

		for _, f := range next {
			if err := f(cmd, args); err != nil {
				return err
			}
		}

		return nil
	}
}

// RunSubCommand lets the user pick one of cmds and runs it with no
// arguments.
func RunSubCommand(cmd *cobra.Command, cmds []SelectableCommand) error {
	items := make([]types.Selectable, len(cmds))
	for i, c := range cmds {
		items[i] = c
	}

	idx, err := utils.Selector("", "Select a command", false, items)
	if err != nil {
		return err
	}

	c := cmds[idx].Command()
	cmd.Root().SetArgs([]string{c.Name()})

	return cmd.Root().Execute()
}

func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w for %s: %v", cmdErrors.ErrUnexpectedArgs, cmd.CommandPath(), args)
	}

	return nil
}
