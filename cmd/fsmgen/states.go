package main

import (
	"fmt"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states <project>",
	Short: "List the state registry and each state's encoded value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd, args[0])
		if err != nil {
			return err
		}

		res := fsmgen.RegenerateProject(p)
		if len(res.States) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no states")
			return nil
		}
		return tui.WriteStates(cmd.OutOrStdout(), res.Encoded, res.Reset, tui.NewStyler(useColor(cmd)))
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
	addProjectFlags(statesCmd)
	statesCmd.Flags().Bool("no-color", false, "Disable colored output")
}
