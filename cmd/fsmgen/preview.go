package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <project>",
	Short: "Show the generated Verilog with syntax highlighting",
	Long:  `Like generate, but renders the code through a terminal markdown renderer when stdout is a terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd, args[0])
		if err != nil {
			return err
		}

		res := fsmgen.RegenerateProject(p, appConfig.Generator.Options()...)
		if res.Text == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "no states")
			return nil
		}
		if !useColor(cmd) {
			return writeOutput(cmd, "", []byte(res.Text))
		}

		rendered, err := tui.Preview(filepath.Base(args[0]), res.Text)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addProjectFlags(previewCmd)
	previewCmd.Flags().Bool("no-color", false, "Print plain text")
}
