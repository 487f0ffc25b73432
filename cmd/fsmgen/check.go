package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/fsmgen/internal/presentation/tui"
	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/spf13/cobra"
)

// errConflicts makes `check --strict` exit non-zero.
var errConflicts = errors.New("conflicting transitions found")

func conflictGroups(p *domain.Project) []conflict.Group {
	return conflict.Groups(p.Transitions)
}

// useColor reports whether stdout is a terminal the user did not opt out of.
func useColor(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && tui.IsTerminal(f)
}

var checkCmd = &cobra.Command{
	Use:   "check <project>",
	Short: "Report transitions that share a source state and guard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd, args[0])
		if err != nil {
			return err
		}

		flags := conflict.Detect(p.Transitions)
		out := cmd.OutOrStdout()
		if err := tui.WriteTransitions(out, p.Transitions, flags, tui.NewStyler(useColor(cmd))); err != nil {
			return err
		}

		n := conflict.Count(flags)
		if n == 0 {
			fmt.Fprintln(out, "\nno conflicts")
			return nil
		}

		fmt.Fprintf(out, "\n%d conflicting rows:\n", n)
		for _, g := range conflictGroups(p) {
			fmt.Fprintf(out, "  %s when %s: rows %v\n", g.Key.Source, g.Key.Guard, g.Rows)
		}
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return errConflicts
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addProjectFlags(checkCmd)
	checkCmd.Flags().Bool("strict", false, "Exit with an error when conflicts exist")
	checkCmd.Flags().Bool("no-color", false, "Disable colored output")
}
