package main

import (
	"fmt"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/internal/cli"
	"github.com/aretw0/fsmgen/internal/presentation/tui"
	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <project>",
	Short: "Regenerate the Verilog every time the project file is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out, _ := cmd.Flags().GetString("output")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		w := cmd.ErrOrStderr()
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			tui.PrintBanner(w, fsmgen.Version)
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		cli.SystemMessage(w, "Watching '%s'.", path)
		err := cli.WatchFile(sigCtx, path, debounce, logger, func() error {
			p, err := loadProject(cmd, path)
			if err != nil {
				return err
			}
			res := fsmgen.RegenerateProject(p, appConfig.Generator.Options()...)
			if n := conflict.Count(res.Conflicts); n > 0 {
				cli.SystemMessage(w, "%d conflicting rows.", n)
			}
			if res.Text == "" {
				cli.SystemMessage(w, "No states, nothing generated.")
				return nil
			}
			if err := writeOutput(cmd, out, []byte(res.Text)); err != nil {
				return err
			}
			cli.SystemMessage(w, "Regenerated %d states (%s).", len(res.States), p.Encoding)
			return nil
		})
		if err != nil {
			return fmt.Errorf("watch failed: %w", err)
		}

		if sig := sigCtx.Signal(); sig != nil {
			logger.Info("Stopping watcher (signal received)", "signal", sig)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addProjectFlags(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	watchCmd.Flags().Duration("debounce", cli.DefaultDebounce, "Wait this long after the last change before regenerating")
	watchCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
