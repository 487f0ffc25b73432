package main

import (
	"fmt"

	"github.com/aretw0/fsmgen/internal/cli"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage projects in the configured store",
}

// withBackend opens the configured store for the duration of fn.
func withBackend(fn func(b *cli.Backend) error) error {
	b, err := cli.OpenBackend(appConfig.Store, logger)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b)
}

var storePushCmd = &cobra.Command{
	Use:   "push <id> <project>",
	Short: "Save a project file under id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.Load(args[1])
		if err != nil {
			return err
		}
		return withBackend(func(b *cli.Backend) error {
			if err := b.Store.Save(cmd.Context(), args[0], p); err != nil {
				return err
			}
			logger.Info("Project stored", "id", args[0], "backend", appConfig.Store.Backend)
			return nil
		})
	},
}

var storePullCmd = &cobra.Command{
	Use:   "pull <id>",
	Short: "Print a stored project, or write it with --output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(func(b *cli.Backend) error {
			p, err := b.Store.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out, _ := cmd.Flags().GetString("output")
			if out != "" && out != "-" {
				return project.Save(out, p)
			}
			data, err := project.Encode(p, project.JSON)
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", data)
		})
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored project ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(func(b *cli.Backend) error {
			ids, err := b.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		})
	},
}

var storeRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete stored projects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(func(b *cli.Backend) error {
			for _, id := range args {
				if err := b.Store.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storePushCmd, storePullCmd, storeListCmd, storeRmCmd)
	storePullCmd.Flags().StringP("output", "o", "", "Write to file (format by extension) instead of stdout")
}
