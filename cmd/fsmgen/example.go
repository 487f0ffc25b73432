package main

import (
	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write the built-in example project (a 1 0 1 sequence detector)",
	Long: `Writes the example project to path, or to stdout when no path is given.
The format follows the extension of path (.yaml/.yml for YAML); --format
selects it for stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := fsmgen.Example()
		if len(args) == 1 {
			if err := project.Save(args[0], p); err != nil {
				return err
			}
			logger.Info("Example written", "path", args[0])
			return nil
		}

		format, _ := cmd.Flags().GetString("format")
		data, err := project.Encode(p, project.Format(format))
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", data)
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().String("format", string(project.JSON), "Output format for stdout: json or yaml")
}
