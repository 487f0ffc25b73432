package main

import (
	"github.com/aretw0/fsmgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <project>",
	Short: "Generate Verilog from a project file",
	Long: `Reads a project document (JSON, or YAML for .yaml/.yml files) and writes the
generated Verilog to stdout or to --output. Conflicting rows are reported as
warnings; generation still proceeds and the first matching row wins.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd, args[0])
		if err != nil {
			return err
		}

		res := fsmgen.RegenerateProject(p, appConfig.Generator.Options()...)
		for _, g := range conflictGroups(p) {
			logger.Warn("Conflicting transitions", "source", g.Key.Source, "guard", g.Key.Guard, "rows", g.Rows)
		}
		if p.Reset != "" && res.Reset == "" {
			logger.Warn("Reset state is not a state of the table, falling back", "reset", p.Reset)
		}
		if res.Text == "" {
			logger.Warn("No states, nothing generated", "path", args[0])
			return nil
		}

		out, _ := cmd.Flags().GetString("output")
		return writeOutput(cmd, out, []byte(res.Text))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addProjectFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
