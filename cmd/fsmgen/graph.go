package main

import (
	"fmt"

	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/adapters/graphviz"
	"github.com/aretw0/fsmgen/pkg/graph"
	"github.com/spf13/cobra"
)

// newRenderer builds the Graphviz renderer from config.
func newRenderer() (*graphviz.Renderer, error) {
	timeout, err := appConfig.Graphviz.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	return graphviz.New(
		graphviz.WithBinary(appConfig.Graphviz.Binary),
		graphviz.WithTimeout(timeout),
	), nil
}

var graphCmd = &cobra.Command{
	Use:   "graph <project>",
	Short: "Export the state diagram",
	Long: `Projects the transition table into a graph and writes it as Graphviz DOT,
Mermaid, or an image produced by the dot executable (svg, png, pdf, ...).
Nothing is drawn when the table has no transitions with a target.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd, args[0])
		if err != nil {
			return err
		}

		g := fsmgen.Graph(p)
		if g.Empty() {
			logger.Warn("No transitions to draw", "path", args[0])
			return nil
		}

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("output")

		switch format {
		case "dot":
			return writeOutput(cmd, out, []byte(graph.GenerateDOT(g)))
		case "mermaid":
			return writeOutput(cmd, out, []byte(graph.GenerateMermaid(g)))
		}

		if out == "" {
			return fmt.Errorf("format %q is binary, use --output", format)
		}
		r, err := newRenderer()
		if err != nil {
			return err
		}
		data, err := r.Render(cmd.Context(), graph.GenerateDOT(g), format)
		if err != nil {
			return err
		}
		return writeOutput(cmd, out, data)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addProjectFlags(graphCmd)
	graphCmd.Flags().StringP("format", "f", "dot", "dot, mermaid, or any Graphviz output format (svg, png, ...)")
	graphCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
