package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/spf13/cobra"
)

// addProjectFlags registers the overrides shared by commands that read a project file.
func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("encoding", "e", "", "Override the encoding: Binary, One-hot or Gray")
	cmd.Flags().String("reset", "", "Override the reset state")
}

// loadProject reads args[0] and applies --encoding and --reset.
func loadProject(cmd *cobra.Command, path string) (*domain.Project, error) {
	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}

	if name, _ := cmd.Flags().GetString("encoding"); name != "" {
		if p.Encoding, err = domain.ParseEncoding(name); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("reset") {
		p.Reset, _ = cmd.Flags().GetString("reset")
	}

	logger.Debug("Project loaded", "path", path, "rows", len(p.Transitions), "params", len(p.Parameters), "encoding", p.Encoding)
	return p, nil
}

// writeOutput writes data to path, or to the command's stdout for "" and "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Output written", "path", path, "bytes", len(data))
	return nil
}
