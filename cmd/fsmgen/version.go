package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsmgen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsmgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fsmgen version %s\n", strings.TrimSpace(fsmgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
