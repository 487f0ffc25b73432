package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/fsmgen/internal/config"
	"github.com/aretw0/fsmgen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	appConfig = config.Default()
	logger    = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fsmgen",
	Short: "fsmgen turns state transition tables into Verilog",
	Long: `fsmgen reads a finite state machine described as a table of transitions
(source, target, guard, actions) plus a list of parameters, and generates a
synthesizable Verilog state register, transition process and one output
process per driven signal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		levelName := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			levelName, _ = cmd.Flags().GetString("log-level")
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}

		appConfig = cfg
		logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: fsmgen.yaml, fsmgen.yml or fsmgen.json if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}
