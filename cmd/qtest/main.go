// qtest runs scripts of queue commands against xqueue queues. It is
// meant for exercising the queue operations by hand or from test
// scripts.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() (*cobra.Command, error) {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "qtest [flags]",
		Short: "Run queue commands from a script or standard input",
		Long: `qtest reads one command per line and applies it to a group of
queues, printing the current queue after every change. Run the help
command for a list of the available commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			slog.SetDefault(logger)

			in := cmd.InOrStdin()
			if cfg.File != "" {
				file, err := os.Open(cfg.File)
				if err != nil {
					return fmt.Errorf("open command file: %w", err)
				}
				defer file.Close()
				in = file
			}

			logger.Debug("starting session", "file", cfg.File, "descend", cfg.Descend, "fail-rate", cfg.FailRate)
			return newInterp(cmd.OutOrStdout(), logger, cfg).Run(in)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file to read settings from.")
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return cmd, nil
}

func main() {
	cmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
