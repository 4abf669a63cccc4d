package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lantern/internal/logging"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Log file maintenance",
	}

	logsCmd.AddCommand(newLogsPruneCommand(ctx))
	logsCmd.AddCommand(newLogsRotateCommand(ctx))

	return logsCmd
}

func newLogsPruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove rotated log files past the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Paths.LogDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No log directory configured; nothing to prune.")
				return nil
			}
			logging.CleanupOldLogs(logging.NewNop(), cfg.Logging.RetentionDays, logging.RetentionTarget{
				Dir:     cfg.Paths.LogDir,
				Pattern: "lantern-*.log",
				Exclude: []string{cfg.LogFilePath()},
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned logs older than %d days in %s\n",
				cfg.Logging.RetentionDays, cfg.Paths.LogDir)
			return nil
		},
	}
}

func newLogsRotateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Archive the current log file if it is oversized",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LogFilePath()
			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No log directory configured; nothing to rotate.")
				return nil
			}
			if err := logging.RotateIfOversized(path, cfg.Logging.MaxSizeMiB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checked %s against the %d MiB rotation limit\n",
				path, cfg.Logging.MaxSizeMiB)
			return nil
		},
	}
}
