package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lantern/internal/fault"
	"lantern/internal/logging"
	"lantern/internal/safelog"
)

// newEmitCommand sends one entry through the full safe-logging pipeline:
// config-built sinks, registry, formatter, and (on demand) the fallback
// path.
func newEmitCommand(ctx *commandContext) *cobra.Command {
	var levelFlag string
	var withFault bool
	var failSink bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "emit [message]",
		Short: "Send a log entry through the safe pipeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			message := "lantern emit test entry"
			if len(args) == 1 {
				message = args[0]
			}

			if failSink {
				// Deliberately broken sink so the fallback path is visible.
				if err := safelog.SetLogger(safelog.SinkFunc(func(context.Context, safelog.Severity, string) error {
					return errors.New("emit --fail-sink: sink refused the entry")
				})); err != nil {
					return err
				}
			} else {
				logger, err := logging.ConfigureDefault(cfg)
				if err != nil {
					return fmt.Errorf("configure logging: %w", err)
				}
				if quiet {
					quieted := logging.WithLevelOverride(logger, slog.LevelWarn)
					if err := safelog.SetLogger(logging.NewSlogSink(quieted)); err != nil {
						return err
					}
				}
			}

			opCtx := fault.ContextWithCorrelation(cmd.Context(), fault.NewCorrelationID())

			var cause error
			if withFault {
				root := errors.New("simulated root cause")
				cause = fault.FromContext(opCtx, fault.Transient, "simulated failure", fault.WithCause(root))
			}

			safelog.Log(opCtx, safelog.ParseSeverity(levelFlag), message, cause)
			return nil
		},
	}

	cmd.Flags().StringVarP(&levelFlag, "level", "l", "info", "Severity: debug, info, warn, error, critical")
	cmd.Flags().BoolVar(&withFault, "fault", false, "Attach a simulated fault chain to the entry")
	cmd.Flags().BoolVar(&failSink, "fail-sink", false, "Install a failing sink to demonstrate the fallback path")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Raise the sink threshold to warning")
	return cmd
}
