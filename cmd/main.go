package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryan-cox/dailyplan/internal/clipboard"
	"github.com/bryan-cox/dailyplan/internal/model"
	"github.com/bryan-cox/dailyplan/internal/plan"
	"github.com/bryan-cox/dailyplan/internal/report"
	"github.com/bryan-cox/dailyplan/internal/schedule"
)

// --- Cobra Command Definitions ---

var (
	// Used for flags.
	outputFormat string
	copyOutput   bool

	// rootCmd prints the schedule when called without arguments.
	rootCmd = &cobra.Command{
		Use:           "dailyplan",
		Short:         "Print the daily activity plan, one block per work day.",
		Long:          `dailyplan prints the planned activities for each work day of a fixed window of calendar days, skipping weekends.`,
		Args:          cobra.NoArgs,
		RunE:          runPlanCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("dailyplan failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&outputFormat, "output", model.FormatText, "Output format (text or yaml).")
	rootCmd.Flags().BoolVar(&copyOutput, "copy", false, "Also copy the output to the system clipboard.")
}

// --- Main Application Entry Point ---

func main() {
	// Setup structured JSON logger for errors.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	Execute()
}

// --- Command Execution Logic ---

func runPlanCommand(cmd *cobra.Command, args []string) error {
	days := schedule.Build(plan.StartDate, plan.CandidateDays, plan.TaskDescriptions)

	out := cmd.OutOrStdout()
	var copied bytes.Buffer
	if copyOutput {
		out = io.MultiWriter(out, &copied)
	}

	if err := report.Write(out, outputFormat, days); err != nil {
		return fmt.Errorf("could not write schedule: %w", err)
	}

	if copyOutput {
		if err := clipboard.CopyText(copied.String()); err != nil {
			slog.Warn("could not copy schedule to clipboard", "error", err)
		}
	}
	return nil
}
