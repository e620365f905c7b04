// Package cli implements the riskform command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	flagConfig   = "config"
	flagEndpoint = "endpoint"
)

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "riskform",
		Short: "Diabetes risk assessment client.",
		Long: `riskform collects eight health metrics, validates them locally and asks a
prediction service for a diabetes risk assessment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags, available for all commands.
	root.PersistentFlags().String(flagConfig, "", "config file path (default ./riskform.yaml when present)")
	root.PersistentFlags().String(flagEndpoint, "", "prediction endpoint URL, overrides endpoint.url")

	root.AddCommand(NewInteractiveCommand())
	root.AddCommand(NewPredictCommand())
	root.AddCommand(NewValidateCommand())
	root.AddCommand(NewContractCommand())
	return root
}

// Execute runs the CLI and exits the process on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
