package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-riskform/pkg/render"
	"github.com/goliatone/go-riskform/pkg/submission"
	"github.com/goliatone/go-riskform/pkg/validation"
)

func NewPredictCommand() *cobra.Command {
	var (
		fields fieldFlags
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Validate the metrics and request a prediction",
		Long: `predict validates the metrics given as flags or as a JSON document and,
when they are valid, sends them to the prediction service once. Validation
failures are printed to stderr and exit with status 2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fields.fieldSet(cmd.Flags(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			var notices io.Writer = cmd.ErrOrStderr()
			if quiet {
				notices = io.Discard
			}

			var (
				controller *submission.Controller
				display    *render.Display
			)
			stop, err := env.start(cmd.Context(), streamNotifier(notices), &controller, &display)
			if err != nil {
				return err
			}
			defer stop()

			format := display.Format()
			if cmd.Flags().Changed("output") {
				format = output
			}
			if !supports(display, format) {
				return fmt.Errorf("%w: %q", render.ErrUnknownFormat, format)
			}

			outcome, err := controller.SubmitFields(cmd.Context(), set)
			if err != nil {
				var invalid *submission.InvalidError
				if errors.As(err, &invalid) {
					printIssues(cmd.ErrOrStderr(), invalid.Result)
					return &ExitError{Code: ExitCodeInvalid}
				}
				return err
			}
			return display.RenderAs(cmd.OutOrStdout(), format, &outcome)
		},
	}

	fields.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatText, "output format: text, html or json (default from display.format)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress notices")
	return cmd
}

func printIssues(w io.Writer, result validation.Result) {
	for _, issue := range result.Issues() {
		fmt.Fprintf(w, "%s: %s\n", issue.Field, issue.Message)
	}
}

func supports(display *render.Display, format string) bool {
	for _, name := range display.Formats() {
		if name == format {
			return true
		}
	}
	return false
}
