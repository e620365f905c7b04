package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-riskform/pkg/render"
	"github.com/goliatone/go-riskform/pkg/renderers/tui"
	"github.com/goliatone/go-riskform/pkg/submission"
	"github.com/goliatone/go-riskform/pkg/uischema"
)

func NewInteractiveCommand() *cobra.Command {
	var (
		confirmReset bool
		live         bool
	)

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"form"},
		Short:   "Fill in the form interactively and request predictions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			var session *tui.Renderer
			notifier := submission.NotifierFunc(func(n submission.Notice) {
				if session != nil {
					session.Notify(n)
				}
			})

			var (
				controller *submission.Controller
				display    *render.Display
				schema     *uischema.Store
			)
			stop, err := env.start(cmd.Context(), notifier, &controller, &display, &schema)
			if err != nil {
				return err
			}
			defer stop()

			session, err = tui.New(controller,
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithSchema(schema),
				tui.WithDisplay(display),
				tui.WithTheme(tui.Theme{InfoPrefix: "· ", SuccessPrefix: "✔ ", ErrorPrefix: "✖ "}),
				tui.WithConfirmReset(confirmReset),
				tui.WithLiveValidation(live),
			)
			if err != nil {
				return err
			}

			if err := session.Run(cmd.Context()); err != nil && !errors.Is(err, tui.ErrAborted) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmReset, "confirm-reset", true, "ask before clearing the form")
	cmd.Flags().BoolVar(&live, "live-validation", false, "check each value as it is entered")
	return cmd
}
