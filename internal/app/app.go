// Package app wires the CLI's components with fx.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/goliatone/go-riskform/internal/config"
	"github.com/goliatone/go-riskform/pkg/contract"
	"github.com/goliatone/go-riskform/pkg/prediction"
	"github.com/goliatone/go-riskform/pkg/render"
	"github.com/goliatone/go-riskform/pkg/submission"
	"github.com/goliatone/go-riskform/pkg/uischema"
)

// Module provides the prediction client, the display, the UI schema and the
// submission controller. Callers supply *config.Config, *slog.Logger and a
// submission.Notifier.
var Module = fx.Module("riskform",
	fx.Provide(
		ProvideContract,
		ProvideClient,
		ProvideDisplay,
		ProvideSchema,
		ProvideController,
	),
)

// Contract wraps the optional OpenAPI contract; Value is nil when validation
// is disabled.
type Contract struct {
	Value *contract.Contract
}

func ProvideContract(cfg *config.Config, logger *slog.Logger) (Contract, error) {
	if !cfg.Endpoint.ValidateContract {
		return Contract{}, nil
	}
	ct, err := contract.Load(context.Background())
	if err != nil {
		return Contract{}, err
	}
	logger.Debug("contract validation enabled", slog.String("operation", ct.OperationID()))
	return Contract{Value: ct}, nil
}

func ProvideClient(cfg *config.Config, ct Contract, logger *slog.Logger) (*prediction.Client, error) {
	return prediction.New(
		prediction.WithEndpoint(cfg.Endpoint.URL),
		prediction.WithHTTPClient(&http.Client{}),
		prediction.WithContract(ct.Value),
		prediction.WithLogger(logger),
	)
}

func ProvideDisplay(cfg *config.Config, logger *slog.Logger) (*render.Display, error) {
	return render.NewDisplay(
		render.WithFormat(cfg.Display.Format),
		render.WithTheme(cfg.Display.Theme, cfg.Display.Variant),
		render.WithDisclaimer(cfg.Display.Disclaimer),
		render.WithTemplateDir(cfg.Display.TemplateDir),
		render.WithLogger(logger),
	)
}

func ProvideSchema() (*uischema.Store, error) {
	return uischema.Default()
}

func ProvideController(cfg *config.Config, client *prediction.Client, notifier submission.Notifier, logger *slog.Logger) (*submission.Controller, error) {
	return submission.New(
		submission.WithPredictor(client),
		submission.WithTimeout(cfg.Endpoint.Timeout),
		submission.WithMinPending(cfg.Endpoint.MinPending),
		submission.WithNotifier(notifier),
		submission.WithObserver(func(tr submission.Transition) {
			logger.Debug("submission transition",
				slog.String("from", tr.From.String()),
				slog.String("to", tr.To.String()),
				slog.String("submission_id", tr.SubmissionID),
			)
		}),
		submission.WithLogger(logger),
	)
}
