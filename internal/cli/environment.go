package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/goliatone/go-riskform/internal/app"
	"github.com/goliatone/go-riskform/internal/config"
	"github.com/goliatone/go-riskform/internal/logging"
	"github.com/goliatone/go-riskform/pkg/submission"
)

// environment holds what every command needs before the fx graph is built.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	cfgPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagEndpoint) {
		endpoint, err := cmd.Flags().GetString(flagEndpoint)
		if err != nil {
			return nil, err
		}
		cfg.Endpoint.URL = strings.TrimSpace(endpoint)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, closer := logging.New(cfg.Logging, cmd.ErrOrStderr())
	logger.Debug("configuration loaded",
		slog.String("endpoint", cfg.Endpoint.URL),
		slog.Duration("timeout", cfg.Endpoint.Timeout),
		slog.String("format", cfg.Display.Format),
	)
	return &environment{cfg: cfg, logger: logger, closer: closer}, nil
}

func (env *environment) Close() error {
	return env.closer.Close()
}

// start builds the component graph and fills targets. The returned stop
// function must be called once the command is done.
func (env *environment) start(ctx context.Context, notifier submission.Notifier, targets ...any) (func(), error) {
	fxApp := fx.New(
		fx.Supply(env.cfg, env.logger),
		fx.Provide(func() submission.Notifier { return notifier }),
		app.Module,
		fx.Populate(targets...),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	)
	if err := fxApp.Err(); err != nil {
		return nil, fmt.Errorf("riskform: wire components: %w", err)
	}
	if err := fxApp.Start(ctx); err != nil {
		return nil, fmt.Errorf("riskform: start: %w", err)
	}
	return func() {
		if err := fxApp.Stop(context.Background()); err != nil {
			env.logger.Warn("stop components", slog.Any("error", err))
		}
	}, nil
}

// streamNotifier prints notices to w, one per line.
func streamNotifier(w io.Writer) submission.Notifier {
	return submission.NotifierFunc(func(n submission.Notice) {
		fmt.Fprintf(w, "%s %s\n", noticePrefix(n.Level), n.Message)
	})
}

func noticePrefix(level submission.Level) string {
	switch level {
	case submission.LevelSuccess:
		return "[ok]"
	case submission.LevelError:
		return "[error]"
	default:
		return "[..]"
	}
}
