package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
	"github.com/ryanrauch/restaurant-ai-landing/internal/handlers"
	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/page"
	"github.com/ryanrauch/restaurant-ai-landing/internal/server"
	"github.com/ryanrauch/restaurant-ai-landing/internal/storage"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  "Serve the landing page, static assets, health checks and Prometheus metrics until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(serveOptions())
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func serveOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		page.Module,
		storage.Module,
		handlers.Module,
		server.Module,
	)
}
