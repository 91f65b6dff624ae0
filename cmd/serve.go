package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"naamkaran/internal/api"
	"naamkaran/internal/api/handler/v1handler"
	"naamkaran/internal/config"
	"naamkaran/internal/suggestion"
	"naamkaran/pkg/logger"
	"naamkaran/pkg/mailer/smtpmail"
	"naamkaran/pkg/namegen"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// newNameGenerator returns the Gemini-backed generator when an API key is
// configured and the curated static lists otherwise.
func newNameGenerator(ctx context.Context, cfg *config.Config) namegen.Generator {
	if cfg.AI.APIKey == "" {
		logger.Info(ctx, "no AI api key configured, serving curated name lists")

		return namegen.NewStatic()
	}

	gen, err := namegen.NewGoogle(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		logger.Warn(ctx, "could not create AI name generator, falling back to curated lists", zap.Error(err))

		return namegen.NewStatic()
	}

	return gen
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the invitation API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			courier, err := smtpmail.New(smtpmail.Options{
				Host:       cfg.SMTP.Host,
				Port:       cfg.SMTP.Port,
				Username:   cfg.SMTP.Username,
				Password:   cfg.SMTP.Password,
				SenderName: cfg.SMTP.SenderName,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create mail courier", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Suggestions: suggestion.New(strg),
					Courier:     courier,
					Names:       newNameGenerator(ctx, cfg),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
