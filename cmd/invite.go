package main

import (
	"context"
	"net/http"
	"os"

	"naamkaran/internal/config"
	"naamkaran/internal/invite"
	"naamkaran/pkg/logger"
	"naamkaran/pkg/relay"
	"naamkaran/pkg/render/chrome"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inviteCommand constructs the 'invite' subcommand that renders an invitation
// card for a guest and either saves it locally or emails it through the relay.
func inviteCommand(cfg *config.Config) *cobra.Command {
	var (
		guestName string
		email     string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Renders a guest's invitation card and downloads or emails it",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			renderer := chrome.New(chrome.Options{
				Scale:          cfg.Renderer.Scale,
				SettleDelay:    cfg.Renderer.SettleDelay,
				CaptureTimeout: cfg.Renderer.CaptureTimeout,
				Background:     cfg.Renderer.Background,
				ExecPath:       cfg.Renderer.ExecPath,
			})
			dispatcher := relay.New(http.DefaultClient, cfg.Relay.Endpoint)
			svc := invite.New(renderer, dispatcher)

			if email != "" {
				outcome, err := svc.Email(ctx, guestName, email)
				if err != nil {
					logger.Fatal(ctx, "could not email invitation", zap.Error(err))
				}
				if !outcome.Success {
					logger.Error(ctx, "invitation was not delivered", zap.String("message", outcome.Message))
					os.Exit(1)
				}
				logger.Info(ctx, "invitation emailed",
					zap.String("guest", guestName),
					zap.String("email", email),
					zap.String("message", outcome.Message))

				return
			}

			path, err := svc.Download(ctx, guestName, outDir)
			if err != nil {
				logger.Fatal(ctx, "could not download invitation", zap.Error(err))
			}
			logger.Info(ctx, "invitation saved", zap.String("path", path))
		},
	}

	cmd.Flags().StringVarP(&guestName, "guest", "g", "", "Guest name printed on the card")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email the card to this address instead of saving it")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to save the card into")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}
