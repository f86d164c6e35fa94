package main

import (
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/app"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the Kafka consumers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			myApp := &app.App{}
			if err := myApp.Initialize(ctx, cfg); err != nil {
				return err
			}
			return myApp.Run(ctx)
		},
	}
}
