package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	api "github.com/rpupo63/studio-cms-backend/api"
	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/services"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app := appFrom(ctx)

	gormDB, currentDB, err := openDatabase(app)
	if err != nil {
		return err
	}

	if app.AutoMigrate {
		log.Info().Msg("Running schema migration...")
		if err := migrate(gormDB); err != nil {
			return err
		}
	}
	if err := currentDB.SettingsRepo().Ensure(ctx); err != nil {
		return fmt.Errorf("ensuring site settings: %w", err)
	}

	store, err := newUploadStore(ctx, app)
	if err != nil {
		return err
	}

	issuer, err := auth.NewTokenIssuer(app.SessionSecret, app.SessionTTL)
	if err != nil {
		return err
	}

	mailer := services.NewMailer(app.ResendAPIKey, app.ResendFromEmail)
	if mailer == nil {
		log.Info().Msg("RESEND_API_KEY not set; contact notifications are disabled")
	}

	server, err := api.NewServer(api.Dependencies{
		Database:      currentDB,
		Store:         store,
		Authenticator: auth.NewAuthenticator(currentDB.AdminUserRepo(), issuer),
		Notifier:      services.NewContactNotifier(mailer, currentDB.SettingsRepo()),
	}, app)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}
	if !app.SeedEnabled() {
		log.Info().Msg("SEED_SECRET_KEY not set; /api/admin/seed is disabled")
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
