package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/config"
	"github.com/rpupo63/studio-cms-backend/database"
	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/storage"
	"github.com/rpupo63/studio-cms-backend/validators"
)

type appKey struct{}

var rootCmd = &cobra.Command{
	Use:               "studio-cms",
	Short:             "Content backend for the studio site and its admin dashboard",
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
	RunE:              runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gormDB, currentDB, err := openDatabase(appFrom(cmd.Context()))
		if err != nil {
			return err
		}
		if err := migrate(gormDB); err != nil {
			return err
		}
		if err := currentDB.SettingsRepo().Ensure(cmd.Context()); err != nil {
			return fmt.Errorf("ensuring site settings: %w", err)
		}
		log.Info().Msg("Schema is up to date")
		return nil
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin account or reset its password",
	Long: `Creates the admin account, or resets its password when the email already exists.
Flags that are not set fall back to ADMIN_SEED_EMAIL, ADMIN_SEED_PASSWORD and
ADMIN_SEED_NAME, read after .env has been loaded.`,
	RunE: runSeedAdmin,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate typed query helpers for every model",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gormDB, _, err := openDatabase(appFrom(cmd.Context()))
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		return models.GenerateQueries(gormDB, out)
	},
}

var columnReportCmd = &cobra.Command{
	Use:   "column-report",
	Short: "List database columns that no model field maps to",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gormDB, _, err := openDatabase(appFrom(cmd.Context()))
		if err != nil {
			return err
		}
		return models.WriteColumnMismatchReport(cmd.OutOrStdout(), gormDB)
	},
}

func init() {
	addSeedFlags(seedAdminCmd.Flags())
	generateCmd.Flags().String("out", "./generated", "output directory for generated queries")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedAdminCmd, generateCmd, columnReportCmd)
}

// bootstrap loads .env, resolves configuration and sets up logging for every command.
func bootstrap(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env := config.New()
	var params config.ParameterGetter
	if config.NeedsSSM(env) {
		client, err := config.NewSSMClient(ctx, config.GetString(env, "AWS_REGION", ""))
		if err != nil {
			return err
		}
		params = client
	}

	app, err := config.Load(ctx, env, params)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(app)
	cmd.SetContext(context.WithValue(ctx, appKey{}, app))
	return nil
}

func appFrom(ctx context.Context) config.App {
	app, _ := ctx.Value(appKey{}).(config.App)
	return app
}

// setupLogging writes JSON in production and colored console output elsewhere.
func setupLogging(app config.App) {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if app.IsProduction() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func openDatabase(app config.App) (*gorm.DB, database.Database, error) {
	log.Info().Msg("Connecting to database...")
	gormDB, err := database.Open(app.DatabaseURL, app.DatabaseReplicaURL, log.Logger)
	if err != nil {
		return nil, database.Database{}, err
	}
	return gormDB, database.New(gormDB), nil
}

func migrate(gormDB *gorm.DB) error {
	if err := models.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

func newUploadStore(ctx context.Context, app config.App) (storage.Store, error) {
	if app.UploadBackend != config.UploadBackendS3 {
		log.Info().Str("dir", app.UploadDir).Msg("Storing uploads on local disk")
		return storage.NewLocalStore(app.UploadDir, app.UploadURLPrefix), nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if app.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(app.S3Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	log.Info().Str("bucket", app.S3Bucket).Msg("Storing uploads in S3")
	return storage.NewS3Store(s3.NewFromConfig(awsCfg), app.S3Bucket, app.S3KeyPrefix, app.S3PublicBaseURL), nil
}

// Flag name to the environment variable it falls back to.
var seedFlagEnv = map[string]string{
	"email":    "ADMIN_SEED_EMAIL",
	"password": "ADMIN_SEED_PASSWORD",
	"name":     "ADMIN_SEED_NAME",
}

func addSeedFlags(flags *pflag.FlagSet) {
	flags.String("email", "", "admin email (env ADMIN_SEED_EMAIL)")
	flags.String("password", "", "admin password (env ADMIN_SEED_PASSWORD)")
	flags.String("name", "", "display name (env ADMIN_SEED_NAME)")
}

// seedCredentials resolves the admin credentials. An explicitly set flag wins, even
// when empty; otherwise the environment is consulted.
func seedCredentials(flags *pflag.FlagSet, env map[string]string) validators.SeedRequest {
	value := func(flag string) string {
		if flags.Changed(flag) {
			v, _ := flags.GetString(flag)
			return v
		}
		return config.GetString(env, seedFlagEnv[flag], "")
	}

	req := validators.SeedRequest{
		Email:    strings.ToLower(strings.TrimSpace(value("email"))),
		Password: value("password"),
		Name:     strings.TrimSpace(value("name")),
	}
	if req.Name == "" {
		req.Name = "Administrator"
	}
	return req
}

func runSeedAdmin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// bootstrap has loaded .env by now, so the environment is complete.
	req := seedCredentials(cmd.Flags(), config.New())
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid admin credentials: %w", err)
	}

	gormDB, currentDB, err := openDatabase(appFrom(ctx))
	if err != nil {
		return err
	}
	if err := migrate(gormDB); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return errs.NewInternalErrorWithCause("hashing password", err)
	}
	admin, err := currentDB.AdminUserRepo().Upsert(ctx, req.Email, hash, req.Name)
	if err != nil {
		return err
	}
	if err := currentDB.SettingsRepo().Ensure(ctx); err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("Admin user seeded successfully")
	return nil
}
