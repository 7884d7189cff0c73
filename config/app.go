package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	UploadBackendLocal = "local"
	UploadBackendS3    = "s3"
)

// App is the typed process configuration, read once at start.
type App struct {
	Port         int
	Env          string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	DatabaseURL        string
	DatabaseReplicaURL string
	AutoMigrate        bool

	UploadBackend   string
	UploadDir       string
	UploadURLPrefix string
	MaxUploadBytes  int64
	S3Bucket        string
	S3Region        string
	S3KeyPrefix     string
	S3PublicBaseURL string

	SessionSecret string
	SessionTTL    time.Duration
	SeedSecretKey string

	AcceptedOrigins []string
	AdminUIDir      string

	ResendAPIKey    string
	ResendFromEmail string
}

func (a App) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// SeedEnabled reports whether the admin seed endpoint may be used.
func (a App) SeedEnabled() bool {
	return a.SeedSecretKey != ""
}

// Load builds App from env after resolving ssm:/ references.
func Load(ctx context.Context, env map[string]string, params ParameterGetter) (App, error) {
	env, err := ResolveSecrets(ctx, env, params)
	if err != nil {
		return App{}, err
	}

	app := App{
		Port:         GetInt(env, "PORT", 8080),
		Env:          GetString(env, "APP_ENV", "development"),
		LogLevel:     GetString(env, "LOG_LEVEL", ""),
		ReadTimeout:  time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout: time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 60)) * time.Second,

		DatabaseURL:        GetString(env, "DATABASE_URL", ""),
		DatabaseReplicaURL: GetString(env, "DATABASE_REPLICA_URL", ""),
		AutoMigrate:        GetBool(env, "AUTO_MIGRATE", true),

		UploadBackend:   strings.ToLower(GetString(env, "UPLOAD_BACKEND", UploadBackendLocal)),
		UploadDir:       GetString(env, "UPLOAD_DIR", "./public/uploads"),
		UploadURLPrefix: GetString(env, "UPLOAD_URL_PREFIX", "/uploads"),
		MaxUploadBytes:  int64(GetInt(env, "MAX_UPLOAD_MB", 10)) << 20,
		S3Bucket:        GetString(env, "S3_BUCKET", ""),
		S3Region:        GetString(env, "S3_REGION", ""),
		S3KeyPrefix:     GetString(env, "S3_KEY_PREFIX", "uploads"),
		S3PublicBaseURL: GetString(env, "S3_PUBLIC_BASE_URL", ""),

		SessionSecret: GetString(env, "SESSION_SECRET", ""),
		SessionTTL:    time.Duration(GetInt(env, "SESSION_TTL_HOURS", 720)) * time.Hour,
		SeedSecretKey: GetString(env, "SEED_SECRET_KEY", ""),

		AcceptedOrigins: GetList(env, "ACCEPTED_ORIGINS"),
		AdminUIDir:      GetString(env, "ADMIN_UI_DIR", ""),

		ResendAPIKey:    GetString(env, "RESEND_API_KEY", ""),
		ResendFromEmail: GetString(env, "RESEND_FROM_EMAIL", ""),
	}
	if app.LogLevel == "" {
		app.LogLevel = "debug"
		if app.IsProduction() {
			app.LogLevel = "warn"
		}
	}

	return app, app.validate()
}

func (a App) validate() error {
	var problems []error
	if a.DatabaseURL == "" {
		problems = append(problems, errors.New("DATABASE_URL is required"))
	}
	if a.SessionSecret == "" {
		problems = append(problems, errors.New("SESSION_SECRET is required"))
	}
	if a.SessionTTL <= 0 {
		problems = append(problems, errors.New("SESSION_TTL_HOURS must be positive"))
	}
	if a.MaxUploadBytes <= 0 {
		problems = append(problems, errors.New("MAX_UPLOAD_MB must be positive"))
	}
	switch a.UploadBackend {
	case UploadBackendLocal:
	case UploadBackendS3:
		if a.S3Bucket == "" || a.S3PublicBaseURL == "" {
			problems = append(problems, errors.New("S3_BUCKET and S3_PUBLIC_BASE_URL are required when UPLOAD_BACKEND=s3"))
		}
	default:
		problems = append(problems, fmt.Errorf("unknown UPLOAD_BACKEND %q", a.UploadBackend))
	}
	return errors.Join(problems...)
}
