package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/auth"
	"github.com/rpupo63/studio-cms-backend/config"
	"github.com/rpupo63/studio-cms-backend/database"
	"github.com/rpupo63/studio-cms-backend/services"
	"github.com/rpupo63/studio-cms-backend/storage"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Database      database.Database
	Store         storage.Store
	Authenticator *auth.Authenticator
	// Notifier may be nil when outbound email is not configured.
	Notifier *services.ContactNotifier
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(deps Dependencies, cfg config.App) (Server, error) {
	if deps.Store == nil || deps.Authenticator == nil {
		return Server{}, fmt.Errorf("server needs an upload store and an authenticator")
	}

	address := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	startupTime := time.Now()

	router := newRouter(deps, withConfig(cfg), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.App
	startupTime time.Time
}

func withConfig(c config.App) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	cfg := router.config

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(requestLogger(log.With().Str("component", "http").Logger()))

	// Without configured origins only same-origin browsers can call the API.
	if len(cfg.AcceptedOrigins) > 0 {
		chiRouter.Use(CORSCheckMiddleware(cfg.AcceptedOrigins))
		chiRouter.Use(corsMiddleware(cfg.AcceptedOrigins))
	}

	handlers := initializeHandlers(deps, cfg, router.startupTime)
	authMiddleware := newAuthMiddleware(deps.Authenticator)

	setupPublicRoutes(chiRouter, handlers, deps.Database.SettingsRepo())
	setupAdminRoutes(chiRouter, handlers, authMiddleware)

	uploadDir := ""
	if cfg.UploadBackend == config.UploadBackendLocal {
		uploadDir = cfg.UploadDir
	}
	setupStaticRoutes(chiRouter, uploadDir, cfg.UploadURLPrefix, cfg.AdminUIDir, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
