package api

import (
	"time"

	"github.com/rpupo63/studio-cms-backend/config"
)

// initializeHandlers creates and returns all route handlers
func initializeHandlers(deps Dependencies, cfg config.App, startupTime time.Time) *routeHandlers {
	db := deps.Database

	return &routeHandlers{
		projectHandler:     newProjectHandler(db.ProjectRepo()),
		blogPostHandler:    newBlogPostHandler(db.BlogPostRepo()),
		serviceHandler:     newServiceHandler(db.ServiceRepo()),
		testimonialHandler: newTestimonialHandler(db.TestimonialRepo()),
		teamMemberHandler:  newTeamMemberHandler(db.TeamMemberRepo()),
		messageHandler:     newMessageHandler(db.MessageRepo(), deps.Notifier),
		mediaHandler:       newMediaHandler(db.MediaAssetRepo(), deps.Store, cfg.MaxUploadBytes),
		settingsHandler:    newSettingsHandler(db.SettingsRepo()),
		authHandler:        newAuthHandler(deps.Authenticator, cfg.IsProduction()),
		seedHandler:        newSeedHandler(db.AdminUserRepo(), cfg.SeedSecretKey),
		publicHandler: newPublicHandler(
			db.ProjectRepo(),
			db.BlogPostRepo(),
			db.ServiceRepo(),
			db.TeamMemberRepo(),
			db.TestimonialRepo(),
		),
		dashboardHandler: newDashboardHandler(db.StatsRepo()),
		healthHandler:    newHealthHandler(db, startupTime),
	}
}
