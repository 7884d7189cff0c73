package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

type crudRoutes interface {
	list() http.HandlerFunc
	get() http.HandlerFunc
	create() http.HandlerFunc
	update() http.HandlerFunc
	remove() http.HandlerFunc
}

func mountCRUD(r chi.Router, pattern string, h crudRoutes) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.list())
		r.Post("/", h.create())
		r.Get("/{id}", h.get())
		r.Put("/{id}", h.update())
		r.Delete("/{id}", h.remove())
	})
}

// setupPublicRoutes registers the routes reachable without a session.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers, settings settingsLoader) {
	r.Get("/healthz", handlers.healthHandler.health())

	r.Post("/api/auth/login", handlers.authHandler.login())
	r.Post("/api/auth/logout", handlers.authHandler.logout())
	r.Post("/api/admin/seed", handlers.seedHandler.seedAdmin())

	// Contact form submissions
	r.Post("/api/messages", handlers.messageHandler.create())

	r.Route("/api/public", func(r chi.Router) {
		r.Use(settingsContext(settings))

		r.Get("/blog", handlers.publicHandler.blog())
		r.Get("/projects", handlers.publicHandler.projectList())
		r.Get("/services", handlers.publicHandler.serviceList())
		r.Get("/team", handlers.publicHandler.teamList())
		r.Get("/testimonials", handlers.publicHandler.testimonialList())
		r.Get("/settings", handlers.publicHandler.settings())
	})
}

// setupAdminRoutes registers the session-protected API.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/api/auth/session", handlers.authHandler.session())
		r.Get("/api/dashboard", handlers.dashboardHandler.getDashboard())

		mountCRUD(r, "/api/projects", handlers.projectHandler)
		mountCRUD(r, "/api/blog", handlers.blogPostHandler)
		mountCRUD(r, "/api/services", handlers.serviceHandler)
		mountCRUD(r, "/api/testimonials", handlers.testimonialHandler)
		mountCRUD(r, "/api/team", handlers.teamMemberHandler)

		r.Get("/api/messages", handlers.messageHandler.list())
		r.Get("/api/messages/{id}", handlers.messageHandler.get())
		r.Patch("/api/messages/{id}", handlers.messageHandler.markRead())
		r.Delete("/api/messages/{id}", handlers.messageHandler.remove())

		r.Get("/api/media", handlers.mediaHandler.listMedia())
		r.Post("/api/media", handlers.mediaHandler.uploadMedia())
		r.Delete("/api/media/{id}", handlers.mediaHandler.deleteMedia())

		r.Get("/api/settings", handlers.settingsHandler.getSettings())
		r.Put("/api/settings", handlers.settingsHandler.saveSettings())
	})
}

// setupStaticRoutes serves local uploads and the admin UI bundle.
func setupStaticRoutes(r chi.Router, uploadDir, uploadPrefix, adminDir string, authMiddleware authMiddleware) {
	if uploadDir != "" {
		prefix := "/" + strings.Trim(uploadPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, staticFiles(uploadDir)))
	}

	if adminDir == "" {
		return
	}

	r.Get("/login", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(adminDir, "login.html"))
	})
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireSessionPage)
		r.Get("/admin", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/admin/", http.StatusMovedPermanently)
		})
		r.Handle("/admin/*", http.StripPrefix("/admin", staticFiles(adminDir)))
	})
}
