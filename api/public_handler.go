package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-cms-backend/database"
	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
)

type lister[M any] interface {
	FindAll(ctx context.Context, q database.Query) ([]M, error)
}

type visibleProjects interface {
	FindVisible(ctx context.Context) ([]models.Project, error)
}

type publishedPosts interface {
	FindPublished(ctx context.Context) ([]models.BlogPost, error)
}

// publicHandler serves the unauthenticated read API consumed by the site frontend.
type publicHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projects     visibleProjects
	posts        publishedPosts
	services     lister[models.Service]
	team         lister[models.TeamMember]
	testimonials lister[models.Testimonial]
}

func newPublicHandler(
	projects visibleProjects,
	posts publishedPosts,
	services lister[models.Service],
	team lister[models.TeamMember],
	testimonials lister[models.Testimonial],
) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projects:     projects,
		posts:        posts,
		services:     services,
		team:         team,
		testimonials: testimonials,
	}
}

// @Summary Published blog posts
// @Description Newest publication first; posts without a publication date come last.
// @Tags Public
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/public/blog [get]
func (h publicHandler) blog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.FindPublished(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "blog post", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// @Summary Visible projects
// @Tags Public
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/public/projects [get]
func (h publicHandler) projectList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindVisible(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "project", err))
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// @Summary Services
// @Tags Public
// @Produce json
// @Success 200 {array} models.Service
// @Router /api/public/services [get]
func (h publicHandler) serviceList() http.HandlerFunc {
	return listAll(h.responder, h.services, "service", database.OldestFirst)
}

// @Summary Team members
// @Tags Public
// @Produce json
// @Success 200 {array} models.TeamMember
// @Router /api/public/team [get]
func (h publicHandler) teamList() http.HandlerFunc {
	return listAll(h.responder, h.team, "team member", database.OldestFirst)
}

// @Summary Testimonials
// @Tags Public
// @Produce json
// @Success 200 {array} models.Testimonial
// @Router /api/public/testimonials [get]
func (h publicHandler) testimonialList() http.HandlerFunc {
	return listAll(h.responder, h.testimonials, "testimonial", database.Query{})
}

// @Summary Site settings
// @Tags Public
// @Produce json
// @Success 200 {object} models.SiteSettings
// @Router /api/public/settings [get]
func (h publicHandler) settings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, ok := ctxGetSiteSettings(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewInternalError("site settings missing from request context"))
			return
		}
		h.responder.WriteJSON(w, settings)
	}
}

func listAll[M any](responder Responder, store lister[M], entity string, q database.Query) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.FindAll(r.Context(), q)
		if err != nil {
			responder.WriteError(w, wrapDatabaseError("list", entity, err))
			return
		}
		responder.WriteJSON(w, items)
	}
}
