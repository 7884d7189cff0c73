package api

import (
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/normalize"
	"github.com/rpupo63/studio-cms-backend/validators"
)

// newProjectHandler serves the admin project endpoints.
//
// @Summary Create project
// @Description Validates the payload, derives the slug from the title and stores the project.
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body validators.ProjectInput true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid project payload"
// @Router /api/projects [post]
func newProjectHandler(store resourceStore[models.Project]) resourceHandler[models.Project] {
	h := newResourceHandler("project", "projectHandler", store, validators.ParseProject)
	h.prepare = func(p *models.Project) {
		p.Slug = normalize.BuildSlug(p.Title)
	}
	h.listQuery = statusFilter(models.ProjectStatuses)
	return h
}
