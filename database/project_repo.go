package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/models"
)

type ProjectRepo struct {
	*Repo[models.Project, *models.Project]
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{NewRepo[models.Project](db, "project")}
}

// FindVisible returns every project that is not archived, newest first.
func (r *ProjectRepo) FindVisible(ctx context.Context) ([]models.Project, error) {
	return r.FindAll(ctx, Query{
		Not: map[string]any{"status": models.ProjectStatusArchived},
	})
}
