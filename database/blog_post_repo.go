package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/models"
)

type BlogPostRepo struct {
	*Repo[models.BlogPost, *models.BlogPost]
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{NewRepo[models.BlogPost](db, "blog post")}
}

// FindPublished returns published posts, most recently published first. Posts without a
// publish date sort last.
func (r *BlogPostRepo) FindPublished(ctx context.Context) ([]models.BlogPost, error) {
	return r.FindAll(ctx, Query{
		Where:   map[string]any{"status": models.PublishStatusPublished},
		OrderBy: "published_at IS NULL, published_at DESC, created_at DESC",
	})
}
