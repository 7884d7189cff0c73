package api

import (
	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/normalize"
	"github.com/rpupo63/studio-cms-backend/validators"
)

// newBlogPostHandler serves the admin blog endpoints. The publish date is taken from the
// payload as is; changing the status never stamps it.
//
// @Summary Update blog post
// @Description Replaces every field of the post and recomputes its slug.
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID" format(uuid)
// @Param post body validators.BlogPostInput true "Blog post data"
// @Success 200 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse "Invalid blog post payload"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /api/blog/{id} [put]
func newBlogPostHandler(store resourceStore[models.BlogPost]) resourceHandler[models.BlogPost] {
	h := newResourceHandler("blog post", "blogPostHandler", store, validators.ParseBlogPost)
	h.prepare = func(p *models.BlogPost) {
		p.Slug = normalize.BuildSlug(p.Title)
	}
	h.listQuery = statusFilter(models.PublishStatuses)
	return h
}
