package validators

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/normalize"
)

type BlogPostInput struct {
	Title          string     `json:"title"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content"`
	Tags           StringList `json:"tags"`
	FeaturedImage  string     `json:"featuredImage"`
	PublishedAt    string     `json:"publishedAt"`
	Status         string     `json:"status"`
	SeoTitle       string     `json:"seoTitle"`
	SeoDescription string     `json:"seoDescription"`
}

func (in *BlogPostInput) normalize() {
	trimAll(&in.Title, &in.Excerpt, &in.FeaturedImage, &in.PublishedAt, &in.Status, &in.SeoTitle, &in.SeoDescription)
	in.Tags = normalize.CleanList(in.Tags)
	if in.Status == "" {
		in.Status = models.PublishStatusDraft
	}
}

func (in BlogPostInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(5, 160), sluggable),
		validation.Field(&in.Excerpt, validation.RuneLength(0, 320)),
		validation.Field(&in.Content, validation.Required, validation.RuneLength(50, 0)),
		validation.Field(&in.FeaturedImage, mediaURL),
		validation.Field(&in.PublishedAt,
			validation.Date(time.RFC3339).Error("must be an ISO 8601 timestamp"),
			validation.When(in.Status == models.PublishStatusDraft,
				validation.Empty.Error("must be empty while the post is a draft")),
		),
		validation.Field(&in.Status, validation.Required, enum(models.PublishStatuses)),
		validation.Field(&in.SeoTitle, validation.RuneLength(0, 160)),
		validation.Field(&in.SeoDescription, validation.RuneLength(0, 320)),
	)
}

// ParseBlogPost decodes and validates a blog post body. The slug is left empty; the
// handler derives it from the title.
func ParseBlogPost(body []byte) (models.BlogPost, error) {
	var in BlogPostInput
	if err := decode(body, &in); err != nil {
		return models.BlogPost{}, err
	}
	in.normalize()
	if err := validationFailure("blog post", in.Validate()); err != nil {
		return models.BlogPost{}, err
	}

	post := models.BlogPost{
		Title:          in.Title,
		Excerpt:        optional(in.Excerpt),
		Content:        in.Content,
		Tags:           datatypes.JSONSlice[string](in.Tags),
		FeaturedImage:  optional(in.FeaturedImage),
		Status:         in.Status,
		SeoTitle:       optional(in.SeoTitle),
		SeoDescription: optional(in.SeoDescription),
	}
	if in.PublishedAt != "" {
		publishedAt, _ := time.Parse(time.RFC3339, in.PublishedAt)
		publishedAt = publishedAt.UTC()
		post.PublishedAt = &publishedAt
	}
	return post, nil
}
