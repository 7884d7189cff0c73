package validators

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/normalize"
)

type ProjectInput struct {
	Title            string     `json:"title"`
	ShortDescription string     `json:"shortDescription"`
	Content          string     `json:"content"`
	TechStack        StringList `json:"techStack"`
	Tags             StringList `json:"tags"`
	ThumbnailURL     string     `json:"thumbnailUrl"`
	BannerURL        string     `json:"bannerUrl"`
	GithubURL        string     `json:"githubUrl"`
	LiveURL          string     `json:"liveUrl"`
	Category         string     `json:"category"`
	Status           string     `json:"status"`
	IsFeatured       bool       `json:"isFeatured"`
}

func (in *ProjectInput) normalize() {
	trimAll(&in.Title, &in.ShortDescription, &in.ThumbnailURL, &in.BannerURL, &in.GithubURL,
		&in.LiveURL, &in.Category, &in.Status)
	in.TechStack = normalize.CleanList(in.TechStack)
	in.Tags = normalize.CleanList(in.Tags)
	if in.Status == "" {
		in.Status = models.ProjectStatusActive
	}
}

func (in ProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(3, 120), sluggable),
		validation.Field(&in.ShortDescription, validation.Required, validation.RuneLength(10, 400)),
		validation.Field(&in.Content, validation.Required, validation.RuneLength(20, 0)),
		validation.Field(&in.ThumbnailURL, mediaURL),
		validation.Field(&in.BannerURL, mediaURL),
		validation.Field(&in.GithubURL, mediaURL),
		validation.Field(&in.LiveURL, mediaURL),
		validation.Field(&in.Category, validation.Required, validation.RuneLength(2, 60)),
		validation.Field(&in.Status, validation.Required, enum(models.ProjectStatuses)),
	)
}

func ParseProject(body []byte) (models.Project, error) {
	var in ProjectInput
	if err := decode(body, &in); err != nil {
		return models.Project{}, err
	}
	in.normalize()
	if err := validationFailure("project", in.Validate()); err != nil {
		return models.Project{}, err
	}

	return models.Project{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		TechStack:        datatypes.JSONSlice[string](in.TechStack),
		Tags:             datatypes.JSONSlice[string](in.Tags),
		ThumbnailURL:     optional(in.ThumbnailURL),
		BannerURL:        optional(in.BannerURL),
		GithubURL:        optional(in.GithubURL),
		LiveURL:          optional(in.LiveURL),
		Category:         in.Category,
		Status:           in.Status,
		IsFeatured:       in.IsFeatured,
	}, nil
}
