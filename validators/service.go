package validators

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rpupo63/studio-cms-backend/models"
)

type ServiceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

func (in ServiceInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(3, 120)),
		validation.Field(&in.Description, validation.Required, validation.RuneLength(10, 0)),
		validation.Field(&in.Icon, mediaURL),
		validation.Field(&in.Category, validation.RuneLength(2, 60)),
	)
}

func ParseService(body []byte) (models.Service, error) {
	var in ServiceInput
	if err := decode(body, &in); err != nil {
		return models.Service{}, err
	}
	trimAll(&in.Title, &in.Description, &in.Icon, &in.Category)
	if err := validationFailure("service", in.Validate()); err != nil {
		return models.Service{}, err
	}

	return models.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        optional(in.Icon),
		Category:    optional(in.Category),
	}, nil
}
