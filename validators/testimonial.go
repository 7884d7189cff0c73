package validators

import (
	"errors"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rpupo63/studio-cms-backend/models"
)

// starRating allows null, otherwise a whole number from 1 to 5.
var starRating = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	f, ok := v.(float64)
	if isNil || !ok {
		return nil
	}
	if f < 1 || f > 5 || f != math.Trunc(f) {
		return errors.New("must be a whole number between 1 and 5")
	}
	return nil
})

type TestimonialInput struct {
	Client    string   `json:"client"`
	Role      string   `json:"role"`
	Company   string   `json:"company"`
	Quote     string   `json:"quote"`
	Rating    *float64 `json:"rating"`
	AvatarURL string   `json:"avatarUrl"`
}

func (in TestimonialInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Client, validation.Required, validation.RuneLength(2, 120)),
		validation.Field(&in.Role, validation.RuneLength(0, 120)),
		validation.Field(&in.Company, validation.RuneLength(0, 120)),
		validation.Field(&in.Quote, validation.Required, validation.RuneLength(10, 0)),
		validation.Field(&in.Rating, starRating),
		validation.Field(&in.AvatarURL, mediaURL),
	)
}

// ParseTestimonial decodes a testimonial. A null or absent rating is stored as NULL.
func ParseTestimonial(body []byte) (models.Testimonial, error) {
	var in TestimonialInput
	if err := decode(body, &in); err != nil {
		return models.Testimonial{}, err
	}
	trimAll(&in.Client, &in.Role, &in.Company, &in.Quote, &in.AvatarURL)
	if err := validationFailure("testimonial", in.Validate()); err != nil {
		return models.Testimonial{}, err
	}

	t := models.Testimonial{
		Client:    in.Client,
		Role:      optional(in.Role),
		Company:   optional(in.Company),
		Quote:     in.Quote,
		AvatarURL: optional(in.AvatarURL),
	}
	if in.Rating != nil {
		rating := int(*in.Rating)
		t.Rating = &rating
	}
	return t, nil
}
