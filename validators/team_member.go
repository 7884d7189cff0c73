package validators

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/rpupo63/studio-cms-backend/models"
	"github.com/rpupo63/studio-cms-backend/normalize"
)

type TeamMemberInput struct {
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Bio         string     `json:"bio"`
	Skills      StringList `json:"skills"`
	AvatarURL   string     `json:"avatarUrl"`
	LinkedinURL string     `json:"linkedinUrl"`
	GithubURL   string     `json:"githubUrl"`
}

func (in TeamMemberInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(2, 120)),
		validation.Field(&in.Role, validation.Required, validation.RuneLength(2, 120)),
		validation.Field(&in.Bio, validation.Required, validation.RuneLength(10, 0)),
		validation.Field(&in.AvatarURL, mediaURL),
		validation.Field(&in.LinkedinURL, mediaURL),
		validation.Field(&in.GithubURL, mediaURL),
	)
}

func ParseTeamMember(body []byte) (models.TeamMember, error) {
	var in TeamMemberInput
	if err := decode(body, &in); err != nil {
		return models.TeamMember{}, err
	}
	trimAll(&in.Name, &in.Role, &in.Bio, &in.AvatarURL, &in.LinkedinURL, &in.GithubURL)
	in.Skills = normalize.CleanList(in.Skills)
	if err := validationFailure("team member", in.Validate()); err != nil {
		return models.TeamMember{}, err
	}

	return models.TeamMember{
		Name:        in.Name,
		Role:        in.Role,
		Bio:         in.Bio,
		Skills:      datatypes.JSONSlice[string](in.Skills),
		AvatarURL:   optional(in.AvatarURL),
		LinkedinURL: optional(in.LinkedinURL),
		GithubURL:   optional(in.GithubURL),
	}, nil
}
