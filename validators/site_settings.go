package validators

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/datatypes"

	"github.com/rpupo63/studio-cms-backend/models"
)

// SocialLinksInput only knows the supported networks; other keys are dropped on decode.
type SocialLinksInput struct {
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`
	Github    string `json:"github"`
	Dribbble  string `json:"dribbble"`
	Instagram string `json:"instagram"`
}

func (in SocialLinksInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Twitter, mediaURL),
		validation.Field(&in.Linkedin, mediaURL),
		validation.Field(&in.Github, mediaURL),
		validation.Field(&in.Dribbble, mediaURL),
		validation.Field(&in.Instagram, mediaURL),
	)
}

func (in SocialLinksInput) toMap() datatypes.JSONMap {
	links := datatypes.JSONMap{}
	for network, link := range map[string]string{
		"twitter":   in.Twitter,
		"linkedin":  in.Linkedin,
		"github":    in.Github,
		"dribbble":  in.Dribbble,
		"instagram": in.Instagram,
	} {
		if link != "" {
			links[network] = link
		}
	}
	return links
}

type SiteSettingsInput struct {
	SiteTitle    string           `json:"siteTitle"`
	Tagline      string           `json:"tagline"`
	ContactEmail string           `json:"contactEmail"`
	SocialLinks  SocialLinksInput `json:"socialLinks"`
	LogoURL      string           `json:"logoUrl"`
	FaviconURL   string           `json:"faviconUrl"`
	FooterText   string           `json:"footerText"`
	Theme        string           `json:"theme"`
}

func (in *SiteSettingsInput) normalize() {
	trimAll(&in.SiteTitle, &in.Tagline, &in.ContactEmail, &in.LogoURL, &in.FaviconURL, &in.FooterText, &in.Theme)
	s := &in.SocialLinks
	trimAll(&s.Twitter, &s.Linkedin, &s.Github, &s.Dribbble, &s.Instagram)
	if in.Theme == "" {
		in.Theme = models.ThemeLight
	}
}

func (in SiteSettingsInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.SiteTitle, validation.Required, validation.RuneLength(2, 120)),
		validation.Field(&in.Tagline, validation.RuneLength(0, 240)),
		validation.Field(&in.ContactEmail, is.EmailFormat),
		validation.Field(&in.SocialLinks),
		validation.Field(&in.LogoURL, mediaURL),
		validation.Field(&in.FaviconURL, mediaURL),
		validation.Field(&in.FooterText, validation.RuneLength(0, 400)),
		validation.Field(&in.Theme, validation.Required, enum(models.Themes)),
	)
}

// ParseSiteSettings decodes the full settings document. The result always targets the
// singleton row.
func ParseSiteSettings(body []byte) (models.SiteSettings, error) {
	var in SiteSettingsInput
	if err := decode(body, &in); err != nil {
		return models.SiteSettings{}, err
	}
	in.normalize()
	if err := validationFailure("settings", in.Validate()); err != nil {
		return models.SiteSettings{}, err
	}

	return models.SiteSettings{
		ID:           models.SiteSettingsID,
		SiteTitle:    in.SiteTitle,
		Tagline:      optional(in.Tagline),
		ContactEmail: optional(in.ContactEmail),
		SocialLinks:  in.SocialLinks.toMap(),
		LogoURL:      optional(in.LogoURL),
		FaviconURL:   optional(in.FaviconURL),
		FooterText:   optional(in.FooterText),
		Theme:        in.Theme,
	}, nil
}
