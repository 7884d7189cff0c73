package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettingsID is the fixed primary key of the settings singleton.
const SiteSettingsID uint = 1

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

var Themes = []string{ThemeLight, ThemeDark, ThemeSystem}

// SocialNetworks are the keys accepted in SiteSettings.SocialLinks.
var SocialNetworks = []string{"twitter", "linkedin", "github", "dribbble", "instagram"}

// SiteSettings holds the global branding of the site. Exactly one row exists.
type SiteSettings struct {
	ID           uint              `json:"id" db:"id" gorm:"primaryKey;autoIncrement:false"`
	SiteTitle    string            `json:"siteTitle" db:"site_title" gorm:"type:text;not null"`
	Tagline      *string           `json:"tagline" db:"tagline" gorm:"type:text"`
	ContactEmail *string           `json:"contactEmail" db:"contact_email" gorm:"type:text"`
	SocialLinks  datatypes.JSONMap `json:"socialLinks" db:"social_links"`
	LogoURL      *string           `json:"logoUrl" db:"logo_url" gorm:"type:text"`
	FaviconURL   *string           `json:"faviconUrl" db:"favicon_url" gorm:"type:text"`
	FooterText   *string           `json:"footerText" db:"footer_text" gorm:"type:text"`
	Theme        string            `json:"theme" db:"theme" gorm:"type:text;not null;default:light"`
	UpdatedAt    time.Time         `json:"updatedAt" db:"updated_at"`
}

// DefaultSiteSettings is the row created when none exists yet.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:          SiteSettingsID,
		SiteTitle:   "Untitled Site",
		SocialLinks: datatypes.JSONMap{"twitter": "", "linkedin": "", "github": ""},
		Theme:       ThemeLight,
	}
}
