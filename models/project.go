package models

import "gorm.io/datatypes"

const (
	ProjectStatusActive     = "ACTIVE"
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusArchived   = "ARCHIVED"
)

// ProjectStatuses lists the accepted lifecycle values for a project.
var ProjectStatuses = []string{ProjectStatusActive, ProjectStatusInProgress, ProjectStatusArchived}

// Project represents a portfolio entry
type Project struct {
	Base
	Title            string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug             string                      `json:"slug" db:"slug" gorm:"type:text;not null;index"`
	ShortDescription string                      `json:"shortDescription" db:"short_description" gorm:"type:text;not null"`
	Content          string                      `json:"content" db:"content" gorm:"type:text;not null"`
	TechStack        datatypes.JSONSlice[string] `json:"techStack" db:"tech_stack"`
	Tags             datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	ThumbnailURL     *string                     `json:"thumbnailUrl" db:"thumbnail_url" gorm:"type:text"`
	BannerURL        *string                     `json:"bannerUrl" db:"banner_url" gorm:"type:text"`
	GithubURL        *string                     `json:"githubUrl" db:"github_url" gorm:"type:text"`
	LiveURL          *string                     `json:"liveUrl" db:"live_url" gorm:"type:text"`
	Category         string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Status           string                      `json:"status" db:"status" gorm:"type:text;not null;default:ACTIVE;index"`
	IsFeatured       bool                        `json:"isFeatured" db:"is_featured" gorm:"not null;default:false"`
}
