package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PublishStatusDraft     = "DRAFT"
	PublishStatusPublished = "PUBLISHED"
	PublishStatusArchived  = "ARCHIVED"
)

// PublishStatuses lists the accepted lifecycle values for a blog post.
var PublishStatuses = []string{PublishStatusDraft, PublishStatusPublished, PublishStatusArchived}

// BlogPost represents a complete blog post with metadata
type BlogPost struct {
	Base
	Title          string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug           string                      `json:"slug" db:"slug" gorm:"type:text;not null;index"`
	Excerpt        *string                     `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content        string                      `json:"content" db:"content" gorm:"type:text;not null"`
	Tags           datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	FeaturedImage  *string                     `json:"featuredImage" db:"featured_image" gorm:"type:text"`
	PublishedAt    *time.Time                  `json:"publishedAt" db:"published_at" gorm:"index"`
	Status         string                      `json:"status" db:"status" gorm:"type:text;not null;default:DRAFT;index"`
	SeoTitle       *string                     `json:"seoTitle" db:"seo_title" gorm:"type:text"`
	SeoDescription *string                     `json:"seoDescription" db:"seo_description" gorm:"type:text"`
}
