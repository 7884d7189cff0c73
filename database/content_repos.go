package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/models"
)

type (
	ServiceRepo     = Repo[models.Service, *models.Service]
	TestimonialRepo = Repo[models.Testimonial, *models.Testimonial]
	TeamMemberRepo  = Repo[models.TeamMember, *models.TeamMember]
	MediaAssetRepo  = Repo[models.MediaAsset, *models.MediaAsset]
)

const oldestFirst = "created_at ASC"

// OldestFirst orders services and team members the way the public site lists them.
var OldestFirst = Query{OrderBy: oldestFirst}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return NewRepo[models.Service](db, "service")
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return NewRepo[models.Testimonial](db, "testimonial")
}

func NewTeamMemberRepo(db *gorm.DB) *TeamMemberRepo {
	return NewRepo[models.TeamMember](db, "team member")
}

func NewMediaAssetRepo(db *gorm.DB) *MediaAssetRepo {
	return NewRepo[models.MediaAsset](db, "media asset")
}
