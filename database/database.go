package database

import (
	"context"

	"gorm.io/gorm"
)

type Database struct {
	db              *gorm.DB
	blogPostRepo    *BlogPostRepo
	projectRepo     *ProjectRepo
	serviceRepo     *ServiceRepo
	testimonialRepo *TestimonialRepo
	teamMemberRepo  *TeamMemberRepo
	messageRepo     *MessageRepo
	mediaAssetRepo  *MediaAssetRepo
	settingsRepo    *SettingsRepo
	adminUserRepo   *AdminUserRepo
	statsRepo       *StatsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	d := Database{
		db:              db,
		blogPostRepo:    NewBlogPostRepo(db),
		projectRepo:     NewProjectRepo(db),
		serviceRepo:     NewServiceRepo(db),
		testimonialRepo: NewTestimonialRepo(db),
		teamMemberRepo:  NewTeamMemberRepo(db),
		messageRepo:     NewMessageRepo(db),
		mediaAssetRepo:  NewMediaAssetRepo(db),
		settingsRepo:    NewSettingsRepo(db),
		adminUserRepo:   NewAdminUserRepo(db),
	}
	d.statsRepo = NewStatsRepo(db, d.projectRepo, d.blogPostRepo, d.messageRepo)
	return d
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

func (d Database) MediaAssetRepo() *MediaAssetRepo {
	return d.mediaAssetRepo
}

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

func (d Database) StatsRepo() *StatsRepo {
	return d.statsRepo
}

// Ping checks that the primary database answers.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
