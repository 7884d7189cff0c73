package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/studio-cms-backend/models"
)

// SettingsRepo owns the single site settings row.
type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db}
}

// Get returns the settings row, creating it with defaults when absent. Concurrent
// first reads race on the insert; the loser's insert is a no-op and it reads the
// winner's row.
func (r *SettingsRepo) Get(ctx context.Context) (models.SiteSettings, error) {
	db := r.db.WithContext(ctx)

	var settings models.SiteSettings
	err := db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return settings, err
	}

	defaults := models.DefaultSiteSettings()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&defaults).Error
	if err != nil {
		return models.SiteSettings{}, err
	}

	err = db.First(&settings, "id = ?", models.SiteSettingsID).Error
	return settings, err
}

// Ensure creates the default row if it does not exist yet.
func (r *SettingsRepo) Ensure(ctx context.Context) error {
	_, err := r.Get(ctx)
	return err
}

// Save upserts settings onto the singleton row and returns the stored values.
func (r *SettingsRepo) Save(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	settings.ID = models.SiteSettingsID
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&settings).Error
	if err != nil {
		return models.SiteSettings{}, err
	}

	var stored models.SiteSettings
	err = db.First(&stored, "id = ?", models.SiteSettingsID).Error
	return stored, err
}
