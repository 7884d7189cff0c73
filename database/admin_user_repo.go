package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByEmail matches the lower-cased email.
func (r *AdminUserRepo) FindByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, errs.NewNotFound("admin user")
	}
	return user, err
}

// Upsert creates the admin or, when the email exists, replaces its password hash and
// name. An empty name keeps the stored one.
func (r *AdminUserRepo) Upsert(ctx context.Context, email, passwordHash, name string) (models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.AdminUser

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&user, "email = ?", email).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.AdminUser{
				Email:        email,
				PasswordHash: passwordHash,
				Name:         name,
				Role:         models.RoleAdmin,
			}
			return tx.Create(&user).Error
		case err != nil:
			return err
		}

		user.PasswordHash = passwordHash
		if name != "" {
			user.Name = name
		}
		return tx.Model(&user).Select("password_hash", "name", "updated_at").Updates(&user).Error
	})
	return user, err
}
