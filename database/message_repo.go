package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/models"
)

type MessageRepo struct {
	*Repo[models.ContactMessage, *models.ContactMessage]
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{NewRepo[models.ContactMessage](db, "message")}
}

// SetRead flips the read flag and returns the updated message.
func (r *MessageRepo) SetRead(ctx context.Context, id uuid.UUID, isRead bool) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", isRead)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewNotFound(r.entity)
		}
		return tx.First(&msg, "id = ?", id).Error
	})
	return msg, err
}
