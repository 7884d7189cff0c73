package models

const RoleAdmin = "admin"

// AdminUser can sign in to the admin panel.
type AdminUser struct {
	Base
	Email        string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Name         string `json:"name" db:"name" gorm:"type:text"`
	Role         string `json:"role" db:"role" gorm:"type:text;not null;default:admin"`
}
