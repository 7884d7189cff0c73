package models

// ContactMessage is submitted through the public contact form. Only IsRead ever changes
// after creation.
type ContactMessage struct {
	Base
	Name    string `json:"name" db:"name" gorm:"type:text;not null"`
	Email   string `json:"email" db:"email" gorm:"type:text;not null"`
	Message string `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead  bool   `json:"isRead" db:"is_read" gorm:"not null;default:false;index"`
}
