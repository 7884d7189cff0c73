package models

// Service is an offering shown on the marketing site.
type Service struct {
	Base
	Title       string  `json:"title" db:"title" gorm:"type:text;not null"`
	Description string  `json:"description" db:"description" gorm:"type:text;not null"`
	Icon        *string `json:"icon" db:"icon" gorm:"type:text"`
	Category    *string `json:"category" db:"category" gorm:"type:text"`
}
