package models

type Testimonial struct {
	Base
	Client    string  `json:"client" db:"client" gorm:"type:text;not null"`
	Role      *string `json:"role" db:"role" gorm:"type:text"`
	Company   *string `json:"company" db:"company" gorm:"type:text"`
	Quote     string  `json:"quote" db:"quote" gorm:"type:text;not null"`
	Rating    *int    `json:"rating" db:"rating"`
	AvatarURL *string `json:"avatarUrl" db:"avatar_url" gorm:"type:text"`
}
