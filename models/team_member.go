package models

import "gorm.io/datatypes"

type TeamMember struct {
	Base
	Name        string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Role        string                      `json:"role" db:"role" gorm:"type:text;not null"`
	Bio         string                      `json:"bio" db:"bio" gorm:"type:text;not null"`
	Skills      datatypes.JSONSlice[string] `json:"skills" db:"skills"`
	AvatarURL   *string                     `json:"avatarUrl" db:"avatar_url" gorm:"type:text"`
	LinkedinURL *string                     `json:"linkedinUrl" db:"linkedin_url" gorm:"type:text"`
	GithubURL   *string                     `json:"githubUrl" db:"github_url" gorm:"type:text"`
}
