package models

// MediaAsset describes an uploaded file. Other entities reference it by URL only.
type MediaAsset struct {
	Base
	Filename string `json:"filename" db:"filename" gorm:"type:text;not null"`
	URL      string `json:"url" db:"url" gorm:"type:text;not null"`
	Size     int64  `json:"size" db:"size" gorm:"not null"`
	MimeType string `json:"mimeType" db:"mime_type" gorm:"type:text"`
}
