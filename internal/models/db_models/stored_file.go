package db_models

import "github.com/google/uuid"

// StoredFile records one accepted upload. Exactly one row per successful
// store call; a failed upload writes nothing.
type StoredFile struct {
	BaseModel
	FormID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FieldID     string    `gorm:"not null"`
	Name        string    `gorm:"not null"`
	Path        string    `gorm:"not null"`
	URL         string    `gorm:"not null"`
	SizeBytes   int64
	ContentType string
}
