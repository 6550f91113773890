package db_models

import "time"

// Form is a stored form or ballot definition. SchemaJSON is the opaque
// schema document; the engine in internal/forms interprets it at render
// time, the database never looks inside it.
type Form struct {
	BaseModel
	Slug            string `gorm:"uniqueIndex;not null"`
	Title           string `gorm:"not null"`
	SchemaJSON      string `gorm:"type:jsonb;not null"`
	OpensAt         *time.Time
	ClosesAt        *time.Time
	MaxSubmissions  int `gorm:"default:0"` // 0 = unlimited
	SubmissionCount int `gorm:"default:0"`
	MembersOnly     bool
	ManageKeyHash   string

	Submissions []Submission
}
