package db_models

import "github.com/google/uuid"

// AnalyticsEvent is a fire-and-forget page event: view, start, page_turn,
// complete. Inserted best-effort; nothing reads it on the hot path.
type AnalyticsEvent struct {
	BaseModel
	FormID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitorID string    `gorm:"index"`
	Event     string    `gorm:"not null"`
	MetaJSON  string    `gorm:"type:jsonb"`
}
