package db_models

import "github.com/google/uuid"

// Flow stages. Terminal stage is submitted; there is no path back from it.
const (
	StagePhone     = "phone"
	StageIdentity  = "identity"
	StageCustom    = "custom"
	StageSubmitted = "submitted"
)

// FormSession tracks one progressive-flow fill. PrefillJSON holds the
// identity values returned by member matching; ValuesJSON accumulates the
// per-field auto-saves. Abandoned is set by the best-effort beacon.
type FormSession struct {
	BaseModel
	FormID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubmissionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	MemberID     *uuid.UUID `gorm:"type:uuid"`
	Phone        string     `gorm:"not null"`
	Stage        string     `gorm:"default:'phone'"`
	PrefillJSON  string     `gorm:"type:jsonb"`
	ValuesJSON   string     `gorm:"type:jsonb"`
	Abandoned    bool
}
