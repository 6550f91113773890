package db_models

import "github.com/google/uuid"

// Submission is one stored response. MemberID is set when the submitter was
// matched to a known member; the composite unique index keeps a member to
// one submission per form, which is what prevents double voting.
type Submission struct {
	BaseModel
	FormID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_form_member"`
	MemberID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_form_member"`
	PayloadJSON string     `gorm:"type:jsonb"`
	Source      string     `gorm:"default:'standard'"` // standard | flow
	Finalized   bool
}
