package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "formflow/internal/models/db_models"
	"formflow/pkg/utils"
)

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, submission *dbm.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Submission, error)

	// Finalize stores the payload, the member attribution and the
	// finalized flag in one update. Writing member_id here lets the
	// (form_id, member_id) unique index reject a member's second ballot.
	Finalize(ctx context.Context, id uuid.UUID, payloadJSON string, memberID *uuid.UUID) error

	ListByForm(ctx context.Context, formID uuid.UUID, page, pageSize int) ([]dbm.Submission, int64, error)
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *dbm.Submission) error {
	err := r.db.WithContext(ctx).Create(submission).Error
	if isUniqueViolation(err) {
		return utils.ErrDuplicateSubmission
	}
	return err
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Submission, error) {
	var sub dbm.Submission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) Finalize(ctx context.Context, id uuid.UUID, payloadJSON string, memberID *uuid.UUID) error {
	updates := map[string]interface{}{"payload_json": payloadJSON, "finalized": true}
	if memberID != nil {
		updates["member_id"] = *memberID
	}
	err := r.db.WithContext(ctx).Model(&dbm.Submission{}).
		Where("id = ?", id).
		Updates(updates).Error
	if isUniqueViolation(err) {
		return utils.ErrDuplicateSubmission
	}
	return err
}

func (r *SubmissionRepository) ListByForm(ctx context.Context, formID uuid.UUID, page, pageSize int) ([]dbm.Submission, int64, error) {
	var subs []dbm.Submission
	var total int64

	q := r.db.WithContext(ctx).Model(&dbm.Submission{}).
		Where("form_id = ? AND finalized = true", formID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, total, err
}

// isUniqueViolation detects postgres error 23505, which the double-vote
// unique index raises.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
