package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "formflow/internal/models/db_models"
	"formflow/pkg/utils"
)

type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *dbm.FormSession) error
	GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*dbm.FormSession, error)
	UpdateStage(ctx context.Context, submissionID uuid.UUID, stage string) error

	// SaveValue merges one field value into the session's partial values.
	// Concurrent blurs on different fields may interleave; they touch
	// disjoint keys so last-write-wins per key is acceptable.
	SaveValue(ctx context.Context, submissionID uuid.UUID, fieldID string, value any) error

	MarkAbandoned(ctx context.Context, submissionID uuid.UUID) error
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *dbm.FormSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*dbm.FormSession, error) {
	var session dbm.FormSession
	err := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) UpdateStage(ctx context.Context, submissionID uuid.UUID, stage string) error {
	return r.db.WithContext(ctx).Model(&dbm.FormSession{}).
		Where("submission_id = ?", submissionID).
		UpdateColumn("stage", stage).Error
}

func (r *SessionRepository) SaveValue(ctx context.Context, submissionID uuid.UUID, fieldID string, value any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session dbm.FormSession
		if err := tx.Where("submission_id = ?", submissionID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrSessionNotFound
			}
			return err
		}

		values := map[string]any{}
		if session.ValuesJSON != "" {
			if err := json.Unmarshal([]byte(session.ValuesJSON), &values); err != nil {
				values = map[string]any{}
			}
		}
		values[fieldID] = value

		raw, err := json.Marshal(values)
		if err != nil {
			return err
		}
		return tx.Model(&dbm.FormSession{}).
			Where("submission_id = ?", submissionID).
			UpdateColumn("values_json", string(raw)).Error
	})
}

func (r *SessionRepository) MarkAbandoned(ctx context.Context, submissionID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&dbm.FormSession{}).
		Where("submission_id = ? AND stage <> ?", submissionID, dbm.StageSubmitted).
		UpdateColumn("abandoned", true).Error
}
