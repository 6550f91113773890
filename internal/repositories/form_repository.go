package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "formflow/internal/models/db_models"
	"formflow/pkg/utils"
)

type FormRepositoryInterface interface {
	GetBySlug(ctx context.Context, slug string) (*dbm.Form, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Form, error)

	// IncrementSubmissionCount bumps the counter only while the form is
	// under its limit; returns ErrSubmissionLimitReached when the guard
	// fails. The single guarded UPDATE is what makes the limit race-safe.
	IncrementSubmissionCount(ctx context.Context, id uuid.UUID) error
}

type FormRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

func (r *FormRepository) GetBySlug(ctx context.Context, slug string) (*dbm.Form, error) {
	var form dbm.Form
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&form).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Form, error) {
	var form dbm.Form
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&form).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) IncrementSubmissionCount(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&dbm.Form{}).
		Where("id = ? AND (max_submissions = 0 OR submission_count < max_submissions)", id).
		UpdateColumn("submission_count", gorm.Expr("submission_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrSubmissionLimitReached
	}
	return nil
}
