package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "formflow/internal/models/db_models"
)

type MemberRepositoryInterface interface {
	// FindByPhone matches on normalized 10-digit phone. A miss returns
	// (nil, nil): no member is not an error for prefill.
	FindByPhone(ctx context.Context, phone string) (*dbm.Member, error)
	FindByEmail(ctx context.Context, email string) (*dbm.Member, error)
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) FindByPhone(ctx context.Context, phone string) (*dbm.Member, error) {
	var member dbm.Member
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*dbm.Member, error) {
	var member dbm.Member
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}
