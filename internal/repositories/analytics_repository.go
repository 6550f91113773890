package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "formflow/internal/models/db_models"
)

type AnalyticsRepositoryInterface interface {
	Insert(ctx context.Context, event *dbm.AnalyticsEvent) error
}

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, event *dbm.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
