package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "formflow/internal/models/db_models"
)

type FileRepositoryInterface interface {
	Create(ctx context.Context, file *dbm.StoredFile) error
}

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *dbm.StoredFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}
