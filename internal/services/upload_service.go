package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"formflow/internal/forms"
	"formflow/internal/infra"
	dbm "formflow/internal/models/db_models"
	"formflow/internal/models/response_models"
	"formflow/internal/repositories"
	mem "formflow/pkg/memcache"
	"formflow/pkg/utils"
)

type UploadServiceInterface interface {
	Upload(ctx context.Context, slug, fieldID, filename, contentType string, size int64, r io.Reader) (*response_models.UploadResponse, error)
}

type UploadService struct {
	formRepo repositories.FormRepositoryInterface
	fileRepo repositories.FileRepositoryInterface
	store    infra.FileStore
	cache    mem.SchemaCacheStore
}

func NewUploadService(
	formRepo repositories.FormRepositoryInterface,
	fileRepo repositories.FileRepositoryInterface,
	store infra.FileStore,
	cache mem.SchemaCacheStore,
) UploadServiceInterface {
	return &UploadService{formRepo: formRepo, fileRepo: fileRepo, store: store, cache: cache}
}

const defaultMaxUploadMB = 10.0

// Upload size-gates before any bytes reach the store: an oversized or
// wrong-typed file never produces a store call, so a failed upload can never
// leave a phantom file entry.
func (s *UploadService) Upload(ctx context.Context, slug, fieldID, filename, contentType string, size int64, r io.Reader) (*response_models.UploadResponse, error) {
	form, err := s.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := availabilityError(form); err != nil {
		return nil, err
	}

	field := s.lookupField(form, fieldID)

	limitMB := defaultMaxUploadMB
	if field != nil && field.Validation != nil && field.Validation.MaxFileSizeMB > 0 {
		limitMB = field.Validation.MaxFileSizeMB
	}
	if float64(size) > limitMB*1024*1024 {
		return nil, utils.ErrFileTooLarge
	}

	if field != nil && field.Validation != nil && len(field.Validation.AllowedFileTypes) > 0 {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
		allowed := false
		for _, t := range field.Validation.AllowedFileTypes {
			if strings.EqualFold(strings.TrimPrefix(t, "."), ext) {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, utils.ErrFileTypeNotAllowed
		}
	}

	obj, err := s.store.Store(fieldID, filename, r)
	if err != nil {
		return nil, err
	}

	record := &dbm.StoredFile{
		FormID:      form.ID,
		FieldID:     fieldID,
		Name:        filename,
		Path:        obj.Path,
		URL:         obj.URL,
		SizeBytes:   size,
		ContentType: contentType,
	}
	if err := s.fileRepo.Create(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UploadResponse{
		URL:         obj.URL,
		Path:        obj.Path,
		Name:        filename,
		SizeBytes:   size,
		ContentType: contentType,
	}, nil
}

func (s *UploadService) lookupField(form *dbm.Form, fieldID string) *forms.FieldConfig {
	var fields []forms.FieldConfig
	if cached, ok := s.cache.Get(form.Slug); ok {
		fields = cached
	} else {
		doc, err := forms.ParseSchema([]byte(form.SchemaJSON))
		if err != nil {
			return nil
		}
		fields = forms.NormalizeSchema(doc, forms.NormalizeOptions{})
	}
	for i := range fields {
		if fields[i].ID == fieldID {
			return &fields[i]
		}
	}
	return nil
}
