package services

import (
	"context"
	"encoding/json"

	dbm "formflow/internal/models/db_models"
	"formflow/internal/repositories"
)

// AnalyticsServiceInterface records page-level events. This subsystem is
// deliberately separate from the flow's per-session tracking: analytics is
// anonymous and form-scoped, the flow rows are per-submission.
type AnalyticsServiceInterface interface {
	Record(ctx context.Context, slug, visitorID, event string, meta map[string]any) error
}

type AnalyticsService struct {
	formRepo      repositories.FormRepositoryInterface
	analyticsRepo repositories.AnalyticsRepositoryInterface
}

func NewAnalyticsService(
	formRepo repositories.FormRepositoryInterface,
	analyticsRepo repositories.AnalyticsRepositoryInterface,
) AnalyticsServiceInterface {
	return &AnalyticsService{formRepo: formRepo, analyticsRepo: analyticsRepo}
}

func (s *AnalyticsService) Record(ctx context.Context, slug, visitorID, event string, meta map[string]any) error {
	form, err := s.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	record := &dbm.AnalyticsEvent{
		FormID:    form.ID,
		VisitorID: visitorID,
		Event:     event,
	}
	if len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err == nil {
			record.MetaJSON = string(raw)
		}
	}
	return s.analyticsRepo.Insert(ctx, record)
}
