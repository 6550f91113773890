package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"formflow/internal/forms"
	"formflow/internal/forms/render"
	dbm "formflow/internal/models/db_models"
	"formflow/internal/models/request_models"
	"formflow/internal/models/response_models"
	"formflow/internal/repositories"
	mem "formflow/pkg/memcache"
	"formflow/pkg/utils"
)

const schemaCacheTTL = 5 * time.Minute

// Render surfaces. The vote surface adds the members-only gate; embed is the
// same form without chrome.
const (
	SurfacePage  = "page"
	SurfaceEmbed = "embed"
	SurfaceVote  = "vote"
)

type FormServiceInterface interface {
	GetFormView(ctx context.Context, slugOrID string, surface string) (*response_models.FormViewResponse, error)
	SubmitForm(ctx context.Context, slugOrID string, surface string, req request_models.SubmitFormRequest) (*response_models.SubmitFormResponse, error)
	ListSubmissions(ctx context.Context, slug string, manageKey string, page, pageSize int) (*response_models.ListSubmissionsResponse, error)
}

type FormService struct {
	formRepo       repositories.FormRepositoryInterface
	submissionRepo repositories.SubmissionRepositoryInterface
	memberRepo     repositories.MemberRepositoryInterface
	cache          mem.SchemaCacheStore
	registry       *render.Registry
}

func NewFormService(
	formRepo repositories.FormRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	cache mem.SchemaCacheStore,
	registry *render.Registry,
) FormServiceInterface {
	return &FormService{
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		memberRepo:     memberRepo,
		cache:          cache,
		registry:       registry,
	}
}

func (s *FormService) GetFormView(ctx context.Context, slugOrID string, surface string) (*response_models.FormViewResponse, error) {
	form, err := s.resolveForm(ctx, slugOrID)
	if err != nil {
		return nil, err
	}

	view := &response_models.FormViewResponse{
		FormID:  form.ID.String(),
		Slug:    form.Slug,
		Title:   form.Title,
		Surface: surface,
	}

	if status := availabilityStatus(form); status != response_models.StatusOpen {
		view.Status = status
		return view, nil
	}

	fields, err := s.schemaFields(form)
	if err != nil {
		return nil, err
	}

	view.Status = response_models.StatusOpen
	view.Controls = s.registry.RenderAll(fields)
	view.TotalPages = forms.NewPaginator(fields).TotalPages()
	return view, nil
}

func (s *FormService) SubmitForm(ctx context.Context, slugOrID string, surface string, req request_models.SubmitFormRequest) (*response_models.SubmitFormResponse, error) {
	form, err := s.resolveForm(ctx, slugOrID)
	if err != nil {
		return nil, err
	}
	if err := availabilityError(form); err != nil {
		return nil, err
	}

	fields, err := s.schemaFields(form)
	if err != nil {
		return nil, err
	}

	values := forms.FormValues(req.Values)
	errs, firstPage := forms.ValidateAll(fields, values)
	if len(errs) > 0 {
		return &response_models.SubmitFormResponse{
			Errors:         errs,
			FirstErrorPage: firstPage,
		}, nil
	}

	member, err := s.matchMember(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if surface == SurfaceVote && form.MembersOnly && member == nil {
		return nil, utils.ErrMembersOnly
	}

	// The guarded increment enforces the submission limit; only then does
	// the row get stored.
	if err := s.formRepo.IncrementSubmissionCount(ctx, form.ID); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req.Values)
	if err != nil {
		return nil, err
	}

	submission := &dbm.Submission{
		FormID:      form.ID,
		PayloadJSON: string(payload),
		Source:      "standard",
		Finalized:   true,
	}
	if member != nil {
		submission.MemberID = &member.ID
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return &response_models.SubmitFormResponse{
		SubmissionID: submission.ID.String(),
		Confirmation: s.confirmationMessage(form),
	}, nil
}

func (s *FormService) ListSubmissions(ctx context.Context, slug string, manageKey string, page, pageSize int) (*response_models.ListSubmissionsResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	form, err := s.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if form.ManageKeyHash == "" || utils.CompareManageKey(form.ManageKeyHash, manageKey) != nil {
		return nil, utils.ErrInvalidManageKey
	}

	subs, total, err := s.submissionRepo.ListByForm(ctx, form.ID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.ListSubmissionsResponse{Total: int(total)}
	for _, sub := range subs {
		values := map[string]any{}
		if sub.PayloadJSON != "" {
			if err := json.Unmarshal([]byte(sub.PayloadJSON), &values); err != nil {
				log.Printf("submissions: bad payload on %s: %v", sub.ID, err)
			}
		}
		out.Submissions = append(out.Submissions, response_models.SubmissionSummary{
			SubmissionID: sub.ID.String(),
			SubmittedAt:  sub.CreatedAt,
			Values:       values,
		})
	}
	return out, nil
}

// resolveForm accepts either a uuid or a slug, matching the two families of
// page routes.
func (s *FormService) resolveForm(ctx context.Context, slugOrID string) (*dbm.Form, error) {
	if id, err := uuid.Parse(slugOrID); err == nil {
		return s.formRepo.GetByID(ctx, id)
	}
	return s.formRepo.GetBySlug(ctx, slugOrID)
}

func (s *FormService) schemaFields(form *dbm.Form) ([]forms.FieldConfig, error) {
	if cached, ok := s.cache.Get(form.Slug); ok {
		return cached, nil
	}
	doc, err := forms.ParseSchema([]byte(form.SchemaJSON))
	if err != nil {
		return nil, err
	}
	fields := forms.NormalizeSchema(doc, forms.NormalizeOptions{})
	s.cache.Set(form.Slug, fields, schemaCacheTTL)
	return fields, nil
}

func (s *FormService) confirmationMessage(form *dbm.Form) string {
	doc, err := forms.ParseSchema([]byte(form.SchemaJSON))
	if err != nil || doc.Confirmation == nil {
		return "Thank you for your submission."
	}
	if doc.Confirmation.Message != "" {
		return doc.Confirmation.Message
	}
	return "Thank you for your submission."
}

func (s *FormService) matchMember(ctx context.Context, email, phone string) (*dbm.Member, error) {
	if email != "" {
		if member, err := s.memberRepo.FindByEmail(ctx, email); err != nil || member != nil {
			return member, err
		}
	}
	if digits := utils.NormalizePhone(phone); digits != "" {
		return s.memberRepo.FindByPhone(ctx, digits)
	}
	return nil, nil
}

// availabilityStatus maps a form's window and counters to a view status.
func availabilityStatus(form *dbm.Form) string {
	now := time.Now()
	if form.OpensAt != nil && now.Before(*form.OpensAt) {
		return response_models.StatusNotYetOpen
	}
	if form.ClosesAt != nil && now.After(*form.ClosesAt) {
		return response_models.StatusClosed
	}
	if form.MaxSubmissions > 0 && form.SubmissionCount >= form.MaxSubmissions {
		return response_models.StatusSubmissionLimitReached
	}
	return response_models.StatusOpen
}

func availabilityError(form *dbm.Form) error {
	switch availabilityStatus(form) {
	case response_models.StatusNotYetOpen:
		return utils.ErrFormNotYetOpen
	case response_models.StatusClosed:
		return utils.ErrFormClosed
	case response_models.StatusSubmissionLimitReached:
		return utils.ErrSubmissionLimitReached
	default:
		return nil
	}
}
