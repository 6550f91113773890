package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"

	"formflow/internal/forms"
	"formflow/internal/forms/render"
	dbm "formflow/internal/models/db_models"
	"formflow/internal/models/response_models"
	"formflow/internal/repositories"
	mem "formflow/pkg/memcache"
	"formflow/pkg/utils"
)

// FlowServiceInterface is the progressive multi-stage flow:
// phone -> identity -> custom -> submitted. Only a successful collaborator
// call advances the stage; submitted is terminal.
type FlowServiceInterface interface {
	View(ctx context.Context, slug string) (*response_models.FlowViewResponse, error)
	InitSession(ctx context.Context, slug string, phone string) (*response_models.InitSessionResponse, error)
	UpdateField(ctx context.Context, token, submissionID, fieldID string, value any) error
	Submit(ctx context.Context, token, submissionID string, identity map[string]string, values map[string]any) (*response_models.FlowSubmitResponse, error)
	Abandon(ctx context.Context, token, submissionID string) error
}

type FlowService struct {
	formRepo       repositories.FormRepositoryInterface
	sessionRepo    repositories.SessionRepositoryInterface
	submissionRepo repositories.SubmissionRepositoryInterface
	memberRepo     repositories.MemberRepositoryInterface
	cache          mem.SchemaCacheStore
	registry       *render.Registry
	classifier     *forms.Classifier
}

func NewFlowService(
	formRepo repositories.FormRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	cache mem.SchemaCacheStore,
	registry *render.Registry,
	classifier *forms.Classifier,
) FlowServiceInterface {
	return &FlowService{
		formRepo:       formRepo,
		sessionRepo:    sessionRepo,
		submissionRepo: submissionRepo,
		memberRepo:     memberRepo,
		cache:          cache,
		registry:       registry,
		classifier:     classifier,
	}
}

func (s *FlowService) View(ctx context.Context, slug string) (*response_models.FlowViewResponse, error) {
	form, err := s.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	view := &response_models.FlowViewResponse{
		FormID:      form.ID.String(),
		Title:       form.Title,
		MembersOnly: form.MembersOnly,
	}
	if status := availabilityStatus(form); status != response_models.StatusOpen {
		view.Status = status
		return view, nil
	}

	fields, err := s.flowFields(form)
	if err != nil {
		return nil, err
	}
	identity, custom := s.classifier.Split(fields)

	view.Status = response_models.StatusOpen
	view.Stage = dbm.StagePhone
	view.IdentityControls = s.registry.RenderAll(identity)
	view.CustomControls = s.registry.RenderAll(custom)
	view.TotalPages = forms.NewPaginator(custom).TotalPages()
	return view, nil
}

func (s *FlowService) InitSession(ctx context.Context, slug string, phone string) (*response_models.InitSessionResponse, error) {
	digits := utils.NormalizePhone(phone)
	if digits == "" {
		return nil, utils.ErrInvalidPhone
	}

	form, err := s.formRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := availabilityError(form); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByPhone(ctx, digits)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// On a members-only ballot the phone lookup is the gate: an unmatched
	// phone gets the status payload and no session at all.
	if form.MembersOnly && member == nil {
		return &response_models.InitSessionResponse{
			Status: response_models.StatusMembersOnly,
		}, nil
	}

	submission := &dbm.Submission{
		FormID: form.ID,
		Source: "flow",
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	prefill := map[string]string{}
	session := &dbm.FormSession{
		FormID:       form.ID,
		SubmissionID: submission.ID,
		Phone:        digits,
		Stage:        dbm.StageIdentity,
	}
	if member != nil {
		session.MemberID = &member.ID
		prefill["name"] = member.Name
		prefill["email"] = member.Email
		prefill["zip_code"] = member.ZipCode
		raw, _ := json.Marshal(prefill)
		session.PrefillJSON = string(raw)
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateSessionToken(submission.ID, form.ID)
	if err != nil {
		return nil, err
	}

	resp := &response_models.InitSessionResponse{
		Status:       response_models.StatusOpen,
		SubmissionID: submission.ID.String(),
		SessionToken: token,
		Stage:        dbm.StageIdentity,
		PersonFound:  member != nil,
	}
	if member != nil {
		resp.Prefill = prefill
	}
	return resp, nil
}

func (s *FlowService) UpdateField(ctx context.Context, token, submissionID, fieldID string, value any) error {
	session, err := s.authorize(ctx, token, submissionID)
	if err != nil {
		return err
	}
	if session.Stage == dbm.StageSubmitted {
		return utils.ErrAlreadySubmitted
	}

	if err := s.sessionRepo.SaveValue(ctx, session.SubmissionID, fieldID, value); err != nil {
		return err
	}

	// The first auto-save for a non-identity field is the signal that the
	// client moved on to the custom stage.
	if session.Stage == dbm.StageIdentity {
		if role := s.classifyFieldID(ctx, session.FormID, fieldID); role == forms.RoleNone {
			if err := s.sessionRepo.UpdateStage(ctx, session.SubmissionID, dbm.StageCustom); err != nil {
				log.Printf("flow: stage advance for %s failed: %v", session.SubmissionID, err)
			}
		}
	}
	return nil
}

func (s *FlowService) Submit(ctx context.Context, token, submissionID string, identity map[string]string, values map[string]any) (*response_models.FlowSubmitResponse, error) {
	session, err := s.authorize(ctx, token, submissionID)
	if err != nil {
		return nil, err
	}
	if session.Stage == dbm.StageSubmitted {
		return nil, utils.ErrAlreadySubmitted
	}

	form, err := s.formRepo.GetByID(ctx, session.FormID)
	if err != nil {
		return nil, err
	}
	if err := availabilityError(form); err != nil {
		return nil, err
	}
	// Second layer of the members-only gate, in case the form was switched
	// to members-only after the session started.
	if form.MembersOnly && session.MemberID == nil {
		return nil, utils.ErrMembersOnly
	}

	fields, err := s.flowFields(form)
	if err != nil {
		return nil, err
	}
	identityFields, customFields := s.classifier.Split(fields)

	errs := s.validateIdentity(identityFields, identity)
	custom := forms.FormValues(values)
	customErrs, firstPage := forms.ValidateAll(customFields, custom)
	for k, v := range customErrs {
		errs[k] = v
	}
	if len(errs) > 0 {
		return &response_models.FlowSubmitResponse{
			Stage:          session.Stage,
			Errors:         errs,
			FirstErrorPage: firstPage,
		}, nil
	}

	// Remap identity values onto the schema's own field ids: the form
	// author's id wins over the logical role name.
	roleValues := map[forms.Role]any{
		forms.RolePhone: utils.FormatPhone(session.Phone),
		forms.RoleName:  identity["name"],
		forms.RoleEmail: identity["email"],
		forms.RoleZip:   identity["zip_code"],
	}
	merged := s.classifier.Remap(fields, roleValues, custom)
	payload, err := json.Marshal(map[string]any(merged))
	if err != nil {
		return nil, err
	}

	if err := s.formRepo.IncrementSubmissionCount(ctx, form.ID); err != nil {
		return nil, err
	}
	if err := s.submissionRepo.Finalize(ctx, session.SubmissionID, string(payload), session.MemberID); err != nil {
		if errors.Is(err, utils.ErrDuplicateSubmission) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	if err := s.sessionRepo.UpdateStage(ctx, session.SubmissionID, dbm.StageSubmitted); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FlowSubmitResponse{
		Stage:        dbm.StageSubmitted,
		Confirmation: "Thank you for your submission.",
	}, nil
}

// Abandon is the beacon target. Best-effort by contract: the repo call
// guards against clobbering a submitted session, and the caller ignores the
// returned error beyond logging it.
func (s *FlowService) Abandon(ctx context.Context, token, submissionID string) error {
	session, err := s.authorize(ctx, token, submissionID)
	if err != nil {
		return err
	}
	return s.sessionRepo.MarkAbandoned(ctx, session.SubmissionID)
}

// authorize checks the token signature and that it was minted for this
// submission, then loads the session.
func (s *FlowService) authorize(ctx context.Context, token, submissionID string) (*dbm.FormSession, error) {
	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}
	if claims.SubmissionID != submissionID {
		return nil, utils.ErrInvalidSessionToken
	}
	id, err := uuid.Parse(submissionID)
	if err != nil {
		return nil, utils.ErrInvalidSessionToken
	}
	return s.sessionRepo.GetBySubmissionID(ctx, id)
}

// validateIdentity applies the schema's required flags to the identity
// values plus the fixed local format rules (email shape, 5-digit zip). A
// schema with no identity fields falls back to requiring name and email.
func (s *FlowService) validateIdentity(identityFields []forms.FieldConfig, identity map[string]string) forms.Errors {
	required := map[forms.Role]bool{}
	if len(identityFields) == 0 {
		required[forms.RoleName] = true
		required[forms.RoleEmail] = true
	}
	for _, f := range identityFields {
		if f.Required {
			required[s.classifier.Classify(f)] = true
		}
	}

	errs := forms.Errors{}
	check := func(role forms.Role, key, label string, ft forms.FieldType) {
		field := forms.FieldConfig{
			ID:       key,
			Type:     ft,
			Label:    label,
			Required: required[role],
		}
		if msg := forms.ValidateField(field, identity[key]); msg != "" {
			errs[key] = msg
		}
	}
	check(forms.RoleName, "name", "Name", forms.FieldTypeFullName)
	check(forms.RoleEmail, "email", "Email", forms.FieldTypeEmail)
	check(forms.RoleZip, "zip_code", "ZIP code", forms.FieldTypeZipCode)
	return errs
}

func (s *FlowService) classifyFieldID(ctx context.Context, formID uuid.UUID, fieldID string) forms.Role {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return forms.RoleNone
	}
	fields, err := s.flowFields(form)
	if err != nil {
		return forms.RoleNone
	}
	for _, f := range fields {
		if f.ID == fieldID {
			return s.classifier.Classify(f)
		}
	}
	return forms.RoleNone
}

// flowFields keeps section headers: the flow renders them as separators.
// Cached under a distinct key so the standard surface's normalization does
// not bleed in.
func (s *FlowService) flowFields(form *dbm.Form) ([]forms.FieldConfig, error) {
	key := form.Slug + "#flow"
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}
	doc, err := forms.ParseSchema([]byte(form.SchemaJSON))
	if err != nil {
		return nil, err
	}
	fields := forms.NormalizeSchema(doc, forms.NormalizeOptions{KeepSectionHeaders: true})
	s.cache.Set(key, fields, schemaCacheTTL)
	return fields, nil
}
