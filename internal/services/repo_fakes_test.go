package services

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"formflow/internal/infra"
	dbm "formflow/internal/models/db_models"
	"formflow/pkg/utils"
)

type fakeFormRepo struct {
	forms      map[string]*dbm.Form // keyed by slug
	increments int
	limitHit   bool
}

func (r *fakeFormRepo) GetBySlug(_ context.Context, slug string) (*dbm.Form, error) {
	if f, ok := r.forms[slug]; ok {
		return f, nil
	}
	return nil, utils.ErrFormNotFound
}

func (r *fakeFormRepo) GetByID(_ context.Context, id uuid.UUID) (*dbm.Form, error) {
	for _, f := range r.forms {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, utils.ErrFormNotFound
}

func (r *fakeFormRepo) IncrementSubmissionCount(_ context.Context, id uuid.UUID) error {
	if r.limitHit {
		return utils.ErrSubmissionLimitReached
	}
	r.increments++
	for _, f := range r.forms {
		if f.ID == id {
			f.SubmissionCount++
		}
	}
	return nil
}

type fakeSubmissionRepo struct {
	subs      map[uuid.UUID]*dbm.Submission
	createErr error
}

func (r *fakeSubmissionRepo) Create(_ context.Context, submission *dbm.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if r.subs == nil {
		r.subs = map[uuid.UUID]*dbm.Submission{}
	}
	r.subs[submission.ID] = submission
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id uuid.UUID) (*dbm.Submission, error) {
	if s, ok := r.subs[id]; ok {
		return s, nil
	}
	return nil, utils.ErrSessionNotFound
}

func (r *fakeSubmissionRepo) Finalize(_ context.Context, id uuid.UUID, payloadJSON string, memberID *uuid.UUID) error {
	s, ok := r.subs[id]
	if !ok {
		return utils.ErrSessionNotFound
	}
	// Mirrors the (form_id, member_id) unique index.
	if memberID != nil {
		for otherID, other := range r.subs {
			if otherID != id && other.FormID == s.FormID &&
				other.MemberID != nil && *other.MemberID == *memberID {
				return utils.ErrDuplicateSubmission
			}
		}
		s.MemberID = memberID
	}
	s.PayloadJSON = payloadJSON
	s.Finalized = true
	return nil
}

func (r *fakeSubmissionRepo) ListByForm(_ context.Context, formID uuid.UUID, page, pageSize int) ([]dbm.Submission, int64, error) {
	var out []dbm.Submission
	for _, s := range r.subs {
		if s.FormID == formID && s.Finalized {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

type fakeSessionRepo struct {
	sessions  map[uuid.UUID]*dbm.FormSession
	abandoned int
}

func (r *fakeSessionRepo) Create(_ context.Context, session *dbm.FormSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if r.sessions == nil {
		r.sessions = map[uuid.UUID]*dbm.FormSession{}
	}
	r.sessions[session.SubmissionID] = session
	return nil
}

func (r *fakeSessionRepo) GetBySubmissionID(_ context.Context, submissionID uuid.UUID) (*dbm.FormSession, error) {
	if s, ok := r.sessions[submissionID]; ok {
		return s, nil
	}
	return nil, utils.ErrSessionNotFound
}

func (r *fakeSessionRepo) UpdateStage(_ context.Context, submissionID uuid.UUID, stage string) error {
	s, ok := r.sessions[submissionID]
	if !ok {
		return utils.ErrSessionNotFound
	}
	s.Stage = stage
	return nil
}

func (r *fakeSessionRepo) SaveValue(_ context.Context, submissionID uuid.UUID, fieldID string, value any) error {
	s, ok := r.sessions[submissionID]
	if !ok {
		return utils.ErrSessionNotFound
	}
	values := map[string]any{}
	if s.ValuesJSON != "" {
		_ = json.Unmarshal([]byte(s.ValuesJSON), &values)
	}
	values[fieldID] = value
	raw, _ := json.Marshal(values)
	s.ValuesJSON = string(raw)
	return nil
}

func (r *fakeSessionRepo) MarkAbandoned(_ context.Context, submissionID uuid.UUID) error {
	s, ok := r.sessions[submissionID]
	if !ok {
		return utils.ErrSessionNotFound
	}
	if s.Stage != dbm.StageSubmitted {
		s.Abandoned = true
		r.abandoned++
	}
	return nil
}

type fakeMemberRepo struct {
	byPhone map[string]*dbm.Member
	byEmail map[string]*dbm.Member
}

func (r *fakeMemberRepo) FindByPhone(_ context.Context, phone string) (*dbm.Member, error) {
	return r.byPhone[phone], nil
}

func (r *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*dbm.Member, error) {
	return r.byEmail[email], nil
}

type fakeFileRepo struct {
	files []*dbm.StoredFile
}

func (r *fakeFileRepo) Create(_ context.Context, file *dbm.StoredFile) error {
	r.files = append(r.files, file)
	return nil
}

type fakeFileStore struct {
	calls int
}

func (s *fakeFileStore) Store(fieldID, originalName string, _ io.Reader) (infra.StoredObject, error) {
	s.calls++
	return infra.StoredObject{
		Path: "uploads/" + fieldID + "_" + originalName,
		URL:  "/uploads/" + fieldID + "_" + originalName,
	}, nil
}
