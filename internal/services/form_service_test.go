package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formflow/internal/forms/render"
	dbm "formflow/internal/models/db_models"
	"formflow/internal/models/request_models"
	"formflow/internal/models/response_models"
	mem "formflow/pkg/memcache"
	"formflow/pkg/utils"
)

const contactSchema = `{
	"fields": [
		{"id": "name", "type": "text", "label": "Name", "required": true, "page_number": 0},
		{"id": "message", "type": "textarea", "label": "Message", "required": true, "page_number": 1}
	]
}`

func newFormFixture(t *testing.T, mutate func(*dbm.Form)) (FormServiceInterface, *fakeFormRepo, *fakeSubmissionRepo) {
	t.Helper()

	form := &dbm.Form{
		Slug:       "contact",
		Title:      "Contact Us",
		SchemaJSON: contactSchema,
	}
	form.ID = uuid.New()
	if mutate != nil {
		mutate(form)
	}

	formRepo := &fakeFormRepo{forms: map[string]*dbm.Form{"contact": form}}
	submissionRepo := &fakeSubmissionRepo{}
	memberRepo := &fakeMemberRepo{
		byEmail: map[string]*dbm.Member{"jane@x.com": memberFixture("Jane Doe", "jane@x.com", "64101")},
	}

	svc := NewFormService(formRepo, submissionRepo, memberRepo, mem.NewSchemaCache(), render.NewRegistry())
	return svc, formRepo, submissionRepo
}

func TestGetFormViewRendersControls(t *testing.T) {
	svc, _, _ := newFormFixture(t, nil)

	view, err := svc.GetFormView(context.Background(), "contact", SurfacePage)
	require.NoError(t, err)

	assert.Equal(t, response_models.StatusOpen, view.Status)
	assert.Equal(t, "Contact Us", view.Title)
	require.Len(t, view.Controls, 2)
	assert.Equal(t, "textarea", view.Controls[1].Tag)
	assert.Equal(t, 2, view.TotalPages)
}

func TestGetFormViewResolvesByID(t *testing.T) {
	svc, formRepo, _ := newFormFixture(t, nil)

	id := formRepo.forms["contact"].ID.String()
	view, err := svc.GetFormView(context.Background(), id, SurfacePage)
	require.NoError(t, err)
	assert.Equal(t, "contact", view.Slug)
}

func TestGetFormViewUnknownSlug(t *testing.T) {
	svc, _, _ := newFormFixture(t, nil)

	_, err := svc.GetFormView(context.Background(), "nope", SurfacePage)
	assert.ErrorIs(t, err, utils.ErrFormNotFound)
}

func TestGetFormViewAvailabilityStatuses(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name   string
		mutate func(*dbm.Form)
		want   string
	}{
		{"not yet open", func(f *dbm.Form) { f.OpensAt = &future }, response_models.StatusNotYetOpen},
		{"closed", func(f *dbm.Form) { f.ClosesAt = &past }, response_models.StatusClosed},
		{"limit reached", func(f *dbm.Form) { f.MaxSubmissions = 5; f.SubmissionCount = 5 }, response_models.StatusSubmissionLimitReached},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newFormFixture(t, tc.mutate)

			view, err := svc.GetFormView(context.Background(), "contact", SurfacePage)
			require.NoError(t, err)
			assert.Equal(t, tc.want, view.Status)
			assert.Empty(t, view.Controls)
		})
	}
}

func TestSubmitFormValidationErrors(t *testing.T) {
	svc, formRepo, _ := newFormFixture(t, nil)

	result, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{Values: map[string]any{"name": "Jane"}})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors["message"], "Message")
	assert.Equal(t, 1, result.FirstErrorPage)
	assert.Equal(t, 0, formRepo.increments)
}

func TestSubmitFormStoresAndCounts(t *testing.T) {
	svc, formRepo, submissionRepo := newFormFixture(t, nil)

	result, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{Values: map[string]any{"name": "Jane", "message": "hello"}})
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.SubmissionID)
	assert.NotEmpty(t, result.Confirmation)
	assert.Equal(t, 1, formRepo.increments)

	id, _ := uuid.Parse(result.SubmissionID)
	sub := submissionRepo.subs[id]
	require.NotNil(t, sub)
	assert.True(t, sub.Finalized)
	assert.Nil(t, sub.MemberID)
}

func TestSubmitFormAttributesMemberByEmail(t *testing.T) {
	svc, _, submissionRepo := newFormFixture(t, nil)

	result, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{
			Values: map[string]any{"name": "Jane", "message": "hello"},
			Email:  "jane@x.com",
		})
	require.NoError(t, err)

	id, _ := uuid.Parse(result.SubmissionID)
	require.NotNil(t, submissionRepo.subs[id].MemberID)
}

func TestSubmitFormClosedFormRejected(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	svc, _, _ := newFormFixture(t, func(f *dbm.Form) { f.ClosesAt = &past })

	_, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{Values: map[string]any{"name": "J", "message": "m"}})
	assert.ErrorIs(t, err, utils.ErrFormClosed)
}

func TestSubmitFormVoteSurfaceRequiresMember(t *testing.T) {
	svc, _, _ := newFormFixture(t, func(f *dbm.Form) { f.MembersOnly = true })
	values := map[string]any{"name": "J", "message": "m"}

	_, err := svc.SubmitForm(context.Background(), "contact", SurfaceVote,
		request_models.SubmitFormRequest{Values: values})
	assert.ErrorIs(t, err, utils.ErrMembersOnly)

	result, err := svc.SubmitForm(context.Background(), "contact", SurfaceVote,
		request_models.SubmitFormRequest{Values: values, Email: "jane@x.com"})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestSubmitFormLimitGuard(t *testing.T) {
	svc, formRepo, _ := newFormFixture(t, nil)
	formRepo.limitHit = true

	_, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{Values: map[string]any{"name": "J", "message": "m"}})
	assert.ErrorIs(t, err, utils.ErrSubmissionLimitReached)
}

func TestListSubmissionsRequiresManageKey(t *testing.T) {
	hash, err := utils.HashManageKey("open-sesame")
	require.NoError(t, err)
	svc, formRepo, _ := newFormFixture(t, func(f *dbm.Form) { f.ManageKeyHash = hash })

	_, err = svc.ListSubmissions(context.Background(), "contact", "wrong", 1, 25)
	assert.ErrorIs(t, err, utils.ErrInvalidManageKey)

	// A form with no manage key configured never lists.
	formRepo.forms["contact"].ManageKeyHash = ""
	_, err = svc.ListSubmissions(context.Background(), "contact", "open-sesame", 1, 25)
	assert.ErrorIs(t, err, utils.ErrInvalidManageKey)
}

func TestListSubmissionsReturnsPayloads(t *testing.T) {
	hash, _ := utils.HashManageKey("open-sesame")
	svc, _, _ := newFormFixture(t, func(f *dbm.Form) { f.ManageKeyHash = hash })

	_, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{Values: map[string]any{"name": "Jane", "message": "hello"}})
	require.NoError(t, err)

	result, err := svc.ListSubmissions(context.Background(), "contact", "open-sesame", 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Submissions, 1)
	assert.Equal(t, "hello", result.Submissions[0].Values["message"])
}

func TestListSubmissionsPageBounds(t *testing.T) {
	svc, _, _ := newFormFixture(t, nil)

	_, err := svc.ListSubmissions(context.Background(), "contact", "k", 0, 25)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListSubmissions(context.Background(), "contact", "k", 1, 500)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

// Hidden conditional fields are excluded from server-side validation too.
func TestSubmitFormSkipsHiddenConditionalFields(t *testing.T) {
	schema := `{
		"fields": [
			{"id": "has_pets", "type": "yes_no", "label": "Pets?", "required": true},
			{"id": "pet_name", "type": "text", "label": "Pet Name", "required": true,
			 "conditional": {"field": "has_pets", "operator": "equals", "value": "yes"}}
		]
	}`
	svc, _, _ := newFormFixture(t, func(f *dbm.Form) { f.SchemaJSON = schema })

	result, err := svc.SubmitForm(context.Background(), "contact", SurfacePage,
		request_models.SubmitFormRequest{Values: map[string]any{"has_pets": "no"}})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}
