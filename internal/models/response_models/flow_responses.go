package response_models

import "formflow/internal/forms/render"

// InitSessionResponse starts the identity stage. Prefill is present only
// when the phone matched a known member. On a members-only ballot an
// unmatched phone gets Status members_only and no session.
type InitSessionResponse struct {
	Status       string            `json:"status"`
	SubmissionID string            `json:"submission_id,omitempty"`
	SessionToken string            `json:"session_token,omitempty"`
	Stage        string            `json:"stage,omitempty"`
	PersonFound  bool              `json:"person_found"`
	Prefill      map[string]string `json:"prefill,omitempty"`
}

// FlowViewResponse describes the flow surface: the identity fields the
// schema declares (or the defaults when it declares none) plus the custom
// fields, paginated.
type FlowViewResponse struct {
	FormID           string            `json:"form_id"`
	Title            string            `json:"title"`
	Status           string            `json:"status"`
	MembersOnly      bool              `json:"members_only,omitempty"`
	Stage            string            `json:"stage,omitempty"`
	IdentityControls []render.Control  `json:"identity_controls,omitempty"`
	CustomControls   []render.Control  `json:"custom_controls,omitempty"`
	TotalPages       int               `json:"total_pages,omitempty"`
	Prefill          map[string]string `json:"prefill,omitempty"`
}

type FlowSubmitResponse struct {
	Stage          string            `json:"stage"`
	Errors         map[string]string `json:"errors,omitempty"`
	FirstErrorPage int               `json:"first_error_page,omitempty"`
	Confirmation   string            `json:"confirmation,omitempty"`
}
