package response_models

import "formflow/internal/forms/render"

// Availability statuses a page route can render instead of the form.
const (
	StatusOpen                   = "open"
	StatusClosed                 = "closed"
	StatusNotYetOpen             = "not_yet_open"
	StatusSubmissionLimitReached = "submission_limit_reached"
	StatusMembersOnly            = "members_only"
)

// FormViewResponse is the render-ready payload for the page routes. When
// Status is anything but open, Controls is empty and the client shows the
// matching status page.
type FormViewResponse struct {
	FormID     string           `json:"form_id"`
	Slug       string           `json:"slug"`
	Title      string           `json:"title"`
	Status     string           `json:"status"`
	Surface    string           `json:"surface"` // page | embed | vote
	Controls   []render.Control `json:"controls,omitempty"`
	TotalPages int              `json:"total_pages,omitempty"`
}

type SubmitFormResponse struct {
	SubmissionID   string            `json:"submission_id,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"`
	FirstErrorPage int               `json:"first_error_page,omitempty"`
	Confirmation   string            `json:"confirmation,omitempty"`
}

type UploadResponse struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	Name        string `json:"name"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
}

type SubmissionSummary struct {
	SubmissionID string         `json:"submission_id"`
	SubmittedAt  int64          `json:"submitted_at"`
	Values       map[string]any `json:"values"`
}

type ListSubmissionsResponse struct {
	Total       int                 `json:"total"`
	Submissions []SubmissionSummary `json:"submissions"`
}
