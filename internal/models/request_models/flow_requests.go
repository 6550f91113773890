package request_models

// FlowActionRequest is the action-dispatch envelope for the progressive
// flow. The session token travels in the body, not a header, because the
// abandon action arrives as a beacon payload that cannot set headers.
type FlowActionRequest struct {
	Action       string `json:"action" binding:"required,oneof=view init_session update_field submit abandon"`
	Phone        string `json:"phone"`
	SessionToken string `json:"session_token"`
	SubmissionID string `json:"submission_id"`

	// update_field
	FieldID string `json:"field_id"`
	Value   any    `json:"value"`

	// submit
	Identity map[string]string `json:"identity"`
	Values   map[string]any    `json:"values"`
}
