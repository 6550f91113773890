package request_models

type SubmitFormRequest struct {
	Values map[string]any `json:"values" binding:"required"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone"`
}

type AnalyticsRequest struct {
	VisitorID string         `json:"visitor_id" binding:"required"`
	Event     string         `json:"event" binding:"required,oneof=view start page_turn complete abandon"`
	Meta      map[string]any `json:"meta"`
}

type ListSubmissionsRequest struct {
	ManageKey string `json:"manage_key" binding:"required"`
}
