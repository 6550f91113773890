package render

import "formflow/internal/forms"

// Control is the render-ready view model for one field. Page routes ship a
// list of these to the client; the client does no schema interpretation of
// its own.
type Control struct {
	FieldID     string            `json:"field_id"`
	Tag         string            `json:"tag"`
	InputType   string            `json:"input_type,omitempty"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required"`
	Options     []forms.Option    `json:"options,omitempty"`
	Attrs       map[string]string `json:"attrs,omitempty"`
	PageNumber  int               `json:"page_number"`
	HasRule     bool              `json:"has_rule,omitempty"`
}

// Renderer turns a field config into a Control.
type Renderer interface {
	Render(field forms.FieldConfig) Control
}

// FieldValidator is an optional renderer capability: a pre-store check that
// runs in addition to the declarative validation rules. The file renderer
// uses it to enforce upload size limits before any bytes move.
type FieldValidator interface {
	ValidateValue(field forms.FieldConfig, value any) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(field forms.FieldConfig) Control

func (f RendererFunc) Render(field forms.FieldConfig) Control { return f(field) }
