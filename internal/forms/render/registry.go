package render

import (
	"fmt"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"formflow/internal/forms"
)

// Registry maps field types to renderers. Unknown types fall back to a plain
// text input so a schema written against a newer builder still renders.
// Labels and descriptions pass through a bluemonday UGC policy: schemas are
// author-supplied and must not inject markup into the host page.
type Registry struct {
	renderers map[forms.FieldType]Renderer
	fallback  Renderer
	policy    *bluemonday.Policy
}

// NewRegistry builds a registry with all built-in renderers installed.
func NewRegistry() *Registry {
	r := &Registry{
		renderers: map[forms.FieldType]Renderer{},
		policy:    bluemonday.UGCPolicy(),
	}
	r.fallback = inputRenderer("text")
	r.registerBuiltins()
	return r
}

// Register installs or replaces the renderer for a field type.
func (r *Registry) Register(t forms.FieldType, renderer Renderer) {
	r.renderers[t] = renderer
}

// Render dispatches on field type and sanitizes the user-visible strings.
func (r *Registry) Render(field forms.FieldConfig) Control {
	renderer, ok := r.renderers[field.Type]
	if !ok {
		renderer = r.fallback
	}
	c := renderer.Render(field)
	c.Label = r.policy.Sanitize(c.Label)
	c.Description = r.policy.Sanitize(c.Description)
	c.Placeholder = r.policy.Sanitize(c.Placeholder)
	return c
}

// RenderAll renders every field in schema order.
func (r *Registry) RenderAll(fields []forms.FieldConfig) []Control {
	out := make([]Control, 0, len(fields))
	for _, f := range fields {
		out = append(out, r.Render(f))
	}
	return out
}

// ValidateValue runs the renderer's extra check, if it declares one.
func (r *Registry) ValidateValue(field forms.FieldConfig, value any) string {
	renderer, ok := r.renderers[field.Type]
	if !ok {
		return ""
	}
	if fv, ok := renderer.(FieldValidator); ok {
		return fv.ValidateValue(field, value)
	}
	return ""
}

func (r *Registry) registerBuiltins() {
	r.Register(forms.FieldTypeText, inputRenderer("text"))
	r.Register(forms.FieldTypeEmail, inputRenderer("email"))
	r.Register(forms.FieldTypePhone, inputRenderer("tel"))
	r.Register(forms.FieldTypeURL, inputRenderer("url"))
	r.Register(forms.FieldTypeNumber, inputRenderer("number"))
	r.Register(forms.FieldTypeCurrency, inputRenderer("number"))
	r.Register(forms.FieldTypeDate, inputRenderer("date"))
	r.Register(forms.FieldTypeTime, inputRenderer("time"))
	r.Register(forms.FieldTypeDateTime, inputRenderer("datetime-local"))
	r.Register(forms.FieldTypeZipCode, inputRenderer("text"))
	r.Register(forms.FieldTypeFullName, inputRenderer("text"))
	r.Register(forms.FieldTypeHidden, inputRenderer("hidden"))

	r.Register(forms.FieldTypeTextarea, tagRenderer("textarea", ""))
	r.Register(forms.FieldTypeAddress, tagRenderer("textarea", ""))
	r.Register(forms.FieldTypeDropdown, tagRenderer("select", ""))
	r.Register(forms.FieldTypeMultiSelect, tagRenderer("select", "multiple"))
	r.Register(forms.FieldTypeRadio, tagRenderer("radio-group", ""))
	r.Register(forms.FieldTypeCheckbox, inputRenderer("checkbox"))
	r.Register(forms.FieldTypeCheckboxGroup, tagRenderer("checkbox-group", ""))
	r.Register(forms.FieldTypeYesNo, RendererFunc(renderYesNo))
	r.Register(forms.FieldTypeRating, RendererFunc(renderRating))
	r.Register(forms.FieldTypeScale, RendererFunc(renderScale))
	r.Register(forms.FieldTypeSlider, RendererFunc(renderScale))
	r.Register(forms.FieldTypeRange, tagRenderer("range", ""))
	r.Register(forms.FieldTypeMatrix, tagRenderer("matrix", ""))
	r.Register(forms.FieldTypeRanking, tagRenderer("ranking", ""))
	r.Register(forms.FieldTypeSignature, tagRenderer("signature", ""))
	r.Register(forms.FieldTypeSectionHeader, tagRenderer("section-header", ""))
	r.Register(forms.FieldTypeHTMLBlock, tagRenderer("html-block", ""))

	file := &fileRenderer{}
	r.Register(forms.FieldTypeFileUpload, file)
	r.Register(forms.FieldTypeImageUpload, file)
}

func baseControl(field forms.FieldConfig, tag string) Control {
	return Control{
		FieldID:     field.ID,
		Tag:         tag,
		Label:       field.Label,
		Placeholder: field.Placeholder,
		Description: field.Description,
		Required:    field.Required,
		Options:     field.Options,
		PageNumber:  field.PageNumber,
		HasRule:     field.Conditional != nil,
	}
}

func inputRenderer(inputType string) RendererFunc {
	return func(field forms.FieldConfig) Control {
		c := baseControl(field, "input")
		c.InputType = inputType
		return c
	}
}

func tagRenderer(tag, mode string) RendererFunc {
	return func(field forms.FieldConfig) Control {
		c := baseControl(field, tag)
		if mode != "" {
			c.Attrs = map[string]string{"mode": mode}
		}
		return c
	}
}

func renderYesNo(field forms.FieldConfig) Control {
	c := baseControl(field, "radio-group")
	if len(c.Options) == 0 {
		c.Options = []forms.Option{{Label: "Yes", Value: "yes"}, {Label: "No", Value: "no"}}
	}
	return c
}

func renderRating(field forms.FieldConfig) Control {
	c := baseControl(field, "rating")
	c.Attrs = map[string]string{"max": "5"}
	return c
}

func renderScale(field forms.FieldConfig) Control {
	c := baseControl(field, "scale")
	min, max := 1.0, 10.0
	if v := field.Validation; v != nil {
		if v.MinValue != nil {
			min = *v.MinValue
		}
		if v.MaxValue != nil {
			max = *v.MaxValue
		}
	}
	c.Attrs = map[string]string{
		"min": strconv.FormatFloat(min, 'f', -1, 64),
		"max": strconv.FormatFloat(max, 'f', -1, 64),
	}
	return c
}

// fileRenderer also enforces the size limit before any upload call is made:
// an oversized file is rejected client-visibly and never reaches the store.
type fileRenderer struct{}

const defaultMaxFileSizeMB = 10

func (fr *fileRenderer) Render(field forms.FieldConfig) Control {
	c := baseControl(field, "input")
	c.InputType = "file"
	c.Attrs = map[string]string{
		"max_size_mb": strconv.FormatFloat(maxFileSizeMB(field), 'f', -1, 64),
	}
	if v := field.Validation; v != nil && len(v.AllowedFileTypes) > 0 {
		c.Attrs["accept"] = joinTypes(v.AllowedFileTypes)
	}
	return c
}

func (fr *fileRenderer) ValidateValue(field forms.FieldConfig, value any) string {
	size, ok := value.(int64)
	if !ok {
		return ""
	}
	limit := int64(maxFileSizeMB(field) * 1024 * 1024)
	if size > limit {
		return fmt.Sprintf("File exceeds the %v MB limit", maxFileSizeMB(field))
	}
	return ""
}

func maxFileSizeMB(field forms.FieldConfig) float64 {
	if v := field.Validation; v != nil && v.MaxFileSizeMB > 0 {
		return v.MaxFileSizeMB
	}
	return defaultMaxFileSizeMB
}

func joinTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += ","
		}
		out += t
	}
	return out
}
