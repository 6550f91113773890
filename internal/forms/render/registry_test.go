package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formflow/internal/forms"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()

	c := r.Render(forms.FieldConfig{ID: "e", Type: forms.FieldTypeEmail, Label: "Email"})
	assert.Equal(t, "input", c.Tag)
	assert.Equal(t, "email", c.InputType)

	c = r.Render(forms.FieldConfig{ID: "d", Type: forms.FieldTypeDropdown, Label: "Pick"})
	assert.Equal(t, "select", c.Tag)
}

func TestRegistryUnknownTypeFallsBackToText(t *testing.T) {
	r := NewRegistry()

	c := r.Render(forms.FieldConfig{ID: "x", Type: forms.FieldType("hologram"), Label: "X"})
	assert.Equal(t, "input", c.Tag)
	assert.Equal(t, "text", c.InputType)
}

func TestRegistrySanitizesLabels(t *testing.T) {
	r := NewRegistry()

	c := r.Render(forms.FieldConfig{
		ID:          "x",
		Type:        forms.FieldTypeText,
		Label:       `Name <script>alert(1)</script>`,
		Description: `<b>bold</b> is fine`,
	})
	assert.NotContains(t, c.Label, "<script>")
	assert.Contains(t, c.Label, "Name")
	assert.Contains(t, c.Description, "<b>bold</b>")
}

func TestRegistryYesNoDefaultOptions(t *testing.T) {
	r := NewRegistry()

	c := r.Render(forms.FieldConfig{ID: "y", Type: forms.FieldTypeYesNo, Label: "Pets?"})
	require.Len(t, c.Options, 2)
	assert.Equal(t, "yes", c.Options[0].Value)
	assert.Equal(t, "no", c.Options[1].Value)
}

func TestRegistryScaleBounds(t *testing.T) {
	r := NewRegistry()

	min, max := 2.0, 8.0
	c := r.Render(forms.FieldConfig{
		ID: "s", Type: forms.FieldTypeScale, Label: "Scale",
		Validation: &forms.ValidationConfig{MinValue: &min, MaxValue: &max},
	})
	assert.Equal(t, "2", c.Attrs["min"])
	assert.Equal(t, "8", c.Attrs["max"])
}

func TestFileRendererExposesSizeLimit(t *testing.T) {
	r := NewRegistry()

	c := r.Render(forms.FieldConfig{
		ID: "doc", Type: forms.FieldTypeFileUpload, Label: "Document",
		Validation: &forms.ValidationConfig{MaxFileSizeMB: 2, AllowedFileTypes: []string{"pdf", "png"}},
	})
	assert.Equal(t, "file", c.InputType)
	assert.Equal(t, "2", c.Attrs["max_size_mb"])
	assert.Equal(t, "pdf,png", c.Attrs["accept"])
}

func TestFileRendererValidateHook(t *testing.T) {
	r := NewRegistry()
	field := forms.FieldConfig{
		ID: "doc", Type: forms.FieldTypeFileUpload, Label: "Document",
		Validation: &forms.ValidationConfig{MaxFileSizeMB: 1},
	}

	assert.NotEmpty(t, r.ValidateValue(field, int64(2*1024*1024)))
	assert.Empty(t, r.ValidateValue(field, int64(512*1024)))

	// Types without a hook validate clean.
	assert.Empty(t, r.ValidateValue(forms.FieldConfig{ID: "t", Type: forms.FieldTypeText}, "x"))
}

func TestRenderAllKeepsOrder(t *testing.T) {
	r := NewRegistry()
	controls := r.RenderAll([]forms.FieldConfig{
		{ID: "a", Type: forms.FieldTypeText, Label: "A"},
		{ID: "b", Type: forms.FieldTypeEmail, Label: "B"},
	})
	require.Len(t, controls, 2)
	assert.Equal(t, "a", controls[0].FieldID)
	assert.Equal(t, "b", controls[1].FieldID)
}
