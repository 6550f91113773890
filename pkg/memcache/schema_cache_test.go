package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formflow/internal/forms"
)

func TestSchemaCacheSetGet(t *testing.T) {
	c := NewSchemaCache()
	fields := []forms.FieldConfig{{ID: "name", Type: forms.FieldTypeText}}

	c.Set("contact", fields, time.Minute)

	got, ok := c.Get("contact")
	require.True(t, ok)
	assert.Equal(t, "name", got[0].ID)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestSchemaCacheExpiry(t *testing.T) {
	c := NewSchemaCache()
	c.Set("contact", []forms.FieldConfig{{ID: "name"}}, -time.Second)

	_, ok := c.Get("contact")
	assert.False(t, ok)
}

func TestSchemaCacheInvalidate(t *testing.T) {
	c := NewSchemaCache()
	c.Set("contact", []forms.FieldConfig{{ID: "name"}}, time.Minute)
	c.Invalidate("contact")

	_, ok := c.Get("contact")
	assert.False(t, ok)
}
