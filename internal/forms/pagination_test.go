package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatorDefaultsToSinglePage(t *testing.T) {
	p := NewPaginator([]FieldConfig{
		{ID: "a", Type: FieldTypeText, Label: "A"},
	})
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, 1, p.DisplayPage())
	assert.InDelta(t, 100.0, p.Progress(), 0.001)
}

func TestPaginatorEmptySchemaStillHasOnePage(t *testing.T) {
	p := NewPaginator(nil)
	assert.Equal(t, 1, p.TotalPages())
}

func TestPaginatorDistinctSortedPages(t *testing.T) {
	p := NewPaginator([]FieldConfig{
		{ID: "c", PageNumber: 2},
		{ID: "a", PageNumber: 0},
		{ID: "b", PageNumber: 2},
		{ID: "d", PageNumber: 1},
	})
	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, 0, p.CurrentPage())
}

// Scenario: page 0 has one required text field. Next refuses to advance
// while it is empty and advances once it is filled.
func TestPaginatorNextGatesOnValidation(t *testing.T) {
	fields := []FieldConfig{
		{ID: "name", Type: FieldTypeText, Label: "Name", Required: true, PageNumber: 0},
		{ID: "extra", Type: FieldTypeText, Label: "Extra", PageNumber: 1},
	}
	p := NewPaginator(fields)

	errs := p.Next(FormValues{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs["name"], "Name")
	assert.Equal(t, 0, p.CurrentIndex())

	errs = p.Next(FormValues{"name": "Jane"})
	assert.Empty(t, errs)
	assert.Equal(t, 1, p.CurrentIndex())
	assert.Equal(t, 1, p.CurrentPage())
}

func TestPaginatorClamps(t *testing.T) {
	fields := []FieldConfig{
		{ID: "a", PageNumber: 0},
		{ID: "b", PageNumber: 1},
	}
	p := NewPaginator(fields)

	p.Prev()
	assert.Equal(t, 0, p.CurrentIndex())

	p.Next(FormValues{})
	assert.Equal(t, 1, p.CurrentIndex())
	assert.True(t, p.IsLast())

	// Advancing past the last page is a no-op.
	p.Next(FormValues{})
	assert.Equal(t, 1, p.CurrentIndex())
}

func TestPaginatorPrevNeverValidates(t *testing.T) {
	fields := []FieldConfig{
		{ID: "a", Type: FieldTypeText, Label: "A", Required: true, PageNumber: 0},
		{ID: "b", Type: FieldTypeText, Label: "B", Required: true, PageNumber: 1},
	}
	p := NewPaginator(fields)
	p.SeekPage(1)

	// Page 1's own field is empty, yet Prev still moves back.
	p.Prev()
	assert.Equal(t, 0, p.CurrentPage())
}

func TestPaginatorPageFields(t *testing.T) {
	fields := []FieldConfig{
		{ID: "a", PageNumber: 0},
		{ID: "b", PageNumber: 1},
		{ID: "c", PageNumber: 0},
	}
	p := NewPaginator(fields)

	ids := []string{}
	for _, f := range p.PageFields() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestPaginatorSeekPage(t *testing.T) {
	fields := []FieldConfig{
		{ID: "a", PageNumber: 0},
		{ID: "b", PageNumber: 3},
	}
	p := NewPaginator(fields)

	assert.True(t, p.SeekPage(3))
	assert.Equal(t, 3, p.CurrentPage())
	assert.Equal(t, 2, p.DisplayPage())

	assert.False(t, p.SeekPage(7))
	assert.Equal(t, 3, p.CurrentPage())
}

func TestPaginatorProgress(t *testing.T) {
	fields := []FieldConfig{
		{ID: "a", PageNumber: 0},
		{ID: "b", PageNumber: 1},
		{ID: "c", PageNumber: 2},
		{ID: "d", PageNumber: 3},
	}
	p := NewPaginator(fields)
	assert.InDelta(t, 25.0, p.Progress(), 0.001)

	p.Next(FormValues{})
	assert.InDelta(t, 50.0, p.Progress(), 0.001)
}
