package mem

import (
	"sync"
	"time"

	"formflow/internal/forms"
)

// SchemaCacheStore caches normalized field lists by form slug so hot forms
// skip re-parsing the schema JSON on every request.
type SchemaCacheStore interface {
	Set(slug string, fields []forms.FieldConfig, ttl time.Duration)

	// Get returns the cached fields for slug if not expired.
	Get(slug string) ([]forms.FieldConfig, bool)

	// Invalidate drops a slug, e.g. after the form definition changes.
	Invalidate(slug string)
}

type entry struct {
	fields    []forms.FieldConfig
	expiresAt time.Time
}

type SchemaCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSchemaCache() *SchemaCache {
	return &SchemaCache{
		data: make(map[string]entry),
	}
}

func (s *SchemaCache) Set(slug string, fields []forms.FieldConfig, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[slug] = entry{
		fields:    fields,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *SchemaCache) Get(slug string) ([]forms.FieldConfig, bool) {
	s.mu.RLock()
	e, ok := s.data[slug]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.Invalidate(slug)
		return nil, false
	}
	return e.fields, true
}

func (s *SchemaCache) Invalidate(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, slug)
}
