// Package state holds the client-side stores that back the storefront
// UI: editable site content, the latest-release image, the admin
// session, and the shopping cart. Every store is safe for concurrent
// use and stops accepting updates once closed.
package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jkhopkins39/sxnctuary/client"
)

// ContentAPI is the slice of the data facade the content stores need
type ContentAPI interface {
	ListContent(ctx context.Context) ([]client.Content, error)
	UpsertContent(ctx context.Context, id, value string) (*client.Content, error)
	SeedContent(ctx context.Context) error
}

// Phase tracks how far a store has gotten through hydration
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
)

// Field is one editable piece of site copy together with the metadata
// the admin editor renders it with.
type Field struct {
	ID       string
	Label    string
	Value    string
	Kind     string // "text" or "textarea"
	Location string // where on the site the value appears
}

// defaultFields is the built-in copy the site falls back to when the
// backend is unreachable. Order matches the admin editor layout.
func defaultFields() []Field {
	return []Field{
		{ID: "hero-title", Label: "Hero Title", Value: "SXNCTUARY", Kind: "text", Location: "Homepage hero section"},
		{ID: "hero-subtitle", Label: "Hero Subtitle", Value: "Drum'n'Bass Producer", Kind: "text", Location: "Homepage hero section"},
		{ID: "hero-description", Label: "Hero Description", Value: "Pushing the boundaries of drum'n'bass with futuristic soundscapes, innovative production techniques, and cutting-edge technology.", Kind: "textarea", Location: "Homepage hero section"},
		{ID: "latest-release-name", Label: "Latest Release Name", Value: "RUNNERS", Kind: "text", Location: "Homepage latest release"},
		{ID: "latest-release-description", Label: "Latest Release Description", Value: "My latest drum'n'bass track", Kind: "textarea", Location: "Homepage latest release"},
		{ID: "merch-title", Label: "Merch Page Title", Value: "SXNCTUARY Merch", Kind: "text", Location: "Merch page header"},
		{ID: "merch-subtitle", Label: "Merch Page Subtitle", Value: "Official merchandise featuring futuristic designs and premium quality", Kind: "textarea", Location: "Merch page header"},
		{ID: "footer-description", Label: "Footer Description", Value: "Pushing the boundaries of electronic music with futuristic soundscapes and innovative production.", Kind: "textarea", Location: "Site footer"},
		{ID: "latest-release-image", Label: "Latest Release Image", Value: "/IMG_3220.jpg", Kind: "text", Location: "Homepage latest release"},
	}
}

// ContentStore hydrates editable site copy from the backend and falls
// back to built-in defaults when it cannot. It always reaches
// PhaseReady so the UI never blocks on a dead backend.
type ContentStore struct {
	mu     sync.Mutex
	api    ContentAPI
	logger *zap.Logger

	phase  Phase
	order  []string
	fields map[string]Field
	closed bool
}

// NewContentStore creates a ContentStore populated with the default copy
func NewContentStore(api ContentAPI, log *zap.Logger) *ContentStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ContentStore{
		api:    api,
		logger: log,
		fields: make(map[string]Field),
	}
	for _, f := range defaultFields() {
		s.order = append(s.order, f.ID)
		s.fields[f.ID] = f
	}
	return s
}

// Load hydrates the store from the backend. A failed fetch triggers
// one seed attempt and a retry; if that also fails the defaults stand.
// The store is PhaseReady when Load returns, whatever happened.
func (s *ContentStore) Load(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseLoading
	s.mu.Unlock()

	rows, err := s.api.ListContent(ctx)
	if err != nil {
		s.logger.Warn("Content fetch failed, seeding and retrying", zap.Error(err))
		if seedErr := s.api.SeedContent(ctx); seedErr != nil {
			s.logger.Warn("Content seed failed", zap.Error(seedErr))
		}
		rows, err = s.api.ListContent(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err != nil {
		s.logger.Warn("Content unavailable, using defaults", zap.Error(err))
	} else {
		for _, row := range rows {
			s.apply(row.ID, row.Value)
		}
	}
	s.phase = PhaseReady
}

// UpdateContent persists a new value and then reflects it locally.
// The local copy only changes once the backend accepted the write.
func (s *ContentStore) UpdateContent(ctx context.Context, id, value string) error {
	if _, err := s.api.UpsertContent(ctx, id, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.apply(id, value)
	return nil
}

// Value returns the current value for a field, or "" if unknown
func (s *ContentStore) Value(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[id].Value
}

// Fields returns all fields in editor order
func (s *ContentStore) Fields() []Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Field, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.fields[id])
	}
	return out
}

// Phase reports the store's hydration phase
func (s *ContentStore) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Close stops the store from accepting further updates
func (s *ContentStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// apply updates a field's value, registering unknown IDs at the end of
// the editor order so server-side additions still show up.
func (s *ContentStore) apply(id, value string) {
	f, ok := s.fields[id]
	if !ok {
		s.order = append(s.order, id)
		f = Field{ID: id, Label: id, Kind: "text"}
	}
	f.Value = value
	s.fields[id] = f
}
