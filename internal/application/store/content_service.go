package store

import (
	"context"

	"github.com/jkhopkins39/sxnctuary/internal/domain/store"
)

// ContentService handles admin-editable content values
type ContentService struct {
	contentRepo store.ContentRepository
}

// NewContentService creates a new ContentService
func NewContentService(contentRepo store.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// List returns every content row
func (s *ContentService) List(ctx context.Context) ([]ContentResponse, error) {
	contents, err := s.contentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ContentResponse, 0, len(contents))
	for i := range contents {
		out = append(out, *toContentResponse(&contents[i]))
	}
	return out, nil
}

// Upsert creates or overwrites the value for a key
func (s *ContentService) Upsert(ctx context.Context, id, value string) (*ContentResponse, error) {
	content, err := store.NewContent(id, value)
	if err != nil {
		return nil, err
	}
	if err := s.contentRepo.Upsert(ctx, content); err != nil {
		return nil, err
	}
	return toContentResponse(content), nil
}

// Seed populates the default content keys when the table is empty. It
// reports whether anything was inserted.
func (s *ContentService) Seed(ctx context.Context) (bool, error) {
	count, err := s.contentRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, def := range defaultContent() {
		content, err := store.NewContent(def.ID, def.Value)
		if err != nil {
			return false, err
		}
		if err := s.contentRepo.Create(ctx, content); err != nil {
			return false, err
		}
	}
	return true, nil
}
