package state

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/jkhopkins39/sxnctuary/client"
)

const (
	releaseImageKey     = "latest-release-image"
	defaultReleaseImage = "/IMG_3220.jpg"
)

// ReleaseImageAPI is the slice of the data facade the release-image
// store needs: content hydration plus the upload relay.
type ReleaseImageAPI interface {
	ContentAPI
	UploadImages(ctx context.Context, files []client.UploadFile) ([]string, error)
}

// ReleaseImageStore tracks the image shown on the homepage latest
// release card. It hydrates from the shared content table and falls
// back to the bundled image when the backend is unreachable.
type ReleaseImageStore struct {
	mu     sync.Mutex
	api    ReleaseImageAPI
	logger *zap.Logger

	phase  Phase
	url    string
	closed bool
}

// NewReleaseImageStore creates a store showing the bundled default image
func NewReleaseImageStore(api ReleaseImageAPI, log *zap.Logger) *ReleaseImageStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReleaseImageStore{
		api:    api,
		logger: log,
		url:    defaultReleaseImage,
	}
}

// Load hydrates the image URL from the content table, seeding and
// retrying once on failure. Always leaves the store PhaseReady.
func (s *ReleaseImageStore) Load(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseLoading
	s.mu.Unlock()

	rows, err := s.api.ListContent(ctx)
	if err != nil {
		s.logger.Warn("Release image fetch failed, seeding and retrying", zap.Error(err))
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
		s.logger.Warn("Release image unavailable, using default", zap.Error(err))
	} else {
		for _, row := range rows {
			if row.ID == releaseImageKey && row.Value != "" {
				s.url = row.Value
				break
			}
		}
	}
	s.phase = PhaseReady
}

// UpdateImage persists a new image URL and reflects it locally once
// the backend accepted the write.
func (s *ReleaseImageStore) UpdateImage(ctx context.Context, url string) error {
	if _, err := s.api.UpsertContent(ctx, releaseImageKey, url); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.url = url
	return nil
}

// UploadImage relays a file to the image host and makes the first
// hosted URL the new release image.
func (s *ReleaseImageStore) UploadImage(ctx context.Context, file client.UploadFile) (string, error) {
	urls, err := s.api.UploadImages(ctx, []client.UploadFile{file})
	if err != nil {
		return "", err
	}
	if len(urls) == 0 {
		return "", errors.New("upload returned no URL")
	}
	if err := s.UpdateImage(ctx, urls[0]); err != nil {
		return "", err
	}
	return urls[0], nil
}

// URL returns the current release image URL
func (s *ReleaseImageStore) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

// Phase reports the store's hydration phase
func (s *ReleaseImageStore) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Close stops the store from accepting further updates
func (s *ReleaseImageStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
