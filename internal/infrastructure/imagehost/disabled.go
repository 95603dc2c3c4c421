package imagehost

import (
	"context"
	"errors"
	"io"
)

// Disabled is the image host used when no Cloudinary credential is
// configured. Every upload fails with a clear message instead of the
// server refusing to start; the rest of the site works without image
// hosting.
type Disabled struct{}

// NewDisabled creates a Disabled image host
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Upload always fails
func (*Disabled) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	return "", errors.New("image hosting is not configured")
}
