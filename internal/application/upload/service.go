package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
)

// ImageHost is the port to an external image-hosting API. The relay
// keeps no local copy of uploaded bytes.
type ImageHost interface {
	// Upload forwards one file's content and returns its public URL.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Limits constrains a single upload request
type Limits struct {
	MaxFiles    int
	MaxFileSize int64
}

// DefaultLimits matches the storefront contract: at most 4 images of
// 5 MB each per request.
func DefaultLimits() Limits {
	return Limits{MaxFiles: 4, MaxFileSize: 5 << 20}
}

// Service relays uploaded images to an external host
type Service struct {
	host   ImageHost
	limits Limits
}

// NewService creates a new upload Service
func NewService(host ImageHost, limits Limits) *Service {
	return &Service{host: host, limits: limits}
}

// Relay validates every file first and only then forwards them, so a
// rejected request never produces a partial upload. On a host failure
// the whole request fails and no URLs are returned. The result order
// matches the submission order; the first URL is the main display
// image downstream.
func (s *Service) Relay(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, shared.NewDomainError("NO_FILES", "No files uploaded")
	}
	if len(files) > s.limits.MaxFiles {
		return nil, shared.NewDomainError("TOO_MANY_FILES",
			fmt.Sprintf("At most %d files per upload", s.limits.MaxFiles))
	}
	for _, fh := range files {
		if err := s.validate(fh); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.forward(ctx, fh)
		if err != nil {
			return nil, shared.NewDomainError("UPLOAD_FAILED",
				fmt.Sprintf("Failed to upload %s", fh.Filename))
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *Service) validate(fh *multipart.FileHeader) error {
	if fh.Size > s.limits.MaxFileSize {
		return shared.NewDomainError("FILE_TOO_LARGE",
			fmt.Sprintf("%s exceeds the %d MB limit", fh.Filename, s.limits.MaxFileSize>>20))
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return shared.NewDomainError("INVALID_FILE_TYPE",
			fmt.Sprintf("%s is not an image", fh.Filename))
	}
	return nil
}

func (s *Service) forward(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return s.host.Upload(ctx, fh.Filename, f)
}
