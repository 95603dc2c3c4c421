// Package imagehost provides image-hosting API clients for the upload relay.
package imagehost

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Cloudinary forwards images to the Cloudinary upload API.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *zap.Logger
}

// NewCloudinary creates a client from a cloudinary:// credential URL.
func NewCloudinary(credentialURL string, log *zap.Logger) (*Cloudinary, error) {
	if credentialURL == "" {
		return nil, errors.New("cloudinary credential URL is required")
	}
	cld, err := cloudinary.NewFromURL(credentialURL)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld, folder: "sxnctuary", logger: log}, nil
}

// Upload forwards one file and returns its public HTTPS URL.
func (c *Cloudinary) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		c.logger.Error("Cloudinary upload failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return "", err
	}
	if result.SecureURL == "" {
		c.logger.Error("Cloudinary returned no URL",
			zap.String("filename", filename),
			zap.String("error", result.Error.Message),
		)
		return "", errors.New("image host returned no URL")
	}
	return result.SecureURL, nil
}
