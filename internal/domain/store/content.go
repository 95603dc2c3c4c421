package store

import (
	"time"

	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
)

// Well-known content keys referenced by both the seed data and the
// client-side defaults.
const (
	ContentHeroTitle         = "hero-title"
	ContentHeroSubtitle      = "hero-subtitle"
	ContentHeroDescription   = "hero-description"
	ContentReleaseName       = "latest-release-name"
	ContentReleaseDesc       = "latest-release-description"
	ContentMerchTitle        = "merch-title"
	ContentMerchSubtitle     = "merch-subtitle"
	ContentFooterDescription = "footer-description"
	ContentReleaseImage      = "latest-release-image"
)

// Content is a single admin-editable text value identified by a stable
// string key. Writes are upserts; the key uniquely determines at most
// one row.
type Content struct {
	ID        string `gorm:"type:varchar(100);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Content) TableName() string {
	return "contents"
}

// NewContent creates a content row after validating the key.
func NewContent(id, value string) (*Content, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT_ID", "Content id cannot be empty")
	}
	if len(id) > 100 {
		return nil, shared.NewDomainError("INVALID_CONTENT_ID", "Content id cannot exceed 100 characters")
	}
	return &Content{ID: id, Value: value}, nil
}
