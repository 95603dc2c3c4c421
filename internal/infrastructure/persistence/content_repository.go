package persistence

import (
	"context"
	"errors"

	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
	"github.com/jkhopkins39/sxnctuary/internal/domain/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContentRepository implements store.ContentRepository using GORM
type GormContentRepository struct {
	db *gorm.DB
}

// NewGormContentRepository creates a new GormContentRepository
func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

// FindAll returns all content rows
func (r *GormContentRepository) FindAll(ctx context.Context) ([]store.Content, error) {
	var contents []store.Content
	if err := r.db.WithContext(ctx).Order("id").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// FindByID finds a content row by its key
func (r *GormContentRepository) FindByID(ctx context.Context, id string) (*store.Content, error) {
	var content store.Content
	if err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// Upsert creates the row if absent, otherwise overwrites its value.
// The key is the primary key, so this can never produce duplicates.
func (r *GormContentRepository) Upsert(ctx context.Context, content *store.Content) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(content).Error
}

// Create inserts a new content row
func (r *GormContentRepository) Create(ctx context.Context, content *store.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

// Count returns the number of content rows
func (r *GormContentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Content{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
