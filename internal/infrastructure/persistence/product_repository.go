package persistence

import (
	"context"
	"errors"

	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
	"github.com/jkhopkins39/sxnctuary/internal/domain/store"
	"gorm.io/gorm"
)

// GormProductRepository implements store.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create persists a new product and assigns its id
func (r *GormProductRepository) Create(ctx context.Context, product *store.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindAll returns all products ordered newest-first by creation time
func (r *GormProductRepository) FindAll(ctx context.Context) ([]store.Product, error) {
	var products []store.Product
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*store.Product, error) {
	var product store.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Patch applies a partial update. Only fields present in the patch are
// included in the UPDATE, so omitted columns are left bitwise unchanged.
func (r *GormProductRepository) Patch(ctx context.Context, id int64, patch store.ProductPatch) (*store.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := patchColumns(patch)
	if len(updates) == 0 {
		return product, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&store.Product{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Delete removes a product by id
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&store.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func patchColumns(patch store.ProductPatch) map[string]any {
	updates := make(map[string]any)
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Images != nil {
		updates["images"] = *patch.Images
	}
	if patch.Sizes != nil {
		updates["sizes"] = *patch.Sizes
	}
	if patch.Colors != nil {
		updates["colors"] = *patch.Colors
	}
	return updates
}
