package store

import (
	"context"
	"testing"

	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
	domainstore "github.com/jkhopkins39/sxnctuary/internal/domain/store"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domainstore.Product{}, &domainstore.Content{}))
	return NewProductService(persistence.NewGormProductRepository(db))
}

func TestProductServiceCreate(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	t.Run("full payload", func(t *testing.T) {
		resp, err := svc.Create(ctx, CreateProductInput{
			Name:     "Logo T-Shirt",
			Price:    decimal.RequireFromString("29.99"),
			Category: domainstore.CategoryClothing,
			Images:   []string{"🎽"},
			Sizes:    []string{"S", "M"},
		})
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, 29.99, resp.Price)
		assert.Equal(t, []string{"S", "M"}, resp.Sizes)
		assert.Nil(t, resp.Colors)
	})

	t.Run("nil images serialize as empty array", func(t *testing.T) {
		resp, err := svc.Create(ctx, CreateProductInput{
			Name:     "Cap",
			Price:    decimal.NewFromInt(10),
			Category: domainstore.CategoryAccessories,
		})
		require.NoError(t, err)
		assert.NotNil(t, resp.Images)
		assert.Len(t, resp.Images, 0)
	})

	t.Run("invalid payload rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateProductInput{Name: "", Price: decimal.NewFromInt(1)})
		var de *shared.DomainError
		assert.ErrorAs(t, err, &de)
	})
}

func TestProductServiceUpdatePartial(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:     "Logo T-Shirt",
		Price:    decimal.RequireFromString("29.99"),
		Category: domainstore.CategoryClothing,
		Images:   []string{"🎽"},
		Colors:   []string{"Black"},
	})
	require.NoError(t, err)

	name := "Tour T-Shirt"
	updated, err := svc.Update(ctx, created.ID, UpdateProductInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Tour T-Shirt", updated.Name)
	assert.Equal(t, []string{"🎽"}, updated.Images)
	assert.Equal(t, []string{"Black"}, updated.Colors)
	assert.Equal(t, 29.99, updated.Price)
}

func TestProductServiceUpdateMissing(t *testing.T) {
	svc := newProductService(t)

	name := "Anything"
	_, err := svc.Update(context.Background(), 404, UpdateProductInput{Name: &name})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductServiceSeed(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	t.Run("second seed is a no-op", func(t *testing.T) {
		seeded, err := svc.Seed(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		products, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("seed skipped even after manual rows replace the catalog", func(t *testing.T) {
		for _, p := range products {
			require.NoError(t, svc.Delete(ctx, p.ID))
		}
		_, err := svc.Create(ctx, CreateProductInput{
			Name:     "One-off",
			Price:    decimal.NewFromInt(5),
			Category: domainstore.CategoryMusic,
		})
		require.NoError(t, err)

		seeded, err := svc.Seed(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)
	})
}
