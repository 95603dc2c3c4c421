package store

import "context"

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	// Create persists a new product and assigns its id.
	Create(ctx context.Context, product *Product) error
	// FindAll returns every product ordered newest-first by creation time.
	FindAll(ctx context.Context) ([]Product, error)
	// FindByID returns a product or shared.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*Product, error)
	// Patch applies a partial update; only fields present in the patch
	// reach the UPDATE statement. Returns the updated row.
	Patch(ctx context.Context, id int64, patch ProductPatch) (*Product, error)
	// Delete removes a product by id, returning shared.ErrNotFound when
	// no row matched.
	Delete(ctx context.Context, id int64) error
	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)
}

// ContentRepository defines persistence operations for content values
type ContentRepository interface {
	// FindAll returns every content row.
	FindAll(ctx context.Context) ([]Content, error)
	// FindByID returns one content row or shared.ErrNotFound.
	FindByID(ctx context.Context, id string) (*Content, error)
	// Upsert creates the row if absent, otherwise overwrites its value.
	Upsert(ctx context.Context, content *Content) error
	// Create inserts a new row (seed path).
	Create(ctx context.Context, content *Content) error
	// Count returns the number of content rows.
	Count(ctx context.Context) (int64, error)
}
