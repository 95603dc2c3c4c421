package store

import (
	"context"

	"github.com/jkhopkins39/sxnctuary/internal/domain/store"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo store.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo store.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns every product, newest first, in decoded form
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *toProductResponse(&products[i]))
	}
	return out, nil
}

// Get returns one product or shared.ErrNotFound
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Create persists a new product from a full payload
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductResponse, error) {
	var sizes, colors *store.StringList
	if input.Sizes != nil {
		l := store.StringList(input.Sizes)
		sizes = &l
	}
	if input.Colors != nil {
		l := store.StringList(input.Colors)
		colors = &l
	}

	product, err := store.NewProduct(
		input.Name,
		input.Description,
		input.Price,
		input.Category,
		store.StringList(input.Images),
		sizes,
		colors,
	)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update applies a partial payload; omitted fields stay untouched
func (s *ProductService) Update(ctx context.Context, id int64, input UpdateProductInput) (*ProductResponse, error) {
	patch := store.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
	}
	if input.Images != nil {
		l := store.StringList(*input.Images)
		patch.Images = &l
	}
	if input.Sizes != nil {
		l := store.StringList(*input.Sizes)
		patch.Sizes = &l
	}
	if input.Colors != nil {
		l := store.StringList(*input.Colors)
		patch.Colors = &l
	}

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product by id
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

// Seed populates the default catalog when the table is empty. It
// reports whether anything was inserted. Rows are inserted one at a
// time; a failure mid-loop leaves earlier rows in place.
func (s *ProductService) Seed(ctx context.Context) (bool, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, input := range defaultProducts() {
		if _, err := s.Create(ctx, input); err != nil {
			return false, err
		}
	}
	return true, nil
}
