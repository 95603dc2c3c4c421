package store

import (
	"time"

	"github.com/jkhopkins39/sxnctuary/internal/domain/store"
	"github.com/shopspring/decimal"
)

// ProductResponse is the decoded wire representation of a product.
// Field names match the storefront client: sizes and colors are omitted
// entirely when they were never stored.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductInput carries a full product payload into the service
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Images      []string
	Sizes       []string
	Colors      []string
}

// UpdateProductInput carries a partial product payload. Nil means the
// field was omitted and must not be touched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Images      *[]string
	Sizes       *[]string
	Colors      *[]string
}

// ContentResponse is the wire representation of a content row
type ContentResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func toProductResponse(p *store.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if p.Sizes != nil {
		resp.Sizes = *p.Sizes
	}
	if p.Colors != nil {
		resp.Colors = *p.Colors
	}
	return resp
}

func toContentResponse(c *store.Content) *ContentResponse {
	return &ContentResponse{ID: c.ID, Value: c.Value}
}
