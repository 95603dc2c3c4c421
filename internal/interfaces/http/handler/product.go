package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	storeapp "github.com/jkhopkins39/sxnctuary/internal/application/store"
	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *storeapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *storeapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers the product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.GET("/products/:id", h.Get)
	rg.POST("/products", h.Create)
	rg.PUT("/products/:id", h.Update)
	rg.DELETE("/products/:id", h.Delete)
	rg.POST("/seed", h.Seed)
}

// CreateProductRequest is a full product payload. Price accepts a JSON
// number or a numeric string; decimal handles both.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" binding:"required"`
	Images      []string        `json:"images"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
}

// UpdateProductRequest is a partial product payload. A nil field was
// omitted and leaves the stored column untouched; an explicit empty
// array still overwrites.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Images      *[]string        `json:"images"`
	Sizes       *[]string        `json:"sizes"`
	Colors      *[]string        `json:"colors"`
}

// List returns all products, newest first
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get returns one product by id. A non-numeric id is a miss, not a
// server fault.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.NotFound(c, "Product not found")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Product not found")
			return
		}
		h.HandleError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create persists a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), storeapp.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
	})
	if err != nil {
		h.HandleError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.NotFound(c, "Product not found")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, storeapp.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Product not found")
			return
		}
		h.HandleError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product by id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.NotFound(c, "Product not found")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Product not found")
			return
		}
		h.HandleError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Seed populates the default catalog once
func (h *ProductHandler) Seed(c *gin.Context) {
	seeded, err := h.productService.Seed(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "Failed to seed products")
		return
	}

	message := "Products already seeded"
	if seeded {
		message = "Products seeded successfully"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
