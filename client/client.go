// Package client is the typed data-access facade over the storefront
// REST API. Read helpers swallow failures into safe defaults so the
// storefront keeps rendering; write and upload helpers return the
// error so admin tooling can surface it instead of silently losing
// data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Product is the decoded wire representation of a catalog entry
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
}

// CreateProductData is a full product payload
type CreateProductData struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
}

// UpdateProductData is a partial product payload; nil fields are
// omitted from the request and leave the stored value untouched.
type UpdateProductData struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty"`
	Colors      *[]string `json:"colors,omitempty"`
}

// Content is one admin-editable text value
type Content struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// UploadFile is one file to relay to the image host
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// Client calls the storefront REST API
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithLogger sets a custom logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:3001/api")
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProducts returns all products or an error
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetAllProducts returns all products, or an empty list on any failure
// so the storefront never blanks out over a transient error.
func (c *Client) GetAllProducts(ctx context.Context) []Product {
	products, err := c.ListProducts(ctx)
	if err != nil {
		c.logger.Warn("Failed to fetch products", zap.Error(err))
		return []Product{}
	}
	return products
}

// GetProductByID returns one product, or nil when missing or on failure
func (c *Client) GetProductByID(ctx context.Context, id int64) *Product {
	var product Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		c.logger.Warn("Failed to fetch product", zap.Int64("id", id), zap.Error(err))
		return nil
	}
	return &product
}

// CreateProduct creates a product; failures propagate to the caller
func (c *Client) CreateProduct(ctx context.Context, data CreateProductData) (*Product, error) {
	var product Product
	if err := c.post(ctx, "/products", data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update; failures propagate
func (c *Client) UpdateProduct(ctx context.Context, id int64, data UpdateProductData) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product; failures propagate
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// SeedProducts triggers the idempotent product seed
func (c *Client) SeedProducts(ctx context.Context) error {
	return c.post(ctx, "/seed", nil, nil)
}

// ListContent returns all content rows or an error
func (c *Client) ListContent(ctx context.Context) ([]Content, error) {
	var contents []Content
	if err := c.get(ctx, "/content", &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// GetContent returns all content rows, or an empty list on any failure
func (c *Client) GetContent(ctx context.Context) []Content {
	contents, err := c.ListContent(ctx)
	if err != nil {
		c.logger.Warn("Failed to fetch content", zap.Error(err))
		return []Content{}
	}
	return contents
}

// UpsertContent creates or overwrites one content value; failures propagate
func (c *Client) UpsertContent(ctx context.Context, id, value string) (*Content, error) {
	var content Content
	if err := c.post(ctx, "/content", Content{ID: id, Value: value}, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// SeedContent triggers the idempotent content seed
func (c *Client) SeedContent(ctx context.Context) error {
	return c.post(ctx, "/seed-content", nil, nil)
}

// UploadImages relays files to the image host and returns hosted URLs
// in submission order; failures propagate so admins see them.
func (c *Client) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, f := range files {
		part, err := mw.CreateFormFile("images", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var result struct {
		Success bool `json:"success"`
		Files   []struct {
			URL string `json:"url"`
		} `json:"files"`
	}
	if err := c.send(req, &result); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		urls = append(urls, f.URL)
	}
	return urls, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", req.Method, req.URL.Path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
