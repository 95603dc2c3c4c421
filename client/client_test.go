package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllProducts(t *testing.T) {
	t.Run("decodes the bare array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"name":"Logo T-Shirt","price":29.99,"category":"clothing","images":["🎽"]}]`))
		}))
		defer srv.Close()

		products := New(srv.URL + "/api").GetAllProducts(context.Background())
		require.Len(t, products, 1)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, 29.99, products[0].Price)
	})

	t.Run("server error gives empty list, not a crash", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		}))
		defer srv.Close()

		products := New(srv.URL + "/api").GetAllProducts(context.Background())
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("unreachable server gives empty list", func(t *testing.T) {
		products := New("http://127.0.0.1:1/api").GetAllProducts(context.Background())
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestGetProductByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/1" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"name":"Logo T-Shirt","price":29.99}`))
			return
		}
		http.Error(w, `{"error":"Product not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	found := c.GetProductByID(context.Background(), 1)
	require.NotNil(t, found)
	assert.Equal(t, "Logo T-Shirt", found.Name)

	assert.Nil(t, c.GetProductByID(context.Background(), 999))
}

func TestCreateProduct(t *testing.T) {
	t.Run("posts JSON and decodes the created product", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Cap", req["name"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":7,"name":"Cap","price":24.99}`))
		}))
		defer srv.Close()

		created, err := New(srv.URL+"/api").CreateProduct(context.Background(), CreateProductData{
			Name: "Cap", Price: 24.99, Category: "accessories",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
	})

	t.Run("failures propagate with the server message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Invalid value for field Name"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL+"/api").CreateProduct(context.Background(), CreateProductData{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid value for field Name")
	})
}

func TestUpdateProductOmitsNilFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/3", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "price")
		assert.NotContains(t, req, "name", "omitted fields must not appear in the body")
		assert.NotContains(t, req, "images")

		_, _ = w.Write([]byte(`{"id":3,"price":39.99}`))
	}))
	defer srv.Close()

	price := 39.99
	updated, err := New(srv.URL+"/api").UpdateProduct(context.Background(), 3, UpdateProductData{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 39.99, updated.Price)
}

func TestDeleteProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/1" {
			_, _ = w.Write([]byte(`{"success":true}`))
			return
		}
		http.Error(w, `{"error":"Product not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	assert.NoError(t, c.DeleteProduct(context.Background(), 1))
	assert.Error(t, c.DeleteProduct(context.Background(), 999))
}

func TestContentCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/content" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"hero-title","value":"SXNCTUARY"}]`))
		case r.URL.Path == "/api/content" && r.Method == http.MethodPost:
			var req Content
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NoError(t, json.NewEncoder(w).Encode(req))
		case r.URL.Path == "/api/seed-content":
			_, _ = w.Write([]byte(`{"message":"Content seeded successfully"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	ctx := context.Background()

	contents, err := c.ListContent(ctx)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "hero-title", contents[0].ID)

	saved, err := c.UpsertContent(ctx, "hero-title", "New Title")
	require.NoError(t, err)
	assert.Equal(t, "New Title", saved.Value)

	assert.NoError(t, c.SeedContent(ctx))
}

func TestUploadImages(t *testing.T) {
	t.Run("sends multipart under the images field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(32<<20))
			files := r.MultipartForm.File["images"]
			require.Len(t, files, 2)
			assert.Equal(t, "a.png", files[0].Filename)
			assert.Equal(t, "b.png", files[1].Filename)

			_, _ = w.Write([]byte(`{"success":true,"files":[{"url":"https://cdn/a"},{"url":"https://cdn/b"}],"message":"2 file(s) uploaded successfully"}`))
		}))
		defer srv.Close()

		urls, err := New(srv.URL+"/api").UploadImages(context.Background(), []UploadFile{
			{Name: "a.png", Reader: strings.NewReader("aaa")},
			{Name: "b.png", Reader: strings.NewReader("bbb")},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn/a", "https://cdn/b"}, urls)
	})

	t.Run("failures propagate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Failed to upload a.png"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL+"/api").UploadImages(context.Background(), []UploadFile{
			{Name: "a.png", Reader: strings.NewReader("aaa")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to upload a.png")
	})
}
