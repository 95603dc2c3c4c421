package store

import (
	"github.com/jkhopkins39/sxnctuary/internal/domain/store"
	"github.com/shopspring/decimal"
)

// defaultProducts returns the fixed six-entry launch catalog. The
// single-element image entries are emoji placeholders that admins
// replace with hosted URLs after the first upload.
func defaultProducts() []CreateProductInput {
	return []CreateProductInput{
		{
			Name:        "SXNCTUARY Logo T-Shirt",
			Description: "Premium cotton t-shirt with glowing logo design",
			Price:       decimal.RequireFromString("29.99"),
			Category:    store.CategoryClothing,
			Images:      []string{"🎽"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Dark Green"},
		},
		{
			Name:        "Digital Dreams Hoodie",
			Description: "Comfortable hoodie featuring album artwork",
			Price:       decimal.RequireFromString("49.99"),
			Category:    store.CategoryClothing,
			Images:      []string{"🧥"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Navy"},
		},
		{
			Name:        "Hacker Cap",
			Description: "Futuristic baseball cap with LED accent",
			Price:       decimal.RequireFromString("24.99"),
			Category:    store.CategoryAccessories,
			Images:      []string{"🧢"},
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black"},
		},
		{
			Name:        "Glow Stickers Pack",
			Description: "Set of 10 glow-in-the-dark stickers",
			Price:       decimal.RequireFromString("9.99"),
			Category:    store.CategoryAccessories,
			Images:      []string{"✨"},
			Sizes:       []string{"One Size"},
			Colors:      []string{"Mixed"},
		},
		{
			Name:        "Digital Dreams Vinyl",
			Description: "Limited edition vinyl record with digital download",
			Price:       decimal.RequireFromString("34.99"),
			Category:    store.CategoryMusic,
			Images:      []string{"💿"},
			Sizes:       []string{"12\""},
			Colors:      []string{"Clear Green"},
		},
		{
			Name:        "USB Drive Collection",
			Description: "16GB USB with exclusive tracks and artwork",
			Price:       decimal.RequireFromString("19.99"),
			Category:    store.CategoryMusic,
			Images:      []string{"💾"},
			Sizes:       []string{"16GB"},
			Colors:      []string{"Black"},
		},
	}
}

type contentDefault struct {
	ID    string
	Value string
}

// defaultContent returns the nine well-known content keys with their
// launch values.
func defaultContent() []contentDefault {
	return []contentDefault{
		{store.ContentHeroTitle, "SXNCTUARY"},
		{store.ContentHeroSubtitle, "Drum'n'Bass Producer"},
		{store.ContentHeroDescription, "Pushing the boundaries of drum'n'bass with futuristic soundscapes, innovative production techniques, and cutting-edge technology."},
		{store.ContentReleaseName, "RUNNERS"},
		{store.ContentReleaseDesc, "My latest drum'n'bass track"},
		{store.ContentMerchTitle, "SXNCTUARY Merch"},
		{store.ContentMerchSubtitle, "Official merchandise featuring futuristic designs and premium quality"},
		{store.ContentFooterDescription, "Pushing the boundaries of electronic music with futuristic soundscapes and innovative production."},
		{store.ContentReleaseImage, "/IMG_3220.jpg"},
	}
}
