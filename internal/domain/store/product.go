package store

import (
	"time"

	"github.com/jkhopkins39/sxnctuary/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product categories used by the storefront. The data layer does not
// enforce these; the UI only ever creates products in one of them.
const (
	CategoryClothing    = "clothing"
	CategoryAccessories = "accessories"
	CategoryMusic       = "music"
)

// Product is a catalog entry. Array-valued fields are persisted as
// JSON-encoded text columns via StringList; sizes and colors are
// nullable and stay nil when never supplied.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"type:varchar(50);not null"`
	Images      StringList      `gorm:"type:text"`
	Sizes       *StringList     `gorm:"type:text"`
	Colors      *StringList     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product, validating the fields the store
// depends on.
func NewProduct(name, description string, price decimal.Decimal, category string, images StringList, sizes, colors *StringList) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if images == nil {
		images = StringList{}
	}

	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Images:      images,
		Sizes:       sizes,
		Colors:      colors,
	}, nil
}

// ProductPatch is a partial update. A nil field means "do not touch";
// a non-nil pointer to an empty value still overwrites. This keeps the
// omit-means-untouched contract explicit instead of relying on zero
// values.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Images      *StringList
	Sizes       *StringList
	Colors      *StringList
}

// Validate checks the supplied fields of the patch.
func (p ProductPatch) Validate() error {
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := validatePrice(*p.Price); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether the patch touches no fields.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Images == nil && p.Sizes == nil && p.Colors == nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
