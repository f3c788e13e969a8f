package dto

import (
	"time"

	"github.com/spicemart/spicemart/internal/domain/model"
)

// CategoryRequest carries a category name for create and rename.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FilterRequest narrows the catalog by checked categories and an optional
// [min, max] price range.
type FilterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

// ProductResponse is the catalog view of a product. Photo bytes are served
// from a dedicated endpoint and never appear here.
type ProductResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CategoryID  string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Sold        int       `json:"sold"`
	Shipping    bool      `json:"shipping"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductsByCategoryResponse pairs a category with its products.
type ProductsByCategoryResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

// ToCategoryResponse maps a domain category to its API view.
func ToCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// ToProductResponse maps a domain product to its API view.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Quantity:    p.Quantity,
		Sold:        p.Sold,
		Shipping:    p.Shipping,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
