package repository

import (
	"context"

	"github.com/spicemart/spicemart/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
// Read operations never load photo bytes; Photo fetches them explicitly.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	List(ctx context.Context, limit int) ([]model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Photo(ctx context.Context, id string) ([]byte, string, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	AdjustInventory(ctx context.Context, productIDs []string) (*model.InventoryTally, error)

	// Browsing queries. Filtered constrains by category membership and an
	// optional [min, max] price range; empty arguments mean no constraint.
	Filtered(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error)
	Search(ctx context.Context, keyword string) ([]model.Product, error)
	Related(ctx context.Context, productID, categoryID string, limit int) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
}
