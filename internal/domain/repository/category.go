package repository

import (
	"context"

	"github.com/spicemart/spicemart/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name, slug string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Update(ctx context.Context, id, name, slug string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
