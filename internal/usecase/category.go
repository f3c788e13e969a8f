package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/domain/repository"
)

// CategoryUseCase manages product categories.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase constructs CategoryUseCase.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// Create stores a new category with a slug derived from its name.
func (u *CategoryUseCase) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	return u.categories.Create(ctx, name, Slugify(name))
}

// List returns all categories.
func (u *CategoryUseCase) List(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// GetBySlug fetches one category.
func (u *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return u.categories.GetBySlug(ctx, slug)
}

// Update renames a category and refreshes its slug.
func (u *CategoryUseCase) Update(ctx context.Context, id, name string) (*model.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	return u.categories.Update(ctx, id, name, Slugify(name))
}

// Delete removes a category.
func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return u.categories.Delete(ctx, id)
}

// ProductsByCategory resolves a category by slug together with its products.
func (u *CategoryUseCase) ProductsByCategory(ctx context.Context, slug string) (*model.Category, []model.Product, error) {
	category, err := u.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	products, err := u.products.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}
