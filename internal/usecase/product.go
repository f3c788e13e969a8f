package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/domain/repository"
)

// maxPhotoBytes caps uploaded product images at roughly one megabyte.
const maxPhotoBytes = 1_000_000

// defaultListLimit bounds the storefront product listing.
const defaultListLimit = 12

// relatedLimit bounds the related-products suggestion list.
const relatedLimit = 3

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Name             string
	Description      string
	Price            float64
	CategoryID       string
	Quantity         int
	Shipping         bool
	Photo            []byte
	PhotoContentType string
}

// ProductUseCase manages the catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

func validateProductInput(in ProductInput) error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", domainErrors.ErrValidation)
	case in.Price < 0:
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	case in.CategoryID == "":
		return fmt.Errorf("%w: category is required", domainErrors.ErrValidation)
	case in.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", domainErrors.ErrValidation)
	case len(in.Photo) > maxPhotoBytes:
		return fmt.Errorf("%w: photo must be smaller than 1MB", domainErrors.ErrValidation)
	}
	return nil
}

// Create validates input and stores a new product with a slug derived from
// its name.
func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:             in.Name,
		Slug:             Slugify(in.Name),
		Description:      in.Description,
		Price:            in.Price,
		CategoryID:       in.CategoryID,
		Quantity:         in.Quantity,
		Shipping:         in.Shipping,
		Photo:            in.Photo,
		PhotoContentType: in.PhotoContentType,
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Photo = nil
	return p, nil
}

// List returns the newest products without photo bytes.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx, defaultListLimit)
}

// GetBySlug fetches one product without photo bytes.
func (u *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return u.products.GetBySlug(ctx, slug)
}

// Photo fetches the stored image and its content type.
func (u *ProductUseCase) Photo(ctx context.Context, id string) ([]byte, string, error) {
	return u.products.Photo(ctx, id)
}

// Update validates input and replaces the product's fields; a nil photo keeps
// the stored image.
func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:               id,
		Name:             in.Name,
		Slug:             Slugify(in.Name),
		Description:      in.Description,
		Price:            in.Price,
		CategoryID:       in.CategoryID,
		Quantity:         in.Quantity,
		Shipping:         in.Shipping,
		Photo:            in.Photo,
		PhotoContentType: in.PhotoContentType,
	}
	if err := u.products.Update(ctx, p); err != nil {
		return nil, err
	}
	p.Photo = nil
	return p, nil
}

// Delete removes the product.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}

// Filtered returns products constrained by the checked categories and an
// optional [min, max] price range.
func (u *ProductUseCase) Filtered(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error) {
	if len(priceRange) != 0 && len(priceRange) != 2 {
		return nil, fmt.Errorf("%w: price range needs exactly two bounds", domainErrors.ErrValidation)
	}
	return u.products.Filtered(ctx, categoryIDs, priceRange)
}

// Search matches the keyword against product names and descriptions.
func (u *ProductUseCase) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	return u.products.Search(ctx, keyword)
}

// Related suggests other products from the same category.
func (u *ProductUseCase) Related(ctx context.Context, productID, categoryID string) ([]model.Product, error) {
	return u.products.Related(ctx, productID, categoryID, relatedLimit)
}

// Count reports the catalog size.
func (u *ProductUseCase) Count(ctx context.Context) (int64, error) {
	return u.products.Count(ctx)
}
