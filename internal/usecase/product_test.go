package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/test"
	"github.com/spicemart/spicemart/internal/usecase"
)

func validProductInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        "Smoked Paprika",
		Description: "Ground pepper with a deep smoky flavour",
		Price:       4.5,
		CategoryID:  "category-1",
		Quantity:    20,
	}
}

func TestProductCreateValidation(t *testing.T) {
	uc := usecase.NewProductUseCase(&test.ProductRepositoryStub{})

	mutations := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{"missing name", func(in *usecase.ProductInput) { in.Name = "" }},
		{"missing description", func(in *usecase.ProductInput) { in.Description = "" }},
		{"negative price", func(in *usecase.ProductInput) { in.Price = -1 }},
		{"missing category", func(in *usecase.ProductInput) { in.CategoryID = "" }},
		{"negative quantity", func(in *usecase.ProductInput) { in.Quantity = -1 }},
		{"oversized photo", func(in *usecase.ProductInput) { in.Photo = bytes.Repeat([]byte{0x1}, 1_000_001) }},
	}
	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			in := validProductInput()
			tc.mutate(&in)
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestProductCreateDerivesSlugAndStripsPhoto(t *testing.T) {
	var stored *model.Product
	products := &test.ProductRepositoryStub{CreateFn: func(_ context.Context, p *model.Product) error {
		p.ID = "product-1"
		stored = &model.Product{}
		*stored = *p
		return nil
	}}
	uc := usecase.NewProductUseCase(products)

	in := validProductInput()
	in.Photo = []byte{0x1, 0x2}
	in.PhotoContentType = "image/png"

	created, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Slug != "smoked-paprika" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if len(stored.Photo) != 2 {
		t.Fatalf("photo must reach the repository")
	}
	if created.Photo != nil {
		t.Fatalf("photo bytes must not be returned to callers")
	}
}

func TestProductListUsesDefaultLimit(t *testing.T) {
	products := &test.ProductRepositoryStub{ListFn: func(_ context.Context, limit int) ([]model.Product, error) {
		if limit != 12 {
			t.Fatalf("unexpected limit %d", limit)
		}
		return []model.Product{{ID: "product-1"}}, nil
	}}
	uc := usecase.NewProductUseCase(products)

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("unexpected list size %d", len(list))
	}
}

func TestProductFilteredValidatesPriceRange(t *testing.T) {
	uc := usecase.NewProductUseCase(&test.ProductRepositoryStub{})

	if _, err := uc.Filtered(context.Background(), nil, []float64{5}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductFilteredPassesConstraints(t *testing.T) {
	products := &test.ProductRepositoryStub{FilteredFn: func(_ context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error) {
		if len(categoryIDs) != 2 || categoryIDs[0] != "category-1" {
			t.Fatalf("unexpected categories %v", categoryIDs)
		}
		if len(priceRange) != 2 || priceRange[0] != 0 || priceRange[1] != 19.99 {
			t.Fatalf("unexpected price range %v", priceRange)
		}
		return []model.Product{{ID: "product-1"}}, nil
	}}
	uc := usecase.NewProductUseCase(products)

	list, err := uc.Filtered(context.Background(), []string{"category-1", "category-2"}, []float64{0, 19.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("unexpected list size %d", len(list))
	}
}

func TestProductRelatedBoundsSuggestions(t *testing.T) {
	products := &test.ProductRepositoryStub{RelatedFn: func(_ context.Context, productID, categoryID string, limit int) ([]model.Product, error) {
		if productID != "product-1" || categoryID != "category-1" {
			t.Fatalf("unexpected arguments %q %q", productID, categoryID)
		}
		if limit != 3 {
			t.Fatalf("unexpected limit %d", limit)
		}
		return []model.Product{{ID: "product-2"}}, nil
	}}
	uc := usecase.NewProductUseCase(products)

	related, err := uc.Related(context.Background(), "product-1", "category-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("unexpected list size %d", len(related))
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Smoked Paprika", "smoked-paprika"},
		{"  Garam   Masala  ", "garam-masala"},
		{"Chili (Extra Hot!)", "chili-extra-hot"},
		{"100% Pure", "100-pure"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := usecase.Slugify(tc.in); got != tc.want {
			t.Fatalf("usecase.Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryCreateRequiresName(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&test.CategoryRepositoryStub{}, &test.ProductRepositoryStub{})

	if _, err := uc.Create(context.Background(), ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	category, err := uc.Create(context.Background(), "Whole Spices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Slug != "whole-spices" {
		t.Fatalf("unexpected slug %q", category.Slug)
	}
}

func TestProductsByCategoryResolvesSlugFirst(t *testing.T) {
	categories := &test.CategoryRepositoryStub{GetBySlugFn: func(_ context.Context, slug string) (*model.Category, error) {
		return &model.Category{ID: "category-7", Name: "Whole Spices", Slug: slug}, nil
	}}
	products := &test.ProductRepositoryStub{ListByCategoryFn: func(_ context.Context, categoryID string) ([]model.Product, error) {
		if categoryID != "category-7" {
			t.Fatalf("unexpected category id %q", categoryID)
		}
		return []model.Product{{ID: "product-1"}, {ID: "product-2"}}, nil
	}}
	uc := usecase.NewCategoryUseCase(categories, products)

	category, list, err := uc.ProductsByCategory(context.Background(), "whole-spices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID != "category-7" {
		t.Fatalf("unexpected category %q", category.ID)
	}
	if len(list) != 2 {
		t.Fatalf("unexpected list size %d", len(list))
	}
}

func TestProductsByCategoryUnknownSlug(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&test.CategoryRepositoryStub{}, &test.ProductRepositoryStub{})

	if _, _, err := uc.ProductsByCategory(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
