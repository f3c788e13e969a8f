package test

import (
	"context"

	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ParseFn         func(string) (string, error)
	UserByIDFn      func(context.Context, string) (*model.User, error)
	UpdateProfileFn func(context.Context, string, string, string, string) (*model.User, error)
}

// Register returns the user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: "user-1", Name: name, Email: email}, "token", nil
}

// Authenticate returns the user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email}, "token", nil
}

// ParseToken returns the stored identifier for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// UserByID returns the configured user.
func (s AuthFacadeStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id}, nil
}

// UpdateProfile delegates or echoes the update.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, userID, name, password, address string) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, name, password, address)
	}
	return &model.User{ID: userID, Name: name, Address: address}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, string, string, []model.CartItem) (*model.Order, error)
	PaymentTokenFn func(context.Context) (string, error)
	MyOrdersFn     func(context.Context, string) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

// Checkout delegates or returns a fresh order.
func (s OrderFacadeStub) Checkout(ctx context.Context, buyerID, nonce string, cart []model.CartItem) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, buyerID, nonce, cart)
	}
	return &model.Order{ID: "order-1", BuyerID: buyerID, Status: model.OrderStatusUnprocessed}, nil
}

// PaymentToken delegates or returns a fixed token.
func (s OrderFacadeStub) PaymentToken(ctx context.Context) (string, error) {
	if s.PaymentTokenFn != nil {
		return s.PaymentTokenFn(ctx)
	}
	return "client-token", nil
}

// MyOrders returns predefined orders for the given buyer.
func (s OrderFacadeStub) MyOrders(ctx context.Context, buyerID string) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, buyerID)
	}
	return []model.Order{{ID: "order-1", BuyerID: buyerID}}, nil
}

// AllOrders returns predefined orders for the admin listing.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: "order-1"}}, nil
}

// UpdateOrderStatus delegates or echoes the requested transition.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// CatalogFacadeStub simulates product and category operations.
type CatalogFacadeStub struct {
	CreateProductFn  func(context.Context, usecase.ProductInput) (*model.Product, error)
	ProductsFn       func(context.Context) ([]model.Product, error)
	ProductBySlugFn  func(context.Context, string) (*model.Product, error)
	ProductPhotoFn   func(context.Context, string) ([]byte, string, error)
	UpdateProductFn  func(context.Context, string, usecase.ProductInput) (*model.Product, error)
	DeleteProductFn  func(context.Context, string) error
	FilteredFn       func(context.Context, []string, []float64) ([]model.Product, error)
	SearchFn         func(context.Context, string) ([]model.Product, error)
	RelatedFn        func(context.Context, string, string) ([]model.Product, error)
	CountFn          func(context.Context) (int64, error)
	ByCategoryFn     func(context.Context, string) (*model.Category, []model.Product, error)
	CreateCategoryFn func(context.Context, string) (*model.Category, error)
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CategoryBySlugFn func(context.Context, string) (*model.Category, error)
	UpdateCategoryFn func(context.Context, string, string) (*model.Category, error)
	DeleteCategoryFn func(context.Context, string) error
}

// CreateProduct delegates or echoes the input.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, in usecase.ProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in)
	}
	return &model.Product{ID: "product-1", Name: in.Name, Price: in.Price}, nil
}

// Products returns predefined catalog entries.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "product-1"}}, nil
}

// ProductBySlug delegates or returns a product with the given slug.
func (s CatalogFacadeStub) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.ProductBySlugFn != nil {
		return s.ProductBySlugFn(ctx, slug)
	}
	return &model.Product{ID: "product-1", Slug: slug}, nil
}

// ProductPhoto delegates or returns a tiny image.
func (s CatalogFacadeStub) ProductPhoto(ctx context.Context, id string) ([]byte, string, error) {
	if s.ProductPhotoFn != nil {
		return s.ProductPhotoFn(ctx, id)
	}
	return []byte{0x1}, "image/png", nil
}

// UpdateProduct delegates or echoes the input.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id string, in usecase.ProductInput) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, in)
	}
	return &model.Product{ID: id, Name: in.Name, Price: in.Price}, nil
}

// DeleteProduct delegates or succeeds.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// FilteredProducts delegates or returns an empty slice.
func (s CatalogFacadeStub) FilteredProducts(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error) {
	if s.FilteredFn != nil {
		return s.FilteredFn(ctx, categoryIDs, priceRange)
	}
	return []model.Product{}, nil
}

// SearchProducts delegates or returns an empty slice.
func (s CatalogFacadeStub) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, keyword)
	}
	return []model.Product{}, nil
}

// RelatedProducts delegates or returns an empty slice.
func (s CatalogFacadeStub) RelatedProducts(ctx context.Context, productID, categoryID string) ([]model.Product, error) {
	if s.RelatedFn != nil {
		return s.RelatedFn(ctx, productID, categoryID)
	}
	return []model.Product{}, nil
}

// ProductsCount delegates or returns zero.
func (s CatalogFacadeStub) ProductsCount(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 0, nil
}

// ProductsByCategory delegates or returns an empty category view.
func (s CatalogFacadeStub) ProductsByCategory(ctx context.Context, slug string) (*model.Category, []model.Product, error) {
	if s.ByCategoryFn != nil {
		return s.ByCategoryFn(ctx, slug)
	}
	return &model.Category{ID: "category-1", Slug: slug}, []model.Product{}, nil
}

// CreateCategory delegates or echoes the name.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name)
	}
	return &model.Category{ID: "category-1", Name: name}, nil
}

// Categories returns predefined categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: "category-1"}}, nil
}

// CategoryBySlug delegates or returns a category with the given slug.
func (s CatalogFacadeStub) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if s.CategoryBySlugFn != nil {
		return s.CategoryBySlugFn(ctx, slug)
	}
	return &model.Category{ID: "category-1", Slug: slug}, nil
}

// UpdateCategory delegates or echoes the arguments.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, id, name string) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, name)
	}
	return &model.Category{ID: id, Name: name}, nil
}

// DeleteCategory delegates or succeeds.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id string) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
}
