package handlers

import (
	"context"

	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID, name, password, address string) (*model.User, error)
}

// OrderFacade encapsulates checkout and order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, buyerID, nonce string, cart []model.CartItem) (*model.Order, error)
	PaymentToken(ctx context.Context) (string, error)
	MyOrders(ctx context.Context, buyerID string) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}

// CatalogFacade provides product and category management.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, in usecase.ProductInput) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ProductPhoto(ctx context.Context, id string) ([]byte, string, error)
	UpdateProduct(ctx context.Context, id string, in usecase.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	FilteredProducts(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]model.Product, error)
	RelatedProducts(ctx context.Context, productID, categoryID string) ([]model.Product, error)
	ProductsCount(ctx context.Context) (int64, error)

	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ProductsByCategory(ctx context.Context, slug string) (*model.Category, []model.Product, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	OrderFacade
	CatalogFacade
}
