package app

import (
	"context"

	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/usecase"
)

// StoreFacade aggregates the storefront use cases behind one surface for the
// HTTP layer.
type StoreFacade struct {
	auth       *usecase.AuthUseCase
	checkout   *usecase.CheckoutUseCase
	orders     *usecase.OrderUseCase
	products   *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	products *usecase.ProductUseCase,
	categories *usecase.CategoryUseCase,
) *StoreFacade {
	return &StoreFacade{auth: auth, checkout: checkout, orders: orders, products: products, categories: categories}
}

func (f *StoreFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) UserByID(ctx context.Context, id string) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) UpdateProfile(ctx context.Context, userID, name, password, address string) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, name, password, address)
}

func (f *StoreFacade) Checkout(ctx context.Context, buyerID, nonce string, cart []model.CartItem) (*model.Order, error) {
	return f.checkout.Checkout(ctx, buyerID, nonce, cart)
}

func (f *StoreFacade) PaymentToken(ctx context.Context) (string, error) {
	return f.checkout.PaymentToken(ctx)
}

func (f *StoreFacade) MyOrders(ctx context.Context, buyerID string) ([]model.Order, error) {
	return f.orders.ListByBuyer(ctx, buyerID)
}

func (f *StoreFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, in usecase.ProductInput) (*model.Product, error) {
	return f.products.Create(ctx, in)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *StoreFacade) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return f.products.GetBySlug(ctx, slug)
}

func (f *StoreFacade) ProductPhoto(ctx context.Context, id string) ([]byte, string, error) {
	return f.products.Photo(ctx, id)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id string, in usecase.ProductInput) (*model.Product, error) {
	return f.products.Update(ctx, id, in)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.products.Delete(ctx, id)
}

func (f *StoreFacade) FilteredProducts(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error) {
	return f.products.Filtered(ctx, categoryIDs, priceRange)
}

func (f *StoreFacade) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	return f.products.Search(ctx, keyword)
}

func (f *StoreFacade) RelatedProducts(ctx context.Context, productID, categoryID string) ([]model.Product, error) {
	return f.products.Related(ctx, productID, categoryID)
}

func (f *StoreFacade) ProductsCount(ctx context.Context) (int64, error) {
	return f.products.Count(ctx)
}

func (f *StoreFacade) ProductsByCategory(ctx context.Context, slug string) (*model.Category, []model.Product, error) {
	return f.categories.ProductsByCategory(ctx, slug)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return f.categories.Create(ctx, name)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.categories.List(ctx)
}

func (f *StoreFacade) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return f.categories.GetBySlug(ctx, slug)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, id, name string) (*model.Category, error) {
	return f.categories.Update(ctx, id, name)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id string) error {
	return f.categories.Delete(ctx, id)
}
