package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[string]*model.User
	Next    int
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[string]*model.User),
		Next:    1,
	}
}

// Create registers a user unless the email is taken or the stub has an
// explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           fmt.Sprintf("user-%d", s.Next),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches a user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update replaces the mutable profile fields of a stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, id, name, passwordHash, address string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Name = name
	user.PasswordHash = passwordHash
	user.Address = address
	return user, nil
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, string, []model.LineItem, model.PaymentRecord) (*model.Order, error)
	GetByIDFn          func(context.Context, string) (*model.Order, error)
	ListByBuyerFn      func(context.Context, string) ([]model.Order, error)
	ListAllFn          func(context.Context) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, string, model.OrderStatus) (*model.Order, error)
	UpdateStatusFromFn func(context.Context, string, model.OrderStatus, model.OrderStatus) (*model.Order, error)

	CreateCalls           int
	UpdateStatusCalls     int
	UpdateStatusFromCalls int
}

// Create records the call and delegates or returns a default order.
func (s *OrderRepositoryStub) Create(ctx context.Context, buyerID string, items []model.LineItem, payment model.PaymentRecord) (*model.Order, error) {
	s.CreateCalls++
	if s.CreateFn != nil {
		return s.CreateFn(ctx, buyerID, items, payment)
	}
	return &model.Order{
		ID:      "order-1",
		BuyerID: buyerID,
		Items:   items,
		Payment: payment,
		Status:  model.OrderStatusUnprocessed,
	}, nil
}

// GetByID delegates or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// ListByBuyer delegates or returns an empty slice.
func (s *OrderRepositoryStub) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	if s.ListByBuyerFn != nil {
		return s.ListByBuyerFn(ctx, buyerID)
	}
	return nil, nil
}

// ListAll delegates or returns an empty slice.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

// UpdateStatus records the call and delegates or returns an updated order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	s.UpdateStatusCalls++
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// UpdateStatusFrom records the guarded call and delegates or returns an
// updated order.
func (s *OrderRepositoryStub) UpdateStatusFrom(ctx context.Context, orderID string, from, to model.OrderStatus) (*model.Order, error) {
	s.UpdateStatusFromCalls++
	if s.UpdateStatusFromFn != nil {
		return s.UpdateStatusFromFn(ctx, orderID, from, to)
	}
	return &model.Order{ID: orderID, Status: to}, nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn          func(context.Context, *model.Product) error
	ListFn            func(context.Context, int) ([]model.Product, error)
	GetBySlugFn       func(context.Context, string) (*model.Product, error)
	GetByIDFn         func(context.Context, string) (*model.Product, error)
	PhotoFn           func(context.Context, string) ([]byte, string, error)
	UpdateFn          func(context.Context, *model.Product) error
	DeleteFn          func(context.Context, string) error
	AdjustInventoryFn func(context.Context, []string) (*model.InventoryTally, error)
	FilteredFn        func(context.Context, []string, []float64) ([]model.Product, error)
	SearchFn          func(context.Context, string) ([]model.Product, error)
	RelatedFn         func(context.Context, string, string, int) ([]model.Product, error)
	ListByCategoryFn  func(context.Context, string) ([]model.Product, error)
	CountFn           func(context.Context) (int64, error)

	AdjustCalls [][]string
}

// Create delegates or assigns a synthetic identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	p.ID = "product-1"
	return nil
}

// List delegates or returns an empty slice.
func (s *ProductRepositoryStub) List(ctx context.Context, limit int) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit)
	}
	return nil, nil
}

// GetBySlug delegates or returns not found.
func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.GetBySlugFn != nil {
		return s.GetBySlugFn(ctx, slug)
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID delegates or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// Photo delegates or returns not found.
func (s *ProductRepositoryStub) Photo(ctx context.Context, id string) ([]byte, string, error) {
	if s.PhotoFn != nil {
		return s.PhotoFn(ctx, id)
	}
	return nil, "", domainErrors.ErrNotFound
}

// Update delegates or succeeds.
func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return nil
}

// Delete delegates or succeeds.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// AdjustInventory records requested identifiers and delegates or reports a
// full application.
func (s *ProductRepositoryStub) AdjustInventory(ctx context.Context, productIDs []string) (*model.InventoryTally, error) {
	s.AdjustCalls = append(s.AdjustCalls, append([]string(nil), productIDs...))
	if s.AdjustInventoryFn != nil {
		return s.AdjustInventoryFn(ctx, productIDs)
	}
	return &model.InventoryTally{Applied: len(productIDs)}, nil
}

// Filtered delegates or returns an empty slice.
func (s *ProductRepositoryStub) Filtered(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error) {
	if s.FilteredFn != nil {
		return s.FilteredFn(ctx, categoryIDs, priceRange)
	}
	return nil, nil
}

// Search delegates or returns an empty slice.
func (s *ProductRepositoryStub) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, keyword)
	}
	return nil, nil
}

// Related delegates or returns an empty slice.
func (s *ProductRepositoryStub) Related(ctx context.Context, productID, categoryID string, limit int) ([]model.Product, error) {
	if s.RelatedFn != nil {
		return s.RelatedFn(ctx, productID, categoryID, limit)
	}
	return nil, nil
}

// ListByCategory delegates or returns an empty slice.
func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	if s.ListByCategoryFn != nil {
		return s.ListByCategoryFn(ctx, categoryID)
	}
	return nil, nil
}

// Count delegates or returns zero.
func (s *ProductRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 0, nil
}

// CategoryRepositoryStub allows tests to customize category behaviour.
type CategoryRepositoryStub struct {
	CreateFn    func(context.Context, string, string) (*model.Category, error)
	ListFn      func(context.Context) ([]model.Category, error)
	GetBySlugFn func(context.Context, string) (*model.Category, error)
	UpdateFn    func(context.Context, string, string, string) (*model.Category, error)
	DeleteFn    func(context.Context, string) error
}

// Create delegates or returns a category echoing the arguments.
func (s *CategoryRepositoryStub) Create(ctx context.Context, name, slug string) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, slug)
	}
	return &model.Category{ID: "category-1", Name: name, Slug: slug}, nil
}

// List delegates or returns an empty slice.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// GetBySlug delegates or returns not found.
func (s *CategoryRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if s.GetBySlugFn != nil {
		return s.GetBySlugFn(ctx, slug)
	}
	return nil, domainErrors.ErrNotFound
}

// Update delegates or returns a category echoing the arguments.
func (s *CategoryRepositoryStub) Update(ctx context.Context, id, name, slug string) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, slug)
	}
	return &model.Category{ID: id, Name: name, Slug: slug}, nil
}

// Delete delegates or succeeds.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
