package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmock.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS categories",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_created ON orders").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items").WillReturnResult(pgxmock.NewResult("CREATE", 0))
}

func TestNewRejectsBadDSN(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), ":://bad", logger); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "Ana", "ana@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	usr, err := storage.Users().Create(context.Background(), "Ana", "ana@example.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.ID == "" {
		t.Fatal("expected generated identifier")
	}
	if !usr.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created at %v", usr.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "Ana", "ana@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	if _, err := storage.Users().Create(context.Background(), "Ana", "ana@example.com", "hash"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash, address, role, created_at FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	if _, err := storage.Users().GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCategoryDeleteNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := storage.Categories().Delete(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductPhotoEmptyTreatedAsMissing(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT photo, photo_content_type FROM products").
		WithArgs("product-1").
		WillReturnRows(pgxmock.NewRows([]string{"photo", "photo_content_type"}).AddRow([]byte(nil), (*string)(nil)))

	if _, _, err := storage.Products().Photo(context.Background(), "product-1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for a product without a photo, got %v", err)
	}
}

func TestProductPhoto(t *testing.T) {
	storage, mock := newMockStorage(t)
	contentType := "image/png"

	mock.ExpectQuery("SELECT photo, photo_content_type FROM products").
		WithArgs("product-1").
		WillReturnRows(pgxmock.NewRows([]string{"photo", "photo_content_type"}).AddRow([]byte{0x1, 0x2}, &contentType))

	photo, ct, err := storage.Products().Photo(context.Background(), "product-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(photo) != 2 || ct != "image/png" {
		t.Fatalf("unexpected photo %v %q", photo, ct)
	}
}

func productRows(now time.Time, ids ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "slug", "description", "price", "category_id", "quantity", "sold", "shipping", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, "Smoked Paprika", "smoked-paprika", "Ground pepper", 4.5, "category-1", 20, 0, true, now, now)
	}
	return rows
}

func TestProductFilteredAppliesBothConstraints(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("FROM products WHERE category_id = ANY").
		WithArgs([]string{"category-1", "category-2"}, 0.0, 19.99).
		WillReturnRows(productRows(now, "product-1"))

	products, err := storage.Products().Filtered(context.Background(), []string{"category-1", "category-2"}, []float64{0, 19.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "product-1" {
		t.Fatalf("unexpected products %v", products)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductFilteredWithoutConstraints(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("FROM products ORDER BY created_at DESC").
		WillReturnRows(productRows(now, "product-1", "product-2"))

	products, err := storage.Products().Filtered(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("unexpected products %v", products)
	}
}

func TestProductSearchMatchesNameOrDescription(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("WHERE name ILIKE").
		WithArgs("paprika").
		WillReturnRows(productRows(now, "product-1"))

	products, err := storage.Products().Search(context.Background(), "paprika")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected products %v", products)
	}
}

func TestProductRelatedExcludesSelf(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("WHERE category_id = ..1 AND id <> ..2").
		WithArgs("category-1", "product-1", 3).
		WillReturnRows(productRows(now, "product-2", "product-3"))

	products, err := storage.Products().Related(context.Background(), "product-1", "category-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 || products[0].ID != "product-2" {
		t.Fatalf("unexpected products %v", products)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductListByCategory(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("FROM products WHERE category_id").
		WithArgs("category-1").
		WillReturnRows(productRows(now, "product-1"))

	products, err := storage.Products().ListByCategory(context.Background(), "category-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected products %v", products)
	}
}

func TestProductCount(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(37)))

	total, err := storage.Products().Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 37 {
		t.Fatalf("unexpected total %d", total)
	}
}

func TestAdjustInventoryTally(t *testing.T) {
	storage, mock := newMockStorage(t)

	batch := mock.ExpectBatch()
	batch.ExpectExec("UPDATE products SET quantity").WithArgs("p1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	batch.ExpectExec("UPDATE products SET quantity").WithArgs("p1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	batch.ExpectExec("UPDATE products SET quantity").WithArgs("gone").WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tally, err := storage.Products().AdjustInventory(context.Background(), []string{"p1", "p1", "gone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tally.Applied != 2 {
		t.Fatalf("unexpected applied count %d", tally.Applied)
	}
	if len(tally.Missed) != 1 || tally.Missed[0] != "gone" {
		t.Fatalf("unexpected missed list %v", tally.Missed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdjustInventoryEmptyInput(t *testing.T) {
	storage, _ := newMockStorage(t)

	tally, err := storage.Products().AdjustInventory(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tally.Applied != 0 || len(tally.Missed) != 0 {
		t.Fatalf("unexpected tally %+v", tally)
	}
}

func TestOrderCreateCommitsTransaction(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(pgxmock.AnyArg(), "buyer-1", model.OrderStatusUnprocessed, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(pgxmock.AnyArg(), "p1", 10.0, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(pgxmock.AnyArg(), "p2", 5.5, 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	items := []model.LineItem{{ProductID: "p1", Price: 10}, {ProductID: "p2", Price: 5.5}}
	payment := model.PaymentRecord{TransactionID: "txn-1", Success: true}

	order, err := storage.Orders().Create(context.Background(), "buyer-1", items, payment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusUnprocessed {
		t.Fatalf("new orders must start unprocessed, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("unexpected items %v", order.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreateRollsBackOnItemFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	boom := errors.New("insert item failed")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(boom)
	mock.ExpectRollback()

	_, err := storage.Orders().Create(context.Background(), "buyer-1", []model.LineItem{{ProductID: "p1", Price: 10}}, model.PaymentRecord{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected insert failure, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusShipped, "missing").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	if _, err := storage.Orders().UpdateStatus(context.Background(), "missing", model.OrderStatusShipped); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	payment := []byte(`{"transaction_id":"txn-1","success":true}`)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusShipped, "order-1").
		WillReturnRows(pgxmock.NewRows([]string{"buyer_id", "payment", "created_at", "updated_at"}).
			AddRow("buyer-1", payment, now, now))
	mock.ExpectQuery("SELECT name, email FROM users").
		WithArgs("buyer-1").
		WillReturnRows(pgxmock.NewRows([]string{"name", "email"}).AddRow("Ana", "ana@example.com"))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT order_id, product_id, product_name, price FROM order_items").
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "product_id", "product_name", "price"}).
			AddRow("order-1", "p1", "Smoked Paprika", 10.0))

	order, err := storage.Orders().UpdateStatus(context.Background(), "order-1", model.OrderStatusShipped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusShipped || order.BuyerEmail != "ana@example.com" {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Payment.TransactionID != "txn-1" {
		t.Fatalf("unexpected payment %+v", order.Payment)
	}
	if len(order.Items) != 1 || order.Items[0].ProductName != "Smoked Paprika" {
		t.Fatalf("unexpected items %v", order.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatusFrom(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	payment := []byte(`{"transaction_id":"txn-1","success":true}`)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusShipped, "order-1", model.OrderStatusProcessing).
		WillReturnRows(pgxmock.NewRows([]string{"buyer_id", "payment", "created_at", "updated_at"}).
			AddRow("buyer-1", payment, now, now))
	mock.ExpectQuery("SELECT name, email FROM users").
		WithArgs("buyer-1").
		WillReturnRows(pgxmock.NewRows([]string{"name", "email"}).AddRow("Ana", "ana@example.com"))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT order_id, product_id, product_name, price FROM order_items").
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "product_id", "product_name", "price"}))

	order, err := storage.Orders().UpdateStatusFrom(context.Background(), "order-1", model.OrderStatusProcessing, model.OrderStatusShipped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusShipped {
		t.Fatalf("unexpected order %+v", order)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatusFromConflict(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusShipped, "order-1", model.OrderStatusProcessing).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs("order-1").
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(model.OrderStatusCancelled))
	mock.ExpectRollback()

	_, err := storage.Orders().UpdateStatusFrom(context.Background(), "order-1", model.OrderStatusProcessing, model.OrderStatusShipped)
	if !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for a concurrently changed order, got %v", err)
	}
}

func TestOrderUpdateStatusFromNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusShipped, "missing", model.OrderStatusProcessing).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Orders().UpdateStatusFrom(context.Background(), "missing", model.OrderStatusProcessing, model.OrderStatusShipped)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderListByBuyer(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	payment := []byte(`{"transaction_id":"txn-1","success":true}`)

	mock.ExpectQuery("SELECT o.id, o.buyer_id, u.name, u.email, o.status, o.payment").
		WithArgs("buyer-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "buyer_id", "name", "email", "status", "payment", "created_at", "updated_at"}).
			AddRow("order-2", "buyer-1", "Ana", "ana@example.com", model.OrderStatusShipped, payment, now, now).
			AddRow("order-1", "buyer-1", "Ana", "ana@example.com", model.OrderStatusDelivered, payment, now.Add(-time.Hour), now))
	mock.ExpectQuery("SELECT order_id, product_id, product_name, price FROM order_items").
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "product_id", "product_name", "price"}).
			AddRow("order-2", "p1", "Smoked Paprika", 10.0).
			AddRow("order-2", "p2", "Garam Masala", 5.5).
			AddRow("order-1", "p1", "Smoked Paprika", 10.0))

	orders, err := storage.Orders().ListByBuyer(context.Background(), "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("unexpected order count %d", len(orders))
	}
	if orders[0].ID != "order-2" || len(orders[0].Items) != 2 {
		t.Fatalf("unexpected first order %+v", orders[0])
	}
	if orders[1].ID != "order-1" || len(orders[1].Items) != 1 {
		t.Fatalf("unexpected second order %+v", orders[1])
	}
	if orders[0].Payment.TransactionID != "txn-1" {
		t.Fatalf("unexpected payment %+v", orders[0].Payment)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
