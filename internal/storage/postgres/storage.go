package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// dbPool is the subset of pgxpool.Pool the storage relies on; pgxmock
// implements the same surface for tests.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            role INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            category_id TEXT NOT NULL REFERENCES categories(id),
            quantity INT NOT NULL DEFAULT 0,
            sold INT NOT NULL DEFAULT 0,
            photo BYTEA,
            photo_content_type TEXT,
            shipping BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            buyer_id TEXT NOT NULL REFERENCES users(id),
            status TEXT NOT NULL,
            payment JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            product_id TEXT NOT NULL,
            product_name TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            position INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4) RETURNING created_at`
	u := model.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, u.ID, name, email, passwordHash).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, address, role, created_at FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, address, role, created_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) Update(ctx context.Context, id, name, passwordHash, address string) (*model.User, error) {
	const query = `UPDATE users SET name=$1, password_hash=$2, address=$3 WHERE id=$4
                   RETURNING id, name, email, password_hash, address, role, created_at`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, name, passwordHash, address, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name, slug string) (*model.Category, error) {
	const query = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) RETURNING created_at`
	c := model.Category{ID: uuid.NewString(), Name: name, Slug: slug}
	if err := r.storage.pool.QueryRow(ctx, query, c.ID, name, slug).Scan(&c.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug, created_at FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	const query = `SELECT id, name, slug, created_at FROM categories WHERE slug=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, id, name, slug string) (*model.Category, error) {
	const query = `UPDATE categories SET name=$1, slug=$2 WHERE id=$3 RETURNING id, name, slug, created_at`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, name, slug, id).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, slug, description, price, category_id, quantity, sold, shipping, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	const query = `INSERT INTO products (id, name, slug, description, price, category_id, quantity, photo, photo_content_type, shipping)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING created_at, updated_at`
	p.ID = uuid.NewString()
	var photo any
	var contentType any
	if len(p.Photo) > 0 {
		photo = p.Photo
		contentType = p.PhotoContentType
	}
	err := r.storage.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.CategoryID, p.Quantity, photo, contentType, p.Shipping,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *productRepository) List(ctx context.Context, limit int) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1`
	return r.queryProducts(ctx, query, limit)
}

// Filtered narrows the catalog by category membership and price range; either
// constraint may be absent.
func (r *productRepository) Filtered(ctx context.Context, categoryIDs []string, priceRange []float64) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var clauses []string
	var args []any
	if len(categoryIDs) > 0 {
		args = append(args, categoryIDs)
		clauses = append(clauses, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}
	if len(priceRange) == 2 {
		args = append(args, priceRange[0], priceRange[1])
		clauses = append(clauses, fmt.Sprintf("price BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"
	return r.queryProducts(ctx, query, args...)
}

func (r *productRepository) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products
                   WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
                   ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, keyword)
}

func (r *productRepository) Related(ctx context.Context, productID, categoryID string, limit int) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products
                   WHERE category_id = $1 AND id <> $2
                   ORDER BY created_at DESC LIMIT $3`
	return r.queryProducts(ctx, query, categoryID, productID, limit)
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY created_at DESC`
	return r.queryProducts(ctx, query, categoryID)
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total)
	return total, err
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE slug=$1`
	return r.getOne(ctx, query, slug)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *productRepository) getOne(ctx context.Context, query string, arg any) (*model.Product, error) {
	var p model.Product
	if err := scanProduct(r.storage.pool.QueryRow(ctx, query, arg), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.CategoryID,
		&p.Quantity, &p.Sold, &p.Shipping, &p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) Photo(ctx context.Context, id string) ([]byte, string, error) {
	const query = `SELECT photo, photo_content_type FROM products WHERE id=$1`
	var photo []byte
	var contentType *string
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&photo, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", domainErrors.ErrNotFound
		}
		return nil, "", err
	}
	if len(photo) == 0 {
		return nil, "", domainErrors.ErrNotFound
	}
	ct := ""
	if contentType != nil {
		ct = *contentType
	}
	return photo, ct, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	const query = `UPDATE products SET name=$1, slug=$2, description=$3, price=$4, category_id=$5,
                          quantity=$6, shipping=$7,
                          photo=COALESCE($8, photo),
                          photo_content_type=COALESCE($9, photo_content_type),
                          updated_at=NOW()
                   WHERE id=$10
                   RETURNING sold, created_at, updated_at`
	var photo any
	var contentType any
	if len(p.Photo) > 0 {
		photo = p.Photo
		contentType = p.PhotoContentType
	}
	err := r.storage.pool.QueryRow(ctx, query,
		p.Name, p.Slug, p.Description, p.Price, p.CategoryID, p.Quantity, p.Shipping, photo, contentType, p.ID,
	).Scan(&p.Sold, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// AdjustInventory applies one atomic decrement/increment per purchased unit
// as a single batched write. Entries that match no product row are reported
// in the tally instead of failing the batch.
func (r *productRepository) AdjustInventory(ctx context.Context, productIDs []string) (*model.InventoryTally, error) {
	if len(productIDs) == 0 {
		return &model.InventoryTally{}, nil
	}

	const stmt = `UPDATE products SET quantity = quantity - 1, sold = sold + 1, updated_at = NOW() WHERE id = $1`
	batch := &pgx.Batch{}
	for _, id := range productIDs {
		batch.Queue(stmt, id)
	}

	results := r.storage.pool.SendBatch(ctx, batch)
	tally := &model.InventoryTally{}
	var batchErr error
	for _, id := range productIDs {
		tag, err := results.Exec()
		if err != nil {
			tally.Missed = append(tally.Missed, id)
			if batchErr == nil {
				batchErr = err
			}
			continue
		}
		if tag.RowsAffected() == 0 {
			tally.Missed = append(tally.Missed, id)
			continue
		}
		tally.Applied++
	}
	if err := results.Close(); err != nil && batchErr == nil {
		batchErr = err
	}
	return tally, batchErr
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, buyerID string, items []model.LineItem, payment model.PaymentRecord) (*model.Order, error) {
	paymentJSON, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("encode payment record: %w", err)
	}

	order := &model.Order{
		ID:      uuid.NewString(),
		BuyerID: buyerID,
		Items:   append([]model.LineItem(nil), items...),
		Payment: payment,
		Status:  model.OrderStatusUnprocessed,
	}

	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, buyer_id, status, payment) VALUES ($1, $2, $3, $4)
                             RETURNING created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, order.ID, buyerID, order.Status, paymentJSON).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, product_name, price, position)
                            VALUES ($1, $2, COALESCE((SELECT name FROM products WHERE id = $2), ''), $3, $4)`
		for i, item := range items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Price, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

const orderColumns = `o.id, o.buyer_id, u.name, u.email, o.status, o.payment, o.created_at, o.updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.buyer_id WHERE o.id=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.attachItems(ctx, []*model.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.buyer_id
                   WHERE o.buyer_id=$1 ORDER BY o.created_at DESC`
	return r.list(ctx, query, buyerID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.buyer_id
                   ORDER BY o.created_at DESC`
	return r.list(ctx, query)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*model.Order, len(result))
	for i := range result {
		refs[i] = &result[i]
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row, o *model.Order) error {
	var payment []byte
	if err := row.Scan(&o.ID, &o.BuyerID, &o.BuyerName, &o.BuyerEmail, &o.Status, &payment, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}
	return json.Unmarshal(payment, &o.Payment)
}

func (r *orderRepository) attachItems(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[string]*model.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const query = `SELECT order_id, product_id, product_name, price FROM order_items
                   WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item model.LineItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Price); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	return r.applyStatus(ctx, orderID, status, nil)
}

// UpdateStatusFrom performs a compare-and-set on the order status so an
// enforced progression cannot be bypassed by a concurrent update.
func (r *orderRepository) UpdateStatusFrom(ctx context.Context, orderID string, from, to model.OrderStatus) (*model.Order, error) {
	return r.applyStatus(ctx, orderID, to, &from)
}

func (r *orderRepository) applyStatus(ctx context.Context, orderID string, to model.OrderStatus, from *model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		update := `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2
                   RETURNING buyer_id, payment, created_at, updated_at`
		args := []any{to, orderID}
		if from != nil {
			update = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3
                      RETURNING buyer_id, payment, created_at, updated_at`
			args = append(args, *from)
		}

		o := model.Order{ID: orderID, Status: to}
		var payment []byte
		if err := tx.QueryRow(ctx, update, args...).Scan(&o.BuyerID, &payment, &o.CreatedAt, &o.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				if from == nil {
					return domainErrors.ErrNotFound
				}
				var current model.OrderStatus
				if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, orderID).Scan(&current); err != nil {
					if errors.Is(err, pgx.ErrNoRows) {
						return domainErrors.ErrNotFound
					}
					return err
				}
				return fmt.Errorf("%w: %s to %s", domainErrors.ErrInvalidTransition, current, to)
			}
			return err
		}
		if err := json.Unmarshal(payment, &o.Payment); err != nil {
			return err
		}

		const buyer = `SELECT name, email FROM users WHERE id=$1`
		if err := tx.QueryRow(ctx, buyer, o.BuyerID).Scan(&o.BuyerName, &o.BuyerEmail); err != nil {
			return err
		}
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
