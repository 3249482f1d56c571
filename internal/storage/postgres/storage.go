package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap
// in a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as collection facade backed by PostgreSQL. The three
// collections are independent tables keyed by a generated string id, with
// no foreign keys between them.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type flavorRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
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

var _ repository.Factory = (*Storage)(nil)

// Factory methods for collection repositories.
func (s *Storage) Flavors() repository.FlavorRepository {
	return &flavorRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS flavors (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            position INTEGER NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_name TEXT NOT NULL,
            customer_phone TEXT NOT NULL,
            items JSONB NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            notes TEXT,
            created_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            id TEXT PRIMARY KEY,
            customer_name TEXT NOT NULL,
            rating INTEGER NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_flavors_name ON flavors(name)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_created ON reviews(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// orderItemDoc is the JSONB layout of an embedded order line.
type orderItemDoc struct {
	FlavorName string  `json:"flavor_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

func encodeItems(items []model.OrderItem) (string, error) {
	docs := make([]orderItemDoc, 0, len(items))
	for _, it := range items {
		docs = append(docs, orderItemDoc{FlavorName: it.FlavorName, Quantity: it.Quantity, Price: it.Price})
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}
	return string(raw), nil
}

func decodeItems(raw []byte) ([]model.OrderItem, error) {
	var docs []orderItemDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]model.OrderItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, model.OrderItem{FlavorName: d.FlavorName, Quantity: d.Quantity, Price: d.Price})
	}
	return items, nil
}

// --- FlavorRepository implementation ---

func (r *flavorRepository) List(ctx context.Context) ([]model.Flavor, error) {
	const query = `SELECT id, name, price, description, position FROM flavors ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Flavor
	for rows.Next() {
		var f model.Flavor
		if err := rows.Scan(&f.ID, &f.Name, &f.Price, &f.Description, &f.Position); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *flavorRepository) Seed(ctx context.Context, flavors []model.Flavor) error {
	// The unique index on name makes racing seeds collapse into one
	// catalog instead of duplicating it.
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO flavors (id, name, price, description, position)
                        VALUES ($1, $2, $3, $4, $5)
                        ON CONFLICT (name) DO NOTHING`
		for _, f := range flavors {
			if _, err := tx.Exec(ctx, insert, f.ID, f.Name, f.Price, f.Description, f.Position); err != nil {
				return err
			}
		}
		return nil
	})
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := encodeItems(order.Items)
	if err != nil {
		return err
	}

	const query = `INSERT INTO orders (id, customer_name, customer_phone, items, total_amount, status, notes, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.storage.pool.Exec(ctx, query,
		order.ID, order.CustomerName, order.CustomerPhone, items,
		order.TotalAmount, order.Status, order.Notes, order.CreatedAt, order.UpdatedAt)
	return err
}

const orderColumns = `id, customer_name, customer_phone, items, total_amount, status, notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o        model.Order
		rawItems []byte
	)
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &rawItems,
		&o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if o.Items, err = decodeItems(rawItems); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3
                   RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, updatedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// --- ReviewRepository implementation ---

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	const query = `INSERT INTO reviews (id, customer_name, rating, comment, created_at)
                   VALUES ($1, $2, $3, $4, $5)`
	_, err := r.storage.pool.Exec(ctx, query,
		review.ID, review.CustomerName, review.Rating, review.Comment, review.CreatedAt)
	return err
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	const query = `SELECT id, customer_name, rating, comment, created_at FROM reviews ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
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
