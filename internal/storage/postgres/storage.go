package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
	"github.com/RaffaFachrizal29/belivps/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool used by the storage layer.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
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

// Orders returns the order repository bound to this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// initSchema creates the orders table and applies additive migrations.
// Every statement is idempotent so the whole set runs on each startup.
func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL DEFAULT '',
            username TEXT NOT NULL DEFAULT '',
            password TEXT NOT NULL DEFAULT '',
            ram_label TEXT NOT NULL DEFAULT '',
            ram_price BIGINT NOT NULL DEFAULT 0,
            cpu_cores INTEGER NOT NULL DEFAULT 1,
            cpu_price BIGINT NOT NULL DEFAULT 0,
            has_ipv4 BOOLEAN NOT NULL DEFAULT FALSE,
            ipv4_price BIGINT NOT NULL DEFAULT 0,
            total_price BIGINT NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'PENDING',
            ipv6 TEXT,
            ipv4_addr TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		// Stores created before the bonus domain existed lack this column.
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS domain TEXT`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, name, phone, email, username, password, domain,
        ram_label, ram_price, cpu_cores, cpu_price, has_ipv4, ipv4_price,
        total_price, status, ipv6, ipv4_addr, created_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID, &o.Name, &o.Phone, &o.Email, &o.Username, &o.Password, &o.Domain,
		&o.RAMLabel, &o.RAMPrice, &o.CPUCores, &o.CPUPrice, &o.HasIPv4, &o.IPv4Price,
		&o.TotalPrice, &o.Status, &o.IPv6, &o.IPv4Addr, &o.CreatedAt,
	)
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders
            (id, name, phone, email, username, password, domain,
             ram_label, ram_price, cpu_cores, cpu_price, has_ipv4, ipv4_price, total_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING status, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		order.ID, order.Name, order.Phone, order.Email, order.Username, order.Password, order.Domain,
		order.RAMLabel, order.RAMPrice, order.CPUCores, order.CPUPrice, order.HasIPv4, order.IPv4Price, order.TotalPrice,
	).Scan(&order.Status, &order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var order model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
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
	return result, nil
}

func (r *orderRepository) Confirm(ctx context.Context, id, ipv6 string, ipv4Addr *string) error {
	const query = `UPDATE orders SET status=$1, ipv6=$2, ipv4_addr=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, model.OrderStatusConfirmed, ipv6, ipv4Addr, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		r.storage.logger.Warn("confirm of unknown order ignored", slog.String("order_id", id))
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM orders WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func (r *orderRepository) DeletePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM orders WHERE status=$1 AND created_at < $2`
	tag, err := r.storage.pool.Exec(ctx, query, model.OrderStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
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
