package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"estoque_facil_backend/internal/models"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_collections (
    kind       TEXT PRIMARY KEY,
    payload    JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertKV = `
INSERT INTO kv_collections (kind, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (kind) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

// Postgres persists each collection as a single JSONB row keyed by kind.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects to PostgreSQL and ensures the kv_collections
// table exists.
func OpenPostgres(host, port, user, password, dbname, sslmode string) (*Postgres, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if _, err := db.Exec(createKVTable); err != nil {
		return nil, fmt.Errorf("creating kv_collections table: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) load(ctx context.Context, kind string, out interface{}) error {
	var payload []byte
	err := p.db.QueryRowContext(ctx,
		"SELECT payload FROM kv_collections WHERE kind = $1", kind).Scan(&payload)
	if err == sql.ErrNoRows {
		return ErrEmpty
	}
	if err != nil {
		return fmt.Errorf("%w: loading %s: %v", ErrStorage, kind, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: decoding %s payload: %v", ErrStorage, kind, err)
	}
	return nil
}

func (p *Postgres) save(ctx context.Context, kind string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding %s payload: %v", ErrStorage, kind, err)
	}
	if _, err := p.db.ExecContext(ctx, upsertKV, kind, payload); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorage, kind, err)
	}
	return nil
}

func (p *Postgres) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.load(ctx, KindProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Postgres) SaveProducts(ctx context.Context, products []models.Product) error {
	return p.save(ctx, KindProducts, products)
}

func (p *Postgres) LoadSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := p.load(ctx, KindSales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (p *Postgres) SaveSales(ctx context.Context, sales []models.Sale) error {
	return p.save(ctx, KindSales, sales)
}
