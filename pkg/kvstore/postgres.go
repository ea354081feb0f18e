package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/noah-isme/school-portal-api/pkg/config"
)

// Postgres keeps the keyspace in a single portal_kv table.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an existing connection. Used by tests with sqlmock.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// OpenPostgres connects to the configured database and ensures the schema.
func OpenPostgres(cfg config.DatabaseConfig) (*Postgres, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := NewPostgres(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// EnsureSchema creates the portal_kv table when it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS portal_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure portal_kv schema: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM portal_kv WHERE key = $1`
	var value string
	if err := p.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO portal_kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM portal_kv WHERE key = $1`
	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Clear(ctx context.Context) error {
	const query = `DELETE FROM portal_kv`
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("clear portal_kv: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
