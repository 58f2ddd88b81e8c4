package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS saved_sets (
    key        TEXT PRIMARY KEY,
    ids        JSONB NOT NULL DEFAULT '[]'::jsonb,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Postgres stores the saved-ID set as a single JSONB row keyed by Key.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// NewPostgres connects to the database and verifies the connection.
func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Ping verifies the database is reachable.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Migrate creates the saved_sets table if it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

func (p *Postgres) List(ctx context.Context) ([]string, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx,
		`SELECT ids FROM saved_sets WHERE key = @key`,
		pgx.NamedArgs{"key": Key},
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading saved set: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decoding saved set: %w", err)
	}
	return ids, nil
}

func (p *Postgres) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding saved set: %w", err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO saved_sets (key, ids, updated_at)
		VALUES (@key, @ids, now())
		ON CONFLICT (key) DO UPDATE
		SET ids = EXCLUDED.ids, updated_at = now()`,
		pgx.NamedArgs{"key": Key, "ids": raw},
	)
	if err != nil {
		return fmt.Errorf("writing saved set: %w", err)
	}
	return nil
}

func (p *Postgres) Add(ctx context.Context, id string) error {
	return p.update(ctx, func(ids []string) []string {
		if contains(ids, id) {
			return ids
		}
		return append(ids, id)
	})
}

func (p *Postgres) Toggle(ctx context.Context, id string) (bool, error) {
	var saved bool
	err := p.update(ctx, func(ids []string) []string {
		if contains(ids, id) {
			saved = false
			return without(ids, id)
		}
		saved = true
		return append(ids, id)
	})
	return saved, err
}

func (p *Postgres) Remove(ctx context.Context, id string) error {
	return p.update(ctx, func(ids []string) []string {
		return without(ids, id)
	})
}

// update applies fn to the stored set inside a transaction. The row lock
// keeps concurrent read-modify-write cycles from losing updates.
func (p *Postgres) update(ctx context.Context, fn func([]string) []string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var raw []byte
	ids := []string{}
	err = tx.QueryRow(ctx,
		`SELECT ids FROM saved_sets WHERE key = @key FOR UPDATE`,
		pgx.NamedArgs{"key": Key},
	).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// first write for this key
	case err != nil:
		return fmt.Errorf("reading saved set: %w", err)
	default:
		if err := json.Unmarshal(raw, &ids); err != nil {
			return fmt.Errorf("decoding saved set: %w", err)
		}
	}

	out, err := json.Marshal(fn(ids))
	if err != nil {
		return fmt.Errorf("encoding saved set: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO saved_sets (key, ids, updated_at)
		VALUES (@key, @ids, now())
		ON CONFLICT (key) DO UPDATE
		SET ids = EXCLUDED.ids, updated_at = now()`,
		pgx.NamedArgs{"key": Key, "ids": out},
	)
	if err != nil {
		return fmt.Errorf("writing saved set: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
