package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openbook-core/openbook/internal/counter"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Queryer is satisfied by both *sql.DB and *sql.Tx, so composite operations
// (entry insert, conciliation create) can allocate inside their own
// transaction.
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Allocate increments and returns the counter in one atomic statement.
// The row lock taken by the upsert serializes concurrent allocators; if the
// write fails no value is returned, so a value can never be issued twice.
func Allocate(ctx context.Context, q Queryer, kind counter.Kind) (uint64, error) {
	query := `
		INSERT INTO counters (dossier_id, kind, last_value)
		VALUES (1, $1, 1)
		ON CONFLICT (dossier_id, kind) DO UPDATE SET last_value = counters.last_value + 1
		RETURNING last_value
	`

	var value uint64
	if err := q.QueryRowContext(ctx, query, kind).Scan(&value); err != nil {
		return 0, fmt.Errorf("allocating %s id: %w", kind, err)
	}

	return value, nil
}

func (s *Store) GetNext(ctx context.Context, kind counter.Kind) (uint64, error) {
	return Allocate(ctx, s.db, kind)
}

func (s *Store) GetLast(ctx context.Context, kind counter.Kind) (uint64, error) {
	query := `SELECT last_value FROM counters WHERE dossier_id = 1 AND kind = $1`

	var value uint64

	err := s.db.QueryRowContext(ctx, query, kind).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}

		return 0, fmt.Errorf("reading %s counter: %w", kind, err)
	}

	return value, nil
}
