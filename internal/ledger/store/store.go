package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbook-core/openbook/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLedger(s scanner) (*ledger.Ledger, error) {
	var l ledger.Ledger

	var lastClose sql.NullTime

	if err := s.Scan(&l.Mnemo, &l.Label, &l.Notes, &lastClose, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}

	if lastClose.Valid {
		l.LastClose = &lastClose.Time
	}

	return &l, nil
}

const selectLedgerColumns = `mnemo, label, notes, last_close, created_at, updated_at`

func (s *Store) GetLedger(ctx context.Context, mnemo string) (*ledger.Ledger, error) {
	query := `SELECT ` + selectLedgerColumns + ` FROM ledgers WHERE mnemo = $1`

	l, err := scanLedger(s.db.QueryRowContext(ctx, query, mnemo))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting ledger: %w", err)
	}

	return l, nil
}

func (s *Store) ListLedgers(ctx context.Context) ([]*ledger.Ledger, error) {
	query := `SELECT ` + selectLedgerColumns + ` FROM ledgers ORDER BY mnemo ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*ledger.Ledger

	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger: %w", err)
		}

		ledgers = append(ledgers, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger rows: %w", err)
	}

	return ledgers, nil
}

func (s *Store) CreateLedger(ctx context.Context, l *ledger.Ledger) error {
	query := `
		INSERT INTO ledgers (mnemo, label, notes, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, l.Mnemo, l.Label, l.Notes).Scan(&l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}

	return nil
}

func (s *Store) UpdateLedger(ctx context.Context, l *ledger.Ledger) error {
	query := `
		UPDATE ledgers
		SET label = $1, notes = $2, updated_at = NOW()
		WHERE mnemo = $3
	`

	res, err := s.db.ExecContext(ctx, query, l.Label, l.Notes, l.Mnemo)
	if err != nil {
		return fmt.Errorf("updating ledger: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) LedgerExists(ctx context.Context, mnemo string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM ledgers WHERE mnemo = $1)`, mnemo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking ledger: %w", err)
	}

	return exists, nil
}

func (s *Store) SetLastClose(ctx context.Context, mnemo string, date time.Time) error {
	query := `
		UPDATE ledgers
		SET last_close = $1, updated_at = NOW()
		WHERE mnemo = $2
	`

	res, err := s.db.ExecContext(ctx, query, date, mnemo)
	if err != nil {
		return fmt.Errorf("setting ledger close: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

// CompareBuckets puts the stored bucket columns of every detail account side
// by side with the same buckets reconstructed from the entries table.
// Deleted and past entries carry no current-period weight, matching what the
// entry store posts.
func (s *Store) CompareBuckets(ctx context.Context) ([]ledger.AccountComparison, error) {
	query := `
		SELECT a.number,
		       a.validated_debit, a.validated_credit,
		       a.rough_debit, a.rough_credit,
		       a.future_debit, a.future_credit,
		       COALESCE(SUM(e.debit) FILTER (WHERE e.status = 'validated'), 0),
		       COALESCE(SUM(e.credit) FILTER (WHERE e.status = 'validated'), 0),
		       COALESCE(SUM(e.debit) FILTER (WHERE e.status = 'rough'), 0),
		       COALESCE(SUM(e.credit) FILTER (WHERE e.status = 'rough'), 0),
		       COALESCE(SUM(e.debit) FILTER (WHERE e.status = 'future'), 0),
		       COALESCE(SUM(e.credit) FILTER (WHERE e.status = 'future'), 0)
		FROM accounts a
		LEFT JOIN entries e ON e.account_number = a.number
		WHERE NOT a.root
		GROUP BY a.number
		ORDER BY a.number ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("comparing buckets: %w", err)
	}
	defer rows.Close()

	var comparisons []ledger.AccountComparison

	for rows.Next() {
		var c ledger.AccountComparison

		if err := rows.Scan(
			&c.Number,
			&c.Stored.ValidatedDebit, &c.Stored.ValidatedCredit,
			&c.Stored.RoughDebit, &c.Stored.RoughCredit,
			&c.Stored.FutureDebit, &c.Stored.FutureCredit,
			&c.Computed.ValidatedDebit, &c.Computed.ValidatedCredit,
			&c.Computed.RoughDebit, &c.Computed.RoughCredit,
			&c.Computed.FutureDebit, &c.Computed.FutureCredit,
		); err != nil {
			return nil, fmt.Errorf("scanning bucket comparison: %w", err)
		}

		comparisons = append(comparisons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bucket comparisons: %w", err)
	}

	return comparisons, nil
}

func (s *Store) EntryTotals(ctx context.Context) (ledger.Totals, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM entries
		WHERE status IN ('validated', 'rough')
	`

	var t ledger.Totals

	if err := s.db.QueryRowContext(ctx, query).Scan(&t.Debit, &t.Credit); err != nil {
		return ledger.Totals{}, fmt.Errorf("summing entry totals: %w", err)
	}

	return t, nil
}
