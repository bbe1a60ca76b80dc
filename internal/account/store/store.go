package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbook-core/openbook/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	a.number, a.label, a.currency, a.notes,
	a.root, a.settleable, a.reconciliable, a.forwardable, a.closed,
	a.validated_debit, a.validated_credit, a.rough_debit, a.rough_credit,
	a.future_debit, a.future_credit, a.deffect, a.created_at, a.updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var deffect sql.NullTime

	if err := s.Scan(
		&a.Number, &a.Label, &a.Currency, &a.Notes,
		&a.Root, &a.Settleable, &a.Reconciliable, &a.Forwardable, &a.Closed,
		&a.ValidatedDebit, &a.ValidatedCredit, &a.RoughDebit, &a.RoughCredit,
		&a.FutureDebit, &a.FutureCredit, &deffect, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if deffect.Valid {
		a.DEffect = &deffect.Time
	}

	return &a, nil
}

func (s *Store) GetAccount(ctx context.Context, number string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.number = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Prefix != "" {
		query += fmt.Sprintf(" AND a.number LIKE $%d || '%%'", argIdx)

		args = append(args, filter.Prefix)
		argIdx++
	}

	if filter.Class != nil {
		query += fmt.Sprintf(" AND LEFT(a.number, 1) = $%d", argIdx)

		args = append(args, fmt.Sprintf("%d", *filter.Class))
		argIdx++
	}

	query += " ORDER BY a.number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (number, label, currency, notes, root, settleable, reconciliable, forwardable, closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Number,
		a.Label,
		a.Currency,
		a.Notes,
		a.Root,
		a.Settleable,
		a.Reconciliable,
		a.Forwardable,
		a.Closed,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

// UpdateAccount rewrites identity fields only. Buckets are mutated solely by
// entry status transitions (entry store) and archival.
func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET label = $1, currency = $2, notes = $3, root = $4, settleable = $5,
		    reconciliable = $6, forwardable = $7, closed = $8, updated_at = NOW()
		WHERE number = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		a.Label,
		a.Currency,
		a.Notes,
		a.Root,
		a.Settleable,
		a.Reconciliable,
		a.Forwardable,
		a.Closed,
		a.Number,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, number string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE number = $1`, number)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

func (s *Store) CountEntryRefs(ctx context.Context, number string) (int64, error) {
	var count int64

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries WHERE account_number = $1`, number).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entry refs: %w", err)
	}

	return count, nil
}

func (s *Store) HasChildren(ctx context.Context, number string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE number LIKE $1 || '%' AND number <> $1)`,
		number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking children: %w", err)
	}

	return exists, nil
}

func (s *Store) ListChildren(ctx context.Context, number string) ([]*account.Account, error) {
	accounts, err := s.ListAccounts(ctx, account.ListFilter{Prefix: number})
	if err != nil {
		return nil, err
	}

	children := make([]*account.Account, 0, len(accounts))

	for _, a := range accounts {
		if a.Number != number {
			children = append(children, a)
		}
	}

	return children, nil
}

func (s *Store) ArchiveBalances(ctx context.Context, number string, date time.Time) error {
	query := `
		INSERT INTO account_archives (account_number, archived_on, debit, credit)
		SELECT number, $2,
		       validated_debit + rough_debit + future_debit,
		       validated_credit + rough_credit + future_credit
		FROM accounts WHERE number = $1 AND NOT root
		ON CONFLICT (account_number, archived_on)
		DO UPDATE SET debit = EXCLUDED.debit, credit = EXCLUDED.credit
	`

	res, err := s.db.ExecContext(ctx, query, number, date)
	if err != nil {
		return fmt.Errorf("archiving balances: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

func (s *Store) ArchiveAllBalances(ctx context.Context, date time.Time) (int, error) {
	query := `
		INSERT INTO account_archives (account_number, archived_on, debit, credit)
		SELECT number, $1,
		       validated_debit + rough_debit + future_debit,
		       validated_credit + rough_credit + future_credit
		FROM accounts WHERE NOT root
		ON CONFLICT (account_number, archived_on)
		DO UPDATE SET debit = EXCLUDED.debit, credit = EXCLUDED.credit
	`

	res, err := s.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("archiving all balances: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("archiving all balances: %w", err)
	}

	return int(n), nil
}

func (s *Store) ListArchives(ctx context.Context, number string) ([]account.ArchivedBalance, error) {
	query := `
		SELECT archived_on, debit, credit
		FROM account_archives
		WHERE account_number = $1
		ORDER BY archived_on ASC
	`

	rows, err := s.db.QueryContext(ctx, query, number)
	if err != nil {
		return nil, fmt.Errorf("listing archives: %w", err)
	}
	defer rows.Close()

	var archives []account.ArchivedBalance

	for rows.Next() {
		var ab account.ArchivedBalance
		if err := rows.Scan(&ab.Date, &ab.Debit, &ab.Credit); err != nil {
			return nil, fmt.Errorf("scanning archive: %w", err)
		}

		archives = append(archives, ab)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archive rows: %w", err)
	}

	return archives, nil
}
