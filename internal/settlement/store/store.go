package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbook-core/openbook/internal/counter"
	counterstore "github.com/openbook-core/openbook/internal/counter/store"
	"github.com/openbook-core/openbook/internal/settlement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// pgx binds []int64 as bigint[], so member sets go through = ANY($1).
func toInt64(numbers []uint64) []int64 {
	out := make([]int64, len(numbers))
	for i, n := range numbers {
		out[i] = int64(n)
	}

	return out
}

func (s *Store) GetSettlement(ctx context.Context, number uint64) (*settlement.Settlement, error) {
	query := `
		SELECT number, account_number, settlement_stamp
		FROM entries
		WHERE settlement_number = $1
		ORDER BY number ASC
	`

	rows, err := s.db.QueryContext(ctx, query, number)
	if err != nil {
		return nil, fmt.Errorf("getting settlement: %w", err)
	}
	defer rows.Close()

	st := &settlement.Settlement{Number: number}

	for rows.Next() {
		var entryNumber uint64

		var account string

		var stamp time.Time

		if err := rows.Scan(&entryNumber, &account, &stamp); err != nil {
			return nil, fmt.Errorf("scanning settlement member: %w", err)
		}

		st.Account = account
		st.Stamp = stamp
		st.Entries = append(st.Entries, entryNumber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement members: %w", err)
	}

	if len(st.Entries) == 0 {
		return nil, settlement.ErrNotFound
	}

	return st, nil
}

func (s *Store) CreateSettlement(ctx context.Context, entryNumbers []uint64) (*settlement.Settlement, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}
	defer tx.Rollback()

	account, err := checkCandidates(ctx, tx, entryNumbers, "")
	if err != nil {
		return nil, err
	}

	number, err := counterstore.Allocate(ctx, tx, counter.KindSettlement)
	if err != nil {
		return nil, err
	}

	stamp, err := stampEntries(ctx, tx, number, entryNumbers)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settlement: %w", err)
	}

	return &settlement.Settlement{
		Number:  number,
		Stamp:   stamp,
		Account: account,
		Entries: entryNumbers,
	}, nil
}

func (s *Store) ExtendSettlement(ctx context.Context, number uint64, entryNumbers []uint64) (*settlement.Settlement, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}
	defer tx.Rollback()

	var account string

	err = tx.QueryRowContext(ctx,
		`SELECT account_number FROM entries WHERE settlement_number = $1 LIMIT 1 FOR UPDATE`,
		number).Scan(&account)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settlement.ErrNotFound
		}

		return nil, fmt.Errorf("resolving settlement account: %w", err)
	}

	if _, err := checkCandidates(ctx, tx, entryNumbers, account); err != nil {
		return nil, err
	}

	if _, err := stampEntries(ctx, tx, number, entryNumbers); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settlement extension: %w", err)
	}

	return s.GetSettlement(ctx, number)
}

func (s *Store) DissolveSettlement(ctx context.Context, number uint64) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE entries SET settlement_number = NULL, settlement_stamp = NULL, updated_at = NOW() WHERE settlement_number = $1`,
		number)
	if err != nil {
		return 0, fmt.Errorf("dissolving settlement: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("dissolving settlement: %w", err)
	}

	if n == 0 {
		return 0, settlement.ErrNotFound
	}

	return int(n), nil
}

// checkCandidates locks the candidate entries and verifies the settlement
// preconditions: every entry exists, none is settled or deleted, all share
// one settleable account. wantAccount pins the account when extending;
// empty means any single account. Returns the common account.
func checkCandidates(ctx context.Context, tx *sql.Tx, entryNumbers []uint64, wantAccount string) (string, error) {
	query := `
		SELECT e.number, e.account_number, e.status, e.settlement_number, a.settleable
		FROM entries e
		JOIN accounts a ON a.number = e.account_number
		WHERE e.number = ANY($1)
		FOR UPDATE OF e
	`

	rows, err := tx.QueryContext(ctx, query, toInt64(entryNumbers))
	if err != nil {
		return "", fmt.Errorf("locking settlement candidates: %w", err)
	}
	defer rows.Close()

	account := wantAccount

	seen := 0

	for rows.Next() {
		var number uint64

		var entryAccount, status string

		var settled sql.NullInt64

		var settleable bool

		if err := rows.Scan(&number, &entryAccount, &status, &settled, &settleable); err != nil {
			return "", fmt.Errorf("scanning settlement candidate: %w", err)
		}

		seen++

		if settled.Valid {
			return "", settlement.ErrAlreadySettled
		}

		if status == "deleted" {
			return "", &settlement.InvalidDataError{
				Field:  "entries",
				Reason: fmt.Sprintf("entry %d is deleted", number),
			}
		}

		if !settleable {
			return "", &settlement.InvalidDataError{
				Field:  "account",
				Reason: fmt.Sprintf("account %s does not accept settlements", entryAccount),
			}
		}

		if account == "" {
			account = entryAccount
		} else if entryAccount != account {
			return "", &settlement.InvalidDataError{
				Field:  "entries",
				Reason: "entries span more than one account",
			}
		}
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating settlement candidates: %w", err)
	}

	if seen != len(entryNumbers) {
		return "", settlement.ErrNotFound
	}

	return account, nil
}

func stampEntries(ctx context.Context, tx *sql.Tx, number uint64, entryNumbers []uint64) (time.Time, error) {
	var stamp time.Time

	query := `
		UPDATE entries
		SET settlement_number = $1, settlement_stamp = NOW(), updated_at = NOW()
		WHERE number = ANY($2)
		RETURNING settlement_stamp
	`

	if err := tx.QueryRowContext(ctx, query, number, toInt64(entryNumbers)).Scan(&stamp); err != nil {
		return time.Time{}, fmt.Errorf("stamping settlement: %w", err)
	}

	return stamp, nil
}
