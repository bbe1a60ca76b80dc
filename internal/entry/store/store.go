package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbook-core/openbook/internal/counter"
	counterstore "github.com/openbook-core/openbook/internal/counter/store"
	"github.com/openbook-core/openbook/internal/entry"
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

const selectEntryColumns = `
	e.number, e.label, e.ref, e.deffect, e.dope, e.account_number, e.currency,
	e.ledger, e.ope_template, e.debit, e.credit, e.status,
	e.settlement_number, e.settlement_stamp, e.created_at, e.updated_at
`

func scanEntry(s scanner) (*entry.Entry, error) {
	var e entry.Entry

	var statusStr string

	var settlementNumber sql.NullInt64

	var settlementStamp sql.NullTime

	if err := s.Scan(
		&e.Number, &e.Label, &e.Ref, &e.DEffect, &e.DOpe, &e.Account, &e.Currency,
		&e.Ledger, &e.OpeTemplate, &e.Debit, &e.Credit, &statusStr,
		&settlementNumber, &settlementStamp, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Status = entry.Status(statusStr)

	if settlementNumber.Valid {
		e.SettlementNumber = uint64(settlementNumber.Int64)
	}

	if settlementStamp.Valid {
		e.SettlementStamp = &settlementStamp.Time
	}

	return &e, nil
}

// bucketColumns maps a status to the account columns it posts to. Only
// ROUGH and FUTURE entries carry a live posting; VALIDATED postings are
// produced by the validate transition, never at insert.
func bucketColumns(status entry.Status) (debitCol, creditCol string, ok bool) {
	switch status {
	case entry.StatusRough:
		return "rough_debit", "rough_credit", true
	case entry.StatusValidated:
		return "validated_debit", "validated_credit", true
	case entry.StatusFuture:
		return "future_debit", "future_credit", true
	}

	return "", "", false
}

// postAmounts adds the entry amounts to the given bucket of its account and
// pushes the account's max effect date. Negative deltas reverse a posting.
func postAmounts(ctx context.Context, tx *sql.Tx, e *entry.Entry, status entry.Status, sign int64) error {
	debitCol, creditCol, ok := bucketColumns(status)
	if !ok {
		return nil // PAST entries never touch current buckets
	}

	query := fmt.Sprintf(`
		UPDATE accounts
		SET %s = %s + $1, %s = %s + $2,
		    deffect = GREATEST(COALESCE(deffect, $3), $3),
		    updated_at = NOW()
		WHERE number = $4
	`, debitCol, debitCol, creditCol, creditCol)

	debit := e.Debit
	credit := e.Credit

	if sign < 0 {
		debit = debit.Neg()
		credit = credit.Neg()
	}

	res, err := tx.ExecContext(ctx, query, debit, credit, e.DEffect, e.Account)
	if err != nil {
		return fmt.Errorf("posting amounts: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("posting amounts: account %s vanished", e.Account)
	}

	return nil
}

// InsertEntry allocates the number, writes the row and posts the amounts in
// one transaction. If any step fails the whole transaction rolls back; the
// counter row lock then releases without the value ever being observable.
func (s *Store) InsertEntry(ctx context.Context, e *entry.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning insert tx: %w", err)
	}
	defer tx.Rollback()

	number, err := counterstore.Allocate(ctx, tx, counter.KindEntry)
	if err != nil {
		return err
	}

	e.Number = number

	query := `
		INSERT INTO entries (number, label, ref, deffect, dope, account_number, currency, ledger, ope_template, debit, credit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at
	`

	err = tx.QueryRowContext(ctx, query,
		e.Number,
		e.Label,
		e.Ref,
		e.DEffect,
		e.DOpe,
		e.Account,
		e.Currency,
		e.Ledger,
		e.OpeTemplate,
		e.Debit,
		e.Credit,
		e.Status,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating entry: %w", err)
	}

	if err := postAmounts(ctx, tx, e, e.Status, +1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry insert: %w", err)
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, number uint64) (*entry.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM entries e WHERE e.number = $1`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entry.ErrNotFound
		}

		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return e, nil
}

// getForUpdate re-reads the entry under a row lock so a concurrent process
// cannot race the same transition.
func getForUpdate(ctx context.Context, tx *sql.Tx, number uint64) (*entry.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM entries e WHERE e.number = $1 FOR UPDATE`

	e, err := scanEntry(tx.QueryRowContext(ctx, query, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entry.ErrNotFound
		}

		return nil, fmt.Errorf("locking entry: %w", err)
	}

	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, filter entry.ListFilter) ([]*entry.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM entries e WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Account != "" {
		query += fmt.Sprintf(" AND e.account_number = $%d", argIdx)

		args = append(args, filter.Account)
		argIdx++
	}

	if filter.Ledger != "" {
		query += fmt.Sprintf(" AND e.ledger = $%d", argIdx)

		args = append(args, filter.Ledger)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND e.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND e.deffect >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND e.deffect <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	query += " ORDER BY e.deffect ASC, e.number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*entry.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry rows: %w", err)
	}

	return entries, nil
}

// ValidateEntry moves the rough posting to the validated bucket and flips
// the status, all in one transaction. Illegal from any state but ROUGH.
func (s *Store) ValidateEntry(ctx context.Context, number uint64) (*entry.Entry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning validate tx: %w", err)
	}
	defer tx.Rollback()

	e, err := getForUpdate(ctx, tx, number)
	if err != nil {
		return nil, err
	}

	if e.Status != entry.StatusRough {
		return nil, &entry.InvalidStateTransitionError{Number: number, From: e.Status, Op: "validate"}
	}

	if err := postAmounts(ctx, tx, e, entry.StatusRough, -1); err != nil {
		return nil, err
	}

	if err := postAmounts(ctx, tx, e, entry.StatusValidated, +1); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE entries SET status = $1, updated_at = NOW() WHERE number = $2`,
		entry.StatusValidated, number); err != nil {
		return nil, fmt.Errorf("flipping status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing validate: %w", err)
	}

	e.Status = entry.StatusValidated

	return e, nil
}

// UpdateEntry rewrites an editable entry. The old posting is reversed and
// the new one applied inside the same transaction, so the account buckets
// never hold both or neither. e.Status carries the re-routed ROUGH or FUTURE
// status; an effect date moved across the exercice end changes the bucket.
func (s *Store) UpdateEntry(ctx context.Context, e *entry.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning update tx: %w", err)
	}
	defer tx.Rollback()

	old, err := getForUpdate(ctx, tx, e.Number)
	if err != nil {
		return err
	}

	if !old.IsEditable() {
		return &entry.InvalidStateTransitionError{Number: e.Number, From: old.Status, Op: "update"}
	}

	if err := postAmounts(ctx, tx, old, old.Status, -1); err != nil {
		return err
	}

	if e.Status == "" {
		e.Status = old.Status
	}

	if err := postAmounts(ctx, tx, e, e.Status, +1); err != nil {
		return err
	}

	query := `
		UPDATE entries
		SET label = $1, ref = $2, deffect = $3, dope = $4, account_number = $5,
		    currency = $6, ledger = $7, ope_template = $8, debit = $9, credit = $10,
		    status = $11, updated_at = NOW()
		WHERE number = $12
	`

	if _, err := tx.ExecContext(ctx, query,
		e.Label, e.Ref, e.DEffect, e.DOpe, e.Account,
		e.Currency, e.Ledger, e.OpeTemplate, e.Debit, e.Credit,
		e.Status, e.Number); err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry update: %w", err)
	}

	return nil
}

// DeleteEntry soft-deletes. ROUGH and FUTURE postings are reversed; PAST
// entries never touched current buckets; VALIDATED entries are refused and
// must be reversed by a counter-entry.
func (s *Store) DeleteEntry(ctx context.Context, number uint64) (*entry.Entry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning delete tx: %w", err)
	}
	defer tx.Rollback()

	e, err := getForUpdate(ctx, tx, number)
	if err != nil {
		return nil, err
	}

	switch e.Status {
	case entry.StatusRough, entry.StatusFuture:
		if err := postAmounts(ctx, tx, e, e.Status, -1); err != nil {
			return nil, err
		}
	case entry.StatusPast:
		// nothing posted
	default:
		return nil, &entry.InvalidStateTransitionError{Number: number, From: e.Status, Op: "delete"}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE entries SET status = $1, updated_at = NOW() WHERE number = $2`,
		entry.StatusDeleted, number); err != nil {
		return nil, fmt.Errorf("flipping status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing delete: %w", err)
	}

	e.Status = entry.StatusDeleted

	return e, nil
}

func (s *Store) SetSettlement(ctx context.Context, number, settlementID uint64, stamp time.Time) error {
	query := `
		UPDATE entries
		SET settlement_number = $1, settlement_stamp = $2, updated_at = NOW()
		WHERE number = $3 AND status <> $4
	`

	res, err := s.db.ExecContext(ctx, query, settlementID, stamp, number, entry.StatusDeleted)
	if err != nil {
		return fmt.Errorf("setting settlement: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entry.ErrNotFound
	}

	return nil
}

func (s *Store) ClearSettlement(ctx context.Context, number uint64) error {
	query := `
		UPDATE entries
		SET settlement_number = NULL, settlement_stamp = NULL, updated_at = NOW()
		WHERE number = $1
	`

	res, err := s.db.ExecContext(ctx, query, number)
	if err != nil {
		return fmt.Errorf("clearing settlement: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entry.ErrNotFound
	}

	return nil
}

func (s *Store) MaxDeffect(ctx context.Context, scope entry.MaxDeffectScope) (*time.Time, error) {
	query := `SELECT MAX(deffect) FROM entries WHERE status <> $1`

	args := []any{entry.StatusDeleted}
	argIdx := 2

	if scope.Account != "" {
		query += fmt.Sprintf(" AND account_number = $%d", argIdx)

		args = append(args, scope.Account)
		argIdx++
	}

	if scope.Ledger != "" {
		query += fmt.Sprintf(" AND ledger = $%d", argIdx)

		args = append(args, scope.Ledger)
		argIdx++
	}

	var max sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&max); err != nil {
		return nil, fmt.Errorf("reading max deffect: %w", err)
	}

	if !max.Valid {
		return nil, nil
	}

	return &max.Time, nil
}
