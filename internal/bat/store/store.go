package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openbook-core/openbook/internal/bat"
	"github.com/openbook-core/openbook/internal/counter"
	counterstore "github.com/openbook-core/openbook/internal/counter/store"
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

func scanFile(s scanner) (*bat.File, error) {
	var f bat.File

	var begin, end sql.NullTime

	if err := s.Scan(&f.ID, &f.ImportID, &f.URI, &f.Format, &f.Currency,
		&begin, &end, &f.LineCount, &f.CreatedAt); err != nil {
		return nil, err
	}

	if begin.Valid {
		f.Begin = &begin.Time
	}

	if end.Valid {
		f.End = &end.Time
	}

	return &f, nil
}

const selectFileColumns = `id, import_id, uri, format, currency, begin_date, end_date, line_count, created_at`

func (s *Store) GetFile(ctx context.Context, id uint64) (*bat.File, error) {
	query := `SELECT ` + selectFileColumns + ` FROM bat_files WHERE id = $1`

	f, err := scanFile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bat.ErrNotFound
		}

		return nil, fmt.Errorf("getting bat file: %w", err)
	}

	return f, nil
}

func (s *Store) ListFiles(ctx context.Context) ([]*bat.File, error) {
	query := `SELECT ` + selectFileColumns + ` FROM bat_files ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bat files: %w", err)
	}
	defer rows.Close()

	var files []*bat.File

	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bat file: %w", err)
		}

		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bat files: %w", err)
	}

	return files, nil
}

func (s *Store) GetLines(ctx context.Context, batID uint64) ([]*bat.Line, error) {
	query := `
		SELECT id, bat_id, dope, deffect, ref, label, currency, amount
		FROM bat_lines
		WHERE bat_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, batID)
	if err != nil {
		return nil, fmt.Errorf("listing bat lines: %w", err)
	}
	defer rows.Close()

	var lines []*bat.Line

	for rows.Next() {
		var l bat.Line

		var dope sql.NullTime

		if err := rows.Scan(&l.ID, &l.BatID, &dope, &l.DEffect, &l.Ref,
			&l.Label, &l.Currency, &l.Amount); err != nil {
			return nil, fmt.Errorf("scanning bat line: %w", err)
		}

		if dope.Valid {
			l.DOpe = &dope.Time
		}

		lines = append(lines, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bat lines: %w", err)
	}

	return lines, nil
}

func (s *Store) CreateFile(ctx context.Context, f *bat.File, lines []bat.ParsedLine) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning bat tx: %w", err)
	}
	defer tx.Rollback()

	id, err := counterstore.Allocate(ctx, tx, counter.KindBat)
	if err != nil {
		return err
	}

	f.ID = id

	query := `
		INSERT INTO bat_files (id, import_id, uri, format, currency, begin_date, end_date, line_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = tx.QueryRowContext(ctx, query,
		f.ID, f.ImportID, f.URI, f.Format, f.Currency, f.Begin, f.End, f.LineCount,
	).Scan(&f.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bat file: %w", err)
	}

	lineQuery := `
		INSERT INTO bat_lines (id, bat_id, dope, deffect, ref, label, currency, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, l := range lines {
		lineID, err := counterstore.Allocate(ctx, tx, counter.KindBatLine)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, lineQuery,
			lineID, f.ID, l.DOpe, l.DEffect, l.Ref, l.Label, l.Currency, l.Amount)
		if err != nil {
			return fmt.Errorf("creating bat line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bat import: %w", err)
	}

	return nil
}

func (s *Store) DeleteFile(ctx context.Context, id uint64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning bat tx: %w", err)
	}
	defer tx.Rollback()

	var reconciled bool

	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM conciliation_members cm
			JOIN bat_lines bl ON bl.id = cm.member_id
			WHERE cm.member_kind = 'bat_line' AND bl.bat_id = $1
		)
	`, id).Scan(&reconciled)
	if err != nil {
		return fmt.Errorf("checking reconciled lines: %w", err)
	}

	if reconciled {
		return bat.ErrNotDeletable
	}

	// ON DELETE CASCADE drops the lines.
	res, err := tx.ExecContext(ctx, `DELETE FROM bat_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting bat file: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bat.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing bat delete: %w", err)
	}

	return nil
}
