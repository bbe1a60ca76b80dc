package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openbook-core/openbook/internal/dossier"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetDossier(ctx context.Context) (*dossier.Dossier, error) {
	query := `SELECT label, currency, exercice_begin, exercice_end, updated_at FROM dossier WHERE id = 1`

	var d dossier.Dossier

	err := s.db.QueryRowContext(ctx, query).Scan(
		&d.Label, &d.Currency, &d.ExerciceBegin, &d.ExerciceEnd, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dossier.ErrNotFound
		}

		return nil, fmt.Errorf("getting dossier: %w", err)
	}

	return &d, nil
}

func (s *Store) UpdateDossier(ctx context.Context, d *dossier.Dossier) error {
	query := `
		UPDATE dossier
		SET label = $1, currency = $2, exercice_begin = $3, exercice_end = $4, updated_at = NOW()
		WHERE id = 1
	`

	res, err := s.db.ExecContext(ctx, query, d.Label, d.Currency, d.ExerciceBegin, d.ExerciceEnd)
	if err != nil {
		return fmt.Errorf("updating dossier: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return dossier.ErrNotFound
	}

	return nil
}
