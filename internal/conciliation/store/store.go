package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openbook-core/openbook/internal/conciliation"
	"github.com/openbook-core/openbook/internal/counter"
	counterstore "github.com/openbook-core/openbook/internal/counter/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

// The UNIQUE (member_kind, member_id) constraint is the backstop: even if
// two transactions race past the membership check, only one insert lands.
func isAlreadyReconciled(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (s *Store) GetGroup(ctx context.Context, id uint64) (*conciliation.Group, error) {
	g := &conciliation.Group{ID: id}

	err := s.db.QueryRowContext(ctx,
		`SELECT created_at FROM conciliation_groups WHERE id = $1`, id).Scan(&g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, conciliation.ErrNotFound
		}

		return nil, fmt.Errorf("getting conciliation group: %w", err)
	}

	members, err := s.listMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Members = members

	return g, nil
}

func (s *Store) GetGroupByMember(ctx context.Context, m conciliation.Member) (*conciliation.Group, error) {
	var groupID uint64

	err := s.db.QueryRowContext(ctx,
		`SELECT group_id FROM conciliation_members WHERE member_kind = $1 AND member_id = $2`,
		m.Kind, m.ID).Scan(&groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, conciliation.ErrNotFound
		}

		return nil, fmt.Errorf("resolving member group: %w", err)
	}

	return s.GetGroup(ctx, groupID)
}

func (s *Store) CreateGroup(ctx context.Context, members []conciliation.Member) (*conciliation.Group, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning conciliation tx: %w", err)
	}
	defer tx.Rollback()

	id, err := counterstore.Allocate(ctx, tx, counter.KindConcil)
	if err != nil {
		return nil, err
	}

	g := &conciliation.Group{ID: id, Members: members}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO conciliation_groups (id) VALUES ($1) RETURNING created_at`, id).
		Scan(&g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating conciliation group: %w", err)
	}

	for _, m := range members {
		if err := insertMember(ctx, tx, id, m); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing conciliation group: %w", err)
	}

	return g, nil
}

func (s *Store) AddMembers(ctx context.Context, groupID uint64, members []conciliation.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning conciliation tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool

	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM conciliation_groups WHERE id = $1)`, groupID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking conciliation group: %w", err)
	}

	if !exists {
		return conciliation.ErrNotFound
	}

	for _, m := range members {
		var current sql.NullInt64

		err := tx.QueryRowContext(ctx,
			`SELECT group_id FROM conciliation_members WHERE member_kind = $1 AND member_id = $2`,
			m.Kind, m.ID).Scan(&current)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("checking membership: %w", err)
		}

		if current.Valid {
			if uint64(current.Int64) == groupID {
				continue // already attached, adding again is a no-op
			}

			return conciliation.ErrAlreadyReconciled
		}

		if err := insertMember(ctx, tx, groupID, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing member additions: %w", err)
	}

	return nil
}

func (s *Store) RemoveMember(ctx context.Context, m conciliation.Member) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning conciliation tx: %w", err)
	}
	defer tx.Rollback()

	var groupID uint64

	err = tx.QueryRowContext(ctx,
		`SELECT group_id FROM conciliation_members WHERE member_kind = $1 AND member_id = $2 FOR UPDATE`,
		m.Kind, m.ID).Scan(&groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, conciliation.ErrNotFound
		}

		return false, fmt.Errorf("resolving member group: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM conciliation_members WHERE member_kind = $1 AND member_id = $2`,
		m.Kind, m.ID)
	if err != nil {
		return false, fmt.Errorf("removing member: %w", err)
	}

	var entriesLeft int

	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conciliation_members WHERE group_id = $1 AND member_kind = 'entry'`,
		groupID).Scan(&entriesLeft)
	if err != nil {
		return false, fmt.Errorf("counting remaining entries: %w", err)
	}

	dissolved := entriesLeft == 0

	if dissolved {
		// ON DELETE CASCADE frees any remaining bank lines.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM conciliation_groups WHERE id = $1`, groupID); err != nil {
			return false, fmt.Errorf("dissolving group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing member removal: %w", err)
	}

	return dissolved, nil
}

func (s *Store) DeleteGroup(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conciliation_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting conciliation group: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return conciliation.ErrNotFound
	}

	return nil
}

func (s *Store) listMembers(ctx context.Context, groupID uint64) ([]conciliation.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT member_kind, member_id FROM conciliation_members WHERE group_id = $1 ORDER BY member_kind, member_id`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []conciliation.Member

	for rows.Next() {
		var m conciliation.Member
		if err := rows.Scan(&m.Kind, &m.ID); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}

		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return members, nil
}

func insertMember(ctx context.Context, tx *sql.Tx, groupID uint64, m conciliation.Member) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO conciliation_members (group_id, member_kind, member_id) VALUES ($1, $2, $3)`,
		groupID, m.Kind, m.ID)
	if err != nil {
		if isAlreadyReconciled(err) {
			return conciliation.ErrAlreadyReconciled
		}

		return fmt.Errorf("attaching member: %w", err)
	}

	return nil
}
