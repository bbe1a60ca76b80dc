package chart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openbook-core/openbook/internal/account"
)

// AccountWriter is the slice of the account service the seeder needs.
type AccountWriter interface {
	GetByNumber(ctx context.Context, number string) (*account.Account, error)
	Insert(ctx context.Context, a *account.Account) error
}

// Seeder applies a chart to a dossier. Existing accounts are left alone,
// so re-seeding after a chart update only fills the gaps.
type Seeder struct {
	accounts AccountWriter
	log      *slog.Logger
}

func NewSeeder(accounts AccountWriter, log *slog.Logger) *Seeder {
	return &Seeder{accounts: accounts, log: log}
}

// Apply inserts every missing account and returns how many were created.
func (s *Seeder) Apply(ctx context.Context, c *Chart) (int, error) {
	created := 0

	for _, seed := range c.Accounts {
		_, err := s.accounts.GetByNumber(ctx, seed.Number)
		if err == nil {
			continue
		}

		if !errors.Is(err, account.ErrNotFound) {
			return created, fmt.Errorf("checking account %s: %w", seed.Number, err)
		}

		if err := s.accounts.Insert(ctx, seed.Account()); err != nil {
			return created, fmt.Errorf("seeding account %s: %w", seed.Number, err)
		}

		s.log.Debug("seeded account", "number", seed.Number, "label", seed.Label)

		created++
	}

	s.log.Info("chart applied", "chart", c.Name, "created", created, "total", len(c.Accounts))

	return created, nil
}
