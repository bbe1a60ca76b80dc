package ledger

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetLedger(ctx context.Context, mnemo string) (*Ledger, error)
	ListLedgers(ctx context.Context) ([]*Ledger, error)
	CreateLedger(ctx context.Context, l *Ledger) error
	UpdateLedger(ctx context.Context, l *Ledger) error
	LedgerExists(ctx context.Context, mnemo string) (bool, error)
	SetLastClose(ctx context.Context, mnemo string, date time.Time) error

	CompareBuckets(ctx context.Context) ([]AccountComparison, error)
	EntryTotals(ctx context.Context) (Totals, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByMnemo(ctx context.Context, mnemo string) (*Ledger, error) {
	return s.repo.GetLedger(ctx, mnemo)
}

func (s *Service) GetDataset(ctx context.Context) ([]*Ledger, error) {
	return s.repo.ListLedgers(ctx)
}

func (s *Service) Insert(ctx context.Context, l *Ledger) error {
	if err := l.validate(); err != nil {
		return err
	}

	return s.repo.CreateLedger(ctx, l)
}

func (s *Service) Update(ctx context.Context, l *Ledger) error {
	if err := l.validate(); err != nil {
		return err
	}

	return s.repo.UpdateLedger(ctx, l)
}

// Exists satisfies the entry engine's ledger check.
func (s *Service) Exists(ctx context.Context, mnemo string) (bool, error) {
	return s.repo.LedgerExists(ctx, mnemo)
}

// Close records the ledger close date. Validating the ledger's rough
// entries up to that date is the entry engine's job; callers sequence the
// two (see the close command).
func (s *Service) Close(ctx context.Context, mnemo string, date time.Time) error {
	return s.repo.SetLastClose(ctx, mnemo, date)
}
