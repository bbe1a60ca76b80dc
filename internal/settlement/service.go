package settlement

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	GetSettlement(ctx context.Context, number uint64) (*Settlement, error)

	// CreateSettlement allocates a settlement number and stamps the entries
	// atomically. All entries must live on the same settleable account and
	// none may already be settled or deleted.
	CreateSettlement(ctx context.Context, entryNumbers []uint64) (*Settlement, error)

	// ExtendSettlement stamps additional entries with an existing number,
	// under the same account and status checks.
	ExtendSettlement(ctx context.Context, number uint64, entryNumbers []uint64) (*Settlement, error)

	// DissolveSettlement clears the number from every member and returns how
	// many entries were freed.
	DissolveSettlement(ctx context.Context, number uint64) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByNumber(ctx context.Context, number uint64) (*Settlement, error) {
	return s.repo.GetSettlement(ctx, number)
}

func (s *Service) Create(ctx context.Context, entryNumbers []uint64) (*Settlement, error) {
	if err := checkNumbers(entryNumbers); err != nil {
		return nil, err
	}

	return s.repo.CreateSettlement(ctx, entryNumbers)
}

func (s *Service) Extend(ctx context.Context, number uint64, entryNumbers []uint64) (*Settlement, error) {
	if err := checkNumbers(entryNumbers); err != nil {
		return nil, err
	}

	return s.repo.ExtendSettlement(ctx, number, entryNumbers)
}

// checkNumbers rejects empty sets and duplicates. The store counts distinct
// rows to detect missing entries, so a duplicate would otherwise surface as
// a misleading not-found.
func checkNumbers(entryNumbers []uint64) error {
	if len(entryNumbers) == 0 {
		return &InvalidDataError{Field: "entries", Reason: "must not be empty"}
	}

	seen := make(map[uint64]bool, len(entryNumbers))

	for _, n := range entryNumbers {
		if seen[n] {
			return &InvalidDataError{Field: "entries", Reason: fmt.Sprintf("duplicate entry %d", n)}
		}

		seen[n] = true
	}

	return nil
}

func (s *Service) Dissolve(ctx context.Context, number uint64) (int, error) {
	return s.repo.DissolveSettlement(ctx, number)
}
