package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
)

var (
	ErrNotFound = errors.New("account not found")

	// ErrNotDeletable is returned when entries still reference the account.
	// Soft-deleted entries count as references too.
	ErrNotDeletable = errors.New("account still referenced by entries")
)

// InvalidDataError names the first offending field of a rejected account.
type InvalidDataError struct {
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid account data: %s: %s", e.Field, e.Reason)
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	GetAccount(ctx context.Context, number string) (*Account, error)
	ListAccounts(ctx context.Context, filter ListFilter) ([]*Account, error)
	CreateAccount(ctx context.Context, a *Account) error
	UpdateAccount(ctx context.Context, a *Account) error
	DeleteAccount(ctx context.Context, number string) error

	CountEntryRefs(ctx context.Context, number string) (int64, error)
	HasChildren(ctx context.Context, number string) (bool, error)
	ListChildren(ctx context.Context, number string) ([]*Account, error)

	ArchiveBalances(ctx context.Context, number string, date time.Time) error
	ArchiveAllBalances(ctx context.Context, date time.Time) (int, error)
	ListArchives(ctx context.Context, number string) ([]ArchivedBalance, error)
}

// ListFilter narrows GetDataset. Prefix matches the number hierarchy.
type ListFilter struct {
	Prefix string
	Class  *int
	Mask   *Flag
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*Account, error) {
	return s.repo.GetAccount(ctx, number)
}

func (s *Service) GetDataset(ctx context.Context, filter ListFilter) ([]*Account, error) {
	accounts, err := s.repo.ListAccounts(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Mask == nil {
		return accounts, nil
	}

	filtered := make([]*Account, 0, len(accounts))

	for _, a := range accounts {
		if a.IsAllowed(*filter.Mask) {
			filtered = append(filtered, a)
		}
	}

	return filtered, nil
}

func (s *Service) Insert(ctx context.Context, a *Account) error {
	if err := validateData(a); err != nil {
		return err
	}

	return s.repo.CreateAccount(ctx, a)
}

// Update rewrites the identity fields of an account. Balance buckets are
// never written through here; only entry transitions and archival touch them.
func (s *Service) Update(ctx context.Context, a *Account) error {
	if err := validateData(a); err != nil {
		return err
	}

	return s.repo.UpdateAccount(ctx, a)
}

// Delete refuses while IsDeletable is false.
func (s *Service) Delete(ctx context.Context, number string) error {
	deletable, err := s.IsDeletable(ctx, number)
	if err != nil {
		return err
	}

	if !deletable {
		return ErrNotDeletable
	}

	return s.repo.DeleteAccount(ctx, number)
}

// IsDeletable reports whether the account owns no entries. Entries with
// DELETED status still count as references.
func (s *Service) IsDeletable(ctx context.Context, number string) (bool, error) {
	refs, err := s.repo.CountEntryRefs(ctx, number)
	if err != nil {
		return false, err
	}

	return refs == 0, nil
}

func (s *Service) HasChildren(ctx context.Context, number string) (bool, error) {
	return s.repo.HasChildren(ctx, number)
}

func (s *Service) GetChildren(ctx context.Context, number string) ([]*Account, error) {
	return s.repo.ListChildren(ctx, number)
}

// ArchiveBalances snapshots the current buckets of one detail account under
// the given date. Re-archiving the same date overwrites only that date's
// row. Root accounts are refused, matching ArchiveAll's scope.
func (s *Service) ArchiveBalances(ctx context.Context, number string, date time.Time) error {
	a, err := s.repo.GetAccount(ctx, number)
	if err != nil {
		return err
	}

	if a.Root {
		return &InvalidDataError{Field: "number", Reason: "root accounts carry no balances to archive"}
	}

	return s.repo.ArchiveBalances(ctx, number, date)
}

// ArchiveAll snapshots every detail account at once, typically at exercice
// close.
func (s *Service) ArchiveAll(ctx context.Context, date time.Time) (int, error) {
	return s.repo.ArchiveAllBalances(ctx, date)
}

func (s *Service) GetArchives(ctx context.Context, number string) ([]ArchivedBalance, error) {
	return s.repo.ListArchives(ctx, number)
}

func validateData(a *Account) error {
	if !ValidNumber(a.Number) {
		return &InvalidDataError{Field: "number", Reason: "must start with a digit and fit 64 chars"}
	}

	if a.Label == "" {
		return &InvalidDataError{Field: "label", Reason: "must not be empty"}
	}

	if a.IsDetail() {
		if a.Currency == "" {
			return &InvalidDataError{Field: "currency", Reason: "detail account needs a currency"}
		}

		if money.GetCurrency(a.Currency) == nil {
			return &InvalidDataError{Field: "currency", Reason: "unknown currency code"}
		}
	}

	return nil
}
