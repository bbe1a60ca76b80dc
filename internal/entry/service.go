package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/openbook-core/openbook/internal/account"
	"github.com/openbook-core/openbook/internal/dossier"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=entry
type Repository interface {
	// InsertEntry allocates the entry number, writes the row and posts the
	// amounts to the matching account bucket in one transaction. On failure
	// nothing is observable; allocated numbers are not reused.
	InsertEntry(ctx context.Context, e *Entry) error

	GetEntry(ctx context.Context, number uint64) (*Entry, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)

	// ValidateEntry moves the posted amount from the rough bucket to the
	// validated bucket and flips the status, in one transaction.
	ValidateEntry(ctx context.Context, number uint64) (*Entry, error)

	// UpdateEntry rewrites an editable entry, reversing the old posting and
	// applying the new one in the same transaction.
	UpdateEntry(ctx context.Context, e *Entry) error

	// DeleteEntry reverses the bucket posting and soft-deletes the row.
	DeleteEntry(ctx context.Context, number uint64) (*Entry, error)

	SetSettlement(ctx context.Context, number, settlementID uint64, stamp time.Time) error
	ClearSettlement(ctx context.Context, number uint64) error

	MaxDeffect(ctx context.Context, scope MaxDeffectScope) (*time.Time, error)
}

// AccountGetter is the slice of the account service the entry engine needs.
type AccountGetter interface {
	GetByNumber(ctx context.Context, number string) (*account.Account, error)
}

// DossierGetter supplies the exercice bounds for FUTURE routing.
type DossierGetter interface {
	Get(ctx context.Context) (*dossier.Dossier, error)
}

// LedgerChecker tests whether a ledger mnemonic exists.
type LedgerChecker interface {
	Exists(ctx context.Context, mnemo string) (bool, error)
}

// ListFilter narrows ListEntries. Zero values are ignored.
type ListFilter struct {
	Account string
	Ledger  string
	Status  *Status
	From    *time.Time
	To      *time.Time
}

// MaxDeffectScope limits MaxDeffect to one account and/or one ledger.
// DELETED entries never count.
type MaxDeffectScope struct {
	Account string
	Ledger  string
}

type Service struct {
	repo     Repository
	accounts AccountGetter
	dossiers DossierGetter
	ledgers  LedgerChecker
}

func NewService(repo Repository, accounts AccountGetter, dossiers DossierGetter, ledgers LedgerChecker) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		dossiers: dossiers,
		ledgers:  ledgers,
	}
}

// InsertOptions tweak the referential checks run at insert and update time.
type InsertOptions struct {
	// AllowClosedAccount overrides the closed-account refusal, for
	// administrative corrections.
	AllowClosedAccount bool
}

// checkReferences runs the referential checks shared by Insert and Update
// (account accepts postings, ledger exists, effect date inside or beyond the
// exercice) and returns the ROUGH or FUTURE status the effect date routes to.
func (s *Service) checkReferences(ctx context.Context, e *Entry, opts InsertOptions) (Status, error) {
	acc, err := s.accounts.GetByNumber(ctx, e.Account)
	if err != nil {
		if err == account.ErrNotFound {
			return "", &InvalidDataError{Field: "account", Reason: "unknown account"}
		}

		return "", fmt.Errorf("checking account: %w", err)
	}

	if acc.Root {
		return "", &InvalidDataError{Field: "account", Reason: "cannot post to a root account"}
	}

	if acc.Closed && !opts.AllowClosedAccount {
		return "", &InvalidDataError{Field: "account", Reason: "account is closed"}
	}

	if acc.Currency != e.Currency {
		return "", &InvalidDataError{Field: "currency", Reason: "does not match account currency"}
	}

	ok, err := s.ledgers.Exists(ctx, e.Ledger)
	if err != nil {
		return "", fmt.Errorf("checking ledger: %w", err)
	}

	if !ok {
		return "", &InvalidDataError{Field: "ledger", Reason: "unknown ledger"}
	}

	dos, err := s.dossiers.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("reading dossier: %w", err)
	}

	if e.DEffect.Before(dos.ExerciceBegin) {
		return "", &InvalidDataError{Field: "deffect", Reason: "before exercice begin"}
	}

	if dos.IsFuture(e.DEffect) {
		return StatusFuture, nil
	}

	return StatusRough, nil
}

// Insert runs the full validity check, routes the entry to ROUGH or FUTURE
// from the dossier's exercice end, and persists row plus account posting
// atomically. The allocated number is set on e.
func (s *Service) Insert(ctx context.Context, e *Entry, opts InsertOptions) error {
	if err := e.ValidateData(); err != nil {
		return err
	}

	status, err := s.checkReferences(ctx, e, opts)
	if err != nil {
		return err
	}

	e.Status = status

	return s.repo.InsertEntry(ctx, e)
}

func (s *Service) GetByNumber(ctx context.Context, number uint64) (*Entry, error) {
	return s.repo.GetEntry(ctx, number)
}

func (s *Service) GetDataset(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

func (s *Service) GetDatasetByAccount(ctx context.Context, number string) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, ListFilter{Account: number})
}

func (s *Service) GetDatasetByLedger(ctx context.Context, mnemo string) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, ListFilter{Ledger: mnemo})
}

func (s *Service) GetDatasetByStatus(ctx context.Context, status Status) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, ListFilter{Status: &status})
}

// Validate flips a ROUGH entry to VALIDATED. Illegal from any other state.
// The store re-checks the status under a row lock, so a concurrent transition
// still cannot slip through between the read here and the commit.
func (s *Service) Validate(ctx context.Context, number uint64) (*Entry, error) {
	e, err := s.repo.GetEntry(ctx, number)
	if err != nil {
		return nil, err
	}

	if e.Status != StatusRough {
		return nil, &InvalidStateTransitionError{Number: number, From: e.Status, Op: "validate"}
	}

	return s.repo.ValidateEntry(ctx, number)
}

// ValidateLedger validates every ROUGH entry of one ledger up to the given
// effect date, typically at ledger close.
func (s *Service) ValidateLedger(ctx context.Context, mnemo string, until time.Time) (int, error) {
	status := StatusRough
	entries, err := s.repo.ListEntries(ctx, ListFilter{Ledger: mnemo, Status: &status, To: &until})
	if err != nil {
		return 0, err
	}

	for i, e := range entries {
		if _, err := s.repo.ValidateEntry(ctx, e.Number); err != nil {
			return i, fmt.Errorf("validating entry %d: %w", e.Number, err)
		}
	}

	return len(entries), nil
}

// Update rewrites an editable entry after re-running the same validity and
// referential checks as Insert. The effect date is re-routed, so moving it
// across the exercice end flips the entry between ROUGH and FUTURE.
func (s *Service) Update(ctx context.Context, e *Entry, opts InsertOptions) error {
	if err := e.ValidateData(); err != nil {
		return err
	}

	old, err := s.repo.GetEntry(ctx, e.Number)
	if err != nil {
		return err
	}

	if !old.IsEditable() {
		return &InvalidStateTransitionError{Number: e.Number, From: old.Status, Op: "update"}
	}

	status, err := s.checkReferences(ctx, e, opts)
	if err != nil {
		return err
	}

	e.Status = status

	return s.repo.UpdateEntry(ctx, e)
}

// Delete soft-deletes a ROUGH, PAST or FUTURE entry. A VALIDATED entry is
// refused: it must be reversed by a counter-entry instead.
func (s *Service) Delete(ctx context.Context, number uint64) (*Entry, error) {
	e, err := s.repo.GetEntry(ctx, number)
	if err != nil {
		return nil, err
	}

	switch e.Status {
	case StatusRough, StatusFuture, StatusPast:
	default:
		return nil, &InvalidStateTransitionError{Number: number, From: e.Status, Op: "delete"}
	}

	return s.repo.DeleteEntry(ctx, number)
}

// UpdateSettlement attaches a settlement group id without touching balances.
func (s *Service) UpdateSettlement(ctx context.Context, number, settlementID uint64) error {
	return s.repo.SetSettlement(ctx, number, settlementID, time.Now().UTC())
}

// UnsettleByNumber detaches the entry from its settlement group.
func (s *Service) UnsettleByNumber(ctx context.Context, number uint64) error {
	return s.repo.ClearSettlement(ctx, number)
}

// MaxDeffect returns the latest effect date within the scope, nil if no
// entry matches. DELETED entries are excluded.
func (s *Service) MaxDeffect(ctx context.Context, scope MaxDeffectScope) (*time.Time, error) {
	return s.repo.MaxDeffect(ctx, scope)
}
