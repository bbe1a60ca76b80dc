package counter

import (
	"context"
)

// Kind identifies one monotonic identifier sequence within a dossier.
type Kind string

const (
	KindBat        Kind = "bat"
	KindBatLine    Kind = "batline"
	KindConcil     Kind = "concil"
	KindDoc        Kind = "doc"
	KindEntry      Kind = "entry"
	KindOpe        Kind = "ope"
	KindSettlement Kind = "settlement"
	KindTiers      Kind = "tiers"
)

//go:generate mockgen -source=counter.go -destination=repository_mock.go -package=counter
type Repository interface {
	// GetLast returns the last allocated value for the kind, zero if none.
	GetLast(ctx context.Context, kind Kind) (uint64, error)

	// GetNext durably increments and returns the counter. On error no value
	// has been issued; on success the returned value is never issued again,
	// even to another process attached to the same dossier.
	GetNext(ctx context.Context, kind Kind) (uint64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetLast(ctx context.Context, kind Kind) (uint64, error) {
	return s.repo.GetLast(ctx, kind)
}

func (s *Service) GetNext(ctx context.Context, kind Kind) (uint64, error) {
	return s.repo.GetNext(ctx, kind)
}

func (s *Service) LastBatID(ctx context.Context) (uint64, error)  { return s.GetLast(ctx, KindBat) }
func (s *Service) NextBatID(ctx context.Context) (uint64, error)  { return s.GetNext(ctx, KindBat) }
func (s *Service) LastBatLineID(ctx context.Context) (uint64, error) {
	return s.GetLast(ctx, KindBatLine)
}
func (s *Service) NextBatLineID(ctx context.Context) (uint64, error) {
	return s.GetNext(ctx, KindBatLine)
}
func (s *Service) LastConcilID(ctx context.Context) (uint64, error) {
	return s.GetLast(ctx, KindConcil)
}
func (s *Service) NextConcilID(ctx context.Context) (uint64, error) {
	return s.GetNext(ctx, KindConcil)
}
func (s *Service) LastDocID(ctx context.Context) (uint64, error) { return s.GetLast(ctx, KindDoc) }
func (s *Service) NextDocID(ctx context.Context) (uint64, error) { return s.GetNext(ctx, KindDoc) }
func (s *Service) LastEntryNumber(ctx context.Context) (uint64, error) {
	return s.GetLast(ctx, KindEntry)
}
func (s *Service) NextEntryNumber(ctx context.Context) (uint64, error) {
	return s.GetNext(ctx, KindEntry)
}
func (s *Service) LastOpeID(ctx context.Context) (uint64, error) { return s.GetLast(ctx, KindOpe) }
func (s *Service) NextOpeID(ctx context.Context) (uint64, error) { return s.GetNext(ctx, KindOpe) }
func (s *Service) LastSettlementID(ctx context.Context) (uint64, error) {
	return s.GetLast(ctx, KindSettlement)
}
func (s *Service) NextSettlementID(ctx context.Context) (uint64, error) {
	return s.GetNext(ctx, KindSettlement)
}
func (s *Service) LastTiersID(ctx context.Context) (uint64, error) {
	return s.GetLast(ctx, KindTiers)
}
func (s *Service) NextTiersID(ctx context.Context) (uint64, error) {
	return s.GetNext(ctx, KindTiers)
}
