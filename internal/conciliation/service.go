package conciliation

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=conciliation
type Repository interface {
	GetGroup(ctx context.Context, id uint64) (*Group, error)
	GetGroupByMember(ctx context.Context, m Member) (*Group, error)

	// CreateGroup allocates a group id and attaches the members atomically.
	// A member already held by another group fails the whole creation with
	// ErrAlreadyReconciled.
	CreateGroup(ctx context.Context, members []Member) (*Group, error)

	// AddMembers attaches members to an existing group. Members already in
	// that same group are skipped.
	AddMembers(ctx context.Context, groupID uint64, members []Member) error

	// RemoveMember detaches the member and reports whether the group was
	// dissolved because its last entry member left.
	RemoveMember(ctx context.Context, m Member) (bool, error)

	DeleteGroup(ctx context.Context, id uint64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id uint64) (*Group, error) {
	return s.repo.GetGroup(ctx, id)
}

func (s *Service) GetByMember(ctx context.Context, m Member) (*Group, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	return s.repo.GetGroupByMember(ctx, m)
}

// Create opens a new group over the given members. At least one accounting
// entry is required: bank lines alone explain nothing.
func (s *Service) Create(ctx context.Context, members []Member) (*Group, error) {
	if err := validateMembers(members); err != nil {
		return nil, err
	}

	if !hasEntry(members) {
		return nil, &InvalidDataError{Field: "members", Reason: "at least one entry member required"}
	}

	return s.repo.CreateGroup(ctx, members)
}

func (s *Service) Add(ctx context.Context, groupID uint64, members []Member) error {
	if err := validateMembers(members); err != nil {
		return err
	}

	return s.repo.AddMembers(ctx, groupID, members)
}

// Remove detaches one member. When the last entry member leaves, the whole
// group dissolves and any remaining bank lines become unreconciled again.
func (s *Service) Remove(ctx context.Context, m Member) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}

	return s.repo.RemoveMember(ctx, m)
}

// Dissolve deletes the group and frees all its members at once.
func (s *Service) Dissolve(ctx context.Context, id uint64) error {
	return s.repo.DeleteGroup(ctx, id)
}

func validateMembers(members []Member) error {
	if len(members) == 0 {
		return &InvalidDataError{Field: "members", Reason: "must not be empty"}
	}

	for _, m := range members {
		if err := m.validate(); err != nil {
			return err
		}
	}

	return nil
}

func hasEntry(members []Member) bool {
	for _, m := range members {
		if m.Kind == MemberEntry {
			return true
		}
	}

	return false
}
