package conciliation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("conciliation group not found")

	// ErrAlreadyReconciled is returned when a member already belongs to
	// another group. A member is reconciled at most once.
	ErrAlreadyReconciled = errors.New("member already reconciled")
)

// InvalidDataError names the first offending field of a rejected group or
// member.
type InvalidDataError struct {
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid conciliation data: %s: %s", e.Field, e.Reason)
}

// MemberKind discriminates what a member id refers to.
type MemberKind string

const (
	MemberEntry   MemberKind = "entry"
	MemberBatLine MemberKind = "bat_line"
)

func (k MemberKind) Valid() bool {
	return k == MemberEntry || k == MemberBatLine
}

// Member is one side of a reconciliation: an accounting entry or an
// imported bank transaction line.
type Member struct {
	Kind MemberKind
	ID   uint64
}

func (m Member) validate() error {
	if !m.Kind.Valid() {
		return &InvalidDataError{Field: "kind", Reason: fmt.Sprintf("unknown member kind %q", m.Kind)}
	}

	if m.ID == 0 {
		return &InvalidDataError{Field: "id", Reason: "must not be zero"}
	}

	return nil
}

// Group ties entries and bank lines together as mutually explained.
type Group struct {
	ID        uint64
	CreatedAt time.Time
	Members   []Member
}

// EntryCount returns how many members are accounting entries. A group with
// no entry member explains nothing and must not survive.
func (g *Group) EntryCount() int {
	var n int

	for _, m := range g.Members {
		if m.Kind == MemberEntry {
			n++
		}
	}

	return n
}
