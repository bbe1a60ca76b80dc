package settlement

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("settlement not found")

// ErrAlreadySettled is returned when any candidate entry already carries a
// settlement number. An entry settles at most once.
var ErrAlreadySettled = errors.New("entry already settled")

// InvalidDataError names the first offending field of a rejected settlement.
type InvalidDataError struct {
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid settlement data: %s: %s", e.Field, e.Reason)
}

// Settlement is the lettering of a set of entries on one third-party
// account: together they even out (invoice against payment). There is no
// settlement row; the group is the entries sharing the number.
type Settlement struct {
	Number  uint64
	Stamp   time.Time
	Account string
	Entries []uint64
}
