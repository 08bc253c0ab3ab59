package tradebook

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID is the opaque identifier of every entity owned by a Store.
type ID string

// NewID returns a fresh identifier. The prefix keeps exported documents
// readable ("asset_…", "as_…") but carries no semantics.
func NewID(prefix string) ID {
	return ID(fmt.Sprintf("%s_%s", prefix, uuid.NewString()))
}

// Clock abstracts "now" so tests can pin timestamps. All timestamps are UTC
// and serialize as RFC 3339.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time { return time.Now().UTC() }
