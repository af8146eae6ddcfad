package idx

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
)

// ID is a lexicographically sortable ULID string. Entity ids come from a
// Generator; ULIDs label things that are never persisted, such as request
// ids.
type ID string

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID stamped with the current time. IDs from one process
// sort in creation order even within a millisecond.
func New() ID {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ID(ulid.MustNew(ulid.Now(), entropy).String())
}

func (id ID) String() string { return string(id) }
