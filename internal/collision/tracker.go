// Package collision tracks value names during blob encoding and rejects
// xxHash64 collisions.
package collision

import (
	"github.com/arloliu/tempo/errs"
)

// Tracker records the names added to a blob keyed by their hash. The blob
// format stores only hashes, so two different names hashing to the same key
// cannot coexist in one blob.
type Tracker struct {
	names map[uint64]string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{names: make(map[uint64]string)}
}

// Track records a name with its hash. It fails with ErrInvalidValueName for
// an empty name and with ErrNameCollision when the name was already added or
// a different name produced the same hash.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidValueName
	}
	if _, exists := t.names[hash]; exists {
		return errs.ErrNameCollision
	}

	t.names[hash] = name

	return nil
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears the tracker for reuse, keeping the map's capacity.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
}
