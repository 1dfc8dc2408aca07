package note

import (
	"sync"
	"time"
)

// Store owns the in-memory note collection. Every read and mutation goes
// through its methods, which serialize behind a single lock so concurrent
// requests never lose an update or hand out a duplicate id.
//
// The collection lives only in process memory and is gone on restart.
type Store struct {
	mu    sync.RWMutex
	seq   uint64
	notes map[uint64]Note
	order []uint64
}

// NewStore returns an empty store. Ids start at 1 and are never reused,
// not even after a delete.
func NewStore() *Store {
	return &Store{
		notes: make(map[uint64]Note),
	}
}

// now is second precision, the granularity the API exposes
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
