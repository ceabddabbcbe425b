package usecase

import "sync"

// keyedLocks serializes aggregation calls per comic id so two concurrent
// requests for the same comic cannot interleave their read-then-write of
// the record. Locks are never evicted; the key space is bounded by the
// catalogued comics.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for key and returns the matching unlock.
func (k *keyedLocks) acquire(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
