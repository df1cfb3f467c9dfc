package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key so that work on the same key runs
// one at a time while different keys proceed in parallel. Keys come from
// request input, so an entry lives only while some caller holds or waits on it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Do runs fn while holding the lock for key
func (lm *LockManager) Do(key string, fn func() error) error {
	l := lm.acquire(key)
	l.mu.Lock()
	defer lm.release(key, l)
	return fn()
}

func (lm *LockManager) acquire(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

func (lm *LockManager) release(key string, l *keyLock) {
	l.mu.Unlock()
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// Len reports how many keys are currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
