package service

import "sync"

// keyLocker hands out one read/write mutex per key. Entries are reference counted and
// dropped when the last holder unlocks, so the table only holds keys that
// are being worked on.
type keyLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.RWMutex
	refs int
}

func newKeyLocker() *keyLocker {
	return &keyLocker{locks: make(map[string]*keyLock)}
}

// Lock blocks until the caller holds key exclusively and returns the
// function that releases it.
func (l *keyLocker) Lock(key string) (unlock func()) {
	kl := l.acquire(key)
	kl.Lock()

	return func() {
		kl.Unlock()
		l.release(key, kl)
	}
}

// RLock blocks until no writer holds key. Readers of the same key do not
// exclude each other.
func (l *keyLocker) RLock(key string) (unlock func()) {
	kl := l.acquire(key)
	kl.RLock()

	return func() {
		kl.RUnlock()
		l.release(key, kl)
	}
}

func (l *keyLocker) acquire(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	return kl
}

func (l *keyLocker) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *keyLocker) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
