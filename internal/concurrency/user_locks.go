package concurrency

import "sync"

// UserLocks hands out one mutex per user handle, created on first use.
// The character service grabs it around read-modify-write settlements so
// two commands for the same player serialize while different players
// proceed independently. Locks are never evicted; the key space is
// bounded by the registered player base.
type UserLocks struct {
	locks sync.Map // user handle -> *sync.Mutex
}

// NewUserLocks creates an empty lock set.
func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

// For returns the mutex owned by the handle, minting it on first request.
func (u *UserLocks) For(userHandle string) *sync.Mutex {
	lock, _ := u.locks.LoadOrStore(userHandle, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
