package concurrency

import (
	"sync"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// FightRegistry is the global "users currently fighting" set. A user may
// hold at most one battle slot at a time; joining a second battle, as a
// fighter or an intruder, is refused until the first releases the slot.
type FightRegistry struct {
	mu       sync.Mutex
	fighting map[string]struct{}
}

// NewFightRegistry creates an empty registry.
func NewFightRegistry() *FightRegistry {
	return &FightRegistry{fighting: make(map[string]struct{})}
}

// Acquire claims battle slots for every handle at once. Either all handles
// are claimed or none: a single busy user fails the whole group with
// domain.ErrAlreadyFighting. The returned release returns the slots and is
// safe to call more than once.
func (r *FightRegistry) Acquire(userHandles ...string) (release func(), err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, handle := range userHandles {
		if _, busy := r.fighting[handle]; busy {
			return nil, domain.ErrAlreadyFighting
		}
	}
	claimed := make([]string, 0, len(userHandles))
	for _, handle := range userHandles {
		r.fighting[handle] = struct{}{}
		claimed = append(claimed, handle)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for _, handle := range claimed {
				delete(r.fighting, handle)
			}
		})
	}, nil
}

// IsFighting reports whether the handle currently holds a battle slot.
func (r *FightRegistry) IsFighting(userHandle string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, busy := r.fighting[userHandle]
	return busy
}

// ActiveCount returns how many users are currently in battles.
func (r *FightRegistry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fighting)
}
