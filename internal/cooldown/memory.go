package cooldown

import (
	"context"
	"sync"
	"time"
)

// memoryBackend implements Service in memory. Used by tests and by
// deployments running without a database.
type memoryBackend struct {
	mu       sync.Mutex
	config   Config
	lastUsed map[string]time.Time
}

// NewMemoryService creates an in-memory cooldown service.
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		config:   config,
		lastUsed: make(map[string]time.Time),
	}
}

func (b *memoryBackend) key(userHandle, action string) string {
	return userHandle + ":" + action
}

func (b *memoryBackend) Check(_ context.Context, userHandle, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	var last *time.Time
	if t, ok := b.lastUsed[b.key(userHandle, action)]; ok {
		last = &t
	}
	onCooldown, remaining := remainingAfter(last, b.config.Duration(action))
	return onCooldown, remaining, nil
}

func (b *memoryBackend) Enforce(_ context.Context, userHandle, action string, fn func() error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.config.DevMode {
		var last *time.Time
		if t, ok := b.lastUsed[b.key(userHandle, action)]; ok {
			last = &t
		}
		if onCooldown, remaining := remainingAfter(last, b.config.Duration(action)); onCooldown {
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}
	}

	if err := fn(); err != nil {
		return err
	}
	b.lastUsed[b.key(userHandle, action)] = time.Now()
	return nil
}

func (b *memoryBackend) Reset(_ context.Context, userHandle, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lastUsed, b.key(userHandle, action))
	return nil
}

func (b *memoryBackend) GetLastUsed(_ context.Context, userHandle, action string) (*time.Time, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.lastUsed[b.key(userHandle, action)]; ok {
		return &t, nil
	}
	return nil, nil
}
