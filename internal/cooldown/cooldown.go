// Package cooldown enforces per-(user, action) cooldowns for the chat
// commands that gate world events and duels.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// Known cooldown actions.
const (
	ActionEvent = "event"
	ActionDuel  = "duel"
)

// DefaultDuration is the fallback for actions with no configured duration.
const DefaultDuration = 5 * time.Minute

// Service manages action cooldowns for users.
type Service interface {
	// Check reports whether the user's action is on cooldown and, if so,
	// how long remains.
	Check(ctx context.Context, userHandle, action string) (bool, time.Duration, error)

	// Enforce atomically checks the cooldown and, when clear, runs fn and
	// records the new timestamp. When fn fails the cooldown is not
	// recorded. Returns ErrOnCooldown when still cooling down.
	Enforce(ctx context.Context, userHandle, action string, fn func() error) error

	// Reset clears a cooldown record (admin tooling).
	Reset(ctx context.Context, userHandle, action string) error

	// GetLastUsed returns when the action was last performed, or nil if
	// never.
	GetLastUsed(ctx context.Context, userHandle, action string) (*time.Time, error)
}

// Config holds per-action cooldown durations.
type Config struct {
	// DevMode bypasses all cooldowns when true.
	DevMode bool

	// Durations overrides the defaults per action name.
	Durations map[string]time.Duration
}

// Duration returns the cooldown length for an action.
func (c *Config) Duration(action string) time.Duration {
	if d, ok := c.Durations[action]; ok {
		return d
	}
	switch action {
	case ActionEvent:
		return 10 * time.Minute
	case ActionDuel:
		return 15 * time.Minute
	default:
		return DefaultDuration
	}
}

// ErrOnCooldown is returned when an action is still cooling down. It
// satisfies errors.Is against domain.ErrOnCooldown.
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % 60
	if minutes > 0 {
		return fmt.Sprintf("you can %s again in %dm %ds", e.Action, minutes, seconds)
	}
	return fmt.Sprintf("you can %s again in %ds", e.Action, seconds)
}

func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

func remainingAfter(lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	elapsed := time.Since(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}
	return false, 0
}
