package cooldown_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/cooldown"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func TestConfigDuration(t *testing.T) {
	cfg := cooldown.Config{}
	assert.Equal(t, 10*time.Minute, cfg.Duration(cooldown.ActionEvent))
	assert.Equal(t, 15*time.Minute, cfg.Duration(cooldown.ActionDuel))
	assert.Equal(t, cooldown.DefaultDuration, cfg.Duration("unknown"))

	cfg.Durations = map[string]time.Duration{cooldown.ActionEvent: time.Second}
	assert.Equal(t, time.Second, cfg.Duration(cooldown.ActionEvent))
}

func TestErrOnCooldownFormatting(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "event", Remaining: 2*time.Minute + 30*time.Second}
	assert.Equal(t, "you can event again in 2m 30s", err.Error())

	err = cooldown.ErrOnCooldown{Action: "duel", Remaining: 45 * time.Second}
	assert.Equal(t, "you can duel again in 45s", err.Error())
}

func TestErrOnCooldownIs(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "event", Remaining: time.Minute}
	assert.ErrorIs(t, err, domain.ErrOnCooldown)
	assert.ErrorIs(t, err, cooldown.ErrOnCooldown{})
	assert.False(t, errors.Is(err, errors.New("other")))
}

func TestMemoryEnforce(t *testing.T) {
	ctx := context.Background()
	svc := cooldown.NewMemoryService(cooldown.Config{
		Durations: map[string]time.Duration{cooldown.ActionEvent: time.Hour},
	})

	calls := 0
	require.NoError(t, svc.Enforce(ctx, "alice", cooldown.ActionEvent, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)

	err := svc.Enforce(ctx, "alice", cooldown.ActionEvent, func() error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrOnCooldown)
	assert.Equal(t, 1, calls)

	onCooldown, remaining, err := svc.Check(ctx, "alice", cooldown.ActionEvent)
	require.NoError(t, err)
	assert.True(t, onCooldown)
	assert.Greater(t, remaining, 59*time.Minute)

	// Other users and actions are unaffected.
	onCooldown, _, err = svc.Check(ctx, "bob", cooldown.ActionEvent)
	require.NoError(t, err)
	assert.False(t, onCooldown)

	require.NoError(t, svc.Enforce(ctx, "alice", cooldown.ActionDuel, func() error { return nil }))
}

func TestMemoryEnforceFailedActionNotRecorded(t *testing.T) {
	ctx := context.Background()
	svc := cooldown.NewMemoryService(cooldown.Config{})

	boom := errors.New("boom")
	err := svc.Enforce(ctx, "alice", cooldown.ActionEvent, func() error { return boom })
	assert.ErrorIs(t, err, boom)

	last, err := svc.GetLastUsed(ctx, "alice", cooldown.ActionEvent)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestMemoryReset(t *testing.T) {
	ctx := context.Background()
	svc := cooldown.NewMemoryService(cooldown.Config{})

	require.NoError(t, svc.Enforce(ctx, "alice", cooldown.ActionEvent, func() error { return nil }))
	require.NoError(t, svc.Reset(ctx, "alice", cooldown.ActionEvent))

	onCooldown, _, err := svc.Check(ctx, "alice", cooldown.ActionEvent)
	require.NoError(t, err)
	assert.False(t, onCooldown)
}

func TestDevModeBypassesCooldown(t *testing.T) {
	ctx := context.Background()
	svc := cooldown.NewMemoryService(cooldown.Config{DevMode: true})

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Enforce(ctx, "alice", cooldown.ActionEvent, func() error { return nil }))
	}
}
