// Package controller runs battles. The battle itself is a pure state
// machine; the controller is the shell that pairs it with an input source
// (platform components for humans, the fighter's brain for everyone else),
// renders turn history, and settles the outcome.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/logger"
	"github.com/etheris-rpg/etheris/internal/metrics"
)

// Renderer pushes a closed turn to the message surface. Render failures are
// transport-transient: the controller logs them and keeps the battle moving.
type Renderer interface {
	RenderTurn(ctx context.Context, b *battle.Battle, record battle.TurnRecord) error
}

// NopRenderer discards turn records. Used by tests and dry runs.
type NopRenderer struct{}

func (NopRenderer) RenderTurn(context.Context, *battle.Battle, battle.TurnRecord) error {
	return nil
}

// Options tune the control loop. Zero values pick sane defaults.
type Options struct {
	// ActionTimeout bounds the wait for a human fighter's action.
	// Zero means wait forever.
	ActionTimeout time.Duration
	// StrategicTimeout bounds slower prompts (risk-life, team joins).
	StrategicTimeout time.Duration
	// MaxReinputs bounds consecutive re-prompts before the turn is
	// forfeited with Nothing.
	MaxReinputs int
	// MaxTurns aborts runaway battles. Zero means no cap.
	MaxTurns int
}

const (
	defaultMaxReinputs = 3
	defaultMaxTurns    = 1000
)

// Controller owns one battle for the duration of its run. All battle
// mutation happens under its mutex, so intrusion requests from other
// goroutines are safe while the loop waits on a provider.
type Controller struct {
	mu       sync.Mutex
	battle   *battle.Battle
	provider InputProvider
	renderer Renderer
	opts     Options
}

// New wires a controller around a constructed battle. A nil renderer is
// replaced with NopRenderer.
func New(b *battle.Battle, provider InputProvider, renderer Renderer, opts Options) *Controller {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	if opts.MaxReinputs <= 0 {
		opts.MaxReinputs = defaultMaxReinputs
	}
	if opts.MaxTurns < 0 {
		opts.MaxTurns = 0
	}
	if opts.MaxTurns == 0 {
		opts.MaxTurns = defaultMaxTurns
	}
	return &Controller{
		battle:   b,
		provider: provider,
		renderer: renderer,
		opts:     opts,
	}
}

// Battle exposes the underlying battle. Callers outside the run loop must
// treat it as read-only.
func (c *Controller) Battle() *battle.Battle { return c.battle }

// Run drives the battle to completion and settles the result. It returns
// early only when ctx dies or the turn cap trips.
func (c *Controller) Run(ctx context.Context) (*Result, error) {
	ctx = logger.WithBattleID(ctx, c.battle.ID.String())
	log := logger.FromContext(ctx)

	metrics.BattlesStarted.WithLabelValues(string(c.battle.Region)).Inc()
	metrics.BattlesActive.Inc()
	defer metrics.BattlesActive.Dec()

	log.Info("battle started",
		"region", c.battle.Region,
		"fighters", len(c.battle.Fighters()),
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.battle.State().Kind == battle.StateEnded {
			c.mu.Unlock()
			break
		}
		if c.battle.TurnCounter() >= c.opts.MaxTurns {
			c.mu.Unlock()
			return nil, fmt.Errorf("battle %s exceeded %d turns: %w",
				c.battle.ID, c.opts.MaxTurns, domain.ErrBattleEnded)
		}

		idx := c.battle.CurrentFighter()
		record, err := c.playTurn(ctx, idx)
		c.mu.Unlock()
		if err != nil {
			return nil, err
		}

		if rerr := c.renderer.RenderTurn(ctx, c.battle, record); rerr != nil {
			log.Warn("turn render failed", "turn", record.Turn, "error", rerr)
		}
	}

	result := buildResult(c.battle)
	metrics.BattlesCompleted.
		WithLabelValues(string(c.battle.Region), result.outcomeLabel()).
		Inc()
	metrics.BattleTurns.Observe(float64(result.Turns))

	log.Info("battle ended",
		"turns", result.Turns,
		"winner_team", result.WinnerTeam,
		"winners", len(result.Winners),
	)
	return result, nil
}

// playTurn resolves one fighter's action and closes it. Called with the
// mutex held; it releases the lock around provider waits.
func (c *Controller) playTurn(ctx context.Context, idx battle.FighterIndex) (battle.TurnRecord, error) {
	f := c.battle.Fighter(idx)

	if reason := c.battle.MustSkip(idx); reason != battle.SkipNone {
		c.emitSkipped(f, reason)
		return c.battle.CloseAction(), nil
	}

	if c.needsRiskPrompt(f) {
		if err := c.promptRiskLife(ctx, idx); err != nil {
			return battle.TurnRecord{}, err
		}
	}

	input, err := c.produceInput(ctx, idx)
	if err != nil {
		return battle.TurnRecord{}, err
	}

	for attempt := 0; ; attempt++ {
		res, execErr := c.battle.ExecuteInput(idx, input)
		if execErr != nil && errors.Is(execErr, domain.ErrBattleEnded) {
			return battle.TurnRecord{}, execErr
		}
		if res != battle.ResultReinput {
			break
		}
		if execErr != nil {
			c.battle.EmitMessage(fmt.Sprintf("%s hesitates: %s.", f.Name, execErr))
		}
		if attempt >= c.opts.MaxReinputs {
			input = battle.Nothing()
			continue
		}
		input, err = c.produceInput(ctx, idx)
		if err != nil {
			return battle.TurnRecord{}, err
		}
	}

	return c.battle.CloseAction(), nil
}

func (c *Controller) emitSkipped(f *battle.Fighter, reason battle.SkipReason) {
	switch reason {
	case battle.SkipFrozen:
		c.battle.EmitMessage(fmt.Sprintf("%s is frozen solid and cannot move.", f.Name))
	case battle.SkipParalyzed:
		c.battle.EmitMessage(fmt.Sprintf("%s is paralyzed and loses the turn.", f.Name))
	case battle.SkipGaveUp:
		c.battle.EmitMessage(fmt.Sprintf("%s has given up.", f.Name))
	}
}

// produceInput gets the fighter's next action: brains answer inline; humans
// are awaited without the lock, under the action timeout. A timed-out or
// transport-failed prompt degrades to Nothing so the battle keeps moving.
func (c *Controller) produceInput(ctx context.Context, idx battle.FighterIndex) (battle.Input, error) {
	f := c.battle.Fighter(idx)
	api := c.battle.NewAPI(idx)

	if !f.IsHuman() && f.Brain != nil {
		return f.Brain.SelectInput(api), nil
	}

	waitCtx := ctx
	cancel := func() {}
	if c.opts.ActionTimeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, c.opts.ActionTimeout)
	}

	c.mu.Unlock()
	input, err := c.provider.NextInput(waitCtx, api)
	cancel()
	c.mu.Lock()

	if err != nil {
		if ctx.Err() != nil {
			return battle.Input{}, ctx.Err()
		}
		if errors.Is(err, domain.ErrInputTimeout) || errors.Is(err, context.DeadlineExceeded) {
			metrics.InputTimeouts.Inc()
		} else {
			logger.FromContext(ctx).Warn("input prompt failed",
				"fighter", f.Name, "error", err)
		}
		c.battle.EmitMessage(fmt.Sprintf("%s stands idle.", f.Name))
		return battle.Nothing(), nil
	}
	return input, nil
}

// needsRiskPrompt reports whether the fighter must now choose between
// bowing out at zero resistance and risking actual death. Asked once,
// before resistance runs out entirely.
func (c *Controller) needsRiskPrompt(f *battle.Fighter) bool {
	return c.battle.Settings.IsRiskingLifeAllowed &&
		!f.HasFlag(battle.FlagRiskLifeDecided) &&
		f.Resistance.Fraction() <= 0.25
}

func (c *Controller) promptRiskLife(ctx context.Context, idx battle.FighterIndex) error {
	f := c.battle.Fighter(idx)
	api := c.battle.NewAPI(idx)

	var risk bool
	if !f.IsHuman() && f.Brain != nil {
		risk = f.Brain.ShouldRiskLife(api)
	} else {
		waitCtx := ctx
		cancel := func() {}
		if c.opts.StrategicTimeout > 0 {
			waitCtx, cancel = context.WithTimeout(ctx, c.opts.StrategicTimeout)
		}
		c.mu.Unlock()
		decided, err := c.provider.DecideRiskLife(waitCtx, api)
		cancel()
		c.mu.Lock()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			decided = false
		}
		risk = decided
	}

	f.SetFlag(battle.FlagRiskLifeDecided)
	if risk {
		f.SetFlag(battle.FlagRiskingLife)
		c.battle.EmitMessage(fmt.Sprintf("%s refuses to fall and puts their life on the line!", f.Name))
	}
	return nil
}

// RequestIntrusion admits a third party into the running battle on a fresh
// team. Region and already-fighting checks belong to the caller; the
// controller enforces only the battle's own cap and state.
func (c *Controller) RequestIntrusion(data domain.FighterData) (battle.FighterIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.battle.State().Kind == battle.StateEnded {
		return 0, domain.ErrBattleEnded
	}
	data.Team = c.battle.NextUnusedTeam()
	idx, err := c.battle.JoinIntruder(data)
	if err != nil {
		return 0, err
	}
	metrics.BattleIntruders.Inc()
	return idx, nil
}

// RequestTeamJoin admits a third party onto an existing team, subject to
// that team's approval: the team's brains vote when it is AI-only, humans
// are asked through the provider.
func (c *Controller) RequestTeamJoin(ctx context.Context, team uint8, data domain.FighterData) (battle.FighterIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.battle.State().Kind == battle.StateEnded {
		return 0, domain.ErrBattleEnded
	}

	var member *battle.Fighter
	for _, idx := range c.battle.AliveFighters() {
		f := c.battle.Fighter(idx)
		if f.Team == team {
			member = f
			if f.IsHuman() {
				break
			}
		}
	}
	if member == nil {
		return 0, domain.ErrInvalidTarget
	}

	api := c.battle.NewAPI(member.Index)
	approved := false
	if member.IsHuman() {
		waitCtx := ctx
		cancel := func() {}
		if c.opts.StrategicTimeout > 0 {
			waitCtx, cancel = context.WithTimeout(ctx, c.opts.StrategicTimeout)
		}
		c.mu.Unlock()
		ok, err := c.provider.ApproveTeamJoin(waitCtx, api, data)
		cancel()
		c.mu.Lock()
		if err == nil {
			approved = ok
		}
	} else if member.Brain != nil {
		approved = member.Brain.AllowFighterToEnterTeam(api, data)
	}
	if !approved {
		return 0, domain.ErrInvalidInput
	}

	data.Team = team
	return c.battle.JoinFighter(data)
}
