package battle

import (
	"math/rand"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// API is the handle skills, pacts and brains act through. It pins the
// acting fighter and its target so hook code never tracks raw indices.
type API struct {
	battle  *Battle
	fighter FighterIndex
	target  FighterIndex
}

func (b *Battle) apiFor(fighter, target FighterIndex) *API {
	return &API{battle: b, fighter: fighter, target: target}
}

// NewAPI builds a handle for the fighter against its current target.
func (b *Battle) NewAPI(fighter FighterIndex) *API {
	return b.apiFor(fighter, b.Fighter(fighter).Target)
}

// Battle returns the underlying battle.
func (a *API) Battle() *Battle { return a.battle }

// FighterIndex returns the acting fighter's index.
func (a *API) FighterIndex() FighterIndex { return a.fighter }

// TargetIndex returns the pinned target's index.
func (a *API) TargetIndex() FighterIndex { return a.target }

// Fighter returns the acting fighter.
func (a *API) Fighter() *Fighter { return a.battle.Fighter(a.fighter) }

// Target returns the pinned target.
func (a *API) Target() *Fighter { return a.battle.Fighter(a.target) }

// WithTarget returns a handle for the same fighter against another target.
func (a *API) WithTarget(target FighterIndex) *API {
	return a.battle.apiFor(a.fighter, target)
}

// RNG exposes the battle RNG so all rolls stay deterministic per seed.
func (a *API) RNG() *rand.Rand { return a.battle.rng }

// EmitMessage appends to the current turn's message buffer.
func (a *API) EmitMessage(msg string) { a.battle.EmitMessage(msg) }

// DeferMessage pushes into the next turn's buffer.
func (a *API) DeferMessage(msg string) { a.battle.DeferMessage(msg) }

// EmitRandomMessage picks one variant with the battle RNG.
func (a *API) EmitRandomMessage(variants ...string) {
	if len(variants) == 0 {
		return
	}
	a.EmitMessage(variants[a.battle.rng.Intn(len(variants))])
}

// ApplyDamage routes through the battle damage pipeline.
func (a *API) ApplyDamage(spec DamageSpec) DamageReport {
	return a.battle.ApplyDamage(spec)
}

// ApplyEffect attaches an effect to a fighter.
func (a *API) ApplyEffect(target FighterIndex, effect Effect) {
	a.battle.ApplyEffect(target, effect)
}

// RemoveEffect reduces an effect on a fighter.
func (a *API) RemoveEffect(target FighterIndex, kind EffectKind, amount int32) {
	a.battle.RemoveEffect(target, kind, amount)
}

// AddOverload raises the acting fighter's ether strain.
func (a *API) AddOverload(amount float32) {
	a.Fighter().Overload += amount
}

// FighterAllies returns the indices of alive fighters sharing the acting
// fighter's team, excluding itself.
func (a *API) FighterAllies() []FighterIndex {
	return a.battle.TeamAllies(a.fighter)
}

// FighterEnemies returns the indices of alive fighters on other teams.
func (a *API) FighterEnemies() []FighterIndex {
	return a.battle.TeamEnemies(a.fighter)
}

// Chance rolls a probability on the battle RNG.
func (a *API) Chance(p domain.Probability) bool {
	return p.Passes(a.battle.rng)
}
