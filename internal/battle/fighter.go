package battle

import (
	"math"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// FighterIndex is a dense index into Battle.fighters. It is the single
// source of fighter identity: never reassigned, valid for the whole battle.
type FighterIndex int

// Composure is the fighter's physical stance.
type Composure struct {
	Kind   ComposureKind
	Meters int32 // height, only meaningful for ComposureOnAir
}

// ComposureKind enumerates stances.
type ComposureKind string

const (
	ComposureStanding ComposureKind = "standing"
	ComposureOnGround ComposureKind = "on_ground"
	ComposureOnAir    ComposureKind = "on_air"
)

// Standing is the default composure.
func Standing() Composure { return Composure{Kind: ComposureStanding} }

// OnGround is the knocked-down composure.
func OnGround() Composure { return Composure{Kind: ComposureOnGround} }

// OnAir is the airborne composure at the given height.
func OnAir(meters int32) Composure { return Composure{Kind: ComposureOnAir, Meters: meters} }

// Flag is a bit in the fighter's flag set.
type Flag uint32

const (
	FlagRiskingLife Flag = 1 << iota
	FlagGaveUp
	FlagCannotRegenEther
	FlagRiskLifeDecided
)

// Finisher is a lethal or knockout action available against a near-dead,
// defenseless target.
type Finisher struct {
	Name            string
	Fatal           bool
	FailProbability domain.Probability
}

// DefaultFinishers derives a fighter's finisher set from its weapon.
func DefaultFinishers(weapon *domain.Weapon) []Finisher {
	finishers := []Finisher{{Name: "Knockout", Fatal: false, FailProbability: 10}}
	if weapon != nil {
		p := weapon.Profile()
		if p.FatalFinisher {
			finishers = append(finishers, Finisher{
				Name:            p.Name + " Execution",
				Fatal:           true,
				FailProbability: 20,
			})
		}
	}
	return finishers
}

// Fighter is a runtime combatant. Battles own their fighters exclusively;
// nothing outside the running battle mutates one.
type Fighter struct {
	Index  FighterIndex
	Team   uint8
	Target FighterIndex

	Name string
	User string // platform handle, empty for scripted fighters

	Composure Composure
	Balance   int32   // 0..100
	Defense   int32   // >= 0, flat damage counters
	Overload  float32 // unbounded ether strain

	Vitality   domain.Attribute
	Resistance domain.Attribute
	Ether      domain.Attribute

	StrengthLevel     int32
	IntelligenceLevel int32

	// Power is the active fraction of Potential, both in [0, 1].
	Power     float64
	Potential float64
	PL        int64 // cached, recompute via RecalculatePL

	Weapon    *domain.Weapon
	Skills    []*FighterSkill
	Pacts     []Pact
	PactKinds []domain.PactKind

	Personalities  []domain.Personality
	Effects        []Effect
	Modifiers      ModifierList
	BodyImmunities domain.BodyImmunities

	Flags Flag

	Brain     Brain
	BrainKind *domain.BrainKind

	Finishers []Finisher

	Drop    *domain.DropReward
	BossTag string

	KilledBy   *FighterIndex
	DefeatedBy *FighterIndex
	IsDefeated bool
}

// HasFlag reports whether the flag bit is set.
func (f *Fighter) HasFlag(flag Flag) bool { return f.Flags&flag != 0 }

// SetFlag sets the flag bit.
func (f *Fighter) SetFlag(flag Flag) { f.Flags |= flag }

// ClearFlag clears the flag bit.
func (f *Fighter) ClearFlag(flag Flag) { f.Flags &^= flag }

// IsHuman reports whether a user drives this fighter.
func (f *Fighter) IsHuman() bool { return f.User != "" }

// Health is a synthetic display value combining the two health layers.
func (f *Fighter) Health() int32 {
	h := f.Resistance.Value + f.Vitality.Value
	if h < 0 {
		return 0
	}
	return h
}

// AddBalance shifts balance, clamped to [0, 100].
func (f *Fighter) AddBalance(amount int32) {
	f.Balance += amount
	if f.Balance > 100 {
		f.Balance = 100
	}
	if f.Balance < 0 {
		f.Balance = 0
	}
}

// Heal restores resistance first, then vitality, like rest does.
func (f *Fighter) Heal(amount int32) {
	if amount <= 0 {
		return
	}
	missing := f.Resistance.Max - f.Resistance.Value
	if missing >= amount {
		f.Resistance.Add(amount)
		return
	}
	f.Resistance.Refill()
	f.Vitality.Add(amount - missing)
}

// TakeRawDamage subtracts health directly, bypassing the damage pipeline.
// Resistance depletes first; spillover hits vitality regardless of the
// risk-life flag. Reserved for self-inflicted costs.
func (f *Fighter) TakeRawDamage(amount int32) {
	if amount <= 0 {
		return
	}
	if f.Resistance.Value >= amount {
		f.Resistance.Subtract(amount)
		return
	}
	spill := amount - f.Resistance.Value
	f.Resistance.Value = 0
	f.Vitality.Subtract(spill)
}

// HasEffect reports whether an effect of the kind is present.
func (f *Fighter) HasEffect(kind EffectKind) bool {
	_, ok := f.GetEffect(kind)
	return ok
}

// GetEffect returns the effect of the kind, when present.
func (f *Fighter) GetEffect(kind EffectKind) (Effect, bool) {
	for _, e := range f.Effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return Effect{}, false
}

// HasPersonality reports whether the fighter carries the trait.
func (f *Fighter) HasPersonality(p domain.Personality) bool {
	for _, have := range f.Personalities {
		if have == p {
			return true
		}
	}
	return false
}

// RegenerateAll refills every resource and clears status.
func (f *Fighter) RegenerateAll() {
	f.Vitality.Refill()
	f.Resistance.Refill()
	f.Ether.Refill()
	f.Balance = 100
	f.Defense = 0
	f.Effects = f.Effects[:0]
}

// levelMultiplier is the locked level curve: linear up to the knee at 25,
// sub-linear above it so doubled PL never doubles damage.
func levelMultiplier(level int32) float64 {
	if level <= 25 {
		return 1 + 0.08*float64(level)
	}
	return 3 + 0.02*float64(level-25)
}

// StrengthMultiplier scales physical output by strength and active power.
func (f *Fighter) StrengthMultiplier() float64 {
	return levelMultiplier(f.StrengthLevel) * (1 + f.Power)
}

// IntelligenceMultiplier scales ether output by intelligence and power.
func (f *Fighter) IntelligenceMultiplier() float64 {
	return levelMultiplier(f.IntelligenceLevel) * (1 + f.Power)
}

// MixedMultiplier blends the two multipliers by the given weights.
func (f *Fighter) MixedMultiplier(strengthWeight, intelligenceWeight float64) float64 {
	total := strengthWeight + intelligenceWeight
	if total == 0 {
		return 1
	}
	return (strengthWeight*f.StrengthMultiplier() + intelligenceWeight*f.IntelligenceMultiplier()) / total
}

// WeaponMultiplier is the carried weapon's damage factor, 1 when unarmed.
func (f *Fighter) WeaponMultiplier() float64 {
	if f.Weapon == nil {
		return 1
	}
	return f.Weapon.Profile().Multiplier
}

// PactDamageMultiplier folds in every pact's outgoing damage factor.
func (f *Fighter) PactDamageMultiplier() float64 {
	p := 1.0
	for _, pact := range f.Pacts {
		p *= pact.DamageMultiplier()
	}
	return p
}

// RecalculatePL refreshes the cached power level from current stats.
func (f *Fighter) RecalculatePL() {
	data := domain.FighterData{
		Vitality:          f.Vitality,
		Resistance:        f.Resistance,
		Ether:             f.Ether,
		StrengthLevel:     f.StrengthLevel,
		IntelligenceLevel: f.IntelligenceLevel,
	}
	for _, s := range f.Skills {
		data.SkillKinds = append(data.SkillKinds, s.Kind())
	}
	f.PL = data.PowerLevel()
}

// CanBeFinished reports whether the fighter is a legal finisher target:
// resistance depleted, almost no vitality, and no defense counters left.
func (f *Fighter) CanBeFinished() bool {
	if f.IsDefeated {
		return false
	}
	if f.Resistance.Value > 0 || f.Defense >= 1 {
		return false
	}
	return float64(f.Vitality.Value) <= 0.15*float64(f.Vitality.Max)
}

// EtherRegenPerRound is the per-round ether gain before flags are applied.
func (f *Fighter) EtherRegenPerRound() int32 {
	if f.HasFlag(FlagCannotRegenEther) {
		return 0
	}
	regen := float64(f.Ether.Max) * 0.05 * f.Modifiers.OverallEtherRegenMultiplier()
	if f.HasEffect(EffectExhausted) {
		regen *= 0.5
	}
	return int32(math.Round(regen))
}
