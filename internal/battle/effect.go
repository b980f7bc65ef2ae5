package battle

import (
	"github.com/etheris-rpg/etheris/internal/domain"
)

// EffectKind identifies a status effect. The string values are part of the
// persisted wire format.
type EffectKind string

const (
	EffectBleeding  EffectKind = "bleeding"
	EffectPoisoned  EffectKind = "poisoned"
	EffectBurning   EffectKind = "burning"
	EffectFlaming   EffectKind = "flaming"
	EffectIce       EffectKind = "ice"
	EffectFrozen    EffectKind = "frozen"
	EffectShocked   EffectKind = "shocked"
	EffectWet       EffectKind = "wet"
	EffectParalyzed EffectKind = "paralyzed"
	EffectCurse     EffectKind = "curse"
	EffectExhausted EffectKind = "exhausted"
	// ExposedGuard multiplies incoming damage while active. The original
	// called this "low protection"; the behavior is kept, the name is not.
	EffectExposedGuard EffectKind = "exposed_guard"
)

// Effect is a status on a fighter. Amount is a magnitude for continuous
// effects and a turn countdown for discrete ones.
type Effect struct {
	Kind    EffectKind
	Amount  int32
	Culprit FighterIndex
}

// IsDiscrete reports whether Amount counts turns instead of magnitude.
func (k EffectKind) IsDiscrete() bool {
	switch k {
	case EffectFrozen, EffectParalyzed, EffectExposedGuard, EffectExhausted:
		return true
	default:
		return false
	}
}

// Ceiling returns the per-kind cap magnitude (or duration) merges clamp to.
func (k EffectKind) Ceiling() int32 {
	switch k {
	case EffectFrozen, EffectParalyzed:
		return 4
	case EffectExposedGuard, EffectExhausted:
		return 5
	default:
		return 100
	}
}

// AppliedImmunity returns the body-immunity category that can resist the
// effect being attached, when one exists.
func (k EffectKind) AppliedImmunity() (domain.ImmunityKind, bool) {
	switch k {
	case EffectBleeding:
		return domain.ImmunityBleeding, true
	case EffectPoisoned:
		return domain.ImmunityPoison, true
	case EffectBurning, EffectFlaming:
		return domain.ImmunityFire, true
	case EffectIce, EffectFrozen:
		return domain.ImmunityIce, true
	case EffectShocked, EffectParalyzed:
		return domain.ImmunityElectric, true
	case EffectWet:
		return domain.ImmunityWater, true
	default:
		return "", false
	}
}

// NegativeEffectKinds lists the kinds Refresh-style skills may strip.
func NegativeEffectKinds() []EffectKind {
	return []EffectKind{
		EffectBleeding, EffectPoisoned, EffectBurning, EffectFlaming,
		EffectIce, EffectShocked, EffectCurse, EffectExposedGuard,
	}
}
