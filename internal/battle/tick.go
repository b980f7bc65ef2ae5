package battle

import (
	"fmt"
	"math"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// tickActionEffects runs the afflicted fighter's own end-of-action ticks:
// magnitude effects deal their damage and decay, and the turn-skipping
// effects count down.
func (b *Battle) tickActionEffects(index FighterIndex) {
	f := b.Fighter(index)

	for _, effect := range append([]Effect(nil), f.Effects...) {
		if !f.HasEffect(effect.Kind) || f.IsDefeated {
			continue
		}
		switch effect.Kind {
		case EffectBleeding:
			b.tickMagnitude(index, effect, max32(1, effect.Amount/20), 1,
				domain.DamageKindSpecialPhysical, "%s is bleeding out.")
		case EffectBurning:
			amount := max32(1, effect.Amount/12)
			b.tickMagnitude(index, effect, amount, amount,
				domain.DamageKindFire, "%s is scorched by the flames.")
		case EffectFlaming:
			amount := max32(2, effect.Amount/8)
			b.tickMagnitude(index, effect, amount, amount,
				domain.DamageKindFire, "%s burns inside a blaze!")
		case EffectShocked:
			damage := max32(1, effect.Amount/15)
			if f.HasEffect(EffectWet) {
				damage = int32(math.Round(float64(damage) * 1.5))
			}
			b.tickMagnitude(index, effect, damage, max32(1, effect.Amount/15),
				domain.DamageKindElectric, "%s convulses with electricity.")
			if f.HasEffect(EffectWet) && b.rng.Intn(100) < 20 && !f.HasEffect(EffectParalyzed) {
				b.ApplyEffect(index, Effect{Kind: EffectParalyzed, Amount: 1, Culprit: effect.Culprit})
				b.EmitMessage(fmt.Sprintf("%s's soaked body seized up!", f.Name))
			}
		case EffectPoisoned:
			// Poison damage ignores the pipeline: no immunities, no defense.
			damage := max32(1, effect.Amount/15)
			f.TakeRawDamage(damage)
			b.EmitMessage(fmt.Sprintf("The poison eats away at %s (%d).", f.Name, damage))
			b.RemoveEffect(index, EffectPoisoned, max32(1, effect.Amount/15))
			b.markDefeatedByEffect(index, effect.Culprit)
		case EffectCurse:
			// Curses fade on their own; the reflection happens on attack.
			b.RemoveEffect(index, EffectCurse, max32(1, effect.Amount/10))
		case EffectFrozen:
			b.RemoveEffect(index, EffectFrozen, 1)
			if !f.HasEffect(EffectFrozen) {
				b.EmitMessage(fmt.Sprintf("%s broke out of the ice.", f.Name))
			}
		case EffectParalyzed:
			b.RemoveEffect(index, EffectParalyzed, 1)
			if !f.HasEffect(EffectParalyzed) {
				b.EmitMessage(fmt.Sprintf("%s can move again.", f.Name))
			}
		}
	}
}

// tickMagnitude applies one magnitude effect's tick through the damage
// pipeline, credited to whoever inflicted it, then decays the effect.
func (b *Battle) tickMagnitude(index FighterIndex, effect Effect, damage, decay int32, kind domain.DamageKind, format string) {
	f := b.Fighter(index)
	b.EmitMessage(fmt.Sprintf(format, f.Name))
	b.ApplyDamage(DamageSpec{
		Culprit:  effect.Culprit,
		Target:   index,
		Kind:     kind,
		Amount:   damage,
		Accuracy: 255, // ticks never miss
	})
	b.RemoveEffect(index, effect.Kind, decay)
}

// markDefeatedByEffect records the defeat cause when raw effect damage
// finished a fighter off.
func (b *Battle) markDefeatedByEffect(index, culprit FighterIndex) {
	f := b.Fighter(index)
	if f.IsDefeated || f.Vitality.Value > 0 {
		if f.Resistance.Value <= 0 && f.Vitality.Value > 0 && !f.HasFlag(FlagRiskingLife) && !f.IsDefeated {
			f.IsDefeated = true
			c := culprit
			f.DefeatedBy = &c
		}
		return
	}
	f.IsDefeated = true
	c := culprit
	f.KilledBy = &c
}

// tickRoundEffects runs the end-of-round effect transitions for one
// fighter: ice may set, rigid guards recover, wet bodies dry off.
func (b *Battle) tickRoundEffects(index FighterIndex) {
	f := b.Fighter(index)

	if ice, ok := f.GetEffect(EffectIce); ok && ice.Amount >= 70 {
		if b.rng.Intn(100) < 50 && !f.HasEffect(EffectFrozen) {
			b.ApplyEffect(index, Effect{
				Kind:    EffectFrozen,
				Amount:  1 + b.rng.Int31n(2),
				Culprit: ice.Culprit,
			})
			b.EmitMessage(fmt.Sprintf("%s froze solid!", f.Name))
		}
		b.RemoveEffect(index, EffectIce, 50)
	}

	if wet, ok := f.GetEffect(EffectWet); ok {
		b.RemoveEffect(index, EffectWet, min32(10, wet.Amount))
	}

	if f.HasEffect(EffectExposedGuard) {
		b.RemoveEffect(index, EffectExposedGuard, 1)
	}
	if f.HasEffect(EffectExhausted) {
		b.RemoveEffect(index, EffectExhausted, 1)
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
