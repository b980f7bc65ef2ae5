package battle

import (
	"fmt"
	"math"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// DamageSpec describes one damage attempt before the pipeline prices it.
type DamageSpec struct {
	Culprit FighterIndex
	Target  FighterIndex
	Kind    domain.DamageKind
	Amount  int32

	// BalanceEffectiveness in [0, 100] is how hard the hit shakes the
	// target's footing.
	BalanceEffectiveness int32

	// Accuracy in [0, 255]; values above 100 always hit (self-damage).
	Accuracy int32

	// Effect, when set, attaches on hit.
	Effect *Effect
}

// DamageReport is the resolved outcome of one damage attempt.
type DamageReport struct {
	Culprit FighterIndex
	Target  FighterIndex
	Kind    domain.DamageKind
	Amount  int32
	Missed  bool
	Killed  bool
	// Knockout is set when resistance ran out without risk-life consent.
	Knockout bool
}

// waterExtinguishThreshold is the water damage needed to put out fire.
const waterExtinguishThreshold = 20

// ApplyDamage runs the full damage funnel: accuracy roll, modifiers,
// immunities, defense counters, health subtraction, effect attach, death
// or knockout, then the passive hooks.
func (b *Battle) ApplyDamage(spec DamageSpec) DamageReport {
	culprit := b.Fighter(spec.Culprit)
	target := b.Fighter(spec.Target)

	report := DamageReport{
		Culprit: spec.Culprit,
		Target:  spec.Target,
		Kind:    spec.Kind,
	}

	// 1. Culprit pacts reshape the specifier first, so accuracy tweaks
	// still matter to the roll.
	for _, pact := range culprit.Pacts {
		pact.ModifyDamage(&spec)
	}

	// 2. Accuracy roll. Above 100 means guaranteed (self-damage paths).
	if spec.Accuracy <= 100 && int32(b.rng.Intn(100)) >= spec.Accuracy {
		report.Missed = true
		b.EmitMessage(fmt.Sprintf("%s missed %s!", culprit.Name, target.Name))
		b.fireDamageMissHooks(spec)
		return report
	}

	value := float64(spec.Amount)
	value *= culprit.Modifiers.OverallDmgMultiplier() * culprit.PactDamageMultiplier()
	value *= target.Modifiers.OverallDefenseMultiplier()

	// 3. Body immunities: every category the kind implies, clamped.
	for _, immunity := range spec.Kind.Immunities() {
		value *= 1 - target.BodyImmunities.Resistance(immunity)
	}

	// Wet bodies conduct: electric damage is amplified.
	if spec.Kind == domain.DamageKindElectric && target.HasEffect(EffectWet) {
		value *= 1.5
	}

	// 4. Defense counters soak a flat amount, one counter per hit.
	if target.Defense > 0 {
		value -= 10 * float64(target.Defense)
		target.Defense--
		if value < 1 {
			value = 1
		}
	}

	// 5. An exposed guard takes every hit harder.
	if target.HasEffect(EffectExposedGuard) {
		value *= 1.2
	}

	final := int32(math.Round(value))
	if final < 1 {
		final = 1
	}
	report.Amount = final

	// 6. Balance break and possible knockdown.
	if spec.BalanceEffectiveness > 0 && spec.Culprit != spec.Target {
		target.AddBalance(-spec.BalanceEffectiveness)
		if spec.BalanceEffectiveness >= 20 &&
			target.Balance < 20 &&
			target.Resistance.Fraction() <= 0.3 &&
			target.Composure.Kind == ComposureStanding {
			target.Composure = OnGround()
			b.EmitMessage(fmt.Sprintf("%s was knocked to the ground!", target.Name))
		}
	}

	// 7. Two-layer health. Spillover touches vitality only with consent.
	target.Resistance.SubtractUnchecked(final)
	if target.Resistance.Value <= 0 {
		if target.HasFlag(FlagRiskingLife) {
			spill := -target.Resistance.Value
			target.Resistance.Value = 0
			if spill > 0 {
				target.Vitality.Subtract(spill)
			}
			if target.Vitality.Value <= 0 {
				report.Killed = true
				target.IsDefeated = true
				idx := spec.Culprit
				target.KilledBy = &idx
			}
		} else {
			target.Resistance.Value = 0
			report.Knockout = true
			target.IsDefeated = true
			idx := spec.Culprit
			target.DefeatedBy = &idx
		}
	}

	b.EmitMessage(fmt.Sprintf("%s took %d %s damage from %s.",
		target.Name, final, spec.Kind, culprit.Name))

	// 8. Water puts out any fire on the target.
	if spec.Kind == domain.DamageKindWater && final >= waterExtinguishThreshold {
		if b.clearEffect(spec.Target, EffectBurning) || b.clearEffect(spec.Target, EffectFlaming) {
			b.EmitMessage(fmt.Sprintf("The flames on %s were extinguished!", target.Name))
		}
	}

	// 9. Cursed attackers pay for the damage they deal.
	if curse, ok := culprit.GetEffect(EffectCurse); ok && spec.Culprit != spec.Target {
		reflect := int32(math.Round(float64(final) * float64(curse.Amount) / 200))
		if reflect > 0 {
			b.applyReflectedDamage(spec.Culprit, curse.Culprit, reflect)
		}
	}

	// 10. On-hit effect attach.
	if spec.Effect != nil && !report.Missed {
		b.ApplyEffect(spec.Target, *spec.Effect)
	}

	b.fireDamageHooks(&report)
	return report
}

// applyReflectedDamage subtracts health from the cursed attacker without
// re-entering the pipeline, so curses cannot chain off each other.
func (b *Battle) applyReflectedDamage(victim, creditedTo FighterIndex, amount int32) {
	f := b.Fighter(victim)
	f.Resistance.SubtractUnchecked(amount)
	if f.Resistance.Value <= 0 {
		if f.HasFlag(FlagRiskingLife) {
			spill := -f.Resistance.Value
			f.Resistance.Value = 0
			f.Vitality.Subtract(spill)
			if f.Vitality.Value <= 0 {
				f.IsDefeated = true
				idx := creditedTo
				f.KilledBy = &idx
			}
		} else {
			f.Resistance.Value = 0
			f.IsDefeated = true
			idx := creditedTo
			f.DefeatedBy = &idx
		}
	}
	b.EmitMessage(fmt.Sprintf("%s suffered %d curse damage!", f.Name, amount))
}

// fireDamageHooks runs the passive on-damage hooks in contract order:
// culprit skills, target skills, culprit pacts, target pacts.
func (b *Battle) fireDamageHooks(report *DamageReport) {
	culprit := b.Fighter(report.Culprit)
	target := b.Fighter(report.Target)

	culpritAPI := b.apiFor(report.Culprit, report.Target)
	targetAPI := b.apiFor(report.Target, report.Culprit)

	for _, s := range culprit.Skills {
		s.NotifyDamage(culpritAPI, report)
	}
	if report.Culprit != report.Target {
		for _, s := range target.Skills {
			s.NotifyDamage(targetAPI, report)
		}
	}
	for _, p := range culprit.Pacts {
		if h, ok := p.(PactDamageHook); ok {
			h.OnDamage(culpritAPI, report)
		}
	}
	if report.Culprit != report.Target {
		for _, p := range target.Pacts {
			if h, ok := p.(PactDamageHook); ok {
				h.OnDamage(targetAPI, report)
			}
		}
	}
}

// fireDamageMissHooks mirrors fireDamageHooks for misses.
func (b *Battle) fireDamageMissHooks(spec DamageSpec) {
	culprit := b.Fighter(spec.Culprit)
	target := b.Fighter(spec.Target)

	culpritAPI := b.apiFor(spec.Culprit, spec.Target)
	targetAPI := b.apiFor(spec.Target, spec.Culprit)

	for _, s := range culprit.Skills {
		s.NotifyDamageMiss(culpritAPI, spec)
	}
	if spec.Culprit != spec.Target {
		for _, s := range target.Skills {
			s.NotifyDamageMiss(targetAPI, spec)
		}
	}
}

// ApplyEffect attaches an effect, merging additively with any existing
// effect of the same kind up to the per-kind ceiling. Immunities reduce or
// block the applied amount.
func (b *Battle) ApplyEffect(targetIdx FighterIndex, effect Effect) {
	target := b.Fighter(targetIdx)

	if target.Modifiers.ImmuneToEffect(effect.Kind) {
		return
	}
	if immunity, ok := effect.Kind.AppliedImmunity(); ok {
		resist := target.BodyImmunities.Resistance(immunity)
		if resist >= 1 {
			return
		}
		if !effect.Kind.IsDiscrete() {
			effect.Amount = int32(math.Round(float64(effect.Amount) * (1 - resist)))
			if effect.Amount <= 0 {
				return
			}
		}
	}

	switch effect.Kind {
	case EffectWet:
		// Water negates fire on application.
		if b.clearEffect(targetIdx, EffectBurning) || b.clearEffect(targetIdx, EffectFlaming) {
			b.EmitMessage(fmt.Sprintf("The flames on %s fizzled out.", target.Name))
		}
	case EffectBurning:
		// Burning and Flaming are mutually exclusive: keep the stronger.
		if flaming, ok := target.GetEffect(EffectFlaming); ok {
			if flaming.Amount >= effect.Amount {
				return
			}
			b.clearEffect(targetIdx, EffectFlaming)
		}
		if target.HasEffect(EffectWet) {
			return
		}
	case EffectFlaming:
		if burning, ok := target.GetEffect(EffectBurning); ok {
			if burning.Amount > effect.Amount {
				return
			}
			b.clearEffect(targetIdx, EffectBurning)
		}
		if target.HasEffect(EffectWet) {
			return
		}
	}

	ceiling := effect.Kind.Ceiling()
	for i := range target.Effects {
		if target.Effects[i].Kind == effect.Kind {
			target.Effects[i].Amount += effect.Amount
			if target.Effects[i].Amount > ceiling {
				target.Effects[i].Amount = ceiling
			}
			target.Effects[i].Culprit = effect.Culprit
			return
		}
	}
	if effect.Amount > ceiling {
		effect.Amount = ceiling
	}
	target.Effects = append(target.Effects, effect)
}

// RemoveEffect decrements the effect's amount and drops it at zero.
func (b *Battle) RemoveEffect(targetIdx FighterIndex, kind EffectKind, amount int32) {
	target := b.Fighter(targetIdx)
	for i := range target.Effects {
		if target.Effects[i].Kind == kind {
			target.Effects[i].Amount -= amount
			if target.Effects[i].Amount <= 0 {
				target.Effects = append(target.Effects[:i], target.Effects[i+1:]...)
			}
			return
		}
	}
}

// clearEffect removes the effect entirely, reporting whether it existed.
func (b *Battle) clearEffect(targetIdx FighterIndex, kind EffectKind) bool {
	target := b.Fighter(targetIdx)
	for i := range target.Effects {
		if target.Effects[i].Kind == kind {
			target.Effects = append(target.Effects[:i], target.Effects[i+1:]...)
			return true
		}
	}
	return false
}
