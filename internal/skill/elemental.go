package skill

import (
	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// FlameBall hurls a condensed fireball that sets the target alight.
type FlameBall struct{}

func (s *FlameBall) Kind() domain.SkillKind { return domain.SkillFlameBall }

func (s *FlameBall) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Flame Ball", "A condensed sphere of fire.", 12)
}

func (s *FlameBall) CanUse(*battle.API) bool { return true }

func (s *FlameBall) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Target().HasEffect(battle.EffectWet) {
		return domain.Never
	}
	return domain.Medium
}

func (s *FlameBall) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *FlameBall) OnUse(api *battle.API) error {
	api.ApplyDamage(battle.DamageSpec{
		Culprit:  api.FighterIndex(),
		Target:   api.TargetIndex(),
		Kind:     domain.DamageKindFire,
		Amount:   roll(api.RNG(), 10, 8, api.Fighter().IntelligenceMultiplier()),
		Accuracy: 88,
		Effect: &battle.Effect{
			Kind:    battle.EffectBurning,
			Amount:  25 + api.RNG().Int31n(15),
			Culprit: api.FighterIndex(),
		},
	})
	return nil
}

// IcyShot coats the target in ice that may later freeze solid.
type IcyShot struct{}

func (s *IcyShot) Kind() domain.SkillKind { return domain.SkillIcyShot }

func (s *IcyShot) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Icy Shot", "A freezing bolt that sticks to the body.", 12)
}

func (s *IcyShot) CanUse(*battle.API) bool { return true }

func (s *IcyShot) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Target().HasEffect(battle.EffectFrozen) {
		return domain.Never
	}
	return domain.Medium
}

func (s *IcyShot) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *IcyShot) OnUse(api *battle.API) error {
	api.ApplyDamage(battle.DamageSpec{
		Culprit:  api.FighterIndex(),
		Target:   api.TargetIndex(),
		Kind:     domain.DamageKindIce,
		Amount:   roll(api.RNG(), 8, 6, api.Fighter().IntelligenceMultiplier()),
		Accuracy: 90,
		Effect: &battle.Effect{
			Kind:    battle.EffectIce,
			Amount:  30 + api.RNG().Int31n(20),
			Culprit: api.FighterIndex(),
		},
	})
	return nil
}

// ThunderFang bites with a jolt that leaves the target shocked.
type ThunderFang struct{}

func (s *ThunderFang) Kind() domain.SkillKind { return domain.SkillThunderFang }

func (s *ThunderFang) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Thunder Fang", "A crackling strike that leaves the nerves singing.", 14)
}

func (s *ThunderFang) CanUse(*battle.API) bool { return true }

func (s *ThunderFang) AIChanceToPick(api *battle.API) domain.Probability {
	// Wet targets conduct: prioritize.
	if api.Target().HasEffect(battle.EffectWet) {
		return domain.High
	}
	return domain.Medium
}

func (s *ThunderFang) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *ThunderFang) OnUse(api *battle.API) error {
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindElectric,
		Amount:               roll(api.RNG(), 10, 6, api.Fighter().MixedMultiplier(1, 1)),
		BalanceEffectiveness: 10,
		Accuracy:             88,
		Effect: &battle.Effect{
			Kind:    battle.EffectShocked,
			Amount:  25 + api.RNG().Int31n(10),
			Culprit: api.FighterIndex(),
		},
	})
	return nil
}

// WaterJet soaks the target, setting up conduction and dousing fire.
type WaterJet struct{}

func (s *WaterJet) Kind() domain.SkillKind { return domain.SkillWaterJet }

func (s *WaterJet) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Water Jet", "A pressurized stream that drenches the target.", 10)
}

func (s *WaterJet) CanUse(*battle.API) bool { return true }

func (s *WaterJet) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Fighter().HasEffect(battle.EffectBurning) || api.Fighter().HasEffect(battle.EffectFlaming) {
		// Self-dousing is handled by targeting; still prefer offense.
		return domain.Medium
	}
	if api.Target().HasEffect(battle.EffectWet) {
		return domain.Low
	}
	return domain.Medium
}

func (s *WaterJet) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *WaterJet) OnUse(api *battle.API) error {
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindWater,
		Amount:               roll(api.RNG(), 8, 6, api.Fighter().IntelligenceMultiplier()),
		BalanceEffectiveness: 18,
		Accuracy:             92,
		Effect: &battle.Effect{
			Kind:    battle.EffectWet,
			Amount:  30 + api.RNG().Int31n(10),
			Culprit: api.FighterIndex(),
		},
	})
	return nil
}

// PoisonGas releases a toxic cloud on the target.
type PoisonGas struct{}

func (s *PoisonGas) Kind() domain.SkillKind { return domain.SkillPoisonGas }

func (s *PoisonGas) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Poison Gas", "A lingering cloud that seeps into the lungs.", 16)
}

func (s *PoisonGas) CanUse(*battle.API) bool { return true }

func (s *PoisonGas) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Target().HasEffect(battle.EffectPoisoned) {
		return domain.Never
	}
	return domain.Medium
}

func (s *PoisonGas) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *PoisonGas) OnUse(api *battle.API) error {
	api.ApplyDamage(battle.DamageSpec{
		Culprit:  api.FighterIndex(),
		Target:   api.TargetIndex(),
		Kind:     domain.DamageKindPoison,
		Amount:   roll(api.RNG(), 4, 4, 1),
		Accuracy: 95,
		Effect: &battle.Effect{
			Kind:    battle.EffectPoisoned,
			Amount:  30 + api.RNG().Int31n(15),
			Culprit: api.FighterIndex(),
		},
	})
	return nil
}
