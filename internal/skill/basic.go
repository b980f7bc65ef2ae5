package skill

import (
	"fmt"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// ImbuedPunch is an ether-hardened fist strike with a small crit chance.
type ImbuedPunch struct{}

func (s *ImbuedPunch) Kind() domain.SkillKind { return domain.SkillImbuedPunch }

func (s *ImbuedPunch) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Imbued Punch", "A fist wrapped in raw ether.", 10)
}

func (s *ImbuedPunch) CanUse(*battle.API) bool { return true }

func (s *ImbuedPunch) AIChanceToPick(*battle.API) domain.Probability { return domain.Medium }

func (s *ImbuedPunch) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *ImbuedPunch) OnUse(api *battle.API) error {
	f := api.Fighter()
	amount := roll(api.RNG(), 8, 6, f.StrengthMultiplier())
	if api.RNG().Intn(100) < 5 {
		amount *= 2
		api.EmitMessage(fmt.Sprintf("%s's fist lights up — a critical strike!", f.Name))
	}
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindPhysical,
		Amount:               amount,
		BalanceEffectiveness: 12,
		Accuracy:             90,
	})
	return nil
}

// SimpleCut opens a bleeding wound.
type SimpleCut struct{}

func (s *SimpleCut) Kind() domain.SkillKind { return domain.SkillSimpleCut }

func (s *SimpleCut) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Simple Cut", "A quick slash that keeps bleeding.", 8)
}

func (s *SimpleCut) CanUse(*battle.API) bool { return true }

func (s *SimpleCut) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Target().HasEffect(battle.EffectBleeding) {
		return domain.Low
	}
	return domain.Medium
}

func (s *SimpleCut) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *SimpleCut) OnUse(api *battle.API) error {
	f := api.Fighter()
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindCut,
		Amount:               roll(api.RNG(), 6, 5, f.StrengthMultiplier()),
		BalanceEffectiveness: 8,
		Accuracy:             90,
		Effect: &battle.Effect{
			Kind:    battle.EffectBleeding,
			Amount:  15 + api.RNG().Int31n(10),
			Culprit: api.FighterIndex(),
		},
	})
	return nil
}

// CyclonePush is a weak gust that mostly exists to break footing.
type CyclonePush struct{}

func (s *CyclonePush) Kind() domain.SkillKind { return domain.SkillCyclonePush }

func (s *CyclonePush) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Cyclone Push", "A burst of wind that shoves the target off balance.", 6)
}

func (s *CyclonePush) CanUse(*battle.API) bool { return true }

func (s *CyclonePush) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Target().Balance < 40 {
		return domain.High
	}
	return domain.Low
}

func (s *CyclonePush) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *CyclonePush) OnUse(api *battle.API) error {
	f := api.Fighter()
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindWind,
		Amount:               roll(api.RNG(), 4, 4, f.MixedMultiplier(1, 1)),
		BalanceEffectiveness: 35,
		Accuracy:             90,
	})
	return nil
}

// Bite tears flesh and siphons a share of the target's ether.
type Bite struct{}

func (s *Bite) Kind() domain.SkillKind { return domain.SkillBite }

func (s *Bite) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Bite", "A savage bite that drinks the target's ether.", 5)
}

func (s *Bite) CanUse(*battle.API) bool { return true }

func (s *Bite) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Fighter().Ether.Fraction() < 0.3 && api.Target().Ether.Value > 20 {
		return domain.High
	}
	return domain.Low
}

func (s *Bite) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *Bite) OnUse(api *battle.API) error {
	f := api.Fighter()
	report := api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindPhysicalCut,
		Amount:               roll(api.RNG(), 5, 4, f.StrengthMultiplier()),
		BalanceEffectiveness: 5,
		Accuracy:             88,
	})
	if !report.Missed {
		stolen := api.Target().Ether.Value / 10
		if stolen > 0 {
			api.Target().Ether.Subtract(stolen)
			f.Ether.Add(stolen)
			api.EmitMessage(fmt.Sprintf("%s drained %d ether from %s.",
				f.Name, stolen, api.Target().Name))
		}
	}
	return nil
}

// Charge is two-phase: wind up, then release a strength-scaled blow.
type Charge struct {
	charged bool
}

func (s *Charge) Kind() domain.SkillKind { return domain.SkillCharge }

func (s *Charge) Data(*battle.Fighter) battle.SkillData {
	if s.charged {
		return makeData(s.Kind(), "Charge (release)", "Unleash the stored momentum.", 5)
	}
	return makeData(s.Kind(), "Charge", "Plant your feet and build momentum.", 10)
}

func (s *Charge) CanUse(*battle.API) bool { return true }

func (s *Charge) AIChanceToPick(*battle.API) domain.Probability {
	if s.charged {
		return domain.Always
	}
	return domain.Low
}

func (s *Charge) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *Charge) OnUse(api *battle.API) error {
	f := api.Fighter()
	if !s.charged {
		s.charged = true
		f.AddBalance(10)
		api.EmitRandomMessage(
			fmt.Sprintf("%s plants both feet and starts charging.", f.Name),
			fmt.Sprintf("%s braces, gathering momentum.", f.Name),
		)
		return nil
	}
	s.charged = false
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindPhysical,
		Amount:               roll(api.RNG(), 15, 16, f.StrengthMultiplier()),
		BalanceEffectiveness: 20,
		Accuracy:             90,
	})
	return nil
}
