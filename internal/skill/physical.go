package skill

import (
	"fmt"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// TornadoKick is a spinning kick delivered on a gust of wind.
type TornadoKick struct{}

func (s *TornadoKick) Kind() domain.SkillKind { return domain.SkillTornadoKick }

func (s *TornadoKick) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Tornado Kick", "A spinning kick riding a gust of wind.", 16)
}

func (s *TornadoKick) CanUse(api *battle.API) bool {
	return api.Fighter().Composure.Kind == battle.ComposureStanding
}

func (s *TornadoKick) AIChanceToPick(*battle.API) domain.Probability { return domain.Medium }

func (s *TornadoKick) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *TornadoKick) OnUse(api *battle.API) error {
	api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindWind,
		Amount:               roll(api.RNG(), 12, 8, api.Fighter().StrengthMultiplier()),
		BalanceEffectiveness: 30,
		Accuracy:             85,
	})
	return nil
}

// Suplex grabs an unsteady target and slams it into the ground.
type Suplex struct{}

func (s *Suplex) Kind() domain.SkillKind { return domain.SkillSuplex }

func (s *Suplex) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Suplex", "Grab an unsteady target and slam it down.", 18)
}

// CanUse requires the target to already be off balance.
func (s *Suplex) CanUse(api *battle.API) bool {
	return api.Fighter().Composure.Kind == battle.ComposureStanding &&
		api.Target().Composure.Kind == battle.ComposureStanding &&
		api.Target().Balance < 40
}

func (s *Suplex) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Target().Balance < 20 {
		return domain.High
	}
	return domain.Medium
}

func (s *Suplex) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *Suplex) OnUse(api *battle.API) error {
	report := api.ApplyDamage(battle.DamageSpec{
		Culprit:              api.FighterIndex(),
		Target:               api.TargetIndex(),
		Kind:                 domain.DamageKindPhysical,
		Amount:               roll(api.RNG(), 14, 6, api.Fighter().StrengthMultiplier()),
		BalanceEffectiveness: 30,
		Accuracy:             85,
	})
	if !report.Missed && !api.Target().IsDefeated {
		api.Target().Composure = battle.OnGround()
		api.EmitMessage(fmt.Sprintf("%s slammed %s into the ground!",
			api.Fighter().Name, api.Target().Name))
	}
	return nil
}

// Earthquake shakes the whole arena, friend and foe alike.
type Earthquake struct{}

func (s *Earthquake) Kind() domain.SkillKind { return domain.SkillEarthquake }

func (s *Earthquake) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Earthquake", "Shatter the ground under everyone.", 30)
}

func (s *Earthquake) CanUse(api *battle.API) bool {
	return api.Fighter().Composure.Kind == battle.ComposureStanding
}

func (s *Earthquake) AIChanceToPick(api *battle.API) domain.Probability {
	// Worth it against groups, reckless in melee with allies around.
	if len(api.FighterEnemies()) >= 2 && len(api.FighterAllies()) == 0 {
		return domain.High
	}
	if len(api.FighterAllies()) > 0 {
		return domain.Low
	}
	return domain.Medium
}

func (s *Earthquake) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *Earthquake) OnUse(api *battle.API) error {
	f := api.Fighter()
	api.EmitMessage(fmt.Sprintf("%s smashes the ground — the whole arena shakes!", f.Name))

	base := roll(api.RNG(), 20, 10, f.StrengthMultiplier())
	for _, idx := range api.FighterEnemies() {
		api.ApplyDamage(battle.DamageSpec{
			Culprit:              api.FighterIndex(),
			Target:               idx,
			Kind:                 domain.DamageKindPhysical,
			Amount:               base,
			BalanceEffectiveness: 20,
			Accuracy:             255,
		})
	}
	// Friendly fire at half strength.
	for _, idx := range api.FighterAllies() {
		api.ApplyDamage(battle.DamageSpec{
			Culprit:              api.FighterIndex(),
			Target:               idx,
			Kind:                 domain.DamageKindPhysical,
			Amount:               base / 2,
			BalanceEffectiveness: 15,
			Accuracy:             255,
		})
	}
	api.AddOverload(3)
	return nil
}
