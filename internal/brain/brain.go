// Package brain implements the AI drivers for non-user fighters. Brains
// register themselves with the battle registry at init time.
package brain

import (
	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func init() {
	battle.RegisterBrain(domain.BrainSimple, func() battle.Brain { return &Simple{} })
	battle.RegisterBrain(domain.BrainInsane, func() battle.Brain { return &Insane{} })
	battle.RegisterBrain(domain.BrainBoss, func() battle.Brain { return &Boss{} })
}

// Simple is the default decision maker: get up when downed, finish when
// possible, use a promising skill, otherwise weigh attack against defend.
type Simple struct{}

func (b *Simple) Kind() domain.BrainKind { return domain.BrainSimple }

func (b *Simple) SelectInput(api *battle.API) battle.Input {
	return selectInput(api, 0)
}

func (b *Simple) ShouldRiskLife(api *battle.API) bool {
	return rollRiskLife(api, 0)
}

func (b *Simple) AllowFighterToEnterTeam(*battle.API, domain.FighterData) bool {
	// AI-only teams refuse strangers; humans get asked by the controller.
	return false
}

// Insane always risks its life and keeps switching targets on a whim.
type Insane struct{}

func (b *Insane) Kind() domain.BrainKind { return domain.BrainInsane }

func (b *Insane) SelectInput(api *battle.API) battle.Input {
	enemies := api.FighterEnemies()
	if len(enemies) > 1 && api.RNG().Intn(100) < 30 {
		return battle.ChangeTarget(enemies[api.RNG().Intn(len(enemies))])
	}
	return selectInput(api, 30)
}

func (b *Insane) ShouldRiskLife(*battle.API) bool { return true }

func (b *Insane) AllowFighterToEnterTeam(*battle.API, domain.FighterData) bool {
	return false
}

// Boss is the Simple policy with a standing aggression bias.
type Boss struct{}

func (b *Boss) Kind() domain.BrainKind { return domain.BrainBoss }

func (b *Boss) SelectInput(api *battle.API) battle.Input {
	return selectInput(api, 25)
}

func (b *Boss) ShouldRiskLife(api *battle.API) bool {
	return rollRiskLife(api, 20)
}

func (b *Boss) AllowFighterToEnterTeam(*battle.API, domain.FighterData) bool {
	return false
}

// selectInput is the shared decision ladder. aggressionBias shifts every
// offensive roll by the given percentage points.
func selectInput(api *battle.API, aggressionBias int) battle.Input {
	f := api.Fighter()
	rng := api.RNG()

	if f.Composure.Kind == battle.ComposureOnGround {
		chance := 35 + aggressionBias
		if f.HasPersonality(domain.PersonalityAggressiveness) {
			chance += 25
		}
		if api.Target().Resistance.Fraction() < 0.3 {
			chance += 20
		}
		if rng.Intn(100) < chance {
			return battle.Upkick()
		}
		return battle.GetUp()
	}

	if input, ok := pickFinisher(api, aggressionBias); ok {
		return input
	}

	if input, ok := pickSkill(api); ok {
		return input
	}

	if shouldDefend(api, aggressionBias) {
		return battle.Defend()
	}
	return battle.Attack()
}

// pickFinisher chooses a finisher when the target is open for one.
// Knockouts are preferred over executions five to one, aggression
// narrowing the gap.
func pickFinisher(api *battle.API, aggressionBias int) (battle.Input, bool) {
	f := api.Fighter()
	if f.Composure.Kind != battle.ComposureStanding || !api.Target().CanBeFinished() {
		return battle.Input{}, false
	}

	weights := make([]int, len(f.Finishers))
	total := 0
	for i, finisher := range f.Finishers {
		w := 5
		if finisher.Fatal {
			w = 1 + aggressionBias/10
			if f.HasPersonality(domain.PersonalityAggressiveness) ||
				f.HasPersonality(domain.PersonalityInsanity) {
				w += 3
			}
		}
		weights[i] = w
		total += w
	}
	if total == 0 {
		return battle.Input{}, false
	}
	pick := api.RNG().Intn(total)
	for i, w := range weights {
		if pick < w {
			return battle.Finish(i), true
		}
		pick -= w
	}
	return battle.Finish(0), true
}

// pickSkill evaluates every equipped skill and sometimes commits to the
// most promising one.
func pickSkill(api *battle.API) (battle.Input, bool) {
	f := api.Fighter()

	bestIndex := -1
	var bestChance domain.Probability
	for i, s := range f.Skills {
		data := s.Data(f)
		if f.Ether.Value < data.EtherCost || !s.CanUse(api) {
			continue
		}
		chance := s.AIChanceToPick(api)
		if !chance.Passes(api.RNG()) {
			continue
		}
		if bestIndex == -1 || chance > bestChance {
			bestIndex, bestChance = i, chance
		}
	}
	if bestIndex == -1 {
		return battle.Input{}, false
	}
	if bestChance.IsHigh() || api.RNG().Intn(100) < 40 {
		return battle.UseSkill(bestIndex), true
	}
	return battle.Input{}, false
}

// shouldDefend weighs self-preservation against pressure.
func shouldDefend(api *battle.API, aggressionBias int) bool {
	f := api.Fighter()
	if f.HasPersonality(domain.PersonalityInsanity) {
		return false
	}

	chance := 10 - aggressionBias
	if f.Resistance.Fraction() < 0.35 {
		chance += 25
	}
	if f.Ether.Fraction() < 0.2 {
		chance += 10
	}
	if api.Target().Resistance.Fraction() > 0.8 {
		chance += 10
	}
	if f.HasPersonality(domain.PersonalityCowardice) {
		chance += 15
	}
	if chance <= 0 {
		return false
	}
	return api.RNG().Intn(100) < chance
}

// rollRiskLife folds personality priors, both sides' condition, and the
// team's shape into one clamped probability.
func rollRiskLife(api *battle.API, bias int) bool {
	f := api.Fighter()
	chance := 20 + bias

	if f.HasPersonality(domain.PersonalityCourage) {
		chance += 25
	}
	if f.HasPersonality(domain.PersonalityInsanity) {
		chance += 40
	}
	if f.HasPersonality(domain.PersonalityCowardice) {
		chance -= 30
	}
	if f.HasPersonality(domain.PersonalityCalm) {
		chance -= 10
	}

	// A healthy body makes the gamble cheaper.
	chance += int(f.Vitality.Fraction() * 20)
	if api.Target().HasFlag(battle.FlagRiskingLife) {
		chance += 20
	}
	if f.Ether.Fraction() > 0.5 {
		chance += 10
	}

	// A standing team makes surrender easier to justify.
	allies := api.FighterAllies()
	if len(allies) > 0 {
		var total float64
		for _, idx := range allies {
			total += api.Battle().Fighter(idx).Resistance.Fraction()
		}
		if total/float64(len(allies)) > 0.6 {
			chance -= 15
		}
	}

	if chance < 0 {
		chance = 0
	}
	if chance > 95 {
		chance = 95
	}
	return api.RNG().Intn(100) < chance
}
