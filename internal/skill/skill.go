// Package skill holds every concrete combat skill. Skills register
// themselves with the battle registry at init time; importing this package
// for side effects makes the whole set constructible by kind.
package skill

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func init() {
	battle.RegisterSkill(domain.SkillImbuedPunch, func() battle.Skill { return &ImbuedPunch{} })
	battle.RegisterSkill(domain.SkillSimpleCut, func() battle.Skill { return &SimpleCut{} })
	battle.RegisterSkill(domain.SkillCyclonePush, func() battle.Skill { return &CyclonePush{} })
	battle.RegisterSkill(domain.SkillBite, func() battle.Skill { return &Bite{} })
	battle.RegisterSkill(domain.SkillCharge, func() battle.Skill { return &Charge{} })
	battle.RegisterSkill(domain.SkillMirrorDamage, func() battle.Skill { return &MirrorDamage{} })
	battle.RegisterSkill(domain.SkillEarthquake, func() battle.Skill { return &Earthquake{} })
	battle.RegisterSkill(domain.SkillFinalCrucifix, func() battle.Skill { return &FinalCrucifix{} })
	battle.RegisterSkill(domain.SkillParalyzingBet, func() battle.Skill { return &ParalyzingBet{} })
	battle.RegisterSkill(domain.SkillTenkuKikan, func() battle.Skill { return &TenkuKikan{} })
	battle.RegisterSkill(domain.SkillRefresh, func() battle.Skill { return &Refresh{} })
	battle.RegisterSkill(domain.SkillWoundHealing, func() battle.Skill { return &WoundHealing{} })
	battle.RegisterSkill(domain.SkillBloodDonation, func() battle.Skill { return &BloodDonation{} })
	battle.RegisterSkill(domain.SkillYinYang, func() battle.Skill { return &YinYang{} })
	battle.RegisterSkill(domain.SkillHakikotenchou, func() battle.Skill { return &Hakikotenchou{} })
	battle.RegisterSkill(domain.SkillInstinctiveReaction, func() battle.Skill { return &InstinctiveReaction{} })
	battle.RegisterSkill(domain.SkillEtherFlow, func() battle.Skill { return &EtherFlow{} })
	battle.RegisterSkill(domain.SkillOvercoming, func() battle.Skill { return &Overcoming{} })
	battle.RegisterSkill(domain.SkillFlameBall, func() battle.Skill { return &FlameBall{} })
	battle.RegisterSkill(domain.SkillIcyShot, func() battle.Skill { return &IcyShot{} })
	battle.RegisterSkill(domain.SkillThunderFang, func() battle.Skill { return &ThunderFang{} })
	battle.RegisterSkill(domain.SkillWaterJet, func() battle.Skill { return &WaterJet{} })
	battle.RegisterSkill(domain.SkillTornadoKick, func() battle.Skill { return &TornadoKick{} })
	battle.RegisterSkill(domain.SkillSuplex, func() battle.Skill { return &Suplex{} })
	battle.RegisterSkill(domain.SkillPoisonGas, func() battle.Skill { return &PoisonGas{} })
}

// makeData fills the static description shared by every skill.
func makeData(kind domain.SkillKind, name, description string, cost int32) battle.SkillData {
	meta, _ := domain.GetSkillMeta(kind)
	return battle.SkillData{
		Identifier:  string(kind),
		Name:        name,
		Description: description,
		Complexity:  meta.Complexity,
		EtherCost:   cost,
	}
}

// makeDisplay renders the standard skill card.
func makeDisplay(data battle.SkillData, fighter *battle.Fighter) battle.SkillDisplay {
	return battle.SkillDisplay{
		Header:    data.Name,
		SubHeader: fmt.Sprintf("%d ether · %s", data.EtherCost, data.Complexity),
		Body:      data.Description,
	}
}

// roll returns base plus a uniform spread, scaled by the multiplier.
func roll(r *rand.Rand, base, spread int32, mult float64) int32 {
	v := base
	if spread > 0 {
		v += r.Int31n(spread)
	}
	return int32(math.Round(float64(v) * mult))
}

// mostWounded picks the fighter with the lowest health fraction among the
// caster and its allies.
func mostWounded(api *battle.API) battle.FighterIndex {
	b := api.Battle()
	best := api.FighterIndex()
	bestFrac := healthFraction(api.Fighter())
	for _, idx := range api.FighterAllies() {
		if frac := healthFraction(b.Fighter(idx)); frac < bestFrac {
			best, bestFrac = idx, frac
		}
	}
	return best
}

func healthFraction(f *battle.Fighter) float64 {
	max := f.Resistance.Max + f.Vitality.Max
	if max == 0 {
		return 1
	}
	return float64(f.Health()) / float64(max)
}
