package skill

import (
	"fmt"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// Refresh strips negative effects off the most afflicted friendly fighter.
type Refresh struct{}

func (s *Refresh) Kind() domain.SkillKind { return domain.SkillRefresh }

func (s *Refresh) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Refresh", "A cleansing wave that washes ailments away.", 15)
}

func (s *Refresh) CanUse(api *battle.API) bool {
	_, found := s.pickTarget(api)
	return found
}

func (s *Refresh) AIChanceToPick(api *battle.API) domain.Probability {
	if _, found := s.pickTarget(api); found {
		return domain.High
	}
	return domain.Never
}

func (s *Refresh) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *Refresh) OnUse(api *battle.API) error {
	idx, found := s.pickTarget(api)
	if !found {
		return domain.ErrInvalidTarget
	}
	target := api.Battle().Fighter(idx)
	for _, kind := range battle.NegativeEffectKinds() {
		api.RemoveEffect(idx, kind, 30)
	}
	target.AddBalance(20)
	api.EmitMessage(fmt.Sprintf("A cleansing wave washes over %s.", target.Name))
	return nil
}

// pickTarget chooses the friendly fighter carrying the most negative
// effects, the caster included.
func (s *Refresh) pickTarget(api *battle.API) (battle.FighterIndex, bool) {
	b := api.Battle()
	candidates := append([]battle.FighterIndex{api.FighterIndex()}, api.FighterAllies()...)
	best, bestCount := battle.FighterIndex(0), 0
	for _, idx := range candidates {
		count := 0
		for _, kind := range battle.NegativeEffectKinds() {
			if b.Fighter(idx).HasEffect(kind) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = idx, count
		}
	}
	return best, bestCount > 0
}

// WoundHealing channels ether into closing an ally's wounds.
type WoundHealing struct{}

func (s *WoundHealing) Kind() domain.SkillKind { return domain.SkillWoundHealing }

func (s *WoundHealing) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Wound Healing", "Knit flesh back together with focused ether.", 20)
}

func (s *WoundHealing) CanUse(api *battle.API) bool {
	wounded := api.Battle().Fighter(mostWounded(api))
	return wounded.Health() < wounded.Resistance.Max+wounded.Vitality.Max
}

func (s *WoundHealing) AIChanceToPick(api *battle.API) domain.Probability {
	if healthFraction(api.Battle().Fighter(mostWounded(api))) < 0.4 {
		return domain.High
	}
	return domain.Never
}

func (s *WoundHealing) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *WoundHealing) OnUse(api *battle.API) error {
	idx := mostWounded(api)
	target := api.Battle().Fighter(idx)
	amount := roll(api.RNG(), 12, 6, api.Fighter().IntelligenceMultiplier())
	target.Heal(amount)
	api.EmitMessage(fmt.Sprintf("%s's wounds close up (+%d).", target.Name, amount))
	return nil
}

// BloodDonation trades the caster's own health for an ally's.
type BloodDonation struct{}

func (s *BloodDonation) Kind() domain.SkillKind { return domain.SkillBloodDonation }

func (s *BloodDonation) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Blood Donation", "Give your own blood to a failing ally.", 25)
}

func (s *BloodDonation) CanUse(api *battle.API) bool {
	return len(api.FighterAllies()) > 0 && api.Fighter().Health() > 10
}

func (s *BloodDonation) AIChanceToPick(api *battle.API) domain.Probability {
	for _, idx := range api.FighterAllies() {
		if healthFraction(api.Battle().Fighter(idx)) < 0.25 {
			return domain.High
		}
	}
	return domain.Never
}

func (s *BloodDonation) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *BloodDonation) OnUse(api *battle.API) error {
	allies := api.FighterAllies()
	if len(allies) == 0 {
		return domain.ErrInvalidTarget
	}
	b := api.Battle()
	weakest := allies[0]
	for _, idx := range allies[1:] {
		if healthFraction(b.Fighter(idx)) < healthFraction(b.Fighter(weakest)) {
			weakest = idx
		}
	}

	f := api.Fighter()
	donated := f.Health() / 10
	if donated < 1 {
		donated = 1
	}
	f.TakeRawDamage(donated)
	b.Fighter(weakest).Heal(donated)
	api.EmitMessage(fmt.Sprintf("%s gives %d health of their own blood to %s.",
		f.Name, donated, b.Fighter(weakest).Name))
	return nil
}
