package skill

import (
	"fmt"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// Soul is the snapshot TenkuKikan keeps of the last fighter its wielder
// brought down.
type Soul struct {
	Name              string
	SkillKinds        []domain.SkillKind
	Personalities     []domain.Personality
	StrengthLevel     int32
	IntelligenceLevel int32
	VitalityMax       int32
	ResistanceMax     int32
	EtherMax          int32
	Potential         float64
}

// TenkuKikan stores the soul of the wielder's most recent kill and can
// later raise a weakened replica of it on the wielder's team.
type TenkuKikan struct {
	soul *Soul
}

func (s *TenkuKikan) Kind() domain.SkillKind { return domain.SkillTenkuKikan }

// StoredSoul exposes the current soul, mainly for display and tests.
func (s *TenkuKikan) StoredSoul() *Soul { return s.soul }

func (s *TenkuKikan) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Tenku Kikan", "Call a taken soul back into flesh.", 80)
}

func (s *TenkuKikan) CanUse(*battle.API) bool { return s.soul != nil }

func (s *TenkuKikan) AIChanceToPick(api *battle.API) domain.Probability {
	if s.soul == nil {
		return domain.Never
	}
	if len(api.FighterAllies()) == 0 {
		return domain.High
	}
	return domain.Medium
}

func (s *TenkuKikan) Display(f *battle.Fighter) battle.SkillDisplay {
	d := makeDisplay(s.Data(f), f)
	if s.soul != nil {
		d.Body = fmt.Sprintf("%s Held soul: %s.", d.Body, s.soul.Name)
	} else {
		d.Body = d.Body + " No soul held."
	}
	return d
}

// PassiveOnKill captures the fallen fighter into the single soul slot,
// overwriting any previous occupant.
func (s *TenkuKikan) PassiveOnKill(api *battle.API, killed battle.FighterIndex) {
	fallen := api.Battle().Fighter(killed)
	soul := &Soul{
		Name:              fallen.Name,
		Personalities:     append([]domain.Personality(nil), fallen.Personalities...),
		StrengthLevel:     fallen.StrengthLevel,
		IntelligenceLevel: fallen.IntelligenceLevel,
		VitalityMax:       fallen.Vitality.Max,
		ResistanceMax:     fallen.Resistance.Max,
		EtherMax:          fallen.Ether.Max,
		Potential:         fallen.Potential,
	}
	for _, fs := range fallen.Skills {
		soul.SkillKinds = append(soul.SkillKinds, fs.Kind())
	}
	s.soul = soul
	api.EmitMessage(fmt.Sprintf("%s's soul drifts into %s's grasp.",
		fallen.Name, api.Fighter().Name))
}

func (s *TenkuKikan) OnUse(api *battle.API) error {
	if s.soul == nil {
		return domain.ErrInvalidInput
	}
	soul := s.soul
	s.soul = nil

	f := api.Fighter()
	replica := domain.FighterData{
		Team:              f.Team,
		Name:              soul.Name,
		Personalities:     soul.Personalities,
		SkillKinds:        soul.SkillKinds,
		StrengthLevel:     soul.StrengthLevel,
		IntelligenceLevel: soul.IntelligenceLevel,
		Vitality:          scaledAttribute(soul.VitalityMax, 0.70),
		Resistance:        scaledAttribute(soul.ResistanceMax, 0.60),
		Ether:             scaledAttribute(soul.EtherMax, 0.70),
		Brain:             brainPtr(domain.BrainSimple),
		Potential:         soul.Potential,
	}

	api.EmitMessage(fmt.Sprintf("%s tears the veil — %s walks again, paler than before.",
		f.Name, soul.Name))
	if _, err := api.Battle().JoinFighter(replica); err != nil {
		return err
	}
	api.AddOverload(40)
	return nil
}

func scaledAttribute(max int32, factor float64) domain.Attribute {
	v := int32(float64(max) * factor)
	return domain.Attribute{Value: v, Max: v}
}

func brainPtr(kind domain.BrainKind) *domain.BrainKind {
	return &kind
}
