package skill

import (
	"fmt"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// mirrorCap bounds the MirrorDamage accumulator.
const mirrorCap = 1000

// MirrorDamage passively banks a share of incoming damage and throws the
// whole accumulator back on use.
type MirrorDamage struct {
	accumulated int32
}

func (s *MirrorDamage) Kind() domain.SkillKind { return domain.SkillMirrorDamage }

func (s *MirrorDamage) Data(*battle.Fighter) battle.SkillData {
	data := makeData(s.Kind(), "Mirror Damage", "Bank the pain and return it all at once.", 15)
	data.EtherCost += s.accumulated / 50
	return data
}

func (s *MirrorDamage) CanUse(*battle.API) bool { return s.accumulated > 0 }

func (s *MirrorDamage) AIChanceToPick(*battle.API) domain.Probability {
	if s.accumulated >= 200 {
		return domain.High
	}
	if s.accumulated > 0 {
		return domain.Low
	}
	return domain.Never
}

func (s *MirrorDamage) Display(f *battle.Fighter) battle.SkillDisplay {
	d := makeDisplay(s.Data(f), f)
	d.Body = fmt.Sprintf("%s Stored: %d.", d.Body, s.accumulated)
	return d
}

func (s *MirrorDamage) OnUse(api *battle.API) error {
	amount := s.accumulated
	s.accumulated = 0
	api.EmitMessage(fmt.Sprintf("%s releases every stored wound at once!", api.Fighter().Name))
	api.ApplyDamage(battle.DamageSpec{
		Culprit:  api.FighterIndex(),
		Target:   api.TargetIndex(),
		Kind:     domain.DamageKindSpecialPhysical,
		Amount:   amount,
		Accuracy: 95,
	})
	api.AddOverload(3)
	return nil
}

// PassiveOnDamage banks the incoming share by damage kind.
func (s *MirrorDamage) PassiveOnDamage(api *battle.API, report *battle.DamageReport) {
	if report.Target != api.FighterIndex() || report.Culprit == report.Target {
		return
	}
	var share float64
	switch report.Kind {
	case domain.DamageKindPhysical:
		share = 0.40
	case domain.DamageKindSpecialPhysical:
		share = 0.35
	case domain.DamageKindCut:
		share = 0.15
	default:
		return
	}
	s.accumulated += int32(float64(report.Amount) * share)
	if s.accumulated > mirrorCap {
		s.accumulated = mirrorCap
	}
}

// FinalCrucifix burns everything the caster has left into one cataclysm.
type FinalCrucifix struct{}

func (s *FinalCrucifix) Kind() domain.SkillKind { return domain.SkillFinalCrucifix }

func (s *FinalCrucifix) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Final Crucifix", "Burn body and ether alike in one cataclysm.", 100)
}

func (s *FinalCrucifix) CanUse(api *battle.API) bool {
	return !api.Fighter().HasFlag(battle.FlagCannotRegenEther)
}

func (s *FinalCrucifix) AIChanceToPick(api *battle.API) domain.Probability {
	// A last resort, and only when it can actually be paid for.
	if api.Fighter().Resistance.Fraction() < 0.3 {
		return domain.High
	}
	return domain.Never
}

func (s *FinalCrucifix) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *FinalCrucifix) OnUse(api *battle.API) error {
	f := api.Fighter()
	api.EmitMessage(fmt.Sprintf("%s spreads their arms — a cross of light erupts!", f.Name))

	selfCost := int32(float64(f.Resistance.Max) * 0.15)
	f.TakeRawDamage(selfCost)
	f.SetFlag(battle.FlagCannotRegenEther)

	amount := roll(api.RNG(), 40, 20, f.IntelligenceMultiplier())
	for _, idx := range api.FighterEnemies() {
		api.ApplyDamage(battle.DamageSpec{
			Culprit:              api.FighterIndex(),
			Target:               idx,
			Kind:                 domain.DamageKindSpecial,
			Amount:               amount,
			BalanceEffectiveness: 25,
			Accuracy:             255,
		})
	}
	api.AddOverload(15)
	return nil
}

// ParalyzingBet gambles: paralyze them, or paralyze yourself.
type ParalyzingBet struct{}

func (s *ParalyzingBet) Kind() domain.SkillKind { return domain.SkillParalyzingBet }

func (s *ParalyzingBet) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Paralyzing Bet", "A coin flip of nerve toxin.", 30)
}

func (s *ParalyzingBet) CanUse(api *battle.API) bool {
	return !api.Target().HasEffect(battle.EffectParalyzed)
}

func (s *ParalyzingBet) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Fighter().HasPersonality(domain.PersonalityInsanity) {
		return domain.High
	}
	return domain.Low
}

func (s *ParalyzingBet) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *ParalyzingBet) OnUse(api *battle.API) error {
	f := api.Fighter()
	if api.RNG().Intn(100) < 55 {
		api.ApplyEffect(api.TargetIndex(), battle.Effect{
			Kind: battle.EffectParalyzed, Amount: 2, Culprit: api.FighterIndex(),
		})
		api.EmitMessage(fmt.Sprintf("%s wins the bet — %s is paralyzed!",
			f.Name, api.Target().Name))
		return nil
	}
	api.ApplyEffect(api.FighterIndex(), battle.Effect{
		Kind: battle.EffectParalyzed, Amount: 2, Culprit: api.FighterIndex(),
	})
	api.EmitMessage(fmt.Sprintf("%s loses the bet and seizes up!", f.Name))
	return nil
}

// yinYangTag marks the modifiers YinYang installs.
const yinYangTag = "yin_yang"

// YinYang cycles Neutral, Yin (double damage), Yang (half incoming).
type YinYang struct {
	phase int // 0 neutral, 1 yin, 2 yang
}

func (s *YinYang) Kind() domain.SkillKind { return domain.SkillYinYang }

func (s *YinYang) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Yin Yang", "Shift between the dark and light stances.", 20)
}

func (s *YinYang) CanUse(*battle.API) bool { return true }

func (s *YinYang) AIChanceToPick(*battle.API) domain.Probability {
	if s.phase == 0 {
		return domain.Medium
	}
	return domain.Low
}

func (s *YinYang) Display(f *battle.Fighter) battle.SkillDisplay {
	d := makeDisplay(s.Data(f), f)
	switch s.phase {
	case 1:
		d.SubHeader += " · Yin"
	case 2:
		d.SubHeader += " · Yang"
	}
	return d
}

func (s *YinYang) OnUse(api *battle.API) error {
	f := api.Fighter()
	f.Modifiers.RemoveByTag(yinYangTag)
	switch s.phase {
	case 0:
		s.phase = 1
		f.Modifiers.Add(battle.PermanentModifier(battle.ModifierDmgMultiplier, 2, yinYangTag))
		api.EmitMessage(fmt.Sprintf("%s sinks into the Yin stance — strikes hit twice as hard.", f.Name))
	case 1:
		s.phase = 2
		f.Modifiers.Add(battle.PermanentModifier(battle.ModifierDefenseMultiplier, 0.5, yinYangTag))
		api.EmitMessage(fmt.Sprintf("%s rises into the Yang stance — blows glance off.", f.Name))
	default:
		s.phase = 0
		api.EmitMessage(fmt.Sprintf("%s returns to center.", f.Name))
	}
	return nil
}

// PassiveFighterTick strains the body while a stance is held.
func (s *YinYang) PassiveFighterTick(api *battle.API) {
	if s.phase != 0 {
		api.AddOverload(0.3)
	}
}

// Hakikotenchou vents accumulated overload at the cost of freezing and
// exposing the caster.
type Hakikotenchou struct{}

func (s *Hakikotenchou) Kind() domain.SkillKind { return domain.SkillHakikotenchou }

func (s *Hakikotenchou) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Hakikotenchou", "Vent the strain in one frozen breath.", 35)
}

func (s *Hakikotenchou) CanUse(api *battle.API) bool {
	return api.Fighter().Overload >= 80
}

func (s *Hakikotenchou) AIChanceToPick(api *battle.API) domain.Probability {
	if api.Fighter().Overload >= 120 {
		return domain.High
	}
	return domain.Low
}

func (s *Hakikotenchou) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *Hakikotenchou) OnUse(api *battle.API) error {
	f := api.Fighter()
	f.Overload -= 80
	if f.Overload < 0 {
		f.Overload = 0
	}
	api.ApplyEffect(api.FighterIndex(), battle.Effect{
		Kind: battle.EffectFrozen, Amount: 1, Culprit: api.FighterIndex(),
	})
	api.ApplyEffect(api.FighterIndex(), battle.Effect{
		Kind: battle.EffectExposedGuard, Amount: 2, Culprit: api.FighterIndex(),
	})
	api.EmitMessage(fmt.Sprintf("%s exhales — the strain leaves in a cloud of frost.", f.Name))
	return nil
}

// InstinctiveReaction hones reflexes and occasionally counters hits.
type InstinctiveReaction struct{}

func (s *InstinctiveReaction) Kind() domain.SkillKind { return domain.SkillInstinctiveReaction }

func (s *InstinctiveReaction) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Instinctive Reaction", "Let the body answer before the mind.", 15)
}

func (s *InstinctiveReaction) CanUse(*battle.API) bool { return true }

func (s *InstinctiveReaction) AIChanceToPick(api *battle.API) domain.Probability {
	return domain.Low
}

func (s *InstinctiveReaction) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *InstinctiveReaction) OnUse(api *battle.API) error {
	f := api.Fighter()
	f.Modifiers.Add(battle.TimedModifier(battle.ModifierDefenseMultiplier, 0.8, 2, "instinct"))
	api.EmitMessage(fmt.Sprintf("%s's eyes sharpen — instincts take the wheel.", f.Name))
	return nil
}

// PassiveOnDamage counters incoming hits sometimes, paying ether for each
// counter. The self-check and ether gate stop counter loops.
func (s *InstinctiveReaction) PassiveOnDamage(api *battle.API, report *battle.DamageReport) {
	if report.Target != api.FighterIndex() || report.Culprit == report.Target {
		return
	}
	f := api.Fighter()
	if f.IsDefeated || f.Ether.Value < 10 || api.RNG().Intn(100) >= 30 {
		return
	}
	f.Ether.Subtract(10)
	api.EmitMessage(fmt.Sprintf("%s lashes back on pure instinct!", f.Name))
	api.ApplyDamage(battle.DamageSpec{
		Culprit:  api.FighterIndex(),
		Target:   report.Culprit,
		Kind:     domain.DamageKindPhysical,
		Amount:   roll(api.RNG(), 6, 4, f.StrengthMultiplier()),
		Accuracy: 80,
	})
}

// etherFlowRounds is how long one flow lasts.
const etherFlowRounds = 3

// EtherFlow opens the caster's channels for a few rounds of boosted regen.
type EtherFlow struct {
	roundsLeft int
}

func (s *EtherFlow) Kind() domain.SkillKind { return domain.SkillEtherFlow }

func (s *EtherFlow) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Ether Flow", "Open the channels and let ether pour in.", 10)
}

func (s *EtherFlow) CanUse(*battle.API) bool { return s.roundsLeft == 0 }

func (s *EtherFlow) AIChanceToPick(api *battle.API) domain.Probability {
	if s.roundsLeft == 0 && api.Fighter().Ether.Fraction() < 0.3 {
		return domain.High
	}
	return domain.Never
}

func (s *EtherFlow) Display(f *battle.Fighter) battle.SkillDisplay {
	return makeDisplay(s.Data(f), f)
}

func (s *EtherFlow) OnUse(api *battle.API) error {
	s.roundsLeft = etherFlowRounds
	api.EmitMessage(fmt.Sprintf("%s opens their channels — ether floods in.", api.Fighter().Name))
	return nil
}

// PassiveOnCycle pays out the boosted regen and counts the flow down.
func (s *EtherFlow) PassiveOnCycle(api *battle.API) {
	if s.roundsLeft == 0 {
		return
	}
	s.roundsLeft--
	f := api.Fighter()
	bonus := int32(float64(f.Ether.Max) * 0.08)
	f.Ether.Add(bonus)
	if s.roundsLeft == 0 {
		api.DeferMessage(fmt.Sprintf("%s's ether flow subsides.", f.Name))
	}
}

// overcomingMaxStacks caps the ramp.
const overcomingMaxStacks = 3

// Overcoming ramps a stacking damage multiplier use after use.
type Overcoming struct {
	stacks int
}

func (s *Overcoming) Kind() domain.SkillKind { return domain.SkillOvercoming }

func (s *Overcoming) Data(*battle.Fighter) battle.SkillData {
	return makeData(s.Kind(), "Overcoming", "Push past the body's limits, one step at a time.", 20)
}

func (s *Overcoming) CanUse(*battle.API) bool { return s.stacks < overcomingMaxStacks }

func (s *Overcoming) AIChanceToPick(api *battle.API) domain.Probability {
	if s.stacks == 0 && api.Fighter().Resistance.Fraction() > 0.7 {
		return domain.Medium
	}
	return domain.Low
}

func (s *Overcoming) Display(f *battle.Fighter) battle.SkillDisplay {
	d := makeDisplay(s.Data(f), f)
	d.Body = fmt.Sprintf("%s Steps taken: %d.", d.Body, s.stacks)
	return d
}

func (s *Overcoming) OnUse(api *battle.API) error {
	s.stacks++
	f := api.Fighter()
	f.Modifiers.Add(battle.PermanentModifier(battle.ModifierDmgMultiplier, 1.15, "overcoming"))
	api.AddOverload(3)
	api.EmitMessage(fmt.Sprintf("%s pushes past another limit (step %d).", f.Name, s.stacks))
	return nil
}
