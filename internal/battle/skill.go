package battle

import (
	"github.com/etheris-rpg/etheris/internal/domain"
)

// SkillData is the static, per-fighter-resolved description of a skill.
type SkillData struct {
	Identifier  string
	Name        string
	Description string
	Explanation string
	Complexity  domain.SkillComplexity
	EtherCost   int32
}

// SkillDisplay is the UI rendering of a skill for the acting fighter.
type SkillDisplay struct {
	Header    string
	SubHeader string
	Body      string
}

// Skill is one combat ability. Implementations own private dynamic state
// (charges, accumulators, stored souls); that state is serialized by the
// battle's single-owner execution model, never accessed directly.
//
// Optional passive hooks are separate interfaces: implement only what the
// skill needs.
type Skill interface {
	Kind() domain.SkillKind
	Data(fighter *Fighter) SkillData
	CanUse(api *API) bool
	AIChanceToPick(api *API) domain.Probability
	Display(fighter *Fighter) SkillDisplay
	OnUse(api *API) error
}

// FighterTicker runs after every action of the owning fighter's battle.
type FighterTicker interface {
	PassiveFighterTick(api *API)
}

// CycleHook runs once at the end of every round.
type CycleHook interface {
	PassiveOnCycle(api *API)
}

// KillHook runs when the owning fighter defeats another fighter.
type KillHook interface {
	PassiveOnKill(api *API, killed FighterIndex)
}

// DamageHook runs after a resolved hit involving the owning fighter.
type DamageHook interface {
	PassiveOnDamage(api *API, report *DamageReport)
}

// DamageMissHook runs after a missed hit involving the owning fighter.
type DamageMissHook interface {
	PassiveOnDamageMiss(api *API, spec DamageSpec)
}

// StartHook runs once when the battle starts.
type StartHook interface {
	OnStart(api *API)
}

// FighterSkill pairs a skill kind with its dynamic state. Hooks nest: a
// skill's OnUse deals damage, the damage pipeline fires the same skill's
// passive hooks before OnUse returns. Serialization therefore cannot live
// here — every mutating battle entry point already runs under the
// controller's battle lock, which is what keeps active and passive hooks
// from interleaving inside one fighter.
type FighterSkill struct {
	kind domain.SkillKind
	impl Skill
}

// NewFighterSkill wraps a concrete skill for a fighter.
func NewFighterSkill(impl Skill) *FighterSkill {
	return &FighterSkill{kind: impl.Kind(), impl: impl}
}

// Kind returns the wrapped skill kind.
func (s *FighterSkill) Kind() domain.SkillKind { return s.kind }

// With gives fn scoped access to the concrete implementation.
func (s *FighterSkill) With(fn func(Skill)) {
	fn(s.impl)
}

// Data resolves the static description for the fighter.
func (s *FighterSkill) Data(fighter *Fighter) SkillData {
	return s.impl.Data(fighter)
}

// CanUse reports whether the skill can fire this turn.
func (s *FighterSkill) CanUse(api *API) bool {
	return s.impl.CanUse(api)
}

// AIChanceToPick resolves the AI pick probability.
func (s *FighterSkill) AIChanceToPick(api *API) domain.Probability {
	return s.impl.AIChanceToPick(api)
}

// OnUse executes the skill.
func (s *FighterSkill) OnUse(api *API) error {
	return s.impl.OnUse(api)
}

// TickFighter fires the fighter-tick hook when implemented.
func (s *FighterSkill) TickFighter(api *API) {
	if h, ok := s.impl.(FighterTicker); ok {
		h.PassiveFighterTick(api)
	}
}

// TickCycle fires the end-of-round hook when implemented.
func (s *FighterSkill) TickCycle(api *API) {
	if h, ok := s.impl.(CycleHook); ok {
		h.PassiveOnCycle(api)
	}
}

// NotifyKill fires the on-kill hook when implemented.
func (s *FighterSkill) NotifyKill(api *API, killed FighterIndex) {
	if h, ok := s.impl.(KillHook); ok {
		h.PassiveOnKill(api, killed)
	}
}

// NotifyDamage fires the on-damage hook when implemented.
func (s *FighterSkill) NotifyDamage(api *API, report *DamageReport) {
	if h, ok := s.impl.(DamageHook); ok {
		h.PassiveOnDamage(api, report)
	}
}

// NotifyDamageMiss fires the on-miss hook when implemented.
func (s *FighterSkill) NotifyDamageMiss(api *API, spec DamageSpec) {
	if h, ok := s.impl.(DamageMissHook); ok {
		h.PassiveOnDamageMiss(api, spec)
	}
}

// NotifyStart fires the battle-start hook when implemented.
func (s *FighterSkill) NotifyStart(api *API) {
	if h, ok := s.impl.(StartHook); ok {
		h.OnStart(api)
	}
}
