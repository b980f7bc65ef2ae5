package battle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// Settings tune one battle.
type Settings struct {
	IsRiskingLifeAllowed bool
	// Casual heals everyone to max at start and suppresses persistent
	// consequences.
	Casual          bool
	HasConsequences bool
	MaxIntruders    int
}

// StateKind is the battle lifecycle phase.
type StateKind string

const (
	StateRunning StateKind = "running"
	StateEnded   StateKind = "ended"
)

// State is the battle lifecycle value.
type State struct {
	Kind       StateKind
	WinnerTeam uint8
	Winners    []FighterIndex
}

// TurnRecord is one closed turn: who acted and what the narration said.
type TurnRecord struct {
	Turn     int
	Fighter  FighterIndex
	Messages []string
}

// Battle is the combat scheduler. It owns its fighters exclusively and is
// advanced one input at a time by the controller; it never blocks or does
// I/O itself.
type Battle struct {
	ID       uuid.UUID
	Region   domain.Region
	Settings Settings

	fighters         []*Fighter
	aliveFighters    []FighterIndex
	defeatedFighters []FighterIndex

	current        int // position in aliveFighters
	turnCounter    int
	actionsInRound int
	intruderCount  int

	state State
	rng   *rand.Rand

	queuedDamage     []DamageSpec
	turnMessages     []string
	deferredMessages []string
	history          []TurnRecord
}

// New constructs a battle from fighter snapshots. Fewer than two fighters
// is a programmer error and fails loudly at construction.
func New(region domain.Region, settings Settings, seed int64, fighters ...domain.FighterData) (*Battle, error) {
	if len(fighters) < 2 {
		return nil, domain.ErrNotEnoughFighters
	}

	b := &Battle{
		ID:       uuid.New(),
		Region:   region,
		Settings: settings,
		state:    State{Kind: StateRunning},
		rng:      rand.New(rand.NewSource(seed)),
	}

	for _, data := range fighters {
		if _, err := b.addFighter(data); err != nil {
			return nil, err
		}
	}

	// Initial targets: next index modulo count, then re-allocated so every
	// fighter opens against another team.
	n := len(b.fighters)
	for i, f := range b.fighters {
		f.Target = FighterIndex((i + 1) % n)
		b.ReallocateFighterTarget(f.Index)
	}

	if settings.Casual {
		for _, f := range b.fighters {
			f.RegenerateAll()
		}
	}

	// Battle-start hooks fire in ascending fighter order.
	for _, f := range b.fighters {
		api := b.NewAPI(f.Index)
		for _, s := range f.Skills {
			s.NotifyStart(api)
		}
	}

	return b, nil
}

// addFighter builds a runtime fighter from its snapshot and registers it.
func (b *Battle) addFighter(data domain.FighterData) (FighterIndex, error) {
	index := FighterIndex(len(b.fighters))

	f := &Fighter{
		Index:             index,
		Team:              data.Team,
		Target:            index, // fixed up by the caller
		Name:              data.Name,
		User:              data.User,
		Composure:         Standing(),
		Balance:           100,
		Vitality:          data.Vitality,
		Resistance:        data.Resistance,
		Ether:             data.Ether,
		StrengthLevel:     data.StrengthLevel,
		IntelligenceLevel: data.IntelligenceLevel,
		Power:             data.Potential,
		Potential:         data.Potential,
		Personalities:     append([]domain.Personality(nil), data.Personalities...),
		BodyImmunities:    data.Immunities.Clone(),
		Drop:              data.Drop,
		BossTag:           data.BossTag,
		Finishers:         DefaultFinishers(data.Weapon),
	}
	if data.Weapon != nil {
		w := *data.Weapon
		f.Weapon = &w
	}

	for _, kind := range data.SkillKinds {
		impl, err := NewSkillFromKind(kind)
		if err != nil {
			return 0, err
		}
		f.Skills = append(f.Skills, NewFighterSkill(impl))
	}

	for _, kind := range data.PactKinds {
		pact, err := NewPactFromKind(kind)
		if err != nil {
			return 0, err
		}
		f.Pacts = append(f.Pacts, pact)
		f.PactKinds = append(f.PactKinds, kind)
	}

	if data.Brain != nil {
		brain, err := NewBrainFromKind(*data.Brain)
		if err != nil {
			return 0, err
		}
		f.Brain = brain
		kind := *data.Brain
		f.BrainKind = &kind
	}

	// Pacts install their passives while the fighter is still being shaped.
	for _, pact := range f.Pacts {
		pact.SetupFighter(f)
	}

	f.RecalculatePL()

	b.fighters = append(b.fighters, f)
	b.aliveFighters = append(b.aliveFighters, index)
	return index, nil
}

// Fighter returns the fighter at the stable index.
func (b *Battle) Fighter(index FighterIndex) *Fighter {
	return b.fighters[index]
}

// Fighters returns all fighters, defeated slots included.
func (b *Battle) Fighters() []*Fighter { return b.fighters }

// AliveFighters returns the ordered alive set.
func (b *Battle) AliveFighters() []FighterIndex {
	return append([]FighterIndex(nil), b.aliveFighters...)
}

// DefeatedFighters returns the defeated set.
func (b *Battle) DefeatedFighters() []FighterIndex {
	return append([]FighterIndex(nil), b.defeatedFighters...)
}

// State returns the current lifecycle value.
func (b *Battle) State() State { return b.state }

// TurnCounter returns the number of closed turns.
func (b *Battle) TurnCounter() int { return b.turnCounter }

// IntruderCount returns how many intruders joined.
func (b *Battle) IntruderCount() int { return b.intruderCount }

// History returns the closed turn records.
func (b *Battle) History() []TurnRecord { return b.history }

// RNG exposes the battle RNG.
func (b *Battle) RNG() *rand.Rand { return b.rng }

// CurrentFighter returns the fighter whose action is pending.
func (b *Battle) CurrentFighter() FighterIndex {
	return b.aliveFighters[b.current]
}

// TeamAllies lists alive fighters on the same team, excluding the fighter.
func (b *Battle) TeamAllies(index FighterIndex) []FighterIndex {
	team := b.Fighter(index).Team
	var allies []FighterIndex
	for _, i := range b.aliveFighters {
		if i != index && b.Fighter(i).Team == team {
			allies = append(allies, i)
		}
	}
	return allies
}

// TeamEnemies lists alive fighters on other teams.
func (b *Battle) TeamEnemies(index FighterIndex) []FighterIndex {
	team := b.Fighter(index).Team
	var enemies []FighterIndex
	for _, i := range b.aliveFighters {
		if b.Fighter(i).Team != team {
			enemies = append(enemies, i)
		}
	}
	return enemies
}

// ReallocateFighterTarget points the fighter at a random alive enemy. When
// no enemy remains the target is left unchanged.
func (b *Battle) ReallocateFighterTarget(index FighterIndex) {
	enemies := b.TeamEnemies(index)
	if len(enemies) == 0 {
		return
	}
	b.Fighter(index).Target = enemies[b.rng.Intn(len(enemies))]
}

// JoinFighter appends a new fighter mid-battle with a fresh stable index.
func (b *Battle) JoinFighter(data domain.FighterData) (FighterIndex, error) {
	if b.state.Kind != StateRunning {
		return 0, domain.ErrBattleEnded
	}
	index, err := b.addFighter(data)
	if err != nil {
		return 0, err
	}
	b.ReallocateFighterTarget(index)
	b.EmitMessage(fmt.Sprintf("%s joined the battle!", data.Name))
	return index, nil
}

// JoinIntruder admits a third party as a new team, bounded by settings.
func (b *Battle) JoinIntruder(data domain.FighterData) (FighterIndex, error) {
	if b.intruderCount >= b.Settings.MaxIntruders {
		return 0, domain.ErrMaxIntruders
	}
	index, err := b.JoinFighter(data)
	if err != nil {
		return 0, err
	}
	b.intruderCount++
	return index, nil
}

// NextUnusedTeam returns the lowest team id no fighter holds.
func (b *Battle) NextUnusedTeam() uint8 {
	used := map[uint8]bool{}
	for _, f := range b.fighters {
		used[f.Team] = true
	}
	for team := uint8(0); ; team++ {
		if !used[team] {
			return team
		}
	}
}

// QueueDamage defers a damage spec to the end of the current action.
func (b *Battle) QueueDamage(spec DamageSpec) {
	b.queuedDamage = append(b.queuedDamage, spec)
}

// EmitMessage appends to the current turn's narration buffer.
func (b *Battle) EmitMessage(msg string) {
	b.turnMessages = append(b.turnMessages, msg)
}

// DeferMessage pushes into the next turn's narration buffer.
func (b *Battle) DeferMessage(msg string) {
	b.deferredMessages = append(b.deferredMessages, msg)
}

// SkipReason explains why a fighter loses its action this turn.
type SkipReason string

const (
	SkipNone      SkipReason = ""
	SkipFrozen    SkipReason = "frozen"
	SkipParalyzed SkipReason = "paralyzed"
	SkipGaveUp    SkipReason = "gave_up"
)

// MustSkip reports whether the fighter's action is forfeit and why.
func (b *Battle) MustSkip(index FighterIndex) SkipReason {
	f := b.Fighter(index)
	if f.HasFlag(FlagGaveUp) {
		return SkipGaveUp
	}
	if f.HasEffect(EffectFrozen) {
		return SkipFrozen
	}
	if f.HasEffect(EffectParalyzed) {
		return SkipParalyzed
	}
	return SkipNone
}

// InputResult tells the controller what the executed input needs next.
type InputResult int

const (
	// ResultActed means the action resolved and the turn may close.
	ResultActed InputResult = iota
	// ResultReinput means the prompt must re-open without closing the turn.
	ResultReinput
)

// ExecuteInput applies one input for the fighter. User-recoverable errors
// (wrong target, missing ether) are returned for the controller to surface;
// they do not consume the action.
func (b *Battle) ExecuteInput(index FighterIndex, input Input) (InputResult, error) {
	if b.state.Kind != StateRunning {
		return ResultActed, domain.ErrBattleEnded
	}
	f := b.Fighter(index)

	switch input.Kind {
	case InputAttack:
		b.executeAttack(index)
	case InputDefend:
		f.Defense += 2
		f.AddBalance(15)
		b.EmitMessage(fmt.Sprintf("%s took a defensive stance.", f.Name))
	case InputUseSkill:
		return b.executeSkill(index, input.SkillIndex)
	case InputFinish:
		return b.executeFinisher(index, input.Finisher)
	case InputGetUp:
		if f.Composure.Kind != ComposureOnGround {
			return ResultReinput, domain.ErrInvalidInput
		}
		f.Composure = Standing()
		f.AddBalance(30)
		b.EmitMessage(fmt.Sprintf("%s got back up.", f.Name))
	case InputUpkick:
		if f.Composure.Kind != ComposureOnGround {
			return ResultReinput, domain.ErrInvalidInput
		}
		f.Composure = Standing()
		f.AddBalance(20)
		amount := int32(math.Round(float64(8+b.rng.Int31n(5)) * f.StrengthMultiplier()))
		b.ApplyDamage(DamageSpec{
			Culprit:              index,
			Target:               f.Target,
			Kind:                 domain.DamageKindPhysical,
			Amount:               amount,
			BalanceEffectiveness: 25,
			Accuracy:             85,
		})
	case InputChangeTarget:
		if err := b.validateTarget(index, input.Target); err != nil {
			return ResultReinput, err
		}
		f.Target = input.Target
		b.EmitMessage(fmt.Sprintf("%s now faces %s.", f.Name, b.Fighter(input.Target).Name))
	case InputChangeTeam:
		f.Team = input.Team
		b.ReallocateFighterTarget(index)
		b.EmitMessage(fmt.Sprintf("%s switched sides!", f.Name))
	case InputReinput:
		return ResultReinput, nil
	case InputNothing:
		// Turn forfeited.
	default:
		return ResultReinput, domain.ErrInvalidInput
	}
	return ResultActed, nil
}

func (b *Battle) validateTarget(index, target FighterIndex) error {
	if int(target) < 0 || int(target) >= len(b.fighters) {
		return domain.ErrInvalidTarget
	}
	t := b.Fighter(target)
	if t.IsDefeated || t.Team == b.Fighter(index).Team {
		return domain.ErrInvalidTarget
	}
	return nil
}

// executeAttack runs the weapon or unarmed routine.
func (b *Battle) executeAttack(index FighterIndex) {
	f := b.Fighter(index)

	if f.Weapon != nil {
		profile := f.Weapon.Profile()
		amount := int32(math.Round(float64(profile.BaseDamage+b.rng.Int31n(6)) *
			f.StrengthMultiplier() * profile.Multiplier))
		b.ApplyDamage(DamageSpec{
			Culprit:              index,
			Target:               f.Target,
			Kind:                 profile.DamageKind,
			Amount:               amount,
			BalanceEffectiveness: 10 + b.rng.Int31n(10),
			Accuracy:             90,
		})
		if profile.MaxDurability > 0 {
			f.Weapon.Durability--
			if f.Weapon.Durability <= 0 {
				b.EmitMessage(fmt.Sprintf("%s's %s broke!", f.Name, profile.Name))
				f.Weapon = nil
				f.Finishers = DefaultFinishers(nil)
			}
		}
		return
	}

	amount := int32(math.Round(float64(5+b.rng.Int31n(5)) * f.StrengthMultiplier()))
	b.ApplyDamage(DamageSpec{
		Culprit:              index,
		Target:               f.Target,
		Kind:                 domain.DamageKindPhysical,
		Amount:               amount,
		BalanceEffectiveness: 15,
		Accuracy:             92,
	})
}

// executeSkill pays the ether cost and runs the skill.
func (b *Battle) executeSkill(index FighterIndex, skillIndex int) (InputResult, error) {
	f := b.Fighter(index)
	if skillIndex < 0 || skillIndex >= len(f.Skills) {
		return ResultReinput, domain.ErrInvalidInput
	}
	skill := f.Skills[skillIndex]
	api := b.NewAPI(index)

	data := skill.Data(f)
	if f.Ether.Value < data.EtherCost {
		return ResultReinput, domain.ErrNotEnoughEther
	}
	if !skill.CanUse(api) {
		return ResultReinput, fmt.Errorf("%w: %s cannot be used now", domain.ErrInvalidInput, data.Name)
	}

	f.Ether.Subtract(data.EtherCost)
	if err := skill.OnUse(api); err != nil {
		return ResultActed, err
	}
	return ResultActed, nil
}

// executeFinisher resolves a finisher. A failed roll still consumes the
// attacker's turn.
func (b *Battle) executeFinisher(index FighterIndex, finisherIndex int) (InputResult, error) {
	f := b.Fighter(index)
	if finisherIndex < 0 || finisherIndex >= len(f.Finishers) {
		return ResultReinput, domain.ErrInvalidInput
	}
	target := b.Fighter(f.Target)
	if !target.CanBeFinished() || f.Composure.Kind != ComposureStanding {
		return ResultReinput, domain.ErrInvalidTarget
	}

	finisher := f.Finishers[finisherIndex]
	if finisher.FailProbability.Passes(b.rng) {
		b.EmitMessage(fmt.Sprintf("%s's %s failed!", f.Name, finisher.Name))
		return ResultActed, nil
	}

	idx := index
	target.IsDefeated = true
	if finisher.Fatal {
		target.Vitality.Value = 0
		target.KilledBy = &idx
		b.EmitMessage(fmt.Sprintf("%s executed %s with %s!", f.Name, target.Name, finisher.Name))
	} else {
		target.DefeatedBy = &idx
		b.EmitMessage(fmt.Sprintf("%s knocked %s out cold.", f.Name, target.Name))
	}
	return ResultActed, nil
}

// CloseAction finishes the current fighter's turn: effect ticks, queued
// damage, passive ticks, possible round close, reaping, end check, and
// scheduler advance. Returns the closed turn record.
func (b *Battle) CloseAction() TurnRecord {
	active := b.CurrentFighter()

	b.tickActionEffects(active)

	queued := b.queuedDamage
	b.queuedDamage = nil
	for _, spec := range queued {
		if !b.Fighter(spec.Target).IsDefeated {
			b.ApplyDamage(spec)
		}
	}

	// Fighter ticks run on every fighter in ascending index order.
	for _, f := range b.fighters {
		if f.IsDefeated {
			continue
		}
		api := b.NewAPI(f.Index)
		for _, s := range f.Skills {
			s.TickFighter(api)
		}
		for _, p := range f.Pacts {
			if h, ok := p.(PactFighterTicker); ok {
				h.FighterTick(api)
			}
		}
	}

	// Airborne fighters come down at the end of their turn.
	if f := b.Fighter(active); f.Composure.Kind == ComposureOnAir {
		f.Composure = Standing()
	}

	b.turnCounter++
	b.actionsInRound++
	if b.actionsInRound >= len(b.aliveFighters) {
		b.closeRound()
		b.actionsInRound = 0
	}

	b.reapDefeated()
	b.fixTargets()
	b.checkEnd()

	record := TurnRecord{
		Turn:     b.turnCounter,
		Fighter:  active,
		Messages: b.turnMessages,
	}
	b.history = append(b.history, record)
	b.turnMessages = b.deferredMessages
	b.deferredMessages = nil

	b.advance(active)
	return record
}

// advance moves the scheduler to the next alive fighter after the one that
// just acted.
func (b *Battle) advance(justActed FighterIndex) {
	if len(b.aliveFighters) == 0 {
		return
	}
	// The active fighter may have been reaped; find where to continue.
	pos := -1
	for i, idx := range b.aliveFighters {
		if idx > justActed {
			pos = i
			break
		}
	}
	if pos == -1 {
		pos = 0
	}
	b.current = pos
}

// closeRound runs end-of-round upkeep for every alive fighter.
func (b *Battle) closeRound() {
	for _, idx := range b.aliveFighters {
		f := b.Fighter(idx)
		b.tickRoundEffects(idx)

		if regen := f.EtherRegenPerRound(); regen > 0 {
			f.Ether.Add(regen)
		}

		// Balance recovers, slower on icy footing.
		recovery := int32(10)
		if ice, ok := f.GetEffect(EffectIce); ok {
			recovery = int32(math.Round(10 * (1 - float64(ice.Amount)/150)))
			if recovery < 1 {
				recovery = 1
			}
		}
		f.AddBalance(recovery)

		if f.Defense > 0 {
			f.Defense--
		}

		f.Modifiers.TickRound()

		api := b.NewAPI(idx)
		for _, p := range f.Pacts {
			if h, ok := p.(PactRoundHook); ok {
				h.OnRoundEnd(api)
			}
		}
		for _, s := range f.Skills {
			s.TickCycle(api)
		}
	}
}

// reapDefeated moves newly defeated fighters out of the alive set, emits
// the death or knockout narration, and fires the killer's on-kill hooks.
func (b *Battle) reapDefeated() {
	alive := b.aliveFighters[:0]
	for _, idx := range b.aliveFighters {
		f := b.Fighter(idx)
		if !f.IsDefeated {
			alive = append(alive, idx)
			continue
		}
		b.defeatedFighters = append(b.defeatedFighters, idx)

		switch {
		case f.KilledBy != nil:
			killer := b.Fighter(*f.KilledBy)
			b.EmitMessage(fmt.Sprintf("%s was slain by %s.", f.Name, killer.Name))
			if *f.KilledBy != idx {
				api := b.apiFor(*f.KilledBy, idx)
				for _, s := range killer.Skills {
					s.NotifyKill(api, idx)
				}
			}
		case f.DefeatedBy != nil:
			b.EmitMessage(fmt.Sprintf("%s is out of the fight.", f.Name))
		default:
			b.EmitMessage(fmt.Sprintf("%s collapsed.", f.Name))
		}
	}
	b.aliveFighters = alive
	if b.current >= len(b.aliveFighters) {
		b.current = 0
	}
}

// fixTargets re-allocates any alive fighter whose target died or defected.
func (b *Battle) fixTargets() {
	for _, idx := range b.aliveFighters {
		f := b.Fighter(idx)
		t := b.Fighter(f.Target)
		if t.IsDefeated || t.Team == f.Team {
			b.ReallocateFighterTarget(idx)
		}
	}
}

// checkEnd transitions to Ended when at most one team stands.
func (b *Battle) checkEnd() {
	if b.state.Kind != StateRunning || len(b.aliveFighters) == 0 {
		if len(b.aliveFighters) == 0 && b.state.Kind == StateRunning {
			b.state = State{Kind: StateEnded}
		}
		return
	}
	winner := b.Fighter(b.aliveFighters[0]).Team
	for _, idx := range b.aliveFighters[1:] {
		if b.Fighter(idx).Team != winner {
			return
		}
	}
	b.state = State{
		Kind:       StateEnded,
		WinnerTeam: winner,
		Winners:    append([]FighterIndex(nil), b.aliveFighters...),
	}
}
