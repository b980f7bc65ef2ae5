package skill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/battle"
	_ "github.com/etheris-rpg/etheris/internal/brain"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func fighterData(name string, team uint8, skills ...domain.SkillKind) domain.FighterData {
	return domain.FighterData{
		Team:              team,
		Name:              name,
		User:              name,
		SkillKinds:        skills,
		StrengthLevel:     10,
		IntelligenceLevel: 10,
		Vitality:          domain.Attribute{Value: 100, Max: 100},
		Resistance:        domain.Attribute{Value: 100, Max: 100},
		Ether:             domain.Attribute{Value: 100, Max: 100},
	}
}

func newBattle(t *testing.T, fighters ...domain.FighterData) *battle.Battle {
	t.Helper()
	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 7, fighters...)
	require.NoError(t, err)
	return b
}

// skillState extracts the concrete skill behind the fighter's slot.
func skillState[T battle.Skill](t *testing.T, f *battle.Fighter, slot int) T {
	t.Helper()
	var out T
	f.Skills[slot].With(func(impl battle.Skill) {
		concrete, ok := impl.(T)
		require.True(t, ok, "slot %d holds %T", slot, impl)
		out = concrete
	})
	return out
}

func TestCharge(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillCharge),
		fighterData("b", 1))
	a := b.Fighter(0)
	a.Balance = 50

	// First use winds up: no damage, balance rises.
	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.Equal(t, int32(60), a.Balance)
	assert.Equal(t, int32(100), b.Fighter(1).Resistance.Value)
	assert.True(t, skillState[*Charge](t, a, 0).charged)

	// Second use releases the blow.
	_, err = b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.False(t, skillState[*Charge](t, a, 0).charged)

	// The release can whiff; wind up and swing until it lands.
	for i := 0; i < 10 && b.Fighter(1).Resistance.Value == 100; i++ {
		a.Ether.Refill()
		_, err = b.ExecuteInput(0, battle.UseSkill(0))
		require.NoError(t, err)
		_, err = b.ExecuteInput(0, battle.UseSkill(0))
		require.NoError(t, err)
	}
	assert.Less(t, b.Fighter(1).Resistance.Value, int32(100))
}

func TestMirrorDamage(t *testing.T) {
	t.Run("accumulates by damage kind", func(t *testing.T) {
		b := newBattle(t,
			fighterData("a", 0, domain.SkillMirrorDamage),
			fighterData("b", 1))

		b.ApplyDamage(battle.DamageSpec{
			Culprit: 1, Target: 0,
			Kind: domain.DamageKindPhysical, Amount: 100, Accuracy: 255,
		})
		mirror := skillState[*MirrorDamage](t, b.Fighter(0), 0)
		assert.Equal(t, int32(40), mirror.accumulated, "40% of physical")

		b.ApplyDamage(battle.DamageSpec{
			Culprit: 1, Target: 0,
			Kind: domain.DamageKindCut, Amount: 100, Accuracy: 255,
		})
		assert.Equal(t, int32(55), mirror.accumulated, "plus 15% of cut")

		b.ApplyDamage(battle.DamageSpec{
			Culprit: 1, Target: 0,
			Kind: domain.DamageKindFire, Amount: 100, Accuracy: 255,
		})
		assert.Equal(t, int32(55), mirror.accumulated, "fire is not banked")
	})

	t.Run("caps at one thousand", func(t *testing.T) {
		b := newBattle(t,
			fighterData("a", 0, domain.SkillMirrorDamage),
			fighterData("b", 1))
		mirror := skillState[*MirrorDamage](t, b.Fighter(0), 0)
		mirror.accumulated = 990
		b.Fighter(0).Resistance.Value = 10000
		b.Fighter(0).Resistance.Max = 10000
		b.ApplyDamage(battle.DamageSpec{
			Culprit: 1, Target: 0,
			Kind: domain.DamageKindPhysical, Amount: 500, Accuracy: 255,
		})
		assert.Equal(t, int32(1000), mirror.accumulated)
	})

	t.Run("release empties the accumulator", func(t *testing.T) {
		b := newBattle(t,
			fighterData("a", 0, domain.SkillMirrorDamage),
			fighterData("b", 1))
		mirror := skillState[*MirrorDamage](t, b.Fighter(0), 0)
		assert.False(t, b.Fighter(0).Skills[0].CanUse(b.NewAPI(0)), "nothing stored yet")

		mirror.accumulated = 60
		_, err := b.ExecuteInput(0, battle.UseSkill(0))
		require.NoError(t, err)
		assert.Equal(t, int32(0), mirror.accumulated)
	})
}

func TestTenkuKikan(t *testing.T) {
	b := newBattle(t,
		fighterData("reaper", 0, domain.SkillTenkuKikan),
		fighterData("victim", 1, domain.SkillSimpleCut),
		fighterData("other", 1))
	reaper := b.Fighter(0)
	victim := b.Fighter(1)
	reaper.Target = 1

	// No soul yet: the skill cannot fire.
	assert.False(t, reaper.Skills[0].CanUse(b.NewAPI(0)))

	// Kill the victim with a fatal finisher.
	victim.Resistance.Value = 0
	victim.Vitality.Value = 5
	reaper.Finishers = []battle.Finisher{{Name: "Execution", Fatal: true, FailProbability: domain.Never}}
	_, err := b.ExecuteInput(0, battle.Finish(0))
	require.NoError(t, err)
	b.CloseAction()

	tenku := skillState[*TenkuKikan](t, reaper, 0)
	require.NotNil(t, tenku.StoredSoul(), "the kill stores the soul")
	assert.Equal(t, "victim", tenku.StoredSoul().Name)
	assert.Equal(t, []domain.SkillKind{domain.SkillSimpleCut}, tenku.StoredSoul().SkillKinds)

	// Raise the replica.
	overloadBefore := reaper.Overload
	_, err = b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)

	require.Len(t, b.Fighters(), 4)
	replica := b.Fighter(3)
	assert.Equal(t, reaper.Team, replica.Team)
	assert.Equal(t, "victim", replica.Name)
	assert.Equal(t, int32(70), replica.Vitality.Max, "70% vitality")
	assert.Equal(t, int32(60), replica.Resistance.Max, "60% resistance")
	assert.Equal(t, int32(70), replica.Ether.Max, "70% ether")
	assert.NotNil(t, replica.Brain)
	assert.Nil(t, tenku.StoredSoul(), "the soul slot empties")
	assert.InDelta(t, overloadBefore+40, reaper.Overload, 0.001)
}

func TestBite(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillBite),
		fighterData("b", 1))
	b.Fighter(1).Ether.Value = 80

	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	// Cost 5 paid; a hit steals a tenth of the target's ether (the gain
	// clamps at the attacker's max).
	if b.Fighter(1).Ether.Value < 80 {
		assert.Equal(t, int32(72), b.Fighter(1).Ether.Value)
		assert.Equal(t, int32(100), b.Fighter(0).Ether.Value)
	}
}

func TestYinYang(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillYinYang),
		fighterData("b", 1))
	f := b.Fighter(0)

	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f.Modifiers.OverallDmgMultiplier(), 1e-9, "Yin doubles damage")
	assert.InDelta(t, 1.0, f.Modifiers.OverallDefenseMultiplier(), 1e-9)

	_, err = b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, f.Modifiers.OverallDmgMultiplier(), 1e-9)
	assert.InDelta(t, 0.5, f.Modifiers.OverallDefenseMultiplier(), 1e-9, "Yang halves incoming")

	_, err = b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, f.Modifiers.OverallDmgMultiplier(), 1e-9)
	assert.InDelta(t, 1.0, f.Modifiers.OverallDefenseMultiplier(), 1e-9, "back to neutral")
}

func TestHakikotenchou(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillHakikotenchou),
		fighterData("b", 1))
	f := b.Fighter(0)

	assert.False(t, f.Skills[0].CanUse(b.NewAPI(0)), "needs 80 overload")

	f.Overload = 100
	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.InDelta(t, 20, f.Overload, 0.001)
	assert.True(t, f.HasEffect(battle.EffectFrozen))
	assert.True(t, f.HasEffect(battle.EffectExposedGuard))
}

func TestEtherFlow(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillEtherFlow),
		fighterData("b", 1))
	f := b.Fighter(0)
	f.Ether.Value = 50

	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	flow := skillState[*EtherFlow](t, f, 0)
	assert.Equal(t, etherFlowRounds, flow.roundsLeft)
	assert.False(t, f.Skills[0].CanUse(b.NewAPI(0)), "no restart mid-flow")

	// Close one full round: base 5% regen plus the 8% flow bonus.
	b.CloseAction()
	_, err = b.ExecuteInput(b.CurrentFighter(), battle.Nothing())
	require.NoError(t, err)
	b.CloseAction()
	assert.Equal(t, etherFlowRounds-1, flow.roundsLeft)
	assert.Equal(t, int32(53), f.Ether.Value, "40 after cost, +5 regen, +8 flow")
}

func TestOvercoming(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillOvercoming),
		fighterData("b", 1))
	f := b.Fighter(0)
	f.Ether.Max = 200
	f.Ether.Value = 200

	for i := 1; i <= overcomingMaxStacks; i++ {
		_, err := b.ExecuteInput(0, battle.UseSkill(0))
		require.NoError(t, err)
	}
	assert.InDelta(t, 1.15*1.15*1.15, f.Modifiers.OverallDmgMultiplier(), 1e-9)
	assert.False(t, f.Skills[0].CanUse(b.NewAPI(0)), "ramp is capped")
}

func TestParalyzingBet(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillParalyzingBet),
		fighterData("b", 1))
	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)

	caster := b.Fighter(0).HasEffect(battle.EffectParalyzed)
	target := b.Fighter(1).HasEffect(battle.EffectParalyzed)
	assert.True(t, caster != target, "exactly one side is paralyzed")
}

func TestFinalCrucifix(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillFinalCrucifix),
		fighterData("b", 1),
		fighterData("c", 1))
	f := b.Fighter(0)

	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)

	assert.Equal(t, int32(85), f.Resistance.Value, "15% of max paid in flesh")
	assert.True(t, f.HasFlag(battle.FlagCannotRegenEther))
	assert.Less(t, b.Fighter(1).Resistance.Value, int32(100))
	assert.Less(t, b.Fighter(2).Resistance.Value, int32(100))
	assert.InDelta(t, 15, f.Overload, 0.001)
	assert.False(t, f.Skills[0].CanUse(b.NewAPI(0)), "cannot fire twice")
}

func TestSuplex(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillSuplex),
		fighterData("b", 1))

	assert.False(t, b.Fighter(0).Skills[0].CanUse(b.NewAPI(0)), "steady targets resist grabs")

	b.Fighter(1).Balance = 30
	assert.True(t, b.Fighter(0).Skills[0].CanUse(b.NewAPI(0)))
}

func TestBloodDonation(t *testing.T) {
	b := newBattle(t,
		fighterData("donor", 0, domain.SkillBloodDonation),
		fighterData("ally", 0),
		fighterData("enemy", 1))
	ally := b.Fighter(1)
	ally.Resistance.Value = 10

	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)

	donor := b.Fighter(0)
	assert.Equal(t, int32(180), donor.Health(), "10% of 200 given away")
	assert.Equal(t, int32(30), ally.Resistance.Value)
}

func TestWoundHealing(t *testing.T) {
	b := newBattle(t,
		fighterData("healer", 0, domain.SkillWoundHealing),
		fighterData("ally", 0),
		fighterData("enemy", 1))

	assert.False(t, b.Fighter(0).Skills[0].CanUse(b.NewAPI(0)), "nothing to heal yet")

	b.Fighter(1).Resistance.Value = 20
	require.True(t, b.Fighter(0).Skills[0].CanUse(b.NewAPI(0)))
	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.Greater(t, b.Fighter(1).Resistance.Value, int32(20), "most wounded ally is healed")
}

func TestRefresh(t *testing.T) {
	b := newBattle(t,
		fighterData("cleric", 0, domain.SkillRefresh),
		fighterData("enemy", 1))
	f := b.Fighter(0)

	assert.False(t, f.Skills[0].CanUse(b.NewAPI(0)), "no ailment, no target")

	f.Effects = append(f.Effects, battle.Effect{Kind: battle.EffectBleeding, Amount: 25, Culprit: 1})
	f.Balance = 50
	require.True(t, f.Skills[0].CanUse(b.NewAPI(0)))
	_, err := b.ExecuteInput(0, battle.UseSkill(0))
	require.NoError(t, err)
	assert.False(t, f.HasEffect(battle.EffectBleeding))
	assert.Equal(t, int32(70), f.Balance)
}

// runInput executes one input on its own goroutine and fails the test if
// it does not resolve. Damaging skills fire their own passive hooks from
// inside OnUse, so the whole chain has to unwind on a single call stack.
func runInput(t *testing.T, b *battle.Battle, idx battle.FighterIndex, input battle.Input) {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		_, err := b.ExecuteInput(idx, input)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("input never resolved; hook chain stalled")
	}
}

func TestDamagingSkillResolvesOwnHooks(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.SkillSimpleCut),
		fighterData("b", 1, domain.SkillMirrorDamage))

	// Hit or miss, the culprit's and target's hooks both fire before
	// OnUse returns.
	runInput(t, b, 0, battle.UseSkill(0))

	mirror := skillState[*MirrorDamage](t, b.Fighter(1), 0)
	mirror.accumulated = 60
	runInput(t, b, 1, battle.UseSkill(0))
	assert.Equal(t, int32(0), mirror.accumulated)
}

func TestCounterInsideDamageHookResolves(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0),
		fighterData("b", 1, domain.SkillInstinctiveReaction))

	// Each attack may trigger b's counter, which deals damage from inside
	// the damage hook itself.
	for range 10 {
		runInput(t, b, 0, battle.Attack())
		if b.State().Kind == battle.StateEnded {
			break
		}
	}
}
