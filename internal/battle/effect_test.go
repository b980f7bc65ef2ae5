package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/domain"
)

func TestApplyEffect(t *testing.T) {
	t.Run("same-kind effects merge up to the ceiling", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(1, Effect{Kind: EffectBleeding, Amount: 60, Culprit: 0})
		b.ApplyEffect(1, Effect{Kind: EffectBleeding, Amount: 60, Culprit: 0})
		bleed, ok := b.Fighter(1).GetEffect(EffectBleeding)
		require.True(t, ok)
		assert.Equal(t, EffectBleeding.Ceiling(), bleed.Amount)
	})

	t.Run("frozen turns cap low", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(1, Effect{Kind: EffectFrozen, Amount: 10, Culprit: 0})
		frozen, _ := b.Fighter(1).GetEffect(EffectFrozen)
		assert.Equal(t, int32(4), frozen.Amount)
	})

	t.Run("modifier immunity blocks the effect", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.Fighter(1).Modifiers.Add(EffectImmunityModifier(EffectPoisoned))
		b.ApplyEffect(1, Effect{Kind: EffectPoisoned, Amount: 50, Culprit: 0})
		assert.False(t, b.Fighter(1).HasEffect(EffectPoisoned))
	})

	t.Run("body immunity scales the applied amount", func(t *testing.T) {
		target := testFighterData("b", 1)
		target.Immunities = domain.BodyImmunities{domain.ImmunityBleeding: 0.5}
		b := newTestBattle(t, Settings{}, testFighterData("a", 0), target)
		b.ApplyEffect(1, Effect{Kind: EffectBleeding, Amount: 40, Culprit: 0})
		bleed, ok := b.Fighter(1).GetEffect(EffectBleeding)
		require.True(t, ok)
		assert.Equal(t, int32(20), bleed.Amount)
	})

	t.Run("full body immunity blocks entirely", func(t *testing.T) {
		target := testFighterData("b", 1)
		target.Immunities = domain.BodyImmunities{domain.ImmunityIce: 1}
		b := newTestBattle(t, Settings{}, testFighterData("a", 0), target)
		b.ApplyEffect(1, Effect{Kind: EffectFrozen, Amount: 2, Culprit: 0})
		assert.False(t, b.Fighter(1).HasEffect(EffectFrozen))
	})

	t.Run("wet negates new fire", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(1, Effect{Kind: EffectWet, Amount: 40, Culprit: 0})
		b.ApplyEffect(1, Effect{Kind: EffectBurning, Amount: 50, Culprit: 0})
		assert.False(t, b.Fighter(1).HasEffect(EffectBurning))
	})

	t.Run("new wet douses existing fire", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(1, Effect{Kind: EffectFlaming, Amount: 50, Culprit: 0})
		b.ApplyEffect(1, Effect{Kind: EffectWet, Amount: 40, Culprit: 0})
		assert.False(t, b.Fighter(1).HasEffect(EffectFlaming))
		assert.True(t, b.Fighter(1).HasEffect(EffectWet))
	})

	t.Run("burning and flaming keep the stronger", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(1, Effect{Kind: EffectBurning, Amount: 60, Culprit: 0})
		b.ApplyEffect(1, Effect{Kind: EffectFlaming, Amount: 40, Culprit: 0})
		assert.True(t, b.Fighter(1).HasEffect(EffectBurning))
		assert.False(t, b.Fighter(1).HasEffect(EffectFlaming))

		b.ApplyEffect(1, Effect{Kind: EffectFlaming, Amount: 80, Culprit: 0})
		assert.False(t, b.Fighter(1).HasEffect(EffectBurning))
		assert.True(t, b.Fighter(1).HasEffect(EffectFlaming))
	})
}

func TestActionTicks(t *testing.T) {
	// forceTick closes the active fighter's action with a no-op input.
	forceTick := func(t *testing.T, b *Battle) {
		t.Helper()
		_, err := b.ExecuteInput(b.CurrentFighter(), Nothing())
		require.NoError(t, err)
		b.CloseAction()
	}

	t.Run("bleeding ticks at the end of the afflicted turn", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(0, Effect{Kind: EffectBleeding, Amount: 40, Culprit: 1})
		before := b.Fighter(0).Resistance.Value
		forceTick(t, b)
		assert.Equal(t, before-2, b.Fighter(0).Resistance.Value, "40/20 tick damage")
		bleed, ok := b.Fighter(0).GetEffect(EffectBleeding)
		require.True(t, ok)
		assert.Equal(t, int32(39), bleed.Amount, "bleeding decays by one")
	})

	t.Run("bleeding ticks past cut immunity", func(t *testing.T) {
		victim := testFighterData("a", 0)
		victim.Immunities = domain.BodyImmunities{domain.ImmunityCut: 1}
		b := newTestBattle(t, Settings{}, victim, testFighterData("b", 1))
		// The wound is already open; the tick is internal damage, not
		// another cut.
		b.ApplyEffect(0, Effect{Kind: EffectBleeding, Amount: 40, Culprit: 1})
		before := b.Fighter(0).Resistance.Value
		forceTick(t, b)
		assert.Equal(t, before-2, b.Fighter(0).Resistance.Value)
	})

	t.Run("effects do not tick on other fighters' turns", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(1, Effect{Kind: EffectBleeding, Amount: 40, Culprit: 0})
		before := b.Fighter(1).Resistance.Value
		forceTick(t, b) // fighter 0 acts
		assert.Equal(t, before, b.Fighter(1).Resistance.Value)
	})

	t.Run("poison bypasses immunities", func(t *testing.T) {
		victim := testFighterData("a", 0)
		victim.Immunities = domain.BodyImmunities{domain.ImmunityPoison: 0.9}
		b := newTestBattle(t, Settings{}, victim, testFighterData("b", 1))
		// Body immunity scales application, but an already-attached dose
		// ticks at full strength.
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectPoisoned, Amount: 45, Culprit: 1})
		before := b.Fighter(0).Resistance.Value
		forceTick(t, b)
		assert.Equal(t, before-3, b.Fighter(0).Resistance.Value, "45/15 raw damage")
	})

	t.Run("frozen counts down on the skipped turn", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectFrozen, Amount: 2, Culprit: 1})
		require.Equal(t, SkipFrozen, b.MustSkip(0))
		forceTick(t, b)
		frozen, ok := b.Fighter(0).GetEffect(EffectFrozen)
		require.True(t, ok)
		assert.Equal(t, int32(1), frozen.Amount)

		forceTick(t, b) // fighter 1
		forceTick(t, b) // fighter 0 again
		assert.False(t, b.Fighter(0).HasEffect(EffectFrozen))
		assert.Equal(t, SkipNone, b.MustSkip(0))
	})

	t.Run("curse decays without dealing tick damage", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectCurse, Amount: 50, Culprit: 1})
		before := b.Fighter(0).Resistance.Value
		forceTick(t, b)
		assert.Equal(t, before, b.Fighter(0).Resistance.Value)
		curse, ok := b.Fighter(0).GetEffect(EffectCurse)
		require.True(t, ok)
		assert.Equal(t, int32(45), curse.Amount, "50/10 decay")
	})
}

func TestRoundTicks(t *testing.T) {
	// closeRoundFor runs a full round of no-op actions.
	closeRound := func(t *testing.T, b *Battle) {
		t.Helper()
		for range b.AliveFighters() {
			_, err := b.ExecuteInput(b.CurrentFighter(), Nothing())
			require.NoError(t, err)
			b.CloseAction()
		}
	}

	t.Run("wet dries off over rounds", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.ApplyEffect(0, Effect{Kind: EffectWet, Amount: 25, Culprit: 1})
		closeRound(t, b)
		wet, ok := b.Fighter(0).GetEffect(EffectWet)
		require.True(t, ok)
		assert.Equal(t, int32(15), wet.Amount)
		closeRound(t, b)
		closeRound(t, b)
		assert.False(t, b.Fighter(0).HasEffect(EffectWet))
	})

	t.Run("exposed guard and exhaustion recover at round close", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectExposedGuard, Amount: 1, Culprit: 1},
			Effect{Kind: EffectExhausted, Amount: 1, Culprit: 1})
		closeRound(t, b)
		assert.False(t, b.Fighter(0).HasEffect(EffectExposedGuard))
		assert.False(t, b.Fighter(0).HasEffect(EffectExhausted))
	})

	t.Run("heavy ice can freeze and always melts down", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectIce, Amount: 90, Culprit: 1})
		closeRound(t, b)
		ice, ok := b.Fighter(0).GetEffect(EffectIce)
		require.True(t, ok)
		assert.Equal(t, int32(40), ice.Amount, "heavy ice sheds 50 per round")
	})

	t.Run("light ice never freezes", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectIce, Amount: 40, Culprit: 1})
		closeRound(t, b)
		assert.False(t, b.Fighter(0).HasEffect(EffectFrozen))
		assert.True(t, b.Fighter(0).HasEffect(EffectIce))
	})

	t.Run("icy footing slows balance recovery", func(t *testing.T) {
		b := newTestBattle(t, Settings{},
			testFighterData("a", 0), testFighterData("b", 1))
		iced := b.Fighter(0)
		iced.Balance = 50
		iced.Effects = append(iced.Effects, Effect{Kind: EffectIce, Amount: 60, Culprit: 1})
		clean := b.Fighter(1)
		clean.Balance = 50
		closeRound(t, b)
		assert.Equal(t, int32(60), clean.Balance, "clean recovery is 10 per round")
		assert.Less(t, iced.Balance, clean.Balance)
	})

	t.Run("exhaustion halves ether regen", func(t *testing.T) {
		a := testFighterData("a", 0)
		a.Ether.Value = 0
		b := newTestBattle(t, Settings{}, a, testFighterData("b", 1))
		b.Fighter(0).Effects = append(b.Fighter(0).Effects,
			Effect{Kind: EffectExhausted, Amount: 2, Culprit: 1})
		closeRound(t, b)
		assert.Equal(t, int32(3), b.Fighter(0).Ether.Value, "round half of 5 up")
	})
}

func TestModifierList(t *testing.T) {
	t.Run("same-kind modifiers stack multiplicatively", func(t *testing.T) {
		var list ModifierList
		list.Add(PermanentModifier(ModifierDmgMultiplier, 2))
		list.Add(PermanentModifier(ModifierDmgMultiplier, 1.5))
		assert.InDelta(t, 3.0, list.OverallDmgMultiplier(), 1e-9)
	})

	t.Run("timed modifiers expire", func(t *testing.T) {
		var list ModifierList
		list.Add(TimedModifier(ModifierDefenseMultiplier, 0.5, 2))
		list.TickRound()
		assert.InDelta(t, 0.5, list.OverallDefenseMultiplier(), 1e-9)
		list.TickRound()
		assert.InDelta(t, 1.0, list.OverallDefenseMultiplier(), 1e-9)
	})

	t.Run("tagged modifiers can be stripped", func(t *testing.T) {
		var list ModifierList
		list.Add(PermanentModifier(ModifierDmgMultiplier, 2, "berserk"))
		list.RemoveByTag("berserk")
		assert.InDelta(t, 1.0, list.OverallDmgMultiplier(), 1e-9)
	})
}
