package pact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func fighterData(name string, team uint8, pacts ...domain.PactKind) domain.FighterData {
	return domain.FighterData{
		Team:              team,
		Name:              name,
		User:              name,
		PactKinds:         pacts,
		StrengthLevel:     10,
		IntelligenceLevel: 10,
		Vitality:          domain.Attribute{Value: 100, Max: 100},
		Resistance:        domain.Attribute{Value: 100, Max: 100},
		Ether:             domain.Attribute{Value: 100, Max: 100},
	}
}

func newBattle(t *testing.T, fighters ...domain.FighterData) *battle.Battle {
	t.Helper()
	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 11, fighters...)
	require.NoError(t, err)
	return b
}

func closeRound(t *testing.T, b *battle.Battle) {
	t.Helper()
	for range b.AliveFighters() {
		_, err := b.ExecuteInput(b.CurrentFighter(), battle.Nothing())
		require.NoError(t, err)
		b.CloseAction()
	}
}

func TestSolidity(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0),
		fighterData("b", 1, domain.PactSolidity))
	report := b.ApplyDamage(battle.DamageSpec{
		Culprit: 0, Target: 1,
		Kind: domain.DamageKindPhysical, Amount: 100, Accuracy: 255,
	})
	assert.Equal(t, int32(85), report.Amount)
}

func TestHerculesAndAthena(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactHercules, domain.PactAthena),
		fighterData("b", 1))
	f := b.Fighter(0)
	assert.Equal(t, int32(17), f.StrengthLevel)
	assert.Equal(t, int32(17), f.IntelligenceLevel)
}

func TestThoth(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactThoth),
		fighterData("b", 1))
	f := b.Fighter(0)
	assert.Equal(t, int32(80), f.Vitality.Max)
	assert.Equal(t, int32(80), f.Resistance.Max)
	assert.Equal(t, int32(140), f.Ether.Max)
	assert.Equal(t, int32(140), f.Ether.Value)
}

func TestAres(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactAres),
		fighterData("b", 1))
	closeRound(t, b)
	assert.InDelta(t, 0.15, b.Fighter(0).Overload, 0.001)
}

func TestUnshakable(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactUnshakable),
		fighterData("b", 1))
	f := b.Fighter(0)

	// The pact picks the fighter up at the end of actions, twice only.
	for i := 0; i < 2; i++ {
		f.Composure = battle.OnGround()
		_, err := b.ExecuteInput(b.CurrentFighter(), battle.Nothing())
		require.NoError(t, err)
		b.CloseAction()
		assert.Equal(t, battle.ComposureStanding, f.Composure.Kind, "rescue %d", i+1)
	}

	f.Composure = battle.OnGround()
	_, err := b.ExecuteInput(b.CurrentFighter(), battle.Nothing())
	require.NoError(t, err)
	b.CloseAction()
	assert.Equal(t, battle.ComposureOnGround, f.Composure.Kind, "the third fall sticks")
}

func TestPhoenix(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactPhoenix),
		fighterData("b", 1))
	f := b.Fighter(0)
	f.Resistance.Value = 50
	closeRound(t, b)
	assert.Equal(t, int32(53), f.Resistance.Value, "1.5% of 200 per round")
}

func TestCoward(t *testing.T) {
	spec := battle.DamageSpec{
		Culprit: 0, Target: 1,
		Kind: domain.DamageKindPhysical, Amount: 10,
		BalanceEffectiveness: 10, Accuracy: 255,
	}
	b := newBattle(t,
		fighterData("a", 0, domain.PactCoward),
		fighterData("b", 1))
	b.ApplyDamage(spec)
	assert.Equal(t, int32(100-13), b.Fighter(1).Balance, "three extra balance break")
}

func TestApollo(t *testing.T) {
	// Accuracy zero normally always misses; Apollo lifts it to eight.
	b := newBattle(t,
		fighterData("a", 0, domain.PactApollo),
		fighterData("b", 1))
	hits := 0
	for i := 0; i < 200; i++ {
		report := b.ApplyDamage(battle.DamageSpec{
			Culprit: 0, Target: 1,
			Kind: domain.DamageKindPhysical, Amount: 0, Accuracy: 0,
		})
		if !report.Missed {
			hits++
		}
	}
	assert.Greater(t, hits, 0)
	assert.Less(t, hits, 50)
}

func TestHydra(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactHydra),
		fighterData("b", 1))
	f := b.Fighter(0)

	f.Resistance.Value = 20
	_, err := b.ExecuteInput(b.CurrentFighter(), battle.Nothing())
	require.NoError(t, err)
	b.CloseAction()
	assert.Equal(t, int32(45), f.Resistance.Value, "one surge of a quarter max")

	f.Resistance.Value = 20
	closeRound(t, b)
	assert.Equal(t, int32(20), f.Resistance.Value, "the surge never repeats")
}

func TestAresDamageBonus(t *testing.T) {
	b := newBattle(t,
		fighterData("a", 0, domain.PactAres),
		fighterData("b", 1))
	report := b.ApplyDamage(battle.DamageSpec{
		Culprit: 0, Target: 1,
		Kind: domain.DamageKindPhysical, Amount: 100, Accuracy: 255,
	})
	assert.Equal(t, int32(110), report.Amount)
}
