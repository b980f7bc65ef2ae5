package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func enemyData(name string, team uint8, kind domain.BrainKind) domain.FighterData {
	return domain.FighterData{
		Team:              team,
		Name:              name,
		Brain:             &kind,
		StrengthLevel:     10,
		IntelligenceLevel: 10,
		Vitality:          domain.Attribute{Value: 100, Max: 100},
		Resistance:        domain.Attribute{Value: 100, Max: 100},
		Ether:             domain.Attribute{Value: 100, Max: 100},
	}
}

func newBattle(t *testing.T, fighters ...domain.FighterData) *battle.Battle {
	t.Helper()
	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 3, fighters...)
	require.NoError(t, err)
	return b
}

func TestSimpleSelectInput(t *testing.T) {
	t.Run("downed fighters get up or upkick", func(t *testing.T) {
		b := newBattle(t,
			enemyData("a", 0, domain.BrainSimple),
			enemyData("b", 1, domain.BrainSimple))
		f := b.Fighter(0)
		f.Composure = battle.OnGround()
		input := f.Brain.SelectInput(b.NewAPI(0))
		assert.Contains(t,
			[]battle.InputKind{battle.InputGetUp, battle.InputUpkick}, input.Kind)
	})

	t.Run("open targets draw a finisher", func(t *testing.T) {
		b := newBattle(t,
			enemyData("a", 0, domain.BrainSimple),
			enemyData("b", 1, domain.BrainSimple))
		victim := b.Fighter(1)
		victim.Resistance.Value = 0
		victim.Vitality.Value = 10
		input := b.Fighter(0).Brain.SelectInput(b.NewAPI(0))
		assert.Equal(t, battle.InputFinish, input.Kind)
	})

	t.Run("standing fighters attack or defend", func(t *testing.T) {
		b := newBattle(t,
			enemyData("a", 0, domain.BrainSimple),
			enemyData("b", 1, domain.BrainSimple))
		input := b.Fighter(0).Brain.SelectInput(b.NewAPI(0))
		assert.Contains(t,
			[]battle.InputKind{battle.InputAttack, battle.InputDefend}, input.Kind)
	})

	t.Run("insanity never defends", func(t *testing.T) {
		b := newBattle(t,
			enemyData("a", 0, domain.BrainSimple),
			enemyData("b", 1, domain.BrainSimple))
		f := b.Fighter(0)
		f.Personalities = []domain.Personality{domain.PersonalityInsanity}
		f.Resistance.Value = 10 // heavy defend bias if it were allowed
		f.Ether.Value = 0
		for i := 0; i < 50; i++ {
			input := f.Brain.SelectInput(b.NewAPI(0))
			assert.NotEqual(t, battle.InputDefend, input.Kind)
		}
	})
}

func TestInsane(t *testing.T) {
	t.Run("always risks life", func(t *testing.T) {
		b := newBattle(t,
			enemyData("a", 0, domain.BrainInsane),
			enemyData("b", 1, domain.BrainSimple))
		f := b.Fighter(0)
		for i := 0; i < 20; i++ {
			assert.True(t, f.Brain.ShouldRiskLife(b.NewAPI(0)))
		}
	})

	t.Run("switches targets on a whim", func(t *testing.T) {
		b := newBattle(t,
			enemyData("a", 0, domain.BrainInsane),
			enemyData("b", 1, domain.BrainSimple),
			enemyData("c", 1, domain.BrainSimple))
		f := b.Fighter(0)
		sawSwitch := false
		for i := 0; i < 100 && !sawSwitch; i++ {
			input := f.Brain.SelectInput(b.NewAPI(0))
			sawSwitch = input.Kind == battle.InputChangeTarget
		}
		assert.True(t, sawSwitch)
	})
}

func TestRiskLifePriors(t *testing.T) {
	risks := func(t *testing.T, personality domain.Personality) int {
		t.Helper()
		b := newBattle(t,
			enemyData("a", 0, domain.BrainSimple),
			enemyData("b", 1, domain.BrainSimple))
		f := b.Fighter(0)
		f.Personalities = []domain.Personality{personality}
		count := 0
		for i := 0; i < 300; i++ {
			if f.Brain.ShouldRiskLife(b.NewAPI(0)) {
				count++
			}
		}
		return count
	}

	brave := risks(t, domain.PersonalityCourage)
	coward := risks(t, domain.PersonalityCowardice)
	assert.Greater(t, brave, coward, "courage gambles more than cowardice")
}

func TestTeamJoinPolicy(t *testing.T) {
	b := newBattle(t,
		enemyData("a", 0, domain.BrainSimple),
		enemyData("b", 1, domain.BrainBoss))
	candidate := enemyData("c", 0, domain.BrainSimple)
	assert.False(t, b.Fighter(0).Brain.AllowFighterToEnterTeam(b.NewAPI(0), candidate))
	assert.False(t, b.Fighter(1).Brain.AllowFighterToEnterTeam(b.NewAPI(1), candidate))
}

func TestBossAggression(t *testing.T) {
	countDefends := func(t *testing.T, kind domain.BrainKind) int {
		t.Helper()
		b := newBattle(t,
			enemyData("a", 0, kind),
			enemyData("b", 1, domain.BrainSimple))
		f := b.Fighter(0)
		f.Resistance.Value = 20 // strong defend bias for a Simple brain
		count := 0
		for i := 0; i < 300; i++ {
			if f.Brain.SelectInput(b.NewAPI(0)).Kind == battle.InputDefend {
				count++
			}
		}
		return count
	}

	assert.Greater(t, countDefends(t, domain.BrainSimple), countDefends(t, domain.BrainBoss))
}
