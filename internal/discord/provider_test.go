package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/battle"
	_ "github.com/etheris-rpg/etheris/internal/brain"
	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/domain"
	_ "github.com/etheris-rpg/etheris/internal/skill"
)

func humanData(name, user string, team uint8) domain.FighterData {
	return domain.FighterData{
		Team:              team,
		Name:              name,
		User:              user,
		StrengthLevel:     5,
		IntelligenceLevel: 5,
		Vitality:          domain.NewAttribute(100),
		Resistance:        domain.NewAttribute(100),
		Ether:             domain.NewAttribute(100),
	}
}

func grunt(name string, team uint8) domain.FighterData {
	data := humanData(name, "", team)
	kind := domain.BrainSimple
	data.Brain = &kind
	return data
}

func TestParseActionInput(t *testing.T) {
	cases := []struct {
		customID string
		want     battle.Input
	}{
		{actionAttack, battle.Attack()},
		{actionDefend, battle.Defend()},
		{actionNothing, battle.Nothing()},
		{actionGetUp, battle.GetUp()},
		{actionUpkick, battle.Upkick()},
		{"act:skill:2", battle.UseSkill(2)},
		{"act:finish:0", battle.Finish(0)},
		{"act:target:3", battle.ChangeTarget(3)},
	}
	for _, tc := range cases {
		t.Run(tc.customID, func(t *testing.T) {
			input, err := parseActionInput(tc.customID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, input)
		})
	}

	for _, bad := range []string{"bogus", "act:skill:x", "act:target:"} {
		_, err := parseActionInput(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func buttonIDs(row discordgo.MessageComponent) []string {
	actions, ok := row.(discordgo.ActionsRow)
	if !ok {
		return nil
	}
	var ids []string
	for _, c := range actions.Components {
		if btn, ok := c.(discordgo.Button); ok {
			ids = append(ids, btn.CustomID)
		}
	}
	return ids
}

func TestActionComponents(t *testing.T) {
	alice := humanData("Alice", "alice", 0)
	alice.SkillKinds = []domain.SkillKind{domain.SkillFlameBall}

	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 0,
		alice, grunt("Grunt", 1), grunt("Thug", 1))
	require.NoError(t, err)

	t.Run("standing", func(t *testing.T) {
		rows := actionComponents(b.NewAPI(0))
		require.NotEmpty(t, rows)

		core := buttonIDs(rows[0])
		assert.Equal(t, []string{actionAttack, actionDefend, actionNothing}, core)
	})

	t.Run("skill row", func(t *testing.T) {
		rows := actionComponents(b.NewAPI(0))
		require.GreaterOrEqual(t, len(rows), 2)
		assert.Equal(t, []string{"act:skill:0"}, buttonIDs(rows[1]))
	})

	t.Run("retarget menu with multiple enemies", func(t *testing.T) {
		rows := actionComponents(b.NewAPI(0))
		last, ok := rows[len(rows)-1].(discordgo.ActionsRow)
		require.True(t, ok)
		menu, ok := last.Components[0].(discordgo.SelectMenu)
		require.True(t, ok)
		require.Len(t, menu.Options, 2)
		assert.Equal(t, "act:target:1", menu.Options[0].Value)
		assert.Equal(t, "act:target:2", menu.Options[1].Value)
	})

	t.Run("on ground", func(t *testing.T) {
		b.Fighter(0).Composure = battle.OnGround()
		defer func() { b.Fighter(0).Composure = battle.Composure{} }()

		rows := actionComponents(b.NewAPI(0))
		core := buttonIDs(rows[0])
		assert.Equal(t, []string{actionGetUp, actionUpkick, actionNothing}, core)
	})
}

func TestBattleProviderDrivesBattle(t *testing.T) {
	fm := newFakeMessenger()
	fm.defaultClick = actionAttack

	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 0,
		humanData("Alice", "alice", 0), grunt("Grunt", 1))
	require.NoError(t, err)

	c := controller.New(b,
		NewBattleProvider(fm, "chan"),
		NewBattleRenderer(fm, "chan"),
		controller.Options{})

	result, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Winners, 1)

	embeds := fm.sentEmbeds()
	require.NotEmpty(t, embeds)
	var closedVictorious bool
	for _, e := range embeds {
		if e.Color == colorVictory {
			closedVictorious = true
		}
	}
	assert.True(t, closedVictorious, "the final turn embed marks the battle's end")
}

func TestBattleProviderReinputsOnGarbage(t *testing.T) {
	fm := newFakeMessenger()
	fm.queueClick("alice", "act:skill:zzz")

	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 0,
		humanData("Alice", "alice", 0), grunt("Grunt", 1))
	require.NoError(t, err)

	p := NewBattleProvider(fm, "chan")
	input, err := p.NextInput(context.Background(), b.NewAPI(0))
	require.NoError(t, err)
	assert.Equal(t, battle.Reinput(), input, "garbage clicks ask for another input instead of failing the turn")
}

func TestDecideRiskLife(t *testing.T) {
	b, err := battle.New(domain.RegionPlains, battle.Settings{IsRiskingLifeAllowed: true}, 0,
		humanData("Alice", "alice", 0), grunt("Grunt", 1))
	require.NoError(t, err)

	t.Run("risked", func(t *testing.T) {
		fm := newFakeMessenger()
		fm.queueClick("alice", riskYes)

		risk, err := NewBattleProvider(fm, "chan").DecideRiskLife(context.Background(), b.NewAPI(0))
		require.NoError(t, err)
		assert.True(t, risk)
	})

	t.Run("gave up", func(t *testing.T) {
		fm := newFakeMessenger()
		fm.queueClick("alice", riskNo)

		risk, err := NewBattleProvider(fm, "chan").DecideRiskLife(context.Background(), b.NewAPI(0))
		require.NoError(t, err)
		assert.False(t, risk)
	})

	t.Run("timeout surfaces", func(t *testing.T) {
		fm := newFakeMessenger()

		_, err := NewBattleProvider(fm, "chan").DecideRiskLife(context.Background(), b.NewAPI(0))
		assert.ErrorIs(t, err, domain.ErrInputTimeout)
	})
}

func TestApproveTeamJoin(t *testing.T) {
	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 0,
		humanData("Alice", "alice", 0), grunt("Grunt", 1))
	require.NoError(t, err)

	fm := newFakeMessenger()
	fm.queueClick("alice", joinApprove, joinRefuse)

	p := NewBattleProvider(fm, "chan")
	candidate := humanData("Carol", "carol", 0)

	approved, err := p.ApproveTeamJoin(context.Background(), b.NewAPI(0), candidate)
	require.NoError(t, err)
	assert.True(t, approved)

	approved, err = p.ApproveTeamJoin(context.Background(), b.NewAPI(0), candidate)
	require.NoError(t, err)
	assert.False(t, approved)
}
