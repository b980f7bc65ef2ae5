package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func TestFormatFriendlyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"no character", domain.ErrCharacterNotFound, "❌ You have no character yet. Use `/register` first."},
		{"wrapped not found", fmt.Errorf("load: %w", domain.ErrCharacterNotFound), "❌ You have no character yet. Use `/register` first."},
		{"already registered", domain.ErrAlreadyRegistered, "❌ You already have a character."},
		{"already fighting", domain.ErrAlreadyFighting, "⚔️ You are already in a battle."},
		{"no action points", domain.ErrNoActionPoints, "😮‍💨 You are out of action points. Rest until the next refill."},
		{"dead", domain.ErrCharacterDead, "💀 The dead do not adventure."},
		{"max intruders", domain.ErrMaxIntruders, "❌ That battle is already crowded."},
		{"battle over", domain.ErrBattleEnded, "❌ That battle is already over."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatFriendlyError(tc.err))
		})
	}

	t.Run("cooldown keeps the remaining time", func(t *testing.T) {
		msg := formatFriendlyError(errors.New("you can event again in 4m 12s"))
		assert.Contains(t, msg, "⏳")
		assert.Contains(t, msg, "4m 12s")
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		assert.Equal(t, "❌ the server room is on fire", formatFriendlyError(errors.New("the server room is on fire")))
	})
}

func TestResultEmbed(t *testing.T) {
	t.Run("draw", func(t *testing.T) {
		embed := resultEmbed(&controller.Result{})
		assert.Equal(t, "The dust settles", embed.Title)
		assert.Equal(t, colorNeutral, embed.Color)
	})

	t.Run("victory with spoils", func(t *testing.T) {
		killer := battle.FighterIndex(0)
		result := &controller.Result{
			Winners: []battle.FighterIndex{0},
			Losers:  []battle.FighterIndex{1},
			Turns:   7,
			Fighters: []controller.FighterOutcome{
				{Index: 0, Name: "Alice", User: "alice", Won: true},
				{Index: 1, Name: "Ogre", Killed: true, KilledBy: &killer},
			},
			Rewards: map[string]controller.Reward{
				"alice": {Orbs: 25, XP: 10, Items: map[string]int32{"ogre_hide": 2}},
			},
			DefeatedBosses: []string{"ogre_king"},
		}

		embed := resultEmbed(result)
		assert.Equal(t, colorVictory, embed.Color)
		assert.Contains(t, embed.Description, "**Alice**")
		assert.Contains(t, embed.Description, "7 turns")

		require.NotEmpty(t, embed.Fields)
		assert.Equal(t, "Defeated", embed.Fields[0].Name)
		assert.Contains(t, embed.Fields[0].Value, "Ogre †")

		var spoils, bosses string
		for _, f := range embed.Fields {
			switch f.Name {
			case "Spoils for <@alice>":
				spoils = f.Value
			case "Bosses felled":
				bosses = f.Value
			}
		}
		assert.Contains(t, spoils, "25 orbs")
		assert.Contains(t, spoils, "10 XP")
		assert.Contains(t, spoils, "ogre_hide ×2")
		assert.Equal(t, "ogre_king", bosses)
	})
}

func TestRankingsEmbed(t *testing.T) {
	chars := []domain.Character{
		{Name: "Alice", Orbs: 500},
		{Name: "Bob", Orbs: 300},
		{Name: "Carol", Orbs: 100},
		{Name: "Dave", Orbs: 50},
	}

	embed := rankingsEmbed("Richest of Etheris", "orbs", chars)
	assert.Equal(t, "Richest of Etheris", embed.Title)
	assert.Contains(t, embed.Description, "🥇 **Alice** — 500 orbs")
	assert.Contains(t, embed.Description, "🥈 **Bob**")
	assert.Contains(t, embed.Description, "🥉 **Carol**")
	assert.Contains(t, embed.Description, "`#4` **Dave**")
}

func TestRegistryRegistersAllCommands(t *testing.T) {
	r := NewCommandRegistry()
	r.Register(RegisterCommand())
	r.Register(ProfileCommand())
	r.Register(EventCommand())
	r.Register(HuntCommand())
	r.Register(DuelCommand())
	r.Register(IntrudeCommand())
	r.Register(RankingsCommand())

	for _, name := range []string{"register", "profile", "event", "hunt", "duel", "intrude", "rankings"} {
		assert.Contains(t, r.Commands, name)
		assert.Contains(t, r.Handlers, name)
	}
}
