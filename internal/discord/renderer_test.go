package discord

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func TestHealthBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 10), healthBar(100, 100))
	assert.Equal(t, strings.Repeat("░", 10), healthBar(0, 100))
	assert.Equal(t, "█████░░░░░", healthBar(55, 100))
	assert.Equal(t, strings.Repeat("░", 10), healthBar(-5, 100))
	assert.Equal(t, strings.Repeat("░", 10), healthBar(10, 0))
}

func TestFighterLine(t *testing.T) {
	f := &battle.Fighter{
		Name:       "Alice",
		Team:       0,
		Vitality:   domain.NewAttribute(100),
		Resistance: domain.Attribute{Value: 40, Max: 100},
	}

	line := fighterLine(f)
	assert.Contains(t, line, "**Alice**")
	assert.Contains(t, line, "140/200")

	f.IsDefeated = true
	line = fighterLine(f)
	assert.Contains(t, line, "~~Alice~~")
	assert.Contains(t, line, "down")
}

func TestRenderTurn(t *testing.T) {
	b, err := battle.New(domain.RegionPlains, battle.Settings{}, 0,
		humanData("Alice", "alice", 0), grunt("Grunt", 1))
	require.NoError(t, err)

	fm := newFakeMessenger()
	r := NewBattleRenderer(fm, "chan")

	err = r.RenderTurn(context.Background(), b, battle.TurnRecord{
		Turn:     1,
		Fighter:  0,
		Messages: []string{"Alice attacks Grunt.", "Grunt staggers."},
	})
	require.NoError(t, err)

	embeds := fm.sentEmbeds()
	require.Len(t, embeds, 1)
	assert.Equal(t, "Turn 1 — Alice", embeds[0].Title)
	assert.Contains(t, embeds[0].Description, "Grunt staggers.")
	require.Len(t, embeds[0].Fields, 1)
	assert.Contains(t, embeds[0].Fields[0].Value, "Alice")
	assert.Contains(t, embeds[0].Fields[0].Value, "Grunt")
	assert.Equal(t, colorPrompt, embeds[0].Color, "a running battle keeps the neutral turn color")
}
