package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/battle"
)

// Embed colors shared across the battle UI.
const (
	colorPrompt  = 0x3498DB
	colorDanger  = 0xE74C3C
	colorNeutral = 0x95A5A6
	colorVictory = 0x2ECC71
)

const healthBarWidth = 10

// BattleRenderer publishes each closed turn as one embed per turn, with a
// scoreboard of every fighter above the turn's narration.
type BattleRenderer struct {
	messenger Messenger
	channelID string
}

// NewBattleRenderer creates the turn feed for one channel.
func NewBattleRenderer(messenger Messenger, channelID string) *BattleRenderer {
	return &BattleRenderer{messenger: messenger, channelID: channelID}
}

// RenderTurn posts the turn record.
func (r *BattleRenderer) RenderTurn(ctx context.Context, b *battle.Battle, record battle.TurnRecord) error {
	actor := b.Fighter(record.Fighter)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Turn %d — %s", record.Turn, actor.Name),
		Description: strings.Join(record.Messages, "\n"),
		Color:       colorPrompt,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Fighters", Value: scoreboard(b)},
		},
	}
	if b.State().Kind == battle.StateEnded {
		embed.Color = colorVictory
	}

	_, err := r.messenger.SendEmbed(ctx, r.channelID, embed, nil)
	return err
}

// scoreboard renders one status line per fighter, grouped by team order.
func scoreboard(b *battle.Battle) string {
	var sb strings.Builder
	for _, f := range b.Fighters() {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fighterLine(f))
	}
	return sb.String()
}

func fighterLine(f *battle.Fighter) string {
	if f.IsDefeated {
		return fmt.Sprintf("~~%s~~ (team %d) — down", f.Name, f.Team)
	}
	return fmt.Sprintf("**%s** (team %d) %s %d/%d",
		f.Name, f.Team,
		healthBar(f.Health(), f.Vitality.Max+f.Resistance.Max),
		f.Health(), f.Vitality.Max+f.Resistance.Max)
}

// healthBar renders a fixed-width unicode gauge.
func healthBar(value, max int32) string {
	if max <= 0 {
		return strings.Repeat("░", healthBarWidth)
	}
	if value < 0 {
		value = 0
	}
	filled := int(int64(value) * healthBarWidth / int64(max))
	if filled > healthBarWidth {
		filled = healthBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", healthBarWidth-filled)
}
