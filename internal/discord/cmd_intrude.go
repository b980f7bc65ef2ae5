package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// IntrudeCommand throws the caller into the battle currently raging in the
// channel, on a fresh team hostile to everyone already in it.
func IntrudeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "intrude",
		Description: "Barge into the battle running in this channel",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx := context.Background()
		user := getInteractionUser(i)

		c, ok := b.battleIn(i.ChannelID)
		if !ok {
			respondText(s, i, "❌ There is no battle raging here.")
			return
		}

		ch, err := b.services.Characters.GetByUser(ctx, user.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		if ch.Region != c.Battle().Region {
			respondFriendlyError(s, i, fmt.Errorf("%w: the battle is in the %s", domain.ErrWrongRegion, c.Battle().Region))
			return
		}

		release, err := b.services.Fights.Acquire(user.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		if err := b.services.Characters.SpendActionPoint(ctx, ch); err != nil {
			release()
			respondFriendlyError(s, i, err)
			return
		}

		if _, err := c.RequestIntrusion(ch.FighterData(0)); err != nil {
			release()
			respondFriendlyError(s, i, err)
			return
		}

		// The slot stays claimed until the battle winds down.
		b.onBattleEnd(i.ChannelID, release)
		respondText(s, i, fmt.Sprintf("⚔️ **%s** barges into the fray!", ch.Name))
	}

	return cmd, handler
}
