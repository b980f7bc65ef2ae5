package discord

import (
	"context"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/enemy"
)

// HuntCommand seeks out a region enemy for a previewed encounter.
func HuntCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "hunt",
		Description: "Track down an enemy roaming your region",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx := context.Background()
		user := getInteractionUser(i)

		ch, err := b.services.Characters.GetByUser(ctx, user.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		if err := b.services.Characters.SpendActionPoint(ctx, ch); err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		tmpl, ok := enemy.SampleForRegion(rng, ch.Region)
		if !ok {
			respondText(s, i, "The tracks lead nowhere. The region is still.")
			return
		}
		enemies := append([]enemy.Template{tmpl}, tmpl.RollAllies(rng)...)

		respondText(s, i, "You pick up a trail…")
		result, err := b.runEncounter(ctx, i.ChannelID, ch, enemies, false)
		if err != nil {
			_, _ = b.Messenger.Send(ctx, i.ChannelID, formatFriendlyError(err))
			return
		}
		if result == nil {
			_, _ = b.Messenger.Send(ctx, i.ChannelID, ch.Name+" backs away quietly.")
		}
	}

	return cmd, handler
}
