package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/etheris-rpg/etheris/internal/discord"
)

// refillNotifier announces the daily refill in a Discord channel. Without a
// configured channel it only logs.
type refillNotifier struct {
	bot       *discord.Bot
	channelID string
}

func newRefillNotifier(bot *discord.Bot, channelID string) *refillNotifier {
	return &refillNotifier{bot: bot, channelID: channelID}
}

func (n *refillNotifier) AnnounceRefill(ctx context.Context, refilled int) error {
	slog.Info("daily refill complete", "characters", refilled)
	if n.channelID == "" {
		return nil
	}
	_, err := n.bot.Messenger.Send(ctx, n.channelID,
		fmt.Sprintf("🌅 A new day dawns over Etheris. %d adventurers wake restored.", refilled))
	return err
}
