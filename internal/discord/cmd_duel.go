package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/cooldown"
	"github.com/etheris-rpg/etheris/internal/domain"
)

const (
	duelAccept  = "duel:accept"
	duelDecline = "duel:decline"
)

// DuelCommand challenges another player to a friendly battle: no deaths,
// no spoils, only bragging rights.
func DuelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "duel",
		Description: "Challenge another player to a friendly duel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "opponent",
				Description: "Who you are challenging",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx := context.Background()
		challenger := getInteractionUser(i)
		opponent := getOptions(i)[0].UserValue(s)

		if opponent == nil || opponent.ID == challenger.ID || opponent.Bot {
			respondText(s, i, "❌ Pick another player to duel.")
			return
		}

		chA, err := b.services.Characters.GetByUser(ctx, challenger.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		chB, err := b.services.Characters.GetByUser(ctx, opponent.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		if chB.IsDead || chB.IsDefeated {
			respondText(s, i, fmt.Sprintf("❌ %s is in no shape to duel.", chB.Name))
			return
		}
		if chA.Region != chB.Region {
			respondFriendlyError(s, i, fmt.Errorf("%w: %s is in the %s", domain.ErrWrongRegion, chB.Name, chB.Region))
			return
		}

		if err := b.services.Cooldowns.Enforce(ctx, challenger.ID, cooldown.ActionDuel, func() error { return nil }); err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		release, err := b.services.Fights.Acquire(challenger.ID, opponent.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		defer release()

		respondText(s, i, fmt.Sprintf("%s throws down the gauntlet!", chA.Name))
		if !b.awaitDuelAccept(ctx, i.ChannelID, chA, chB) {
			return
		}

		b.runDuel(ctx, i.ChannelID, chA, chB)
	}

	return cmd, handler
}

// awaitDuelAccept asks the challenged player to accept within the
// strategic timeout.
func (b *Bot) awaitDuelAccept(ctx context.Context, channelID string, chA, chB *domain.Character) bool {
	embed := createEmbed("A challenge!",
		fmt.Sprintf("<@%s> — **%s** challenges you to a duel.", chB.UserHandle, chA.Name),
		colorPrompt)
	components := []discordgo.MessageComponent{discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Accept", Style: discordgo.DangerButton, CustomID: duelAccept},
			discordgo.Button{Label: "Decline", Style: discordgo.SecondaryButton, CustomID: duelDecline},
		},
	}}

	msgID, err := b.Messenger.SendEmbed(ctx, channelID, embed, components)
	if err != nil {
		return false
	}

	waitCtx, cancel := context.WithTimeout(ctx, b.cfg.StrategicTimeout)
	defer cancel()
	customID, err := b.Messenger.AwaitComponent(waitCtx, msgID, chB.UserHandle)
	if err != nil || customID != duelAccept {
		_, _ = b.Messenger.Send(ctx, channelID, fmt.Sprintf("%s declines the duel.", chB.Name))
		return false
	}
	return true
}

// runDuel plays the battle without consequences: nobody dies, nothing is
// looted, and neither profile is touched.
func (b *Bot) runDuel(ctx context.Context, channelID string, chA, chB *domain.Character) {
	defer b.untrackBattle(channelID)

	duel, err := battle.New(chA.Region, battle.Settings{
		IsRiskingLifeAllowed: false,
		Casual:               true,
		HasConsequences:      false,
		MaxIntruders:         2,
	}, time.Now().UnixNano(), chA.FighterData(0), chB.FighterData(1))
	if err != nil {
		_, _ = b.Messenger.Send(ctx, channelID, formatFriendlyError(err))
		return
	}

	c := controller.New(duel,
		NewBattleProvider(b.Messenger, channelID),
		NewBattleRenderer(b.Messenger, channelID),
		b.controllerOptions())
	b.trackBattle(channelID, c)

	result, err := c.Run(ctx)
	if err != nil {
		_, _ = b.Messenger.Send(ctx, channelID, formatFriendlyError(err))
		return
	}
	_, _ = b.Messenger.SendEmbed(ctx, channelID, resultEmbed(result), nil)
}
