package discord

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/cooldown"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/logger"
	"github.com/etheris-rpg/etheris/internal/worldevent"
)

const eventActionPrefix = "evt:"

// EventCommand rolls a world event in the caller's region and plays out
// the chosen action, including any battles it spawns.
func EventCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "event",
		Description: "Venture out and see what the region has in store",
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

		err = b.services.Cooldowns.Enforce(ctx, user.ID, cooldown.ActionEvent, func() error {
			return b.services.Characters.SpendActionPoint(ctx, ch)
		})
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		state := &worldevent.BuildState{
			Character: ch,
			Region:    ch.Region,
			RNG:       rand.New(rand.NewSource(time.Now().UnixNano())),
		}

		event, ok := worldevent.PickEvent(state)
		if !ok {
			respondText(s, i, "The road is quiet today. Nothing finds you.")
			return
		}

		action, ok := b.promptEventAction(ctx, s, i, state, event)
		if !ok {
			return
		}

		outcome, err := worldevent.ExecuteAction(state, event, action)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		b.resolveOutcome(ctx, i.ChannelID, ch, outcome)
	}

	return cmd, handler
}

// promptEventAction shows the event with one button per offered action
// and waits for the author's pick. Replies through the interaction when
// the event offers nothing or the author walks away.
func (b *Bot) promptEventAction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, state *worldevent.BuildState, event worldevent.Event) (worldevent.Action, bool) {
	offered := event.OfferedActions(state)
	if len(offered) == 0 {
		respondText(s, i, event.Message+"\n\n…but there is nothing you can do about it.")
		return worldevent.Action{}, false
	}

	buttons := make([]discordgo.MessageComponent, 0, len(offered))
	for idx, action := range offered {
		if len(buttons) == maxRowButtons {
			break
		}
		buttons = append(buttons, discordgo.Button{
			Label:    action.Name,
			Emoji:    &discordgo.ComponentEmoji{Name: action.Emoji},
			Style:    discordgo.PrimaryButton,
			CustomID: eventActionPrefix + strconv.Itoa(idx),
		})
	}

	embed := createEmbed(event.Emoji+" Something happens", event.Message, colorPrompt)
	sendEmbed(s, i, embed)

	msgID, err := b.Messenger.SendEmbed(ctx, i.ChannelID, createEmbed("What do you do?", "", colorPrompt),
		[]discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}})
	if err != nil {
		logger.FromContext(ctx).Error("event prompt failed", "error", err)
		return worldevent.Action{}, false
	}

	waitCtx, cancel := context.WithTimeout(ctx, b.cfg.StrategicTimeout)
	defer cancel()
	customID, err := b.Messenger.AwaitComponent(waitCtx, msgID, state.Character.UserHandle)
	if err != nil {
		_, _ = b.Messenger.Send(ctx, i.ChannelID,
			fmt.Sprintf("%s hesitates too long; the moment passes.", state.Character.Name))
		return worldevent.Action{}, false
	}

	idx, err := strconv.Atoi(strings.TrimPrefix(customID, eventActionPrefix))
	if err != nil || idx < 0 || idx >= len(offered) {
		return worldevent.Action{}, false
	}
	return offered[idx], true
}

// resolveOutcome narrates the consequence list, persists character
// changes, and plays out any spawned battles.
func (b *Bot) resolveOutcome(ctx context.Context, channelID string, ch *domain.Character, outcome *worldevent.Outcome) {
	if len(outcome.Messages) > 0 {
		_, _ = b.Messenger.Send(ctx, channelID, strings.Join(outcome.Messages, "\n"))
	}
	if outcome.OpenShop {
		_, _ = b.Messenger.Send(ctx, channelID, "The merchant spreads their wares before you.")
	}

	if outcome.CharacterDirty {
		if err := b.services.Characters.Save(ctx, ch); err != nil {
			logger.FromContext(ctx).Error("character save failed", "error", err)
		}
	}

	for _, req := range outcome.Battles {
		if _, err := b.runEncounter(ctx, channelID, ch, req.Enemies, req.Instant); err != nil {
			_, _ = b.Messenger.Send(ctx, channelID, formatFriendlyError(err))
			return
		}
	}
}
