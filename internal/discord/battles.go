package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/encounter"
	"github.com/etheris-rpg/etheris/internal/enemy"
	"github.com/etheris-rpg/etheris/internal/logger"
)

// runEncounter takes one character through a full encounter battle:
// fight-slot acquisition, preview prompt, the battle itself, and result
// settlement. Returns the result, or nil when the author backed away.
func (b *Bot) runEncounter(ctx context.Context, channelID string, ch *domain.Character, enemies []enemy.Template, instant bool) (*controller.Result, error) {
	release, err := b.services.Fights.Acquire(ch.UserHandle)
	if err != nil {
		return nil, err
	}
	defer release()
	defer b.untrackBattle(channelID)

	svc := encounter.NewService(
		NewBattleProvider(b.Messenger, channelID),
		NewBattleRenderer(b.Messenger, channelID),
		NewEncounterPrompter(b.Messenger, channelID, ch.UserHandle),
		encounter.Options{
			Controller: b.controllerOptions(),
			OnStart: func(c *controller.Controller) {
				b.trackBattle(channelID, c)
			},
		},
	)

	result, err := svc.Start(ctx, ch.FighterData(0), enemies, ch.Region, instant)
	if err != nil || result == nil {
		return result, err
	}

	if err := b.services.Characters.ApplyBattleResult(ctx, result); err != nil {
		logger.FromContext(ctx).Error("battle settlement failed", "error", err)
	}

	if _, err := b.Messenger.SendEmbed(ctx, channelID, resultEmbed(result), nil); err != nil {
		logger.FromContext(ctx).Warn("result post failed", "error", err)
	}
	return result, nil
}

// resultEmbed summarizes a finished battle.
func resultEmbed(result *controller.Result) *discordgo.MessageEmbed {
	if result.Draw() {
		return createEmbed("The dust settles", "Nobody is left standing. A draw.", colorNeutral)
	}

	var winners, fallen []string
	for _, outcome := range result.Fighters {
		switch {
		case outcome.Won:
			winners = append(winners, outcome.Name)
		case outcome.Killed:
			fallen = append(fallen, outcome.Name+" †")
		default:
			fallen = append(fallen, outcome.Name)
		}
	}

	embed := createEmbed("Victory",
		fmt.Sprintf("**%s** won after %d turns.", strings.Join(winners, ", "), result.Turns),
		colorVictory)
	if len(fallen) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Defeated", Value: strings.Join(fallen, ", "),
		})
	}

	for user, reward := range result.Rewards {
		var parts []string
		if reward.Orbs > 0 {
			parts = append(parts, fmt.Sprintf("%d orbs", reward.Orbs))
		}
		if reward.XP > 0 {
			parts = append(parts, fmt.Sprintf("%d XP", reward.XP))
		}
		for item, amount := range reward.Items {
			parts = append(parts, fmt.Sprintf("%s ×%d", item, amount))
		}
		if len(parts) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("Spoils for <@%s>", user),
				Value: strings.Join(parts, ", "),
			})
		}
	}

	if len(result.DefeatedBosses) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Bosses felled", Value: strings.Join(result.DefeatedBosses, ", "),
		})
	}
	return embed
}
