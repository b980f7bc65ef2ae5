package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/domain"
)

const rankingSize = 10

// RankingsCommand shows the server leaderboards.
func RankingsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rankings",
		Description: "Show the leaderboards",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "board",
				Description: "Which leaderboard to show",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Orbs", Value: "orbs"},
					{Name: "Power level", Value: "power"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx := context.Background()
		board := getOptions(i)[0].StringValue()

		var (
			chars []domain.Character
			err   error
			title string
		)
		switch board {
		case "power":
			title = "Strongest of Etheris"
			chars, err = b.services.Characters.TopByPowerLevel(ctx, rankingSize)
		default:
			title = "Richest of Etheris"
			chars, err = b.services.Characters.TopByOrbs(ctx, rankingSize)
		}
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		if len(chars) == 0 {
			respondText(s, i, "Nobody has made a name for themselves yet.")
			return
		}

		sendEmbed(s, i, rankingsEmbed(title, board, chars))
	}

	return cmd, handler
}

func rankingsEmbed(title, board string, chars []domain.Character) *discordgo.MessageEmbed {
	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	for idx, ch := range chars {
		rank := fmt.Sprintf("`#%d`", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}

		var score string
		if board == "power" {
			score = fmt.Sprintf("%d PL", ch.FighterData(0).PowerLevel())
		} else {
			score = fmt.Sprintf("%d orbs", ch.Orbs)
		}
		fmt.Fprintf(&sb, "%s **%s** — %s\n", rank, ch.Name, score)
	}

	return createEmbed(title, sb.String(), colorPrompt)
}
