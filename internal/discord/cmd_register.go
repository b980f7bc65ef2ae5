package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/etheris-rpg/etheris/internal/domain"
)

var regionTitleCaser = cases.Title(language.English)

// RegisterCommand creates a character for the calling user.
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	regionChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllRegions()))
	for _, region := range domain.AllRegions() {
		regionChoices = append(regionChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  regionTitleCaser.String(string(region)),
			Value: string(region),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Create your character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Your character's name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "region",
				Description: "Where your story begins",
				Required:    true,
				Choices:     regionChoices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)
		options := getOptions(i)
		name := options[0].StringValue()
		region := domain.Region(options[1].StringValue())

		ch, err := b.services.Characters.Register(context.Background(), user.ID, name, region)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed(
			fmt.Sprintf("Welcome to Etheris, %s", ch.Name),
			fmt.Sprintf("You awaken in the **%s** with %d action points. Use `/event` to explore.",
				ch.Region, ch.ActionPoints),
			colorVictory))
	}

	return cmd, handler
}
