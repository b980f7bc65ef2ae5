package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/encounter"
)

const (
	encounterEngage = "enc:engage"
	encounterFlee   = "enc:flee"
)

// EncounterPrompter shows the fight preview and waits for the author's
// engage-or-flee choice.
type EncounterPrompter struct {
	messenger  Messenger
	channelID  string
	userHandle string
}

// NewEncounterPrompter builds a prompter for one author in one channel.
func NewEncounterPrompter(messenger Messenger, channelID, userHandle string) *EncounterPrompter {
	return &EncounterPrompter{messenger: messenger, channelID: channelID, userHandle: userHandle}
}

// Confirm renders the preview embed and returns the author's decision.
func (p *EncounterPrompter) Confirm(ctx context.Context, preview encounter.Preview) (bool, error) {
	embed := previewEmbed(preview)
	components := []discordgo.MessageComponent{discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Engage", Style: discordgo.DangerButton, CustomID: encounterEngage},
			discordgo.Button{Label: "Back away", Style: discordgo.SecondaryButton, CustomID: encounterFlee},
		},
	}}

	msgID, err := p.messenger.SendEmbed(ctx, p.channelID, embed, components)
	if err != nil {
		return false, fmt.Errorf("send encounter preview: %w", err)
	}

	customID, err := p.messenger.AwaitComponent(ctx, msgID, p.userHandle)
	if err != nil {
		return false, err
	}
	return customID == encounterEngage, nil
}

func previewEmbed(preview encounter.Preview) *discordgo.MessageEmbed {
	var lines []string
	for _, enemy := range preview.Enemies {
		marker := ""
		if enemy.Boss {
			marker = " 👑"
		}
		lines = append(lines, fmt.Sprintf("**%s**%s — PL %d · Vit %d · Res %d",
			enemy.Name, marker, enemy.PowerLevel, enemy.Vitality, enemy.Resistance))
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Opposition", Value: strings.Join(lines, "\n")},
		{Name: "Strength", Value: preview.Strength, Inline: true},
		{Name: "Intelligence", Value: preview.Intelligence, Inline: true},
	}
	if len(preview.Rewards) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Possible spoils",
			Value: strings.Join(preview.Rewards, "\n"),
		})
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s, a fight is brewing", preview.Author),
		Description: fmt.Sprintf("Your power level: **%d** — theirs: **%d**",
			preview.AuthorPL, preview.EnemyPL),
		Color:  preview.Color,
		Fields: fields,
	}
}
