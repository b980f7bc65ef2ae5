package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// ProfileCommand shows the caller's character sheet.
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "Show your character",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		user := getInteractionUser(i)

		ch, err := b.services.Characters.GetByUser(context.Background(), user.ID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, profileEmbed(ch))
	}

	return cmd, handler
}

func profileEmbed(ch *domain.Character) *discordgo.MessageEmbed {
	status := "Alive"
	color := colorPrompt
	switch {
	case ch.IsDead:
		status = fmt.Sprintf("Dead — %s", ch.DeathCause)
		color = colorDanger
	case ch.IsDefeated:
		status = "Defeated, recovering"
		color = colorNeutral
	}

	weapon := "bare hands"
	if ch.Weapon != nil {
		weapon = string(ch.Weapon.Kind)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name: "Condition",
			Value: fmt.Sprintf("Vitality %d/%d\nResistance %d/%d\nEther %d/%d",
				ch.Vitality.Value, ch.Vitality.Max,
				ch.Resistance.Value, ch.Resistance.Max,
				ch.Ether.Value, ch.Ether.Max),
			Inline: true,
		},
		{
			Name: "Growth",
			Value: fmt.Sprintf("Strength %d\nIntelligence %d\nPower level %d",
				ch.StrengthLevel, ch.IntelligenceLevel,
				ch.FighterData(0).PowerLevel()),
			Inline: true,
		},
		{
			Name: "Resources",
			Value: fmt.Sprintf("Orbs %d\nAction points %d/%d\nWeapon %s",
				ch.Orbs, ch.ActionPoints, ch.MaxActionPoints, weapon),
			Inline: true,
		},
	}

	if len(ch.EquippedSkills) > 0 {
		names := make([]string, 0, len(ch.EquippedSkills))
		for _, kind := range ch.EquippedSkills {
			names = append(names, string(kind))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Skills", Value: strings.Join(names, ", "),
		})
	}
	if len(ch.DefeatedBosses) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Bosses felled", Value: strings.Join(ch.DefeatedBosses, ", "),
		})
	}

	embed := createEmbed(ch.Name, fmt.Sprintf("%s of the %s", status, ch.Region), color)
	embed.Fields = fields
	return embed
}
