package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// CommandHandler handles one slash command invocation.
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot)

// CommandRegistry holds the registered commands.
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry.
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle dispatches an interaction. Each command runs on its own
// goroutine: battles block for minutes and must not stall the gateway.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		go h(s, i, b)
	}
}

// RegisterCommands bulk-overwrites the application commands with Discord.
func (b *Bot) RegisterCommands() error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("overwrite application commands: %w", err)
	}
	slog.Info("commands registered", "count", len(desired))
	return nil
}

// deferResponse acknowledges the interaction before slow work. Returns
// false when the deferral itself failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from guild and DM interactions
// alike.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondText edits the deferred response with plain content.
func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		slog.Error("failed to send response", "error", err)
	}
}

// sendEmbed edits the deferred response with an embed.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("failed to send response", "error", err)
	}
}

// respondFriendlyError maps domain errors to player-readable messages.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondText(s, i, formatFriendlyError(err))
}

func formatFriendlyError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, domain.ErrMsgCharacterNotFound),
		strings.Contains(msg, domain.ErrMsgCharacterNotOwned):
		return "❌ You have no character yet. Use `/register` first."
	case strings.Contains(msg, domain.ErrMsgAlreadyRegistered):
		return "❌ You already have a character."
	case strings.Contains(msg, domain.ErrMsgAlreadyFighting):
		return "⚔️ You are already in a battle."
	case strings.Contains(msg, domain.ErrMsgNoActionPoints):
		return "😮‍💨 You are out of action points. Rest until the next refill."
	case strings.Contains(msg, domain.ErrMsgCharacterDead):
		return "💀 The dead do not adventure."
	case strings.Contains(msg, "cooldown"), strings.Contains(msg, "again in"):
		return "⏳ " + msg
	case strings.Contains(msg, domain.ErrMsgMaxIntruders):
		return "❌ That battle is already crowded."
	case strings.Contains(msg, domain.ErrMsgBattleEnded):
		return "❌ That battle is already over."
	default:
		return "❌ " + msg
	}
}

// createEmbed builds a standard embed with the bot footer.
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Etheris"},
	}
}
