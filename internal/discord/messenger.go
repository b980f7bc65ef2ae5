// Package discord is the chat surface of the bot: slash commands, the
// battle prompt UI, and the Messenger abstraction the battle stack talks
// through so tests never need a live session.
package discord

import (
	"context"
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// Messenger is the transport the battle UI uses. The session-backed
// implementation is below; tests script one in memory.
type Messenger interface {
	// Send posts a plain message and returns its ID.
	Send(ctx context.Context, channelID, content string) (string, error)

	// SendEmbed posts an embed with optional component rows and returns
	// the message ID.
	SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (string, error)

	// Edit rewrites an earlier message in place.
	Edit(ctx context.Context, channelID, messageID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error

	// AwaitComponent blocks until the given user clicks a component on
	// the message, returning its custom ID. Context expiry maps to
	// domain.ErrInputTimeout.
	AwaitComponent(ctx context.Context, messageID, userHandle string) (string, error)
}

// componentClick is one button press routed to a waiter.
type componentClick struct {
	customID   string
	userHandle string
}

// sessionMessenger implements Messenger on a discordgo session. A single
// interaction handler fans component clicks out to per-message waiters.
type sessionMessenger struct {
	session *discordgo.Session

	mu      sync.Mutex
	waiters map[string]chan componentClick
}

// NewMessenger wraps a discordgo session. The component handler is
// registered immediately.
func NewMessenger(session *discordgo.Session) Messenger {
	m := &sessionMessenger{
		session: session,
		waiters: make(map[string]chan componentClick),
	}
	session.AddHandler(m.onInteraction)
	return m
}

func (m *sessionMessenger) Send(_ context.Context, channelID, content string) (string, error) {
	msg, err := m.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (m *sessionMessenger) SendEmbed(_ context.Context, channelID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (string, error) {
	msg, err := m.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (m *sessionMessenger) Edit(_ context.Context, channelID, messageID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	edit.Components = &components
	_, err := m.session.ChannelMessageEditComplex(edit)
	return err
}

func (m *sessionMessenger) AwaitComponent(ctx context.Context, messageID, userHandle string) (string, error) {
	ch := make(chan componentClick, 4)

	m.mu.Lock()
	m.waiters[messageID] = ch
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.waiters, messageID)
		m.mu.Unlock()
	}()

	for {
		select {
		case click := <-ch:
			if click.userHandle != userHandle {
				continue
			}
			return click.customID, nil
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", domain.ErrInputTimeout
			}
			return "", ctx.Err()
		}
	}
}

// onInteraction acknowledges every component click and routes it to the
// waiter for that message, if any.
func (m *sessionMessenger) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent || i.Message == nil {
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})

	m.mu.Lock()
	ch, ok := m.waiters[i.Message.ID]
	m.mu.Unlock()
	if !ok {
		return
	}

	// Select menus carry the choice in Values, not the custom ID.
	data := i.MessageComponentData()
	customID := data.CustomID
	if len(data.Values) > 0 {
		customID = data.Values[0]
	}

	select {
	case ch <- componentClick{
		customID:   customID,
		userHandle: getInteractionUser(i).ID,
	}:
	default:
	}
}
