package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// fakeMessenger scripts component clicks in memory and records everything
// the battle UI posts.
type fakeMessenger struct {
	mu     sync.Mutex
	msgSeq int

	texts  []string
	embeds []*discordgo.MessageEmbed

	// clicks queues custom IDs per user handle; defaultClick answers any
	// await with an empty queue. No queue and no default means timeout.
	clicks       map[string][]string
	defaultClick string
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{clicks: make(map[string][]string)}
}

func (m *fakeMessenger) queueClick(userHandle string, customIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks[userHandle] = append(m.clicks[userHandle], customIDs...)
}

func (m *fakeMessenger) Send(_ context.Context, _, content string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, content)
	m.msgSeq++
	return fmt.Sprintf("msg-%d", m.msgSeq), nil
}

func (m *fakeMessenger) SendEmbed(_ context.Context, _ string, embed *discordgo.MessageEmbed, _ []discordgo.MessageComponent) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeds = append(m.embeds, embed)
	m.msgSeq++
	return fmt.Sprintf("msg-%d", m.msgSeq), nil
}

func (m *fakeMessenger) Edit(_ context.Context, _, _ string, embed *discordgo.MessageEmbed, _ []discordgo.MessageComponent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeds = append(m.embeds, embed)
	return nil
}

func (m *fakeMessenger) AwaitComponent(_ context.Context, _, userHandle string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue := m.clicks[userHandle]
	if len(queue) > 0 {
		customID := queue[0]
		m.clicks[userHandle] = queue[1:]
		return customID, nil
	}
	if m.defaultClick != "" {
		return m.defaultClick, nil
	}
	return "", domain.ErrInputTimeout
}

func (m *fakeMessenger) sentEmbeds() []*discordgo.MessageEmbed {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*discordgo.MessageEmbed(nil), m.embeds...)
}
