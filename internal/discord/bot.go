package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/etheris-rpg/etheris/internal/character"
	"github.com/etheris-rpg/etheris/internal/concurrency"
	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/cooldown"
)

// Config holds the bot configuration.
type Config struct {
	Token string
	AppID string

	ActionTimeout    time.Duration
	StrategicTimeout time.Duration
}

// Services bundles what the commands need.
type Services struct {
	Characters *character.Service
	Cooldowns  cooldown.Service
	Fights     *concurrency.FightRegistry
}

// Bot is the Discord front end.
type Bot struct {
	Session   *discordgo.Session
	Messenger Messenger
	AppID     string
	Registry  *CommandRegistry

	services Services
	cfg      Config

	// battles tracks the running controller per channel for /intrude.
	// cleanups run when that channel's battle is untracked, releasing
	// fight slots claimed by intruders.
	mu       sync.Mutex
	battles  map[string]*controller.Controller
	cleanups map[string][]func()
}

// New creates the bot and registers its commands.
func New(cfg Config, services Services) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}

	b := &Bot{
		Session:   session,
		Messenger: NewMessenger(session),
		AppID:     cfg.AppID,
		Registry:  NewCommandRegistry(),
		services:  services,
		cfg:       cfg,
		battles:   make(map[string]*controller.Controller),
		cleanups:  make(map[string][]func()),
	}

	b.Registry.Register(RegisterCommand())
	b.Registry.Register(ProfileCommand())
	b.Registry.Register(EventCommand())
	b.Registry.Register(HuntCommand())
	b.Registry.Register(DuelCommand())
	b.Registry.Register(IntrudeCommand())
	b.Registry.Register(RankingsCommand())

	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("open Discord connection: %w", err)
	}
	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	_ = b.Session.Close()
}

// Run starts the bot and blocks until a termination signal.
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.Registry.Handle(s, i, b)
}

// trackBattle exposes the channel's running controller for intrusions.
func (b *Bot) trackBattle(channelID string, c *controller.Controller) {
	b.mu.Lock()
	b.battles[channelID] = c
	b.mu.Unlock()
}

func (b *Bot) untrackBattle(channelID string) {
	b.mu.Lock()
	delete(b.battles, channelID)
	fns := b.cleanups[channelID]
	delete(b.cleanups, channelID)
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// onBattleEnd schedules fn to run when the channel's battle is untracked.
// If no battle is tracked there, fn runs immediately.
func (b *Bot) onBattleEnd(channelID string, fn func()) {
	b.mu.Lock()
	if _, ok := b.battles[channelID]; ok {
		b.cleanups[channelID] = append(b.cleanups[channelID], fn)
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()
	fn()
}

func (b *Bot) battleIn(channelID string) (*controller.Controller, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.battles[channelID]
	return c, ok
}

// controllerOptions derives the battle pacing from the bot config.
func (b *Bot) controllerOptions() controller.Options {
	return controller.Options{
		ActionTimeout:    b.cfg.ActionTimeout,
		StrategicTimeout: b.cfg.StrategicTimeout,
	}
}
