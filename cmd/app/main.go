package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etheris-rpg/etheris/internal/character"
	"github.com/etheris-rpg/etheris/internal/concurrency"
	"github.com/etheris-rpg/etheris/internal/config"
	"github.com/etheris-rpg/etheris/internal/cooldown"
	"github.com/etheris-rpg/etheris/internal/database"
	"github.com/etheris-rpg/etheris/internal/database/postgres"
	"github.com/etheris-rpg/etheris/internal/discord"
	"github.com/etheris-rpg/etheris/internal/logger"
	"github.com/etheris-rpg/etheris/internal/server"
	"github.com/etheris-rpg/etheris/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx := context.Background()

	pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	characters := character.NewService(postgres.NewCharacterRepository(pool), concurrency.NewUserLocks())

	cooldownConfig := cooldown.Config{DevMode: cfg.DevMode}
	cooldowns := cooldown.NewPostgresService(pool, cooldownConfig)

	bot, err := discord.New(discord.Config{
		Token:            cfg.DiscordToken,
		AppID:            cfg.DiscordAppID,
		ActionTimeout:    cfg.ActionTimeout,
		StrategicTimeout: cfg.StrategicTimeout,
	}, discord.Services{
		Characters: characters,
		Cooldowns:  cooldowns,
		Fights:     concurrency.NewFightRegistry(),
	})
	if err != nil {
		slog.Error("bot creation failed", "error", err)
		os.Exit(1)
	}

	if err := bot.RegisterCommands(); err != nil {
		// Stale commands still work; keep running.
		slog.Error("command registration failed", "error", err)
	}
	if err := bot.Start(); err != nil {
		slog.Error("bot start failed", "error", err)
		os.Exit(1)
	}
	defer bot.Stop()

	refillWorker := worker.NewDailyRefillWorker(characters, newRefillNotifier(bot, cfg.DiscordAnnounceChannelID))
	refillWorker.Start()

	srv := server.NewServer(cfg.Port, pool, characters)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("http server failed", "error", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := refillWorker.Shutdown(shutdownCtx); err != nil {
		slog.Error("refill worker shutdown failed", "error", err)
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", "error", err)
	}
}

func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"etheris",
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
