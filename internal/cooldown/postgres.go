package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheris-rpg/etheris/internal/logger"
)

const (
	sqlAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	sqlSelectLastUsed = `
		SELECT last_used_at
		FROM character_cooldowns
		WHERE user_handle = $1 AND action_name = $2
	`

	sqlDeleteCooldown = `DELETE FROM character_cooldowns WHERE user_handle = $1 AND action_name = $2`

	sqlUpsertCooldown = `
		INSERT INTO character_cooldowns (user_handle, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_handle, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)

// postgresBackend implements Service on a pgx pool.
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
}

// NewPostgresService creates a cooldown service backed by Postgres.
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{db: db, config: config}
}

func (b *postgresBackend) Check(ctx context.Context, userHandle, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	lastUsed, err := b.GetLastUsed(ctx, userHandle, action)
	if err != nil {
		return false, 0, fmt.Errorf("check cooldown: %w", err)
	}
	onCooldown, remaining := remainingAfter(lastUsed, b.config.Duration(action))
	return onCooldown, remaining, nil
}

// Enforce uses a cheap unlocked check followed by an advisory-locked
// transaction. Advisory locks work even when no row exists yet, unlike
// SELECT FOR UPDATE.
func (b *postgresBackend) Enforce(ctx context.Context, userHandle, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, remaining, err := b.Check(ctx, userHandle, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if b.config.DevMode {
		log.Debug("dev mode: bypassing cooldown", "action", action, "user", userHandle)
		if err := fn(); err != nil {
			return err
		}
		_, err := b.db.Exec(ctx, sqlUpsertCooldown, userHandle, action, time.Now())
		return err
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cooldown transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, sqlAdvisoryLock, hashUserAction(userHandle, action)); err != nil {
		return fmt.Errorf("acquire advisory lock: %w", err)
	}

	// Recheck under the lock: a concurrent request may have won the race.
	lastUsed, err := getLastUsedTx(ctx, tx, userHandle, action)
	if err != nil {
		return fmt.Errorf("get cooldown in transaction: %w", err)
	}
	if onCooldown, remaining := remainingAfter(lastUsed, b.config.Duration(action)); onCooldown {
		log.Debug("concurrent request lost cooldown race",
			"action", action, "user", userHandle, "remaining", remaining)
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, sqlUpsertCooldown, userHandle, action, time.Now()); err != nil {
		return fmt.Errorf("update cooldown: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cooldown transaction: %w", err)
	}
	return nil
}

func (b *postgresBackend) Reset(ctx context.Context, userHandle, action string) error {
	if _, err := b.db.Exec(ctx, sqlDeleteCooldown, userHandle, action); err != nil {
		return fmt.Errorf("reset cooldown: %w", err)
	}
	return nil
}

func (b *postgresBackend) GetLastUsed(ctx context.Context, userHandle, action string) (*time.Time, error) {
	var lastUsed time.Time
	err := b.db.QueryRow(ctx, sqlSelectLastUsed, userHandle, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last used: %w", err)
	}
	return &lastUsed, nil
}

func getLastUsedTx(ctx context.Context, tx pgx.Tx, userHandle, action string) (*time.Time, error) {
	var lastUsed time.Time
	err := tx.QueryRow(ctx, sqlSelectLastUsed, userHandle, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last used: %w", err)
	}
	return &lastUsed, nil
}

// hashUserAction derives a positive int64 advisory-lock key from the
// user and action pair.
func hashUserAction(userHandle, action string) int64 {
	h := sha256.Sum256([]byte(userHandle + ":" + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & 0x7FFFFFFFFFFFFFFF)
}
