// Package postgres implements the repository interfaces on a pgx pool.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etheris-rpg/etheris/internal/domain"
)

const pgErrUniqueViolation = "23505"

// CharacterRepository persists characters as a JSONB profile plus the
// scalar columns the rankings and the refill sweep query on.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) GetByUser(ctx context.Context, userHandle string) (*domain.Character, error) {
	return r.getBy(ctx, "user_handle", userHandle)
}

func (r *CharacterRepository) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	return r.getBy(ctx, "character_id", id)
}

func (r *CharacterRepository) getBy(ctx context.Context, column, value string) (*domain.Character, error) {
	query := fmt.Sprintf("SELECT profile FROM characters WHERE %s = $1", column)

	var profile []byte
	if err := r.db.QueryRow(ctx, query, value).Scan(&profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, value)
		}
		return nil, fmt.Errorf("query character: %w", err)
	}

	var ch domain.Character
	if err := json.Unmarshal(profile, &ch); err != nil {
		return nil, fmt.Errorf("decode character profile: %w", err)
	}
	return &ch, nil
}

func (r *CharacterRepository) IsUserRegistered(ctx context.Context, userHandle string) (bool, error) {
	var registered bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM characters WHERE user_handle = $1)",
		userHandle).Scan(&registered)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return registered, nil
}

func (r *CharacterRepository) Register(ctx context.Context, ch *domain.Character) error {
	profile, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("encode character profile: %w", err)
	}

	query := `
		INSERT INTO characters (
			character_id, user_handle, character_name, region, orbs,
			power_level, action_points, max_action_points,
			is_defeated, is_dead, profile, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.Exec(ctx, query,
		ch.ID, ch.UserHandle, ch.Name, ch.Region, ch.Orbs,
		powerLevel(ch), ch.ActionPoints, ch.MaxActionPoints,
		ch.IsDefeated, ch.IsDead, profile, ch.CreatedAt, ch.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, ch.UserHandle)
		}
		return fmt.Errorf("insert character: %w", err)
	}
	return nil
}

func (r *CharacterRepository) Save(ctx context.Context, ch *domain.Character) error {
	profile, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("encode character profile: %w", err)
	}

	query := `
		UPDATE characters SET
			character_name = $2, region = $3, orbs = $4, power_level = $5,
			action_points = $6, max_action_points = $7,
			is_defeated = $8, is_dead = $9, profile = $10, updated_at = $11
		WHERE character_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		ch.ID, ch.Name, ch.Region, ch.Orbs, powerLevel(ch),
		ch.ActionPoints, ch.MaxActionPoints,
		ch.IsDefeated, ch.IsDead, profile, ch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, ch.ID)
	}
	return nil
}

// GetAllRefillable selects living characters that are defeated or below
// max action points. Attribute damage only shows in the profile, so the
// remaining candidates are filtered after decoding.
func (r *CharacterRepository) GetAllRefillable(ctx context.Context) ([]domain.Character, error) {
	query := `
		SELECT profile FROM characters
		WHERE NOT is_dead
		ORDER BY character_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query refillable characters: %w", err)
	}
	defer rows.Close()

	var out []domain.Character
	for rows.Next() {
		var profile []byte
		if err := rows.Scan(&profile); err != nil {
			return nil, fmt.Errorf("scan character profile: %w", err)
		}
		var ch domain.Character
		if err := json.Unmarshal(profile, &ch); err != nil {
			return nil, fmt.Errorf("decode character profile: %w", err)
		}
		if needsRefill(&ch) {
			out = append(out, ch)
		}
	}
	return out, rows.Err()
}

func needsRefill(ch *domain.Character) bool {
	if ch.IsDefeated || ch.ActionPoints < ch.MaxActionPoints {
		return true
	}
	return ch.Vitality.Value < ch.Vitality.Max ||
		ch.Resistance.Value < ch.Resistance.Max ||
		ch.Ether.Value < ch.Ether.Max
}

func (r *CharacterRepository) TopByOrbs(ctx context.Context, limit int) ([]domain.Character, error) {
	return r.top(ctx, "orbs", limit)
}

func (r *CharacterRepository) TopByPowerLevel(ctx context.Context, limit int) ([]domain.Character, error) {
	return r.top(ctx, "power_level", limit)
}

func (r *CharacterRepository) top(ctx context.Context, column string, limit int) ([]domain.Character, error) {
	query := fmt.Sprintf(`
		SELECT profile FROM characters
		WHERE NOT is_dead
		ORDER BY %s DESC, user_handle
		LIMIT $1
	`, column)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query ranking: %w", err)
	}
	defer rows.Close()

	var out []domain.Character
	for rows.Next() {
		var profile []byte
		if err := rows.Scan(&profile); err != nil {
			return nil, fmt.Errorf("scan character profile: %w", err)
		}
		var ch domain.Character
		if err := json.Unmarshal(profile, &ch); err != nil {
			return nil, fmt.Errorf("decode character profile: %w", err)
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

// powerLevel keeps the ranking column in sync with the profile on every
// write.
func powerLevel(ch *domain.Character) float64 {
	return float64(ch.FighterData(0).PowerLevel())
}
