package repository

import (
	"context"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// Character defines the persistence contract for player characters. The
// postgres implementation lives in internal/database/postgres; tests use
// the in-memory fake in internal/character.
type Character interface {
	// GetByUser fetches the character owned by the platform handle.
	// Returns domain.ErrCharacterNotFound when none exists.
	GetByUser(ctx context.Context, userHandle string) (*domain.Character, error)
	GetByID(ctx context.Context, id string) (*domain.Character, error)

	// IsUserRegistered reports whether the handle owns a character.
	IsUserRegistered(ctx context.Context, userHandle string) (bool, error)

	// Register inserts a fresh character for the handle.
	Register(ctx context.Context, ch *domain.Character) error

	// Save persists the full character state.
	Save(ctx context.Context, ch *domain.Character) error

	// GetAllRefillable lists living characters below max action points,
	// for the daily refill sweep.
	GetAllRefillable(ctx context.Context) ([]domain.Character, error)

	// TopByOrbs and TopByPowerLevel back the ranking boards.
	TopByOrbs(ctx context.Context, limit int) ([]domain.Character, error)
	TopByPowerLevel(ctx context.Context, limit int) ([]domain.Character, error)
}
