// Package character is the player profile service: registration, cached
// lookups, battle-result settlement, and the ranking boards. Battles never
// touch persistence themselves; they hand their results here.
package character

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etheris-rpg/etheris/internal/concurrency"
	"github.com/etheris-rpg/etheris/internal/controller"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/logger"
	"github.com/etheris-rpg/etheris/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute

	startingVitality     = 100
	startingResistance   = 100
	startingEther        = 50
	startingActionPoints = 10
)

// Service mediates all character reads and writes, with a read-through
// cache in front of the repository.
type Service struct {
	repo  repository.Character
	cache *characterCache
	locks *concurrency.UserLocks
}

// NewService builds the character service.
func NewService(repo repository.Character, locks *concurrency.UserLocks) *Service {
	return &Service{
		repo:  repo,
		cache: newCharacterCache(defaultCacheSize, defaultCacheTTL),
		locks: locks,
	}
}

// GetByUser fetches the handle's character, cache first.
func (s *Service) GetByUser(ctx context.Context, userHandle string) (*domain.Character, error) {
	if ch, ok := s.cache.Get(userHandle); ok {
		return ch, nil
	}
	ch, err := s.repo.GetByUser(ctx, userHandle)
	if err != nil {
		return nil, err
	}
	s.cache.Set(userHandle, ch)
	return ch, nil
}

// IsRegistered reports whether the handle owns a character.
func (s *Service) IsRegistered(ctx context.Context, userHandle string) (bool, error) {
	if _, ok := s.cache.Get(userHandle); ok {
		return true, nil
	}
	return s.repo.IsUserRegistered(ctx, userHandle)
}

// Register creates a fresh character for the handle with starting stats.
func (s *Service) Register(ctx context.Context, userHandle, name string, region domain.Region) (*domain.Character, error) {
	if !region.Valid() {
		return nil, fmt.Errorf("%w: region %q", domain.ErrInvalidInput, region)
	}
	registered, err := s.repo.IsUserRegistered(ctx, userHandle)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, userHandle)
	}

	now := time.Now()
	ch := &domain.Character{
		ID:              uuid.NewString(),
		UserHandle:      userHandle,
		Name:            name,
		Region:          region,
		Vitality:        domain.NewAttribute(startingVitality),
		Resistance:      domain.NewAttribute(startingResistance),
		Ether:           domain.NewAttribute(startingEther),
		ActionPoints:    startingActionPoints,
		MaxActionPoints: startingActionPoints,
		Potential:       0.1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Register(ctx, ch); err != nil {
		return nil, err
	}
	s.cache.Set(userHandle, ch)
	logger.FromContext(ctx).Info("character registered",
		"user", userHandle, "name", name, "region", region)
	return ch, nil
}

// Save persists the character and refreshes the cache.
func (s *Service) Save(ctx context.Context, ch *domain.Character) error {
	ch.ClampInvariants()
	ch.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, ch); err != nil {
		s.cache.Invalidate(ch.UserHandle)
		return err
	}
	s.cache.Set(ch.UserHandle, ch)
	return nil
}

// SpendActionPoint consumes one action point, refusing dead or exhausted
// characters. Serialized per user so concurrent commands cannot overspend.
func (s *Service) SpendActionPoint(ctx context.Context, ch *domain.Character) error {
	lock := s.locks.For(ch.UserHandle)
	lock.Lock()
	defer lock.Unlock()

	if ch.IsDead {
		return domain.ErrCharacterDead
	}
	if ch.ActionPoints <= 0 {
		return domain.ErrNoActionPoints
	}
	ch.ActionPoints--
	return s.Save(ctx, ch)
}

// Refill restores the character for a new day: attributes to max, action
// points to max, the defeated mark cleared. The dead stay dead.
func (s *Service) Refill(ctx context.Context, ch *domain.Character) error {
	lock := s.locks.For(ch.UserHandle)
	lock.Lock()
	defer lock.Unlock()

	if ch.IsDead {
		return domain.ErrCharacterDead
	}
	ch.Vitality.Refill()
	ch.Resistance.Refill()
	ch.Ether.Refill()
	ch.ActionPoints = ch.MaxActionPoints
	ch.IsDefeated = false
	now := time.Now()
	ch.LastRefillAt = &now
	return s.Save(ctx, ch)
}

// RefillAll sweeps every refillable character. Used by the daily worker;
// returns how many were refilled.
func (s *Service) RefillAll(ctx context.Context) (int, error) {
	all, err := s.repo.GetAllRefillable(ctx)
	if err != nil {
		return 0, err
	}
	log := logger.FromContext(ctx)
	refilled := 0
	for i := range all {
		ch := &all[i]
		if err := s.Refill(ctx, ch); err != nil {
			log.Warn("refill failed", "user", ch.UserHandle, "error", err)
			continue
		}
		refilled++
	}
	return refilled, nil
}

// TopByOrbs returns the richest characters.
func (s *Service) TopByOrbs(ctx context.Context, limit int) ([]domain.Character, error) {
	return s.repo.TopByOrbs(ctx, limit)
}

// TopByPowerLevel returns the strongest characters.
func (s *Service) TopByPowerLevel(ctx context.Context, limit int) ([]domain.Character, error) {
	return s.repo.TopByPowerLevel(ctx, limit)
}

// ApplyBattleResult settles a consequence battle against persistence:
// losers are marked defeated, the killed are marked dead with their cause,
// winners collect their rolled rewards and boss records.
func (s *Service) ApplyBattleResult(ctx context.Context, result *controller.Result) error {
	log := logger.FromContext(ctx)
	var errs []error

	for _, outcome := range result.Fighters {
		if outcome.User == "" {
			continue
		}
		lock := s.locks.For(outcome.User)
		lock.Lock()
		ch, err := s.GetByUser(ctx, outcome.User)
		if err != nil {
			lock.Unlock()
			errs = append(errs, fmt.Errorf("settle %s: %w", outcome.User, err))
			continue
		}

		if outcome.Won {
			if reward, ok := result.Rewards[outcome.User]; ok {
				ch.Orbs += reward.Orbs
				share := reward.XP / 3
				ch.StrengthXP += share
				ch.IntelligenceXP += share
				ch.KnowledgeXP += reward.XP - 2*share
				for item, amount := range reward.Items {
					ch.AddItem(item, amount)
				}
			}
			for _, boss := range result.DefeatedBosses {
				if !ch.HasDefeatedBoss(boss) {
					ch.DefeatedBosses = append(ch.DefeatedBosses, boss)
				}
			}
		} else {
			ch.IsDefeated = true
			if outcome.Killed {
				ch.IsDead = true
				ch.DeathCause = deathCause(result, outcome)
				log.Info("character died in battle",
					"user", outcome.User, "cause", ch.DeathCause)
			}
		}

		if err := s.Save(ctx, ch); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", outcome.User, err))
		}
		lock.Unlock()
	}
	return errors.Join(errs...)
}

func deathCause(result *controller.Result, outcome controller.FighterOutcome) string {
	if outcome.KilledBy == nil {
		return "fell in battle"
	}
	for _, o := range result.Fighters {
		if o.Index == *outcome.KilledBy {
			return fmt.Sprintf("slain by %s", o.Name)
		}
	}
	return "fell in battle"
}
