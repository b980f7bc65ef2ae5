package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgCharacterNotFound  = "character not found"
	ErrMsgCharacterNotOwned  = "user has no registered character"
	ErrMsgAlreadyRegistered  = "user already has a character"
	ErrMsgItemNotFound       = "item not found"
	ErrMsgInsufficientAmount = "insufficient item amount"
	ErrMsgInsufficientOrbs   = "insufficient orbs"
	ErrMsgNotEnoughEther     = "not enough ether"
	ErrMsgNotEnoughFighters  = "battle requires at least two fighters"
	ErrMsgInvalidTarget      = "invalid target selection"
	ErrMsgAlreadyFighting    = "user is already fighting"
	ErrMsgBattleEnded        = "battle already ended"
	ErrMsgMaxIntruders       = "battle already at max intruders"
	ErrMsgWrongRegion        = "user is in a different region"
	ErrMsgUnknownEnemy       = "unknown enemy template"
	ErrMsgUnknownSkill       = "unknown skill kind"
	ErrMsgUnknownPact        = "unknown pact kind"
	ErrMsgOnCooldown         = "action on cooldown"
	ErrMsgInputTimeout       = "input timed out"
	ErrMsgNoActionPoints     = "no action points left"
	ErrMsgCharacterDead      = "character is dead"
	ErrMsgInvalidInput       = "invalid input"
)

// Common domain errors. Wrap with fmt.Errorf("%w: detail", domain.ErrXxx)
// for additional context.
var (
	ErrCharacterNotFound  = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterNotOwned  = errors.New(ErrMsgCharacterNotOwned)
	ErrAlreadyRegistered  = errors.New(ErrMsgAlreadyRegistered)
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrInsufficientAmount = errors.New(ErrMsgInsufficientAmount)
	ErrInsufficientOrbs   = errors.New(ErrMsgInsufficientOrbs)
	ErrNotEnoughEther     = errors.New(ErrMsgNotEnoughEther)
	ErrNotEnoughFighters  = errors.New(ErrMsgNotEnoughFighters)
	ErrInvalidTarget      = errors.New(ErrMsgInvalidTarget)
	ErrAlreadyFighting    = errors.New(ErrMsgAlreadyFighting)
	ErrBattleEnded        = errors.New(ErrMsgBattleEnded)
	ErrMaxIntruders       = errors.New(ErrMsgMaxIntruders)
	ErrWrongRegion        = errors.New(ErrMsgWrongRegion)
	ErrUnknownEnemy       = errors.New(ErrMsgUnknownEnemy)
	ErrUnknownSkill       = errors.New(ErrMsgUnknownSkill)
	ErrUnknownPact        = errors.New(ErrMsgUnknownPact)
	ErrOnCooldown         = errors.New(ErrMsgOnCooldown)
	ErrInputTimeout       = errors.New(ErrMsgInputTimeout)
	ErrNoActionPoints     = errors.New(ErrMsgNoActionPoints)
	ErrCharacterDead      = errors.New(ErrMsgCharacterDead)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)
