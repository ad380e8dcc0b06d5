package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a game session has not been created or was closed.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrPlayerNameRequired is returned when the player name is blank after trimming.
	ErrPlayerNameRequired = errors.New("player name is required")
	// ErrPlayerNameTooLong is returned when the player name exceeds MaxPlayerNameLength characters.
	ErrPlayerNameTooLong = errors.New("player name must be 20 characters or less")
	// ErrUnknownTier indicates a tier outside the supported set.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrUnknownMode indicates a game mode outside the supported set.
	ErrUnknownMode = errors.New("unknown game mode")
	// ErrNoQuestions indicates the question pool could not supply a single question for the tier.
	ErrNoQuestions = errors.New("no questions available")
	// ErrInvalidPhase is returned when a transition is requested from a phase that does not allow it.
	ErrInvalidPhase = errors.New("invalid phase for action")
)
