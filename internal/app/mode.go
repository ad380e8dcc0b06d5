package app

import (
	"fmt"
	"strings"
	"time"

	"quiz-racer/internal/domain"
)

// Config holds the per-session constants.
type Config struct {
	PerQuestionTime int
	TotalQuestions  int
	MaxDistance     int
	RevealDelay     time.Duration
	Competitors     int
}

const (
	ModeRace    = "race"
	ModeRelaxed = "relaxed"
)

// DefaultConfig is the race mode: 30 questions, 8 seconds each.
func DefaultConfig() Config {
	return Config{
		PerQuestionTime: 8,
		TotalQuestions:  30,
		MaxDistance:     1000,
		RevealDelay:     time.Second,
		Competitors:     len(competitorNames),
	}
}

// ConfigForMode returns the preset of a named mode. An empty name selects race.
func ConfigForMode(mode string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeRace:
		return cfg, nil
	case ModeRelaxed:
		cfg.PerQuestionTime = 15
		cfg.TotalQuestions = 20
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
}

func (c Config) rules() Rules {
	return Rules{
		PerQuestionTime: c.PerQuestionTime,
		TotalQuestions:  c.TotalQuestions,
		MaxDistance:     c.MaxDistance,
	}
}
