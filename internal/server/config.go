package server

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"RacketHearts/internal/game"
)

// Config is the process configuration, read from the environment. Flags in
// main override it; the tuning file layers on top of game defaults.
type Config struct {
	Addr       string        `env:"RH_ADDR" envDefault:":8080"`
	DBPath     string        `env:"RH_DB_PATH" envDefault:"rackethearts.db"`
	TuningPath string        `env:"RH_TUNING_PATH" envDefault:"configs/game.json"`
	SessionTTL time.Duration `env:"RH_SESSION_TTL" envDefault:"2h"`
}

// LoadConfig parses the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

type tuningConfig struct {
	EndingThreshold       *int     `json:"endingThreshold"`
	CalendarLookaheadDays *int     `json:"calendarLookaheadDays"`
	TypingDelayScale      *float64 `json:"typingDelayScale"`
}

// loadTuningFromFile merges the JSON tuning file over the defaults. A
// missing or broken file is reported so the caller can log it; the
// returned tuning is always usable.
func loadTuningFromFile(path string) (game.Tuning, error) {
	tuning := game.DefaultTuning()
	if path == "" {
		return tuning, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("read tuning config: %w", err)
	}
	var raw tuningConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return tuning, fmt.Errorf("parse tuning config: %w", err)
	}
	if raw.EndingThreshold != nil {
		tuning.EndingThreshold = *raw.EndingThreshold
	}
	if raw.CalendarLookaheadDays != nil {
		tuning.CalendarLookaheadDays = *raw.CalendarLookaheadDays
	}
	if raw.TypingDelayScale != nil {
		tuning.TypingDelayScale = *raw.TypingDelayScale
	}
	return tuning.Normalize(), nil
}
