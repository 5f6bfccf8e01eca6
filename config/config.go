// Package config reads the table settings of a session from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/luca-patrignani/gunslinger/domain/deck"
	"github.com/luca-patrignani/gunslinger/domain/duel"
	"github.com/luca-patrignani/gunslinger/domain/run"
)

type Config struct {
	TableMax       int           `env:"DUEL_TABLE_MAX" envDefault:"100"`
	BustDelay      time.Duration `env:"DUEL_BUST_DELAY" envDefault:"1s"`
	BattleEndDelay time.Duration `env:"DUEL_BATTLE_END_DELAY" envDefault:"2s"`
	// Seed makes shuffles reproducible. Zero draws from the crypto source.
	Seed       int64  `env:"DUEL_SEED" envDefault:"0"`
	RunBonus   int    `env:"DUEL_RUN_BONUS" envDefault:"100"`
	LogLevel   string `env:"DUEL_LOG_LEVEL" envDefault:"info"`
	Character  string `env:"DUEL_CHARACTER" envDefault:"rusty_gunslinger"`
	BossWagers []int  `env:"DUEL_BOSS_WAGERS" envDefault:"2,3,5,7,10,13" envSeparator:","`
	Immediate  bool   `env:"DUEL_IMMEDIATE" envDefault:"false"`
}

// Load reads the given dotenv files (".env" when none is named) and then the
// environment. Missing files are skipped and variables already set win over
// the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	if c.TableMax < 1 {
		errs = append(errs, fmt.Errorf("table max must be positive, got %d", c.TableMax))
	}
	if c.BustDelay < 0 || c.BattleEndDelay < 0 {
		errs = append(errs, errors.New("delays cannot be negative"))
	}
	if c.RunBonus < 0 {
		errs = append(errs, fmt.Errorf("run bonus cannot be negative, got %d", c.RunBonus))
	}
	if len(c.BossWagers) == 0 {
		errs = append(errs, errors.New("boss wager schedule is empty"))
	}
	for i, w := range c.BossWagers {
		if w < 1 {
			errs = append(errs, fmt.Errorf("boss wager %d must be positive, got %d", i+1, w))
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, ok := run.FindCharacter(c.Character); !ok {
		errs = append(errs, fmt.Errorf("unknown character %q", c.Character))
	}
	return errors.Join(errs...)
}

func (c Config) Rules() duel.Rules {
	return duel.Rules{
		TableMax:            c.TableMax,
		BustDelay:           c.BustDelay,
		BattleEndDelay:      c.BattleEndDelay,
		ImmediateResolution: c.Immediate,
		WagerSchedule:       slices.Clone(c.BossWagers),
	}
}

// Source returns the shuffle randomness for the configured seed.
func (c Config) Source() deck.Source {
	if c.Seed == 0 {
		return deck.NewCryptoSource()
	}
	return deck.NewSeededSource(c.Seed)
}

// SlogLevel falls back to info for an unknown level.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
