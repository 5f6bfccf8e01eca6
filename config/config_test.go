package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/gunslinger/domain/deck"
	"github.com/luca-patrignani/gunslinger/domain/duel"
)

// unset clears key for the test and restores it afterwards.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.TableMax)
	assert.Equal(t, time.Second, cfg.BustDelay)
	assert.Equal(t, 2*time.Second, cfg.BattleEndDelay)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 100, cfg.RunBonus)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "rusty_gunslinger", cfg.Character)
	assert.Equal(t, []int{2, 3, 5, 7, 10, 13}, cfg.BossWagers)
	assert.False(t, cfg.Immediate)
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, duel.DefaultRules(), cfg.Rules())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUEL_TABLE_MAX", "7")
	t.Setenv("DUEL_BUST_DELAY", "0s")
	t.Setenv("DUEL_SEED", "42")
	t.Setenv("DUEL_LOG_LEVEL", "debug")
	t.Setenv("DUEL_BOSS_WAGERS", "1,1,2")
	t.Setenv("DUEL_IMMEDIATE", "true")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	rules := cfg.Rules()
	assert.Equal(t, 7, rules.TableMax)
	assert.Zero(t, rules.BustDelay)
	assert.True(t, rules.ImmediateResolution)
	assert.Equal(t, []int{1, 1, 2}, rules.WagerSchedule)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("DUEL_TABLE_MAX", "lots")
	_, err := Load(missingFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadDotenvFile(t *testing.T) {
	unset(t, "DUEL_RUN_BONUS")
	unset(t, "DUEL_CHARACTER")
	t.Setenv("DUEL_TABLE_MAX", "50")

	path := filepath.Join(t.TempDir(), "duel.env")
	content := "DUEL_RUN_BONUS=42\nDUEL_TABLE_MAX=10\n# comment\nDUEL_CHARACTER=rusty_gunslinger\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(missingFile(t), path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.RunBonus)
	assert.Equal(t, 50, cfg.TableMax, "environment must win over the file")
}

func TestValidate(t *testing.T) {
	base, err := Load(missingFile(t))
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"table max", func(c *Config) { c.TableMax = 0 }, "table max"},
		{"negative delay", func(c *Config) { c.BustDelay = -time.Second }, "delays"},
		{"run bonus", func(c *Config) { c.RunBonus = -1 }, "run bonus"},
		{"empty schedule", func(c *Config) { c.BossWagers = nil }, "schedule is empty"},
		{"zero wager", func(c *Config) { c.BossWagers = []int{2, 0} }, "boss wager 2"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"character", func(c *Config) { c.Character = "nobody" }, "unknown character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.BossWagers = append([]int(nil), base.BossWagers...)
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	bad := base
	bad.TableMax = 0
	bad.Character = "nobody"
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table max")
	assert.Contains(t, err.Error(), "unknown character")
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
}

func TestSource(t *testing.T) {
	seeded := Config{Seed: 9}.Source()
	again := deck.NewSeededSource(9)
	for range 10 {
		assert.Equal(t, again.Intn(44), seeded.Intn(44))
	}

	src := Config{}.Source()
	for range 10 {
		n := src.Intn(44)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 44)
	}
}
