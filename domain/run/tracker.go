// Package run tracks a campaign: the ordered bosses, how far the player got
// and the player state carried from one battle to the next.
package run

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/luca-patrignani/gunslinger/domain/duel"
)

// DefaultRunBonus is the reputation awarded for beating every boss.
const DefaultRunBonus = 100

var (
	ErrRunComplete      = errors.New("run already complete")
	ErrRunInactive      = errors.New("no active run")
	ErrRunActive        = errors.New("run in progress")
	ErrUnknownCharacter = errors.New("unknown character")
)

// Tracker owns the campaign position and the persistent player. It
// implements duel.Tracker so a battle reports its end back here.
type Tracker struct {
	id       string
	bosses   []duel.BossTemplate
	current  int
	defeated []string
	active   bool
	rounds   int
	runBonus int
	player   PlayerData
	logger   *slog.Logger
}

// NewTracker returns an idle tracker on the default campaign with the default
// character selected.
func NewTracker(opts ...Option) *Tracker {
	t := Tracker{
		bosses:   DefaultBosses(),
		runBonus: DefaultRunBonus,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		t = opt(t)
	}
	c, _ := FindCharacter(DefaultCharacterID)
	t.setCharacter(c)
	return &t
}

func (t *Tracker) setCharacter(c Character) {
	t.player.Character = c
	t.player.Health = c.BaseHealth
	t.player.MaxHealth = c.BaseHealth
}

// SelectCharacter swaps the playable character and restores its base health.
// It is refused while a run is in progress.
func (t *Tracker) SelectCharacter(id string) error {
	if t.active {
		return fmt.Errorf("select %q: %w", id, ErrRunActive)
	}
	c, ok := FindCharacter(id)
	if !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownCharacter)
	}
	t.setCharacter(c)
	t.logger.Info("character selected", "character", c.Name)
	return nil
}

// StartRun rewinds to the first boss with the character's base health and a
// new run id, and returns the first boss (nil for an empty campaign).
func (t *Tracker) StartRun() *duel.BossTemplate {
	t.id = uuid.NewString()
	t.current = 0
	t.defeated = nil
	t.rounds = 0
	t.player.Health = t.player.Character.BaseHealth
	t.player.MaxHealth = t.player.Character.BaseHealth
	t.active = len(t.bosses) > 0
	t.logger.Info("run started", "run", t.id, "bosses", len(t.bosses))
	return t.AdvanceToNextBoss()
}

// AdvanceToNextBoss returns a copy of the boss at the current position, or
// nil once the run is complete.
func (t *Tracker) AdvanceToNextBoss() *duel.BossTemplate {
	if t.IsRunComplete() {
		return nil
	}
	b := t.bosses[t.current]
	b.WagerSchedule = slices.Clone(b.WagerSchedule)
	return &b
}

// DefeatCurrentBoss records the current boss as beaten and moves to the next
// one.
func (t *Tracker) DefeatCurrentBoss() error {
	if t.IsRunComplete() {
		return ErrRunComplete
	}
	t.defeated = append(t.defeated, t.bosses[t.current].ID)
	t.current++
	return nil
}

func (t *Tracker) IsRunComplete() bool {
	return t.current >= len(t.bosses)
}

// HandleBattleEnd folds the result of a battle into the run and fills the run
// fields of the outcome. A defeat leaves the position where it was.
func (t *Tracker) HandleBattleEnd(o duel.BattleOutcome) duel.BattleOutcome {
	t.player.Health = max(0, o.PlayerHealth)

	switch o.Result {
	case duel.Victory:
		if err := t.DefeatCurrentBoss(); err != nil {
			t.logger.Warn("victory reported on a finished run", "run", t.id, "err", err)
		}
		if t.IsRunComplete() {
			t.active = false
			t.player.GamesWon++
			t.player.Reputation += t.runBonus
			o.RunComplete = true
			o.ReputationGain = t.runBonus
			o.NextScene = duel.SceneRunComplete
		} else {
			o.NextScene = duel.SceneVictory
		}
	case duel.Defeat:
		t.active = false
		t.player.GamesLost++
		o.NextScene = duel.SceneGameOver
	}

	o.Defeated, o.Total = t.current, len(t.bosses)
	t.logger.Info("battle recorded",
		"run", t.id,
		"result", o.Result,
		"defeated", o.Defeated,
		"total", o.Total,
		"next_scene", o.NextScene,
	)
	return o
}

// Progress returns how many bosses are behind the player, the campaign length
// and the ids beaten so far.
func (t *Tracker) Progress() (current, total int, defeated []string) {
	return t.current, len(t.bosses), slices.Clone(t.defeated)
}

// NewBattle builds and initializes a battle against the current boss with the
// player's carried health. The battle reports back to t.
func (t *Tracker) NewBattle(opts ...duel.Option) (*duel.Battle, []duel.Event, error) {
	if !t.active {
		return nil, nil, ErrRunInactive
	}
	tmpl := t.AdvanceToNextBoss()
	if tmpl == nil {
		return nil, nil, ErrRunComplete
	}
	opts = append(opts, duel.WithTracker(t), duel.WithObserver(t.observe))
	b := duel.NewBattle(opts...)
	events, err := b.Initialize(t.player.Health, t.player.MaxHealth, tmpl)
	if err != nil {
		return nil, nil, fmt.Errorf("start battle against %s: %w", tmpl.ID, err)
	}
	return b, events, nil
}

func (t *Tracker) observe(e duel.Event) {
	if e.Kind == duel.EventRoundResolved && e.Result != nil {
		t.RecordRound(*e.Result)
	}
}

// RecordRound counts a resolved round towards the run.
func (t *Tracker) RecordRound(r duel.RoundResult) {
	t.rounds++
	t.logger.Debug("round recorded", "run", t.id, "rounds", t.rounds, "result", r.Result)
}

// ResetForNewGame drops the run and restores the character's base health.
// Win/loss counters and reputation are kept.
func (t *Tracker) ResetForNewGame() {
	t.id = ""
	t.current = 0
	t.defeated = nil
	t.active = false
	t.rounds = 0
	t.player.Health = t.player.Character.BaseHealth
	t.player.MaxHealth = t.player.Character.BaseHealth
	t.logger.Debug("game state reset")
}

// Validate reports every inconsistency it finds, joined.
func (t *Tracker) Validate() error {
	var errs []error
	if t.player.Health < 0 || t.player.Health > t.player.MaxHealth {
		errs = append(errs, fmt.Errorf("player health %d outside [0, %d]", t.player.Health, t.player.MaxHealth))
	}
	if len(t.bosses) == 0 {
		errs = append(errs, errors.New("campaign has no bosses"))
	}
	if t.current < 0 || t.current > len(t.bosses) {
		errs = append(errs, fmt.Errorf("position %d outside campaign of %d", t.current, len(t.bosses)))
	}
	if len(t.defeated) != t.current {
		errs = append(errs, fmt.Errorf("%d bosses defeated but position is %d", len(t.defeated), t.current))
	}
	if t.active && t.id == "" {
		errs = append(errs, errors.New("active run without id"))
	}
	seen := make(map[string]bool, len(t.bosses))
	for i, b := range t.bosses {
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("boss %d has no id", i))
		} else if seen[b.ID] {
			errs = append(errs, fmt.Errorf("boss id %q repeated", b.ID))
		}
		seen[b.ID] = true
		if b.Health <= 0 {
			errs = append(errs, fmt.Errorf("boss %q has health %d", b.ID, b.Health))
		}
	}
	return errors.Join(errs...)
}

func (t *Tracker) ID() string {
	return t.id
}

func (t *Tracker) Active() bool {
	return t.active
}

// Rounds is the number of rounds resolved during the run.
func (t *Tracker) Rounds() int {
	return t.rounds
}

func (t *Tracker) Player() PlayerData {
	return t.player
}

func (t *Tracker) Bosses() []duel.BossTemplate {
	return slices.Clone(t.bosses)
}
