package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/gunslinger/config"
	"github.com/luca-patrignani/gunslinger/domain/duel"
	"github.com/luca-patrignani/gunslinger/domain/run"
	"github.com/luca-patrignani/gunslinger/ledger"
)

type move int

const (
	moveStay move = iota
	moveHit
	moveSidearm
)

// strategy decides the player's commands.
type strategy interface {
	Bet(b *duel.Battle) int
	Move(b *duel.Battle) move
	// Retry reports whether a rejected command should be asked again.
	Retry(err error) bool
}

// autoStrategy bets the minimum and hits below 16, using the sidearm first
// when it cannot bust.
type autoStrategy struct{}

func (autoStrategy) Bet(b *duel.Battle) int {
	return b.MinWager()
}

func (autoStrategy) Move(b *duel.Battle) move {
	v := b.PlayerValue()
	if v >= 16 {
		return moveStay
	}
	if p := b.Player(); b.SidearmAvailable() && v+int(p.Sidearm.Rank()) <= duel.PlayerBustThreshold {
		return moveSidearm
	}
	return moveHit
}

func (autoStrategy) Retry(error) bool {
	return false
}

type interactiveStrategy struct{}

func (interactiveStrategy) Bet(b *duel.Battle) int {
	lo, hi := b.MinWager(), b.MaxWager()
	if lo == hi {
		pterm.Info.Printfln("All in: %d", lo)
		return lo
	}
	text := fmt.Sprintf("Enter your wager (%d-%d)", lo, hi)
	answer, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(text).WithDefaultValue(strconv.Itoa(lo)).Show()
	amount, err := strconv.Atoi(answer)
	if err != nil {
		return 0
	}
	return amount
}

func (interactiveStrategy) Move(b *duel.Battle) move {
	options := []string{"Hit", "Stay"}
	if b.SidearmAvailable() {
		options = append(options, "Sidearm "+b.Player().Sidearm.String())
	}
	selected, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").WithOptions(options).Show()
	switch selected {
	case "Hit":
		return moveHit
	case "Stay":
		return moveStay
	}
	return moveSidearm
}

func (interactiveStrategy) Retry(err error) bool {
	pterm.Error.Printfln("Invalid action: %s", err.Error())
	return true
}

// session bundles what a run needs besides the tracker.
type session struct {
	cfg      config.Config
	strategy strategy
	journal  *ledger.Journal
	logger   *slog.Logger
	name     string
	// pause waits out the delays the battle asks for.
	pause func(time.Duration)
	// show renders the battle after every command.
	show bool
}

// playRun fights every boss of a fresh run until the run is complete or the
// player falls, and returns the last battle outcome.
func (s session) playRun(tr *run.Tracker) (duel.BattleOutcome, error) {
	src := s.cfg.Source()
	rules := s.cfg.Rules()
	var last duel.BattleOutcome
	for boss := tr.StartRun(); boss != nil && tr.Active(); boss = tr.AdvanceToNextBoss() {
		if s.show {
			printIntermission(tr, *boss)
		}
		id := uuid.NewString()
		b, events, err := tr.NewBattle(
			duel.WithID(id),
			duel.WithRules(rules),
			duel.WithSource(src),
			duel.WithLogger(s.logger),
			duel.WithObserver(s.journal.Observer(id)),
		)
		if err != nil {
			return last, err
		}
		last, err = s.playBattle(b, events)
		if err != nil {
			return last, err
		}
		if s.show {
			_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getOutcomePanel(last)}}).Render()
		}
	}
	if err := tr.Validate(); err != nil {
		s.logger.Warn("inconsistent run state", "err", err)
	}
	return last, nil
}

// playBattle drives b to its end with the session strategy.
func (s session) playBattle(b *duel.Battle, events []duel.Event) (duel.BattleOutcome, error) {
	bossName := b.Boss().Name
	for {
		if s.show {
			printEvents(events, bossName)
			if b.State() == duel.Betting || b.State() == duel.PlayerTurn {
				printState(b, s.name)
			}
		}
		for _, e := range events {
			if e.Delay > 0 {
				s.pause(e.Delay)
			}
		}

		var err error
		switch {
		case b.HasPending():
			events, err = b.ResolvePending()
		case b.State() == duel.BattleEnd:
			out, _ := b.Outcome()
			return out, nil
		case b.State() == duel.Betting:
			events, err = b.PlaceBet(s.strategy.Bet(b))
		case b.State() == duel.PlayerTurn:
			switch s.strategy.Move(b) {
			case moveHit:
				events, err = b.PlayerHit()
			case moveSidearm:
				events, err = b.PlayerUseSidearm()
			default:
				events, err = b.PlayerStay()
			}
		default:
			return duel.BattleOutcome{}, fmt.Errorf("battle stuck in %s", b.State())
		}
		if err != nil {
			if !s.strategy.Retry(err) {
				return duel.BattleOutcome{}, err
			}
			events = nil
		}
	}
}
