package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/gunslinger/config"
	"github.com/luca-patrignani/gunslinger/domain/run"
	"github.com/luca-patrignani/gunslinger/ledger"
)

func main() {
	auto := flag.Bool("auto", false, "play every decision automatically, without prompts or pauses")
	envFile := flag.String("env", ".env", "dotenv file with DUEL_* settings")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config:\n%v\n", err)
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.SlogLevel())))

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Gun", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("slinger", pterm.FgDarkGray.ToStyle()),
	).Render()

	tracker := run.NewTracker(run.WithRunBonus(cfg.RunBonus), run.WithLogger(logger))
	characterID := cfg.Character
	if !*auto {
		characterID = selectCharacter(cfg.Character)
	}
	if err := tracker.SelectCharacter(characterID); err != nil {
		logger.Error("cannot select character", "err", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("Playing as %s the %s", tracker.Player().Character.Name, tracker.Player().Character.Class)

	s := session{
		cfg:      cfg,
		strategy: interactiveStrategy{},
		journal:  ledger.NewJournal(logger),
		logger:   logger,
		name:     tracker.Player().Character.Name,
		pause:    time.Sleep,
		show:     true,
	}
	if *auto {
		s.strategy = autoStrategy{}
		s.pause = func(time.Duration) {}
	}

	for {
		if _, err := s.playRun(tracker); err != nil {
			logger.Error("run aborted", "err", err)
			os.Exit(1)
		}
		p := tracker.Player()
		pterm.Info.Printfln("Runs won: %d | Runs lost: %d | Reputation: %d | Rounds this run: %d",
			p.GamesWon, p.GamesLost, p.Reputation, tracker.Rounds())
		if err := s.journal.Verify(); err != nil {
			logger.Error("journal corrupted", "err", err)
		}
		if *auto {
			return
		}
		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Ride again?").WithDefaultValue(true).Show()
		if !again {
			return
		}
		tracker.ResetForNewGame()
	}
}

func selectCharacter(fallback string) string {
	if len(run.Characters) < 2 {
		return fallback
	}
	names := make([]string, len(run.Characters))
	for i, c := range run.Characters {
		names[i] = c.Name
	}
	selected, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Choose your gunslinger").WithOptions(names).Show()
	for _, c := range run.Characters {
		if c.Name == selected {
			return c.ID
		}
	}
	return fallback
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	}
	return pterm.LogLevelError
}
