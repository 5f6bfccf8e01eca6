package duel

import "time"

type EventKind string

const (
	EventRoundStarted     EventKind = "roundStarted"
	EventBetPlaced        EventKind = "betPlaced"
	EventCardsDealt       EventKind = "cardsDealt"
	EventPlayerHit        EventKind = "playerHit"
	EventSidearmUsed      EventKind = "sidearmUsed"
	EventPlayerBusted     EventKind = "playerBusted"
	EventPlayerStayed     EventKind = "playerStayed"
	EventBossHit          EventKind = "bossHit"
	EventBossFinished     EventKind = "bossFinished"
	EventRoundResolved    EventKind = "roundResolved"
	EventReadyForNewRound EventKind = "readyForNewRound"
	EventBattleEnded      EventKind = "battleEnded"
)

// Event is one notification emitted by a battle transition. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind    EventKind      `json:"kind"`
	Round   int            `json:"round"`
	Amount  int            `json:"amount,omitempty"`
	Card    *Card          `json:"card,omitempty"`
	Result  *RoundResult   `json:"result,omitempty"`
	Outcome *BattleOutcome `json:"outcome,omitempty"`
	// Delay is how long a presentation layer should wait before invoking the
	// follow up (ResolvePending after a bust, the next scene after battle end).
	Delay time.Duration `json:"delay,omitempty"`
}

// Observer receives events synchronously, in emission order.
type Observer func(Event)

type Result string

const (
	PlayerWin Result = "playerWin"
	BossWin   Result = "bossWin"
	Tie       Result = "tie"
)

// RoundResult is the payload of roundResolved.
type RoundResult struct {
	Result       Result `json:"result"`
	PlayerValue  int    `json:"player_value"`
	BossValue    int    `json:"boss_value"`
	PlayerBust   bool   `json:"player_bust"`
	BossBust     bool   `json:"boss_bust"`
	PlayerDamage int    `json:"player_damage"`
	BossDamage   int    `json:"boss_damage"`
	Wager        int    `json:"wager"`
	BossWager    int    `json:"boss_wager"`
}

type BattleResult string

const (
	Victory BattleResult = "victory"
	Defeat  BattleResult = "defeat"
)

type Scene string

const (
	SceneVictory     Scene = "victory"
	SceneRunComplete Scene = "runComplete"
	SceneGameOver    Scene = "gameOver"
)

// BattleOutcome is the payload of battleEnded. The run fields are filled by
// the Tracker.
type BattleOutcome struct {
	Result         BattleResult `json:"result"`
	PlayerHealth   int          `json:"player_health"`
	BossHealth     int          `json:"boss_health"`
	BossID         string       `json:"boss_id"`
	Rounds         int          `json:"rounds"`
	RoundsWon      int          `json:"rounds_won"`
	RunComplete    bool         `json:"run_complete"`
	ReputationGain int          `json:"reputation_gain,omitempty"`
	Defeated       int          `json:"defeated"`
	Total          int          `json:"total"`
	NextScene      Scene        `json:"next_scene"`
}

// Tracker receives the end of a battle, updates the run and returns the
// outcome completed with the run fields.
type Tracker interface {
	HandleBattleEnd(outcome BattleOutcome) BattleOutcome
}
