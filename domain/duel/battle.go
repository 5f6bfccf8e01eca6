package duel

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Battle is the state machine of one fight between the player and a boss.
// A Battle is single use: once it reaches BattleEnd a new one is built for the
// next fight. It is not safe for concurrent use.
type Battle struct {
	id        string
	state     State
	rules     Rules
	deck      DuelDeck
	tracker   Tracker
	logger    *slog.Logger
	observers []Observer

	player *Player
	boss   *Boss

	round     int
	wager     int
	roundsWon int
	roundOpen bool // hands were reset since the last resolution
	pending   bool // a bust is waiting for ResolvePending
	outcome   *BattleOutcome
}

// NewBattle returns an inactive battle. Call Initialize before any command.
func NewBattle(opts ...Option) *Battle {
	b := Battle{
		id:     uuid.NewString(),
		state:  Inactive,
		rules:  DefaultRules(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		b = opt(b)
	}
	if b.deck.Deck == nil {
		b.deck = NewDuelDeck(nil)
	}
	b.logger = b.logger.With("battle", b.id)
	return &b
}

// Observe registers o for every following event.
func (b *Battle) Observe(o Observer) {
	b.observers = append(b.observers, o)
}

// Initialize builds both combatants and opens round one. A nil template falls
// back to DefaultBoss. If either health pool is already empty the battle ends
// on the spot.
func (b *Battle) Initialize(playerHealth, playerMaxHealth int, tmpl *BossTemplate) ([]Event, error) {
	if b.state != Inactive {
		return nil, b.reject("initialize", fmt.Errorf("%w: battle already %s", ErrInvalidState, b.state))
	}
	t := DefaultBoss
	if tmpl != nil {
		t = *tmpl
	} else {
		b.logger.Warn("no boss template supplied, using fallback", "boss", t.ID)
	}
	if len(t.WagerSchedule) == 0 {
		t.WagerSchedule = b.rules.WagerSchedule
	}

	b.player = &Player{
		Health:    max(0, playerHealth),
		MaxHealth: max(playerMaxHealth, playerHealth),
	}
	b.boss = NewBoss(t)
	b.round = 0
	b.wager = MinWager(1, b.player.Health)
	b.boss.CurrentWager = b.boss.WagerFor(1)
	b.state = nextState(Inactive)
	b.logger.Debug("battle initialized",
		"player_health", b.player.Health,
		"boss", b.boss.Name,
		"boss_health", b.boss.Health,
		"bust_threshold", b.boss.BustThreshold,
		"stay_threshold", b.boss.StayThreshold,
	)

	var events []Event
	if b.player.Health <= 0 {
		return b.endBattle(events, Defeat), nil
	}
	if b.boss.Health <= 0 {
		return b.endBattle(events, Victory), nil
	}
	return b.openRound(events), nil
}

// StartNewRound clears both hands, reshuffles the deck and hands the player a
// fresh sidearm. Only valid between rounds.
func (b *Battle) StartNewRound() ([]Event, error) {
	if err := b.expect(Betting); err != nil {
		return nil, b.reject("start round", err)
	}
	return b.openRound(nil), nil
}

// PlaceBet starts the next round with the given wager and deals the opening
// cards. The round counter only moves when the bet is accepted.
func (b *Battle) PlaceBet(amount int) ([]Event, error) {
	if err := b.expect(Betting); err != nil {
		return nil, b.reject("place bet", err)
	}
	round := b.round + 1
	wager, err := CheckBet(amount, round, b.player.Health, b.rules.TableMax)
	if err != nil {
		return nil, b.reject("place bet", err)
	}

	var events []Event
	if !b.roundOpen {
		events = b.openRound(events)
	}
	b.round = round
	b.wager = wager
	b.boss.CurrentWager = b.boss.WagerFor(round)
	b.state = nextState(Betting)
	if wager != amount {
		b.logger.Info("wager forced all-in", "asked", amount, "wager", wager, "round", round)
	}
	events = b.emit(events, Event{Kind: EventBetPlaced, Amount: wager})
	return b.dealInitialCards(events), nil
}

// dealInitialCards deals player, boss, player, boss.
func (b *Battle) dealInitialCards(events []Event) []Event {
	b.player.AddCard(b.deck.Draw())
	b.boss.AddCard(b.deck.Draw())
	b.player.AddCard(b.deck.Draw())
	b.boss.AddCard(b.deck.Draw())
	b.roundOpen = false
	b.state = nextState(Dealing)
	b.logger.Debug("initial cards dealt", "player_value", Value(b.player.Hand), "boss_value", Value(b.boss.Hand))
	return b.emit(events, Event{Kind: EventCardsDealt})
}

// PlayerHit draws one card for the player. Going over 21 ends the round and
// leaves the resolution pending.
func (b *Battle) PlayerHit() ([]Event, error) {
	if err := b.expect(PlayerTurn); err != nil {
		return nil, b.reject("hit", err)
	}
	c := b.deck.Draw()
	b.player.AddCard(c)
	events := b.emit(nil, Event{Kind: EventPlayerHit, Card: &c})
	return b.checkPlayerBust(events), nil
}

// PlayerUseSidearm plays the round's sidearm as an extra hit.
func (b *Battle) PlayerUseSidearm() ([]Event, error) {
	if err := b.expect(PlayerTurn); err != nil {
		return nil, b.reject("sidearm", err)
	}
	c, ok := b.player.UseSidearm()
	if !ok {
		return nil, b.reject("sidearm", ErrNoSidearm)
	}
	events := b.emit(nil, Event{Kind: EventSidearmUsed, Card: &c})
	return b.checkPlayerBust(events), nil
}

// PlayerStay hands the turn to the boss, plays it out and resolves the round.
func (b *Battle) PlayerStay() ([]Event, error) {
	if err := b.expect(PlayerTurn); err != nil {
		return nil, b.reject("stay", err)
	}
	b.state = nextState(PlayerTurn)
	events := b.emit(nil, Event{Kind: EventPlayerStayed})
	events = b.bossTurn(events)
	b.state = nextState(BossTurn)
	return b.resolveRound(events), nil
}

// ResolvePending resolves a round that ended on a player bust.
func (b *Battle) ResolvePending() ([]Event, error) {
	if !b.pending {
		return nil, b.reject("resolve", fmt.Errorf("%w: nothing to resolve in %s", ErrInvalidState, b.state))
	}
	b.pending = false
	return b.resolveRound(nil), nil
}

func (b *Battle) checkPlayerBust(events []Event) []Event {
	if !b.player.IsBust() {
		return events
	}
	b.state = RoundEnd
	b.pending = true
	events = b.emit(events, Event{Kind: EventPlayerBusted, Amount: Value(b.player.Hand), Delay: b.rules.BustDelay})
	if b.rules.ImmediateResolution {
		b.pending = false
		events = b.resolveRound(events)
	}
	return events
}

// bossTurn draws while the boss is under its stay threshold, stopping as soon
// as it goes over its own bust threshold.
func (b *Battle) bossTurn(events []Event) []Event {
	for b.boss.ShouldHit() {
		c := b.deck.Draw()
		b.boss.AddCard(c)
		events = b.emit(events, Event{Kind: EventBossHit, Card: &c})
	}
	b.logger.Debug("boss finished", "boss_value", Value(b.boss.Hand), "bust", b.boss.IsBust())
	return b.emit(events, Event{Kind: EventBossFinished})
}

func (b *Battle) resolveRound(events []Event) []Event {
	res := RoundResult{
		Result:      Tie,
		PlayerValue: Value(b.player.Hand),
		BossValue:   Value(b.boss.Hand),
		PlayerBust:  b.player.IsBust(),
		BossBust:    b.boss.IsBust(),
		Wager:       b.wager,
		BossWager:   b.boss.CurrentWager,
	}
	pot := b.wager + b.boss.CurrentWager

	switch {
	case res.PlayerBust && res.BossBust:
		res.PlayerDamage = pot
		res.BossDamage = pot
	case res.PlayerBust:
		res.Result = BossWin
		res.PlayerDamage = pot
	case res.BossBust:
		res.Result = PlayerWin
		res.BossDamage = pot
	default:
		switch Compare(b.player.Hand, b.boss.Hand, PlayerBustThreshold, b.boss.BustThreshold) {
		case 1:
			res.Result = PlayerWin
			res.BossDamage = b.wager
		case -1:
			res.Result = BossWin
			res.PlayerDamage = b.boss.CurrentWager
		}
	}

	b.player.TakeDamage(res.PlayerDamage)
	b.boss.TakeDamage(res.BossDamage)
	if res.Result == PlayerWin {
		b.roundsWon++
	}
	b.logger.Debug("round resolved",
		"round", b.round,
		"result", res.Result,
		"player_damage", res.PlayerDamage,
		"boss_damage", res.BossDamage,
		"player_health", b.player.Health,
		"boss_health", b.boss.Health,
	)
	events = b.emit(events, Event{Kind: EventRoundResolved, Result: &res})

	switch {
	case b.player.Health <= 0:
		return b.endBattle(events, Defeat)
	case b.boss.Health <= 0:
		return b.endBattle(events, Victory)
	}
	b.state = nextState(RoundEnd)
	b.wager = MinWager(b.round+1, b.player.Health)
	return b.emit(events, Event{Kind: EventReadyForNewRound})
}

func (b *Battle) endBattle(events []Event, result BattleResult) []Event {
	b.state = BattleEnd
	b.pending = false
	outcome := BattleOutcome{
		Result:       result,
		PlayerHealth: b.player.Health,
		BossHealth:   b.boss.Health,
		BossID:       b.boss.ID,
		Rounds:       b.round,
		RoundsWon:    b.roundsWon,
		NextScene:    SceneGameOver,
	}
	if result == Victory {
		outcome.NextScene = SceneVictory
	}
	if b.tracker != nil {
		outcome = b.tracker.HandleBattleEnd(outcome)
	}
	b.outcome = &outcome
	b.logger.Info("battle ended", "result", result, "next_scene", outcome.NextScene)
	return b.emit(events, Event{Kind: EventBattleEnded, Outcome: &outcome, Delay: b.rules.BattleEndDelay})
}

func (b *Battle) openRound(events []Event) []Event {
	b.player.ClearHand()
	b.boss.ClearHand()
	b.deck.Shuffle()
	b.player.SetSidearm(b.deck.Draw())
	b.roundOpen = true
	b.state = Betting
	return b.emit(events, Event{Kind: EventRoundStarted})
}

func (b *Battle) emit(events []Event, e Event) []Event {
	e.Round = b.round
	for _, o := range b.observers {
		o(e)
	}
	return append(events, e)
}

func (b *Battle) expect(s State) error {
	if b.pending {
		return ErrPendingResolution
	}
	if b.state != s {
		return fmt.Errorf("%w: expected %s, battle is %s", ErrInvalidState, s, b.state)
	}
	return nil
}

func (b *Battle) reject(command string, err error) error {
	b.logger.Warn("command rejected", "command", command, "state", b.state, "err", err)
	return fmt.Errorf("%s: %w", command, err)
}

func (b *Battle) ID() string {
	return b.id
}

func (b *Battle) State() State {
	return b.state
}

// Round is the number of the current (or last played) round, 0 before the
// first bet.
func (b *Battle) Round() int {
	return b.round
}

func (b *Battle) HasPending() bool {
	return b.pending
}

// CurrentWager is the player's wager of the round in play, or the suggested
// minimum for the next one while betting.
func (b *Battle) CurrentWager() int {
	return b.wager
}

func (b *Battle) BossWager() int {
	if b.boss == nil {
		return 0
	}
	return b.boss.CurrentWager
}

// MinWager is the minimum the next bet must reach.
func (b *Battle) MinWager() int {
	if b.player == nil {
		return 0
	}
	return MinWager(b.round+1, b.player.Health)
}

// MaxWager is the largest bet accepted for the next round.
func (b *Battle) MaxWager() int {
	if b.player == nil {
		return 0
	}
	return max(MaxWager(b.rules.TableMax, b.player.Health), b.MinWager())
}

func (b *Battle) PlayerHand() Hand {
	if b.player == nil {
		return nil
	}
	return slices.Clone(b.player.Hand)
}

func (b *Battle) BossHand() Hand {
	if b.boss == nil {
		return nil
	}
	return slices.Clone(b.boss.Hand)
}

func (b *Battle) PlayerValue() int {
	return Value(b.PlayerHand())
}

func (b *Battle) BossValue() int {
	return Value(b.BossHand())
}

func (b *Battle) PlayerBust() bool {
	return b.player != nil && b.player.IsBust()
}

func (b *Battle) BossBust() bool {
	return b.boss != nil && b.boss.IsBust()
}

// SidearmAvailable reports whether PlayerUseSidearm would be accepted now.
func (b *Battle) SidearmAvailable() bool {
	return b.player != nil && b.state == PlayerTurn && !b.pending && b.player.SidearmAvailable()
}

func (b *Battle) PlayerHealth() int {
	if b.player == nil {
		return 0
	}
	return b.player.Health
}

func (b *Battle) BossHealth() int {
	if b.boss == nil {
		return 0
	}
	return b.boss.Health
}

// Player returns a copy of the player.
func (b *Battle) Player() Player {
	if b.player == nil {
		return Player{}
	}
	p := *b.player
	p.Hand = slices.Clone(p.Hand)
	return p
}

// Boss returns a copy of the boss.
func (b *Battle) Boss() Boss {
	if b.boss == nil {
		return Boss{}
	}
	bs := *b.boss
	bs.Hand = slices.Clone(bs.Hand)
	bs.WagerSchedule = slices.Clone(bs.WagerSchedule)
	return bs
}

// Outcome is set once the battle has ended.
func (b *Battle) Outcome() (BattleOutcome, bool) {
	if b.outcome == nil {
		return BattleOutcome{}, false
	}
	return *b.outcome, true
}
