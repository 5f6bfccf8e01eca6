// Package duel implements the rules of a wagering card duel between a player
// and a scripted boss.
//
// # Core Types
//
// Card: a rank from 0 to 10 and one of four suits. Suits carry no weight;
// a hand's value is the plain sum of its ranks.
//
// Player and Boss: the two combatants. Their health is the pool both sides
// wager on every round. Each boss carries its own bust and stay thresholds.
//
// Battle: the state machine driving one fight from the first bet to the
// victory or defeat of either side.
//
// # Round Flow
//
// A battle loops Betting → Dealing → PlayerTurn → BossTurn → RoundEnd →
// Betting until a health pool is empty, then stops in BattleEnd. Every
// command returns the ordered list of events it produced; the same events are
// pushed to registered observers in the same order.
//
// # Damage
//
// A bust costs the busting side the sum of both wagers (both sides when both
// bust). When neither busts, the higher hand deals its own wager to the other
// side and equal hands draw.
package duel
