// Package ledger keeps an append-only journal of the events emitted by duel
// battles.
//
// # Core Components
//
// Journal: the in-memory log. Entries are hash chained, so a record edited
// after the fact is caught by Verify.
//
// Entry: one battle event with its position, time and the id of the battle
// that emitted it.
//
// # Usage
//
// Register Journal.Observer(battleID) on a battle; every event the battle
// emits is appended in emission order. Nothing is written to disk.
package ledger
