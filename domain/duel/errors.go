package duel

import "errors"

var (
	// ErrInvalidState rejects a command the current state does not accept.
	ErrInvalidState = errors.New("invalid command for current state")
	// ErrInvalidWager rejects a bet outside the computed bounds.
	ErrInvalidWager = errors.New("wager out of range")
	// ErrNoSidearm rejects a sidearm play without an unused sidearm.
	ErrNoSidearm = errors.New("no sidearm available")
	// ErrPendingResolution rejects commands while a bust is waiting to be resolved.
	ErrPendingResolution = errors.New("round resolution pending")
)
