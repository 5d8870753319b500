// Package automaton defines the deterministic one-clock timed automaton
// (DOTA) model of spec §3/§4.2: locations, guarded/reset transitions, and
// a deterministic run over a timed word.
//
// Unlike its teacher (a concurrent, lock-protected graph library), an
// Automaton here is single-threaded by design (spec §5): the only mutable
// state is its own membership-query memoisation cache, and the spec
// explicitly forbids concurrent access to it, so no mutex guards it. All
// other state (locations, transitions) is immutable after Build.
//
// RunTimedWord is memoised per full input word — the learner's membership-
// query counter is exactly the number of distinct words ever passed to it
// (spec §6: "membership-query count is a measured metric").
//
// BuildAssistant completes an Automaton by adding, for every (location,
// action), reset transitions on the complement of the existing guards to a
// fresh sink location that self-loops on every action over [0,+∞); the
// completion is total and deterministic (spec §4.2).
package automaton

import "errors"

// Sentinel errors for the automaton package.
var (
	// ErrEmptyName indicates a location name was the empty string.
	ErrEmptyName = errors.New("automaton: location name is empty")

	// ErrDuplicateLocation indicates AddLocation was called twice for the same name.
	ErrDuplicateLocation = errors.New("automaton: duplicate location")

	// ErrUnknownLocation indicates a transition referenced a location never added.
	ErrUnknownLocation = errors.New("automaton: unknown location")

	// ErrUnknownAction indicates a transition used an action outside the declared alphabet.
	ErrUnknownAction = errors.New("automaton: action not in alphabet")

	// ErrNoInitial indicates Build was called without an initial location set.
	ErrNoInitial = errors.New("automaton: no initial location set")

	// ErrAmbiguousGuards indicates two transitions from the same (location,
	// action) pair have overlapping guards, violating determinism.
	ErrAmbiguousGuards = errors.New("automaton: overlapping guards for (location,action)")

	// ErrAlreadyCompleted indicates BuildAssistant was called on an
	// automaton that already has a sink location.
	ErrAlreadyCompleted = errors.New("automaton: automaton already completed")

	// ErrAlphabetMismatch indicates two automata compared by the inclusion
	// engine do not share the same action alphabet (spec §4.5 precondition).
	ErrAlphabetMismatch = errors.New("automaton: alphabet mismatch")
)
