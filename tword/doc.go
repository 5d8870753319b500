// Package tword defines the timed word: a finite sequence of (action,
// delay) pairs shared by the automaton, letter-word, and observation-table
// packages (spec §3).
//
// A TimedWord is immutable once built; Shift produces a new word with its
// first action's delay increased, the alignment primitive the observation
// table uses when comparing two rows whose end-clocks differ (spec §4.6).
package tword

import "errors"

// ErrEmptyWord indicates an operation required a non-empty timed word.
var ErrEmptyWord = errors.New("tword: timed word is empty")

// ErrNegativeDelay indicates a delay value was negative.
var ErrNegativeDelay = errors.New("tword: delay must be non-negative")
