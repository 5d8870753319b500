// Package letterword implements the letter-word region abstraction of a
// joint configuration of two timed automata (spec §4.3–4.4): the symbolic
// representation the inclusion engine explores, delay/action successor
// computation, and the domination preorder.
//
// A LetterWord is a fractional-ordered list of non-empty letter sets. It
// carries an optional predecessor pointer and the action that produced it
// (a concrete delay increment or an action name), following the
// dynamic-typed pre-link design note (spec §9): Action is a tagged
// variant, not an interface{}, and the predecessor is a plain pointer into
// whatever arena the caller (package inclusion) keeps alive — this package
// never frees or mutates a LetterWord's ancestors.
package letterword

import "errors"

// Sentinel errors for the letterword package.
var (
	// ErrEmptyLetterWord indicates a LetterWord was built with no sets.
	ErrEmptyLetterWord = errors.New("letterword: letter-word has no sets")

	// ErrFractionalOrder indicates the fractional-part invariants of §3
	// (first set at 0, strictly increasing within [0,1)) were violated.
	ErrFractionalOrder = errors.New("letterword: fractional parts are not strictly increasing in [0,1)")

	// ErrLengthMismatch indicates the number of letter sets and fractional
	// positions passed to New did not agree.
	ErrLengthMismatch = errors.New("letterword: sets and fractional positions have different lengths")
)
