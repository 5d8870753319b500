// Package obstable implements the learner's observation table (spec §3,
// §4.6): the prefix-closed row set R, the representative set S, the
// discriminator suffix list E, and per-row memoised suffix membership
// results, together with clock-alignment shifting, distinguishing-suffix
// search, and reset-pair enumeration.
//
// Grounded on the teacher's prefix/row-indexed storage idiom (core's
// adjacency maps keyed by vertex ID) generalized to timed-word prefixes
// keyed by their canonical string encoding.
package obstable

import "errors"

// Sentinel errors for the obstable package.
var (
	// ErrNotInR indicates AddToS was called on a prefix not currently in R.
	ErrNotInR = errors.New("obstable: prefix not in R")

	// ErrAlreadyInS indicates AddToS was called on a prefix already promoted.
	ErrAlreadyInS = errors.New("obstable: prefix already in S")
)
