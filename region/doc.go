// Package region implements the integer-bounded interval and clock-region
// algebra that every other package in this module builds on.
//
// An Interval is a closed/open bounded-or-infinite range of non-negative
// rationals with integer endpoints. A Region is one of the three shapes the
// classical clock-region construction produces for a bound M:
//
//   - Point:        [n,n]       an integer value
//   - Fractional:   (n,n+1)     strictly between two integers
//   - Infinite:     (M,+∞)      beyond the largest constant in any guard
//
// Regions form a total order and a total successor function (NextRegion),
// which is the basic timed-transition step the letter-word abstraction
// (package letterword) builds its delay successors from.
//
// Complexity: every operation in this package is O(1) on a single interval
// or region; IntervalsPartition and ComplementIntervals are O(n²) in the
// number of input intervals (each of the O(n) atoms is tested against every
// input interval, after an O(n log n) endpoint sort).
package region

import "errors"

// Sentinel errors for the region package.
var (
	// ErrInvalidBound indicates a malformed interval: lower bound greater
	// than upper bound, or an infinite upper bound marked closed.
	ErrInvalidBound = errors.New("region: invalid interval bound")

	// ErrNegativeValue indicates a negative integer endpoint was supplied;
	// this algebra only operates over non-negative clock values.
	ErrNegativeValue = errors.New("region: negative endpoint not allowed")

	// ErrParseInterval indicates the textual interval syntax of spec §6
	// could not be parsed.
	ErrParseInterval = errors.New("region: malformed interval text")
)
