package tword

import (
	"fmt"
	"strings"

	"github.com/dotasmt/dotasmt/region"
)

// Step is one (action, delay) pair of a timed word.
type Step struct {
	Action string
	Delay  region.Decimal
}

// NewStep builds a Step from an integer delay, the common case in tests
// and fixtures.
func NewStep(action string, delay int) Step {
	return Step{Action: action, Delay: region.NewDecimal(int64(delay), 0)}
}

// TimedWord is a finite ordered sequence of (action, delay) pairs (spec §3).
type TimedWord struct {
	Steps []Step
}

// New builds a TimedWord from a sequence of steps. The slice is copied so
// callers may freely mutate their own backing array afterwards.
func New(steps ...Step) TimedWord {
	cp := make([]Step, len(steps))
	copy(cp, steps)

	return TimedWord{Steps: cp}
}

// Empty is the empty timed word ε.
var Empty = TimedWord{}

// Len returns the number of steps.
func (w TimedWord) Len() int { return len(w.Steps) }

// IsEmpty reports whether w is the empty word.
func (w TimedWord) IsEmpty() bool { return len(w.Steps) == 0 }

// Append returns a new timed word with step appended; w is not mutated.
func (w TimedWord) Append(step Step) TimedWord {
	out := make([]Step, len(w.Steps)+1)
	copy(out, w.Steps)
	out[len(w.Steps)] = step

	return TimedWord{Steps: out}
}

// Concat returns w followed by the steps of suffix.
func (w TimedWord) Concat(suffix TimedWord) TimedWord {
	out := make([]Step, 0, len(w.Steps)+len(suffix.Steps))
	out = append(out, w.Steps...)
	out = append(out, suffix.Steps...)

	return TimedWord{Steps: out}
}

// Prefixes returns every prefix of w, including ε and w itself, shortest
// first — the set the observation table's prefix-closure invariant (spec
// §4.6, invariant 1) is maintained over.
func (w TimedWord) Prefixes() []TimedWord {
	out := make([]TimedWord, len(w.Steps)+1)
	for i := 0; i <= len(w.Steps); i++ {
		out[i] = TimedWord{Steps: append([]Step(nil), w.Steps[:i]...)}
	}

	return out
}

// Shift returns a copy of w whose first step's delay is increased by
// delta. This is the clock-alignment primitive of spec §4.6: when
// comparing two rows whose end-clocks differ, the side with the smaller
// end-clock has its first suffix action's delay increased by the
// difference before the suffix is queried.
func Shift(w TimedWord, delta region.Decimal) (TimedWord, error) {
	if w.IsEmpty() {
		if delta.IsZero() {
			return w, nil
		}

		return TimedWord{}, ErrEmptyWord
	}
	out := make([]Step, len(w.Steps))
	copy(out, w.Steps)
	out[0] = Step{Action: out[0].Action, Delay: out[0].Delay.Add(delta)}

	return TimedWord{Steps: out}, nil
}

// LastDelay returns the delay of the final step, or zero for the empty word.
func (w TimedWord) LastDelay() region.Decimal {
	if w.IsEmpty() {
		return region.Zero
	}

	return w.Steps[len(w.Steps)-1].Delay
}

// EndClock sums every delay in w — the clock value reached after running
// w from a fresh (reset) clock with no intervening resets.
func (w TimedWord) EndClock() region.Decimal {
	sum := region.Zero
	for _, s := range w.Steps {
		sum = sum.Add(s.Delay)
	}

	return sum
}

// String renders w as "a1,d1 a2,d2 ..." for diagnostics and table dumps.
func (w TimedWord) String() string {
	if w.IsEmpty() {
		return "ε"
	}
	parts := make([]string, len(w.Steps))
	for i, s := range w.Steps {
		parts[i] = fmt.Sprintf("%s,%v", s.Action, s.Delay.Float64())
	}

	return strings.Join(parts, " ")
}

// Equal reports structural equality.
func (w TimedWord) Equal(other TimedWord) bool {
	if len(w.Steps) != len(other.Steps) {
		return false
	}
	for i := range w.Steps {
		if w.Steps[i].Action != other.Steps[i].Action || !w.Steps[i].Delay.Equal(other.Steps[i].Delay) {
			return false
		}
	}

	return true
}
