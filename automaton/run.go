package automaton

import (
	"strconv"
	"strings"

	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

// RunTimedWord deterministically runs w against a, starting at the
// initial location with clock 0, and returns the three-valued verdict
// (spec §4.2).
//
// The clock accumulates delay until a reset-flagged transition fires, at
// which point it snaps back to zero. If no transition out of the current
// location matches the clock value reached after a step's delay, the run
// is trapped and Sink is returned immediately (without needing a sink
// location — that encoding only matters for BuildAssistant's completed
// form).
//
// Results are memoised by the word's full textual encoding: calling
// RunTimedWord twice with an equal (but not identical) word counts as one
// membership query, matching spec §6's required accounting.
func (a *Automaton) RunTimedWord(w tword.TimedWord) Verdict {
	k := wordKey(w)
	if v, ok := a.cache[k]; ok {
		return v
	}

	v := a.run(w)
	a.cache[k] = v

	return v
}

func (a *Automaton) run(w tword.TimedWord) Verdict {
	loc := a.Initial
	clock := region.Zero
	for _, step := range w.Steps {
		clock = clock.Add(step.Delay)
		t, ok := a.findTransition(loc, step.Action, clock)
		if !ok {
			return Sink
		}
		loc = t.To
		if t.Reset {
			clock = region.Zero
		}
	}

	l, ok := a.locations[loc]
	if !ok || l.Sink {
		return Sink
	}
	if l.Accept {
		return Accept
	}

	return Reject
}

func (a *Automaton) findTransition(loc, action string, clock region.Decimal) (Transition, bool) {
	for _, t := range a.byLocAction[key(loc, action)] {
		if t.Guard.Contains(clock) {
			return t, true
		}
	}

	return Transition{}, false
}

// MembershipQueryCount reports the number of distinct words this
// automaton has been asked to run — the spec §6 membership-query counter.
func (a *Automaton) MembershipQueryCount() int { return len(a.cache) }

// wordKey renders a timed word into a stable cache key. The key assumes no
// action name contains the NUL/unit separators used here; Builder does not
// reject action names that do.
func wordKey(w tword.TimedWord) string {
	var sb strings.Builder
	for _, s := range w.Steps {
		sb.WriteString(s.Action)
		sb.WriteByte('\x00')
		sb.WriteString(strconv.FormatInt(s.Delay.N, 10))
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(s.Delay.D))
		sb.WriteByte('\x01')
	}

	return sb.String()
}
