package ocmm

import (
	"strconv"
	"strings"

	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

// RunInputWord deterministically runs w (an input timed word, reusing
// tword.TimedWord's (action,delay) shape for the input dimension) against
// m, starting at the initial location with clock 0, and returns the
// output word produced step by step. Once no transition matches, that
// step and every remaining one emits VoidOutput: a completed machine
// (BuildAssistant) never hits this path since its sink self-loops forever
// on "void", so this only matters for querying a raw, not-yet-completed
// machine directly.
//
// Results are memoised by the word's full textual encoding, matching the
// membership-query accounting automaton.RunTimedWord uses.
func (m *Machine) RunInputWord(w tword.TimedWord) []string {
	k := wordKey(w)
	if out, ok := m.cache[k]; ok {
		return decodeOutputs(out)
	}

	outs := m.run(w)
	m.cache[k] = encodeOutputs(outs)

	return outs
}

func (m *Machine) run(w tword.TimedWord) []string {
	loc := m.Initial
	clock := region.Zero
	outs := make([]string, 0, len(w.Steps))

	sunk := false
	for _, step := range w.Steps {
		if sunk {
			outs = append(outs, VoidOutput)

			continue
		}
		clock = clock.Add(step.Delay)
		t, ok := m.findTransition(loc, step.Action, clock)
		if !ok {
			outs = append(outs, VoidOutput)
			sunk = true

			continue
		}
		outs = append(outs, t.Output)
		loc = t.To
		if t.Reset {
			clock = region.Zero
		}
	}

	return outs
}

func (m *Machine) findTransition(loc, input string, clock region.Decimal) (Transition, bool) {
	for _, t := range m.byLocInput[key(loc, input)] {
		if t.Guard.Contains(clock) {
			return t, true
		}
	}

	return Transition{}, false
}

// MembershipQueryCount reports the number of distinct input words this
// machine has been asked to run.
func (m *Machine) MembershipQueryCount() int { return len(m.cache) }

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

func encodeOutputs(outs []string) string { return strings.Join(outs, "\x00") }

func decodeOutputs(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, "\x00")
}
