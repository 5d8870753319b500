package obstable

import (
	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

// Row is one entry of the observation table: a timed-word prefix, the
// teacher's verdict on it, and a lazily filled (suffix -> verdict) cache
// (spec §4.6). Memoisation is keyed by the suffix's own canonical
// encoding, independent of any clock-alignment shift applied when
// answering it — a shift is a function of which pair of rows is being
// compared, but the first caller's answer is reused for every later
// caller, matching the reference learner's behavior.
type Row struct {
	Prefix  tword.TimedWord
	Verdict automaton.Verdict

	results map[string]automaton.Verdict
}

// NewRow creates a row for prefix, querying the teacher once for its verdict.
func NewRow(teacher *automaton.Automaton, prefix tword.TimedWord) *Row {
	return &Row{
		Prefix:  prefix,
		Verdict: teacher.RunTimedWord(prefix),
		results: make(map[string]automaton.Verdict),
	}
}

// IsAccept reports whether the row's prefix is accepted.
func (r *Row) IsAccept() bool { return r.Verdict == automaton.Accept }

// IsSink reports whether the row's prefix falls into the sink.
func (r *Row) IsSink() bool { return r.Verdict == automaton.Sink }

// TestSuffix answers the teacher's verdict on r.Prefix followed by suffix,
// with suffix's first step's delay increased by shift for clock alignment
// (spec §4.6). Lazy and memoised by suffix alone.
func (r *Row) TestSuffix(teacher *automaton.Automaton, suffix tword.TimedWord, shift region.Decimal) (automaton.Verdict, error) {
	key := suffix.String()
	if v, ok := r.results[key]; ok {
		return v, nil
	}

	shifted := suffix
	if !shift.IsZero() {
		var err error
		shifted, err = tword.Shift(suffix, shift)
		if err != nil {
			return automaton.Reject, err
		}
	}

	v := teacher.RunTimedWord(r.Prefix.Concat(shifted))
	r.results[key] = v

	return v, nil
}

// EndClockAfterReset returns the clock value reached at the end of the
// row's prefix under the hypothesis that the last reset happened at
// position idx (idx == -1 meaning "no reset anywhere in the prefix"): the
// sum of delays strictly after idx (spec §4.6, reset-pair convention).
func (r *Row) EndClockAfterReset(idx int) region.Decimal {
	sum := region.Zero
	for i := idx + 1; i < len(r.Prefix.Steps); i++ {
		sum = sum.Add(r.Prefix.Steps[i].Delay)
	}

	return sum
}
