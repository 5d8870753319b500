package candidate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/constraint"
	"github.com/dotasmt/dotasmt/obstable"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

// ErrAssembleFailed wraps any failure turning a solved model into an
// Automaton.
var ErrAssembleFailed = errors.New("candidate: assembly failed")

// Assemble builds the state_num-state candidate automaton implied by a
// satisfying model: state i (1..stateNum) takes its accept flag from the
// i-th row of S (spec §4.6's fixed clauses number S in that order), plus
// one sink state stateNum+1.
//
// Transitions are recovered per spec §4.6: for every (state, action) pair,
// every table row extending that state's S-row by that action at some
// observed delay contributes a (region, reset, target) triple. Triples are
// classified into the elementary region sequence [0,0],(0,1),[1,1],...,
// (M-1,M),[M,+∞) (spec §4.1's region order) and merged in that order:
// consecutive regions agreeing on (reset, target) collapse into one guard,
// and an unobserved region inherits the assignment of the nearest preceding
// observed one. Regions before the first observed one get no guard, and a
// (source, action) pair with no observed triple gets no transition. When
// every region resolves to the same (reset, target), the result is a single
// [0,+∞) guard.
func Assemble(
	enc *constraint.Encoder,
	model constraint.Model,
	table *obstable.Table,
	stateNum int,
	alphabet []string,
	name string,
) (*automaton.Automaton, error) {
	b := automaton.NewBuilder(name, alphabet)

	for i := 1; i <= stateNum; i++ {
		if i-1 >= len(table.S) {
			return nil, fmt.Errorf("%w: no S-row for state %d", ErrAssembleFailed, i)
		}
		row := table.S[i-1]
		if err := b.AddLocation(strconv.Itoa(i), i == 1, row.IsAccept(), false); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAssembleFailed, err)
		}
	}
	sinkName := strconv.Itoa(stateNum + 1)
	if err := b.AddLocation(sinkName, false, false, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}

	rows := enc.AllRows()
	for i, row := range table.S {
		from := strconv.Itoa(i + 1)
		for _, a := range alphabet {
			for _, tr := range guardPartition(enc, model, rows, row.Prefix, a, stateNum, sinkName) {
				t := automaton.Transition{From: from, Action: a, Guard: tr.guard, Reset: tr.reset, To: tr.to}
				if err := b.AddTransition(t); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrAssembleFailed, err)
				}
			}
		}
	}

	aut, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssembleFailed, err)
	}

	return aut, nil
}

// guardedTransition is one recovered (guard, reset, target) triple for a
// fixed (source, action) pair.
type guardedTransition struct {
	guard region.Interval
	reset bool
	to    string
}

// observation is a single row's resolved (reset, target) assignment, the
// value guardPartition groups by region and merges across runs.
type observation struct {
	reset bool
	to    string
}

// guardPartition recovers the guard partition for one (base, action) pair:
// every row in rows that extends base by action is classified by the
// elementary region its observed delay falls into, then the resulting
// per-region assignments are merged into contiguous guards (spec §4.6).
func guardPartition(
	enc *constraint.Encoder,
	model constraint.Model,
	rows []*obstable.Row,
	base tword.TimedWord,
	action string,
	stateNum int,
	sinkName string,
) []guardedTransition {
	m := enc.ClockBound()
	byRegion := make(map[region.Region]observation)

	for _, row := range rows {
		n := len(row.Prefix.Steps)
		if n == 0 || row.Prefix.Steps[n-1].Action != action {
			continue
		}
		extBase := tword.TimedWord{Steps: row.Prefix.Steps[:n-1]}
		if !extBase.Equal(base) {
			continue
		}

		resetVar, stateVar := enc.RowVars(row)
		target, ok := model.Ints[stateVar]
		if !ok {
			continue
		}
		to := strconv.Itoa(target)
		if target == stateNum+1 {
			to = sinkName
		}

		reg := region.ClassifyClock(row.Prefix.LastDelay(), m)
		byRegion[reg] = observation{reset: model.Bools[resetVar], to: to}
	}

	if len(byRegion) == 0 {
		return nil
	}

	sequence := elementaryRegions(m)
	assigned := make([]observation, len(sequence))
	var last observation
	haveAny := false
	for i, reg := range sequence {
		if obs, ok := byRegion[reg]; ok {
			last, haveAny = obs, true
		}
		if haveAny {
			assigned[i] = last
		}
	}

	var out []guardedTransition
	runStart := 0
	for i := 1; i <= len(sequence); i++ {
		if i < len(sequence) && assigned[i] == assigned[runStart] {
			continue
		}
		if assigned[runStart] != (observation{}) {
			out = append(out, mergeRun(sequence, m, assigned[runStart], runStart, i-1))
		}
		runStart = i
	}

	return out
}

// elementaryRegions returns [0,0],(0,1),[1,1],...,[m-1,m-1],(m-1,m),[m,+∞)
// — the exact partition region.ClassifyClock groups delays into for bound
// m (a reading with integer part >= m classifies as the single Infinite(m)
// bucket, spec §4.1). Point/Frac regions only exist below m; at m and
// beyond, everything collapses into one region, same as ClassifyClock.
func elementaryRegions(m int) []region.Region {
	seq := make([]region.Region, 0, 2*m+1)
	for k := 0; k < m; k++ {
		seq = append(seq, region.NewPoint(k))
		seq = append(seq, region.NewFrac(k))
	}

	return append(seq, region.NewInfiniteRegion(m))
}

// mergeRun collapses the elementary regions sequence[start..end], which all
// share the assignment obs, into a single guard spanning their combined
// interval. The Infinite bucket's lower bound is pinned to m itself
// (closed), not region.Region.Interval()'s open-at-m rendering, since
// ClassifyClock (unlike the classical region successor walk) folds the
// reading m exactly into Infinite(m) rather than treating it as a
// separate Point(m).
func mergeRun(sequence []region.Region, m int, obs observation, start, end int) guardedTransition {
	first := sequence[start]
	var lo region.Bound
	if first.IsInfRegion() {
		lo = region.Bound{Value: m, Closed: true}
	} else {
		lo = first.Interval().Lo
	}

	last := sequence[end]
	guard := region.Interval{Lo: lo}
	if last.IsInfRegion() {
		guard.HiInf = true
	} else {
		guard.Hi = last.Interval().Hi
	}

	return guardedTransition{guard: guard, reset: obs.reset, to: obs.to}
}
