package region

import "sort"

// fineAtoms builds the finest interval partition of [0,+∞) that isolates
// every integer breakpoint appearing in ivs as its own point atom, with
// open fractional atoms between consecutive breakpoints. Every atom this
// produces is guaranteed either wholly contained in, or wholly disjoint
// from, every interval in ivs — the coarser IntervalsPartition/
// ComplementIntervals results are obtained by merging runs of these atoms
// that share the same containment signature.
func fineAtoms(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return []Interval{{Lo: Bound{0, true}, HiInf: true}}
	}

	values := make(map[int]struct{})
	for _, iv := range ivs {
		values[iv.Lo.Value] = struct{}{}
		if !iv.HiInf {
			values[iv.Hi.Value] = struct{}{}
		}
	}
	sorted := make([]int, 0, len(values))
	for v := range values {
		sorted = append(sorted, v)
	}
	sort.Ints(sorted)

	atoms := make([]Interval, 0, 2*len(sorted)+1)
	if sorted[0] > 0 {
		atoms = append(atoms, Interval{Lo: Bound{0, true}, Hi: Bound{sorted[0], false}})
	}
	for i, v := range sorted {
		atoms = append(atoms, Interval{Lo: Bound{v, true}, Hi: Bound{v, true}}) // point atom
		if i+1 < len(sorted) {
			// The open interval (v, next) is a real, non-empty atom even
			// when next == v+1 — it still holds every fractional value
			// strictly between the two breakpoints (e.g. (1,2) contains
			// 1.5). Only next == v (impossible: sorted is deduped and
			// strictly increasing) would make it degenerate.
			next := sorted[i+1]
			atoms = append(atoms, Interval{Lo: Bound{v, false}, Hi: Bound{next, false}})
		} else {
			atoms = append(atoms, Interval{Lo: Bound{v, false}, HiInf: true})
		}
	}

	return atoms
}

// signature reports, for a fine atom known to lie wholly inside or wholly
// outside each of ivs, which members of ivs contain it.
func signature(atom Interval, ivs []Interval) []bool {
	sig := make([]bool, len(ivs))
	for i, iv := range ivs {
		sig[i] = iv.ContainsInterval(atom)
	}

	return sig
}

func sameSignature(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// mergeRuns coalesces consecutive atoms that share the same containment
// signature into a single interval spanning the run.
func mergeRuns(atoms []Interval, ivs []Interval) []Interval {
	if len(atoms) == 0 {
		return nil
	}
	var out []Interval
	runStart := 0
	runSig := signature(atoms[0], ivs)
	flush := func(end int) {
		first, last := atoms[runStart], atoms[end]
		merged := Interval{Lo: first.Lo}
		if last.HiInf {
			merged.HiInf = true
		} else {
			merged.Hi = last.Hi
		}
		out = append(out, merged)
	}
	for i := 1; i < len(atoms); i++ {
		sig := signature(atoms[i], ivs)
		if !sameSignature(sig, runSig) {
			flush(i - 1)
			runStart = i
			runSig = sig
		}
	}
	flush(len(atoms) - 1)

	return out
}

// IntervalsPartition returns the ordered partition of [0,+∞) whose atoms
// refine every interval in ivs: each atom is either wholly inside or
// wholly outside each input interval, and adjacent atoms that agree on
// every input interval's containment are merged into one (spec §4.1).
func IntervalsPartition(ivs []Interval) []Interval {
	return mergeRuns(fineAtoms(ivs), ivs)
}

// ComplementIntervals returns the atoms of [0,+∞) not contained in any
// interval of ivs, with adjacent uncovered atoms merged across
// closed/open boundaries (e.g. [a,b) ∪ [b,c] merges to [a,c]).
func ComplementIntervals(ivs []Interval) []Interval {
	atoms := fineAtoms(ivs)
	var complement []Interval
	for _, a := range atoms {
		covered := false
		for _, iv := range ivs {
			if iv.ContainsInterval(a) {
				covered = true

				break
			}
		}
		if !covered {
			complement = append(complement, a)
		}
	}

	return mergeTouching(complement)
}

// mergeTouching coalesces consecutive atoms a, b when a.Hi meets b.Lo at
// the same value and exactly one of the two bounds is closed, so the shared
// endpoint belongs to one of them. Two open bounds at the same value leave
// that point uncovered (a covered point atom was filtered out between them),
// and such atoms stay separate.
func mergeTouching(atoms []Interval) []Interval {
	if len(atoms) == 0 {
		return atoms
	}
	out := []Interval{atoms[0]}
	for _, b := range atoms[1:] {
		a := &out[len(out)-1]
		if !a.HiInf && a.Hi.Value == b.Lo.Value && a.Hi.Closed != b.Lo.Closed {
			if b.HiInf {
				*a = Interval{Lo: a.Lo, HiInf: true}
			} else {
				*a = Interval{Lo: a.Lo, Hi: b.Hi}
			}

			continue
		}
		out = append(out, b)
	}

	return out
}
