package letterword

import (
	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/region"
)

// ImmediateASucc computes every successor of lw reachable by firing one
// synchronous action with no further time delay (spec §4.3): for each
// action, every combination of one A-transition and one B-transition whose
// guard contains the corresponding letter's current region.
//
// Reset targets are placed in a fresh first set at region [0,0]; the
// non-reset A letters are merged into a single set per slot (A's possible
// nondeterministic choices are tracked together, since soundness needs
// every A alternative to keep up), while each non-reset or reset B
// transition produces its own branch (B's nondeterminism must be
// enumerated so a single bad B run can be found). Determinism is not
// assumed at this layer — autA and autB must share an alphabet, but either
// may be nondeterministic.
func ImmediateASucc(lw LetterWord, autA, autB *automaton.Automaton) ([]LetterWord, error) {
	if !automaton.SameAlphabet(autA, autB) {
		return nil, automaton.ErrAlphabetMismatch
	}

	base := lw
	n := len(lw.Sets)
	var results []LetterWord

	for _, action := range autA.Alphabet {
		var aReset, bReset []Letter
		aNoreset := make([][]Letter, n)
		bNoreset := make([][]Letter, n)

		for i, set := range lw.Sets {
			for _, l := range set {
				var trs []automaton.Transition
				if l.Side == SideA {
					trs = autA.Transitions(l.Location, action)
				} else {
					trs = autB.Transitions(l.Location, action)
				}
				for _, t := range trs {
					if !t.Guard.ContainsInterval(l.Region.Interval()) {
						continue
					}
					switch {
					case l.Side == SideA && t.Reset:
						aReset = append(aReset, NewLetter(SideA, t.To, region.NewPoint(0)))
					case l.Side == SideA:
						aNoreset[i] = append(aNoreset[i], NewLetter(SideA, t.To, l.Region))
					case t.Reset:
						bReset = append(bReset, NewLetter(SideB, t.To, region.NewPoint(0)))
					default:
						bNoreset[i] = append(bNoreset[i], NewLetter(SideB, t.To, l.Region))
					}
				}
			}
		}

		for _, br := range bReset {
			resetList := append(append([]Letter(nil), aReset...), br)
			nw := assembleSuccessor(lw, resetList, aNoreset)
			nw.Prev = &base
			nw.Via = NamedAction(action)
			results = append(results, nw)
		}

		for i, bset := range bNoreset {
			for _, bl := range bset {
				noresetList := cloneNoreset(aNoreset)
				noresetList[i] = append(noresetList[i], bl)
				nw := assembleSuccessor(lw, aReset, noresetList)
				nw.Prev = &base
				nw.Via = NamedAction(action)
				results = append(results, nw)
			}
		}
	}

	return results, nil
}

// ComputeWSucc is the composition of delay and action successors (spec
// §4.3): the full delay sequence from lw, with the immediate action
// successors of every delayed configuration unioned together, deduped.
func ComputeWSucc(m int, lw LetterWord, autA, autB *automaton.Automaton) ([]LetterWord, error) {
	seq, err := DelaySeq(lw, m)
	if err != nil {
		return nil, err
	}

	var results []LetterWord
	for _, delayed := range seq {
		asucc, err := ImmediateASucc(delayed, autA, autB)
		if err != nil {
			return nil, err
		}
		for _, s := range asucc {
			if !containsWord(results, s) {
				results = append(results, s)
			}
		}
	}

	return results, nil
}

func containsWord(words []LetterWord, w LetterWord) bool {
	for _, existing := range words {
		if existing.Equal(w) {
			return true
		}
	}

	return false
}

func cloneNoreset(src [][]Letter) [][]Letter {
	out := make([][]Letter, len(src))
	for i, letters := range src {
		out[i] = append([]Letter(nil), letters...)
	}

	return out
}

// assembleSuccessor builds the new sets/fractional-positions list from a
// reset letter list and a per-original-slot noreset letter list, following
// the reference make_lst construction (spec §4.3): resets form a new
// first slot at fractional 0, merged with the original first slot's
// surviving point-region letters when present; otherwise the original
// first slot's survivors (if any) form their own slot retaining their
// original fractional position. This mirrors the source directly rather
// than re-deriving the invariant from scratch, including its permissive
// handling of the first slot — assembleSuccessor does not itself enforce
// strictly-increasing fractional positions the way New does.
func assembleSuccessor(lw LetterWord, resetList []Letter, noresetList [][]Letter) LetterWord {
	var sets []LetterSet
	var frac []region.Decimal

	if len(resetList) > 0 {
		hasPoint := false
		for _, l := range noresetList[0] {
			if l.Region.IsPointRegion() {
				hasPoint = true
				break
			}
		}

		first := NewLetterSet(resetList...)
		if hasPoint {
			first = first.Union(NewLetterSet(noresetList[0]...))
			sets = append(sets, first)
			frac = append(frac, region.Zero)
		} else {
			sets = append(sets, first)
			frac = append(frac, region.Zero)
			if len(noresetList[0]) > 0 {
				sets = append(sets, NewLetterSet(noresetList[0]...))
				frac = append(frac, lw.Frac[0])
			}
		}

		for i := 1; i < len(lw.Sets); i++ {
			if len(noresetList[i]) > 0 {
				sets = append(sets, NewLetterSet(noresetList[i]...))
				frac = append(frac, lw.Frac[i])
			}
		}
	} else {
		for i := 0; i < len(lw.Sets); i++ {
			if len(noresetList[i]) > 0 {
				sets = append(sets, NewLetterSet(noresetList[i]...))
				frac = append(frac, lw.Frac[i])
			}
		}
	}

	return LetterWord{Sets: sets, Frac: frac}
}
