package letterword

import "sort"

// LetterSet is a non-empty, canonically sorted and deduplicated set of
// letters — one "slot" of a LetterWord. Kept as a sorted slice rather than
// a map so iteration order (and hence the order successors are produced
// in) is reproducible, matching the teacher's deterministic-ordering
// discipline (bfs.BFS's sorted-neighbor guarantee).
type LetterSet []Letter

// NewLetterSet builds a canonical LetterSet from any number of letters,
// deduplicating and sorting them.
func NewLetterSet(letters ...Letter) LetterSet {
	out := make(LetterSet, 0, len(letters))
	for _, l := range letters {
		out = appendUnique(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

func appendUnique(set LetterSet, l Letter) LetterSet {
	for _, existing := range set {
		if existing.Equal(l) {
			return set
		}
	}

	return append(set, l)
}

// Union returns the canonical union of ls and other.
func (ls LetterSet) Union(other LetterSet) LetterSet {
	out := make([]Letter, 0, len(ls)+len(other))
	out = append(out, ls...)
	out = append(out, other...)

	return NewLetterSet(out...)
}

// Contains reports whether l is a member of ls.
func (ls LetterSet) Contains(l Letter) bool {
	for _, existing := range ls {
		if existing.Equal(l) {
			return true
		}
	}

	return false
}

// IsSubsetOf reports whether every letter of ls is also in other.
func (ls LetterSet) IsSubsetOf(other LetterSet) bool {
	for _, l := range ls {
		if !other.Contains(l) {
			return false
		}
	}

	return true
}

// Equal reports whether ls and other contain exactly the same letters.
func (ls LetterSet) Equal(other LetterSet) bool {
	return ls.IsSubsetOf(other) && other.IsSubsetOf(ls)
}

// HasPointRegion reports whether any letter in ls is at an integer point
// region — the branching condition delay_one and immediate_asucc's
// make_lst both test (spec §4.3).
func (ls LetterSet) HasPointRegion() bool {
	for _, l := range ls {
		if l.Region.IsPointRegion() {
			return true
		}
	}

	return false
}

// String renders the set as "{a, b, c}" in canonical order.
func (ls LetterSet) String() string {
	out := "{"
	for i, l := range ls {
		if i > 0 {
			out += ", "
		}
		out += l.String()
	}

	return out + "}"
}
