package letterword

import "github.com/dotasmt/dotasmt/region"

// DelayOne advances time by the minimal amount that changes lw's region
// picture, and returns the resulting letter-word together with the time
// increment actually consumed (spec §4.3):
//
//   - If the first set holds a point region: every letter in it advances
//     to its NextRegion, the first set stays in place, and every
//     fractional position shifts forward by round_div_2(1 - lastFrac).
//   - Otherwise: the last set's letters advance to a point region and are
//     rotated to the front (fractional 0); the remaining sets keep their
//     relative order and each gains (1 - lastFrac) on its fractional
//     position.
func DelayOne(lw LetterWord, m int) (LetterWord, region.Decimal, error) {
	if len(lw.Sets) == 0 {
		return LetterWord{}, region.Zero, ErrEmptyLetterWord
	}

	first := lw.Sets[0]
	if first.HasPointRegion() {
		increment := region.RoundDiv2(region.One.Sub(lw.LastFrac()))

		newFrac := make([]region.Decimal, len(lw.Frac))
		for i, f := range lw.Frac {
			newFrac[i] = f.Add(increment)
		}

		advanced := make([]Letter, 0, len(first))
		for _, l := range first {
			advanced = append(advanced, NewLetter(l.Side, l.Location, l.Region.NextRegion(m)))
		}

		newSets := make([]LetterSet, 0, len(lw.Sets))
		newSets = append(newSets, NewLetterSet(advanced...))
		newSets = append(newSets, lw.Sets[1:]...)

		return LetterWord{Sets: newSets, Frac: newFrac}, increment, nil
	}

	increment := region.One.Sub(lw.LastFrac())

	newFrac := make([]region.Decimal, len(lw.Frac))
	newFrac[0] = region.Zero
	for i := 0; i < len(lw.Frac)-1; i++ {
		newFrac[i+1] = lw.Frac[i].Add(increment)
	}

	last := lw.Sets[len(lw.Sets)-1]
	advanced := make([]Letter, 0, len(last))
	for _, l := range last {
		advanced = append(advanced, NewLetter(l.Side, l.Location, l.Region.NextRegion(m)))
	}

	newSets := make([]LetterSet, 0, len(lw.Sets))
	newSets = append(newSets, NewLetterSet(advanced...))
	newSets = append(newSets, lw.Sets[:len(lw.Sets)-1]...)

	return LetterWord{Sets: newSets, Frac: newFrac}, increment, nil
}

// DelaySeq iterates DelayOne until every letter has reached the infinite
// region, returning the full sequence including the starting
// configuration at increment zero (spec §4.3). Every produced entry's
// Prev points back to w itself (not to the immediately preceding entry),
// and Via carries the cumulative delay from w — matching the two-hop
// predecessor structure counterexample reconstruction relies on (spec
// §4.5: a delay step followed by an action step each contribute one hop).
func DelaySeq(w LetterWord, m int) ([]LetterWord, error) {
	root := w
	results := []LetterWord{{Sets: w.Sets, Frac: w.Frac, Prev: &root, Via: DelayAction(region.Zero)}}

	current := w
	increment := region.Zero
	for !current.IsAllInfinite() {
		next, inc, err := DelayOne(current, m)
		if err != nil {
			return nil, err
		}
		increment = increment.Add(inc)
		next.Prev = &root
		next.Via = DelayAction(increment)
		results = append(results, next)
		current = next
	}

	return results, nil
}
