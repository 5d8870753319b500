package letterword

// Dominates reports whether lw dominates other (spec §4.3): there is a
// monotonic injection of lw's sets into consecutive sets of other with
// lw.Sets[i] ⊆ other.Sets[φ(i)]. A dominating configuration's forward
// language contains the dominated one's, so once lw has been explored,
// any other it dominates is redundant to explore further.
func (lw LetterWord) Dominates(other LetterWord) bool {
	j := 0
	matched := 0
	for _, set := range lw.Sets {
		for ; j < len(other.Sets); j++ {
			if set.IsSubsetOf(other.Sets[j]) {
				j++
				matched++

				break
			}
		}
	}

	return matched == len(lw.Sets)
}
