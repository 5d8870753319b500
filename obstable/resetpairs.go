package obstable

import "github.com/dotasmt/dotasmt/tword"

// ResetPair hypothesises that the last reset in one timed word happens at
// position I and in another at position J; -1 means no reset in the range
// of interest (spec §4.6).
type ResetPair struct {
	I, J int
}

// ResetPairEnhanced additionally hypothesises the second-to-last reset
// position on each side (-1 meaning none), the "enhanced" enumeration
// mode supplemented from the source's smart_learner.py variant (SPEC_FULL
// §5), selectable via learner.Config.EnhancedResetPairs.
type ResetPairEnhanced struct {
	I, J   int
	I2, J2 int
}

func commonPrefixLen(u, v tword.TimedWord) int {
	n := len(u.Steps)
	if len(v.Steps) < n {
		n = len(v.Steps)
	}
	for k := 0; k < n; k++ {
		if u.Steps[k].Action != v.Steps[k].Action || !u.Steps[k].Delay.Equal(v.Steps[k].Delay) {
			return k
		}
	}

	return n
}

// ResetPairsSimple enumerates every reset-pair hypothesis for u and v,
// excluding pairs where i and j fall within their shared history but
// disagree (spec §4.6: "when i and j lie inside a common prefix they must
// be equal").
func ResetPairsSimple(u, v tword.TimedWord) []ResetPair {
	shared := commonPrefixLen(u, v)
	var pairs []ResetPair
	for i := -1; i < len(u.Steps); i++ {
		for j := -1; j < len(v.Steps); j++ {
			if i < shared && j < shared && i != j {
				continue
			}
			pairs = append(pairs, ResetPair{I: i, J: j})
		}
	}

	return pairs
}

// ResetPairsEnhanced extends ResetPairsSimple by additionally varying the
// second-to-last reset on each side, strictly before the hypothesised
// last reset (SPEC_FULL §5).
func ResetPairsEnhanced(u, v tword.TimedWord) []ResetPairEnhanced {
	shared := commonPrefixLen(u, v)
	var out []ResetPairEnhanced
	for _, p := range ResetPairsSimple(u, v) {
		// A side with no last reset (-1) keeps only the no-reset choice
		// (-1) for its second-to-last reset.
		hiI, hiJ := p.I, p.J
		if hiI < 0 {
			hiI = 0
		}
		if hiJ < 0 {
			hiJ = 0
		}
		for i2 := -1; i2 < hiI; i2++ {
			for j2 := -1; j2 < hiJ; j2++ {
				if i2 < shared && j2 < shared && i2 != j2 {
					continue
				}
				out = append(out, ResetPairEnhanced{I: p.I, J: p.J, I2: i2, J2: j2})
			}
		}
	}

	return out
}
