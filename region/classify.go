package region

// ClassifyClock returns the region a clock reading of d falls into under
// bound m: an integer reading is a Point (or Infinite once it reaches m),
// anything else is a Frac anchored at its integer part (or Infinite past
// m). This is the bridge between the exact Decimal arithmetic of the
// letter-word/observation-table layers and the region algebra of spec
// §4.1 — used by the constraint encoder to decide whether two hypothesised
// end-clocks land in the same region (spec §4.6, clauses C2–C4).
func ClassifyClock(d Decimal, m int) Region {
	p := pow10(d.D)
	intPart := int(d.N / p)
	rem := d.N % p

	if intPart >= m {
		return NewInfiniteRegion(m)
	}
	if rem == 0 {
		return NewPoint(intPart)
	}

	return NewFrac(intPart)
}

// SameRegion reports whether d1 and d2 fall into the same region under
// bound m.
func SameRegion(d1, d2 Decimal, m int) bool {
	return ClassifyClock(d1, m).Equal(ClassifyClock(d2, m))
}
