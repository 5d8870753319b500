package obstable

import (
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

// AlignmentShifts computes the clock-alignment shift to apply to each of
// two rows before comparing them under a hypothetical end-clock pair
// (t1, t2): the side with the smaller end-clock has its first suffix
// action's delay increased by the difference (spec §4.6).
func AlignmentShifts(t1, t2 region.Decimal) (shift1, shift2 region.Decimal) {
	switch {
	case t1.Less(t2):
		return t2.Sub(t1), region.Zero
	case t2.Less(t1):
		return region.Zero, t1.Sub(t2)
	default:
		return region.Zero, region.Zero
	}
}

// FindDistinguishingSuffix reports whether row1 and row2 are distinguished
// under the given clock-alignment shifts (spec §4.6): they are
// indistinguishable when their accept/sink flags agree and every suffix
// in E yields equal results; otherwise the first witnessing suffix is
// returned. A flag disagreement is witnessed by the implicit empty
// suffix.
//
// Returns (suffix, true, nil) when distinguished, (zero, false, nil) when
// not, or a non-nil error if the teacher could not be queried.
func (t *Table) FindDistinguishingSuffix(row1, row2 *Row, shift1, shift2 region.Decimal) (tword.TimedWord, bool, error) {
	if row1.IsAccept() != row2.IsAccept() || row1.IsSink() != row2.IsSink() {
		return tword.Empty, true, nil
	}

	for _, e := range t.E {
		v1, err := row1.TestSuffix(t.teacher, e, shift1)
		if err != nil {
			return tword.Empty, false, err
		}
		v2, err := row2.TestSuffix(t.teacher, e, shift2)
		if err != nil {
			return tword.Empty, false, err
		}
		if v1 != v2 {
			return e, true, nil
		}
	}

	return tword.Empty, false, nil
}
