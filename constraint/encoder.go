package constraint

import (
	"github.com/dotasmt/dotasmt/obstable"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

type rowVars struct {
	Reset BoolVar
	State IntVar
}

// Encoder builds the C1-C4 clause families of spec §4.6 (distinguishability,
// forbidden pair, invalid row, consistency) against a Solver, for a fixed
// candidate state_num.
type Encoder struct {
	solver   Solver
	table    *obstable.Table
	m        int
	stateNum int
	vars     map[string]rowVars
	enhanced bool
}

// NewEncoder builds an encoder against solver for the rows currently in
// table, using clock bound m and candidate state count stateNum.
func NewEncoder(solver Solver, table *obstable.Table, m, stateNum int) *Encoder {
	return &Encoder{solver: solver, table: table, m: m, stateNum: stateNum, vars: make(map[string]rowVars)}
}

// WithEnhancedResetPairs switches the reset-pair enumeration used by C1-C4
// from obstable.ResetPairsSimple to obstable.ResetPairsEnhanced
// (SPEC_FULL §5). Returns e for chaining.
func (e *Encoder) WithEnhancedResetPairs(enabled bool) *Encoder {
	e.enhanced = enabled

	return e
}

// resetHypothesis names the reset positions a clause family should assert
// true on each side; sideU[0]/sideV[0] are always the hypothesised last
// reset (matching ResetPairsSimple's I/J), with any further entries the
// enhanced enumeration's earlier resets.
type resetHypothesis struct {
	sideU, sideV []int
}

// resetHypotheses enumerates the reset-pair hypotheses for u and v under
// the encoder's configured enumeration mode.
func (e *Encoder) resetHypotheses(u, v tword.TimedWord) []resetHypothesis {
	if !e.enhanced {
		pairs := obstable.ResetPairsSimple(u, v)
		out := make([]resetHypothesis, len(pairs))
		for i, p := range pairs {
			out[i] = resetHypothesis{sideU: []int{p.I}, sideV: []int{p.J}}
		}

		return out
	}

	pairs := obstable.ResetPairsEnhanced(u, v)
	out := make([]resetHypothesis, len(pairs))
	for i, p := range pairs {
		sideU := []int{p.I}
		if p.I2 >= 0 {
			sideU = append(sideU, p.I2)
		}
		sideV := []int{p.J}
		if p.J2 >= 0 {
			sideV = append(sideV, p.J2)
		}
		out[i] = resetHypothesis{sideU: sideU, sideV: sideV}
	}

	return out
}

// RowVars returns row's (reset, state) solver variables, allocating them
// on first use — per-row variables are allocated once and never recycled
// across iterations (spec §8).
func (e *Encoder) RowVars(row *obstable.Row) (BoolVar, IntVar) {
	key := row.Prefix.String()
	if v, ok := e.vars[key]; ok {
		return v.Reset, v.State
	}
	rv := rowVars{
		Reset: e.solver.NewBool("reset_" + key),
		State: e.solver.NewInt("state_"+key, 1, e.stateNum+1),
	}
	e.vars[key] = rv

	return rv.Reset, rv.State
}

func (e *Encoder) allRows() []*obstable.Row {
	rows := append([]*obstable.Row(nil), e.table.Rows()...)

	return append(rows, e.table.S...)
}

// ClockBound returns the clock bound m the encoder was built with, the
// same bound the region-classification clauses (C2-C4) and guard
// reconstruction (package candidate) must agree on.
func (e *Encoder) ClockBound() int { return e.m }

// AllRows returns every row known to the table (R ∪ S), the same set
// EncodeFixed and C1-C4 iterate over.
func (e *Encoder) AllRows() []*obstable.Row { return e.allRows() }

// EncodeFixed emits the fixed clauses of spec §4.6: sink rows have
// reset=true and state=state_num+1; non-sink row states lie in
// 1..state_num; S-rows occupy states 1..|S| in the order they were added
// to S.
func (e *Encoder) EncodeFixed() {
	for _, row := range e.allRows() {
		r, s := e.RowVars(row)
		if row.IsSink() {
			e.solver.Assert(Eq(Lit(s), ConstTerm(e.stateNum+1)))
			e.solver.Assert(boolIs(r, true))

			continue
		}
		e.solver.Assert(Leq(ConstTerm(1), Lit(s)))
		e.solver.Assert(Leq(Lit(s), ConstTerm(e.stateNum)))
	}

	for i, row := range e.table.S {
		_, s := e.RowVars(row)
		e.solver.Assert(Eq(Lit(s), ConstTerm(i+1)))
	}
}

func boolIs(v BoolVar, want bool) Expr {
	if want {
		return B(v)
	}

	return NotB(v)
}

func boolEq(a, b BoolVar) Expr {
	return AndE(ImpliesE(B(a), B(b)), ImpliesE(B(b), B(a)))
}

// encodeReset builds the antecedent asserting that the resets in w's run
// happen at exactly the given positions (each -1 meaning no reset at all
// for that hypothesis slot), as a conjunction over every intermediate
// row's reset flag. ok is false if some intermediate prefix has no row yet
// (the hypothesis cannot be expressed against the current table and
// should be skipped).
func (e *Encoder) encodeReset(w tword.TimedWord, positions []int) (expr Expr, ok bool) {
	at := make(map[int]bool, len(positions))
	for _, idx := range positions {
		at[idx] = true
	}

	prefixes := w.Prefixes()
	var lits []Expr
	for k := 0; k < len(w.Steps); k++ {
		row, found := e.table.RowFor(prefixes[k+1])
		if !found {
			return nil, false
		}
		r, _ := e.RowVars(row)
		lits = append(lits, boolIs(r, at[k]))
	}
	if len(lits) == 0 {
		return AndE(), true
	}

	return AndE(lits...), true
}

type extension struct {
	row        *obstable.Row
	base       tword.TimedWord
	lastAction string
}

func extensionRows(rows []*obstable.Row) []extension {
	var out []extension
	for _, row := range rows {
		n := len(row.Prefix.Steps)
		if n == 0 {
			continue
		}
		out = append(out, extension{
			row:        row,
			base:       tword.TimedWord{Steps: row.Prefix.Steps[:n-1]},
			lastAction: row.Prefix.Steps[n-1].Action,
		})
	}

	return out
}

// EncodeC1 emits the distinguishability clauses: for every pair of known
// rows and every reset-pair hypothesis under which they are
// distinguishable, the two rows must land in different states. Flag
// disagreement (accept/sink) witnesses distinguishability unconditionally.
func (e *Encoder) EncodeC1() error {
	rows := e.allRows()
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			row1, row2 := rows[i], rows[j]
			_, s1 := e.RowVars(row1)
			_, s2 := e.RowVars(row2)

			if row1.IsAccept() != row2.IsAccept() || row1.IsSink() != row2.IsSink() {
				e.solver.Assert(Neq(Lit(s1), Lit(s2)))

				continue
			}

			for _, hyp := range e.resetHypotheses(row1.Prefix, row2.Prefix) {
				shift1, shift2 := obstable.AlignmentShifts(row1.EndClockAfterReset(hyp.sideU[0]), row2.EndClockAfterReset(hyp.sideV[0]))
				_, distinguished, err := e.table.FindDistinguishingSuffix(row1, row2, shift1, shift2)
				if err != nil {
					return err
				}
				if !distinguished {
					continue
				}

				a1, ok1 := e.encodeReset(row1.Prefix, hyp.sideU)
				a2, ok2 := e.encodeReset(row2.Prefix, hyp.sideV)
				if !ok1 || !ok2 {
					continue
				}
				e.solver.Assert(ImpliesE(AndE(a1, a2), Neq(Lit(s1), Lit(s2))))
			}
		}
	}

	return nil
}

// EncodeC2 emits the forbidden-pair clauses: two one-step extensions by
// the same action, from bases hypothesised equal, whose action-times land
// in the same region under the chosen reset must agree on their own
// reset flag.
func (e *Encoder) EncodeC2() {
	exts := extensionRows(e.allRows())
	for i := 0; i < len(exts); i++ {
		for j := i + 1; j < len(exts); j++ {
			extU, extV := exts[i], exts[j]
			if extU.lastAction != extV.lastAction {
				continue
			}
			baseU, okU := e.table.RowFor(extU.base)
			baseV, okV := e.table.RowFor(extV.base)
			if !okU || !okV {
				continue
			}
			if !region.SameRegion(extU.row.Prefix.LastDelay(), extV.row.Prefix.LastDelay(), e.m) {
				continue
			}

			_, sU := e.RowVars(baseU)
			_, sV := e.RowVars(baseV)
			rExtU, _ := e.RowVars(extU.row)
			rExtV, _ := e.RowVars(extV.row)

			for _, hyp := range e.resetHypotheses(baseU.Prefix, baseV.Prefix) {
				ant1, ok1 := e.encodeReset(baseU.Prefix, hyp.sideU)
				ant2, ok2 := e.encodeReset(baseV.Prefix, hyp.sideV)
				if !ok1 || !ok2 {
					continue
				}
				ante := AndE(ant1, ant2, Eq(Lit(sU), Lit(sV)))
				e.solver.Assert(ImpliesE(ante, boolEq(rExtU, rExtV)))
			}
		}
	}
}

// EncodeC3 forbids reset assignments that would leave two same-base,
// same-action extensions with region-equal delays distinguishable — such
// an assignment cannot correspond to a sound reset hypothesis.
func (e *Encoder) EncodeC3() error {
	exts := extensionRows(e.allRows())
	for i := 0; i < len(exts); i++ {
		for j := i + 1; j < len(exts); j++ {
			extU, extV := exts[i], exts[j]
			if extU.lastAction != extV.lastAction || !extU.base.Equal(extV.base) {
				continue
			}
			if !region.SameRegion(extU.row.Prefix.LastDelay(), extV.row.Prefix.LastDelay(), e.m) {
				continue
			}

			_, distinguished, err := e.table.FindDistinguishingSuffix(extU.row, extV.row, region.Zero, region.Zero)
			if err != nil {
				return err
			}
			if !distinguished {
				continue
			}

			for _, hyp := range e.resetHypotheses(extU.base, extV.base) {
				if hyp.sideU[0] != hyp.sideV[0] {
					continue
				}
				ante, ok := e.encodeReset(extU.base, hyp.sideU)
				if !ok {
					continue
				}
				e.solver.Assert(Not{X: ante})
			}
		}
	}

	return nil
}

// EncodeC4 emits the consistency clauses. When it finds a distinguishing
// suffix for two extensions that would otherwise have to be equated, it
// mutates the table's E instead of asserting a clause and reports
// added=true: per spec §8 the caller must then restart encoding from
// scratch rather than continue with a stale E. When the distinguishing
// suffix is the empty word (the two extensions differ in their own flags),
// it asserts that their states differ instead and leaves E unchanged.
func (e *Encoder) EncodeC4() (added bool, err error) {
	exts := extensionRows(e.allRows())
	for i := 0; i < len(exts); i++ {
		for j := i + 1; j < len(exts); j++ {
			extU, extV := exts[i], exts[j]
			if extU.lastAction != extV.lastAction {
				continue
			}
			baseU, okU := e.table.RowFor(extU.base)
			baseV, okV := e.table.RowFor(extV.base)
			if !okU || !okV {
				continue
			}
			if !region.SameRegion(extU.row.Prefix.LastDelay(), extV.row.Prefix.LastDelay(), e.m) {
				continue
			}

			for _, hyp := range e.resetHypotheses(baseU.Prefix, baseV.Prefix) {
				ant1, ok1 := e.encodeReset(baseU.Prefix, hyp.sideU)
				ant2, ok2 := e.encodeReset(baseV.Prefix, hyp.sideV)
				if !ok1 || !ok2 {
					continue
				}

				shift1, shift2 := obstable.AlignmentShifts(extU.row.Prefix.EndClock(), extV.row.Prefix.EndClock())
				suffix, distinguished, ferr := e.table.FindDistinguishingSuffix(extU.row, extV.row, shift1, shift2)
				if ferr != nil {
					return false, ferr
				}

				if distinguished {
					_, sExtU := e.RowVars(extU.row)
					_, sExtV := e.RowVars(extV.row)

					if suffix.IsEmpty() {
						e.solver.Assert(Neq(Lit(sExtU), Lit(sExtV)))

						continue
					}

					smaller := extU.row.Prefix.LastDelay()
					if extV.row.Prefix.LastDelay().Less(smaller) {
						smaller = extV.row.Prefix.LastDelay()
					}
					prepended, serr := tword.Shift(suffix, smaller)
					if serr != nil {
						continue
					}
					e.table.AddSuffix(prepended)

					return true, nil
				}

				_, sU := e.RowVars(baseU)
				_, sV := e.RowVars(baseV)
				_, sExtU := e.RowVars(extU.row)
				_, sExtV := e.RowVars(extV.row)

				ante := AndE(Eq(Lit(sU), Lit(sV)), ant1, ant2)
				e.solver.Assert(ImpliesE(ante, Eq(Lit(sExtU), Lit(sExtV))))
			}
		}
	}

	return false, nil
}

// EncodeAll runs EncodeFixed, C1, C2, C3, then C4, stopping early and
// reporting restart=true if C4 grew E (spec §8).
func (e *Encoder) EncodeAll() (restart bool, err error) {
	e.EncodeFixed()
	if err := e.EncodeC1(); err != nil {
		return false, err
	}
	e.EncodeC2()
	if err := e.EncodeC3(); err != nil {
		return false, err
	}

	return e.EncodeC4()
}
