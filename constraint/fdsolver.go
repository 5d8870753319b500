package constraint

import "fmt"

// FDSolver is a brute-force finite-domain reference solver: every boolean
// variable is tried both ways and every integer variable is tried across
// its declared domain, smallest domain first (the HeuristicDom variable
// ordering of the bundled minikanren/fd.go solver in the retrieval pack),
// backtracking on the first violated clause. It exists so this module is
// self-contained; a production deployment should supply a real
// incremental SMT-backed Solver instead — the observation tables this
// package encodes stay small enough that brute force is adequate for
// teaching and for tests.
type FDSolver struct {
	boolNames []string
	intNames  []string
	intDom    [][2]int
	clauses   []Expr
	frames    []int
	model     Model
}

var _ Solver = (*FDSolver)(nil)

// NewFDSolver returns an empty reference solver.
func NewFDSolver() *FDSolver {
	return &FDSolver{model: Model{Bools: map[BoolVar]bool{}, Ints: map[IntVar]int{}}}
}

func (s *FDSolver) NewBool(name string) BoolVar {
	s.boolNames = append(s.boolNames, name)
	return BoolVar(len(s.boolNames))
}

func (s *FDSolver) NewInt(name string, lo, hi int) IntVar {
	s.intNames = append(s.intNames, name)
	s.intDom = append(s.intDom, [2]int{lo, hi})
	return IntVar(len(s.intNames))
}

func (s *FDSolver) Assert(e Expr) { s.clauses = append(s.clauses, e) }

// Push marks the current clause count as a restore point.
func (s *FDSolver) Push() { s.frames = append(s.frames, len(s.clauses)) }

// Pop discards every clause asserted since the matching Push.
func (s *FDSolver) Pop() {
	n := len(s.frames)
	if n == 0 {
		return
	}
	mark := s.frames[n-1]
	s.frames = s.frames[:n-1]
	s.clauses = s.clauses[:mark]
}

// Check searches for a satisfying assignment over every declared variable.
func (s *FDSolver) Check() (bool, error) {
	nb := len(s.boolNames)
	ni := len(s.intNames)
	ba := make([]bool, nb+1)
	ia := make([]int, ni+1)

	order := s.intOrderBySmallestDomain()

	if s.searchBool(1, nb, ba, ia, order) {
		return true, nil
	}

	return false, nil
}

// Model returns the assignment found by the most recent successful Check.
func (s *FDSolver) Model() Model { return s.model }

func (s *FDSolver) intOrderBySmallestDomain() []int {
	idx := make([]int, len(s.intNames))
	for i := range idx {
		idx[i] = i + 1
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0; j-- {
			lo, hi := idx[j], idx[j-1]
			if s.domSize(lo) < s.domSize(hi) {
				idx[j], idx[j-1] = idx[j-1], idx[j]
			} else {
				break
			}
		}
	}

	return idx
}

func (s *FDSolver) domSize(v int) int {
	d := s.intDom[v-1]
	return d[1] - d[0] + 1
}

func (s *FDSolver) searchBool(i, nb int, ba []bool, ia []int, order []int) bool {
	if i > nb {
		return s.searchInt(0, order, ba, ia)
	}
	for _, v := range [2]bool{false, true} {
		ba[i] = v
		if s.searchBool(i+1, nb, ba, ia, order) {
			return true
		}
	}

	return false
}

func (s *FDSolver) searchInt(pos int, order []int, ba []bool, ia []int) bool {
	if pos >= len(order) {
		if s.evalAll(ba, ia) {
			s.model = snapshot(ba, ia)
			return true
		}

		return false
	}
	v := order[pos]
	lo, hi := s.intDom[v-1][0], s.intDom[v-1][1]
	for val := lo; val <= hi; val++ {
		ia[v] = val
		if s.searchInt(pos+1, order, ba, ia) {
			return true
		}
	}

	return false
}

func snapshot(ba []bool, ia []int) Model {
	m := Model{Bools: make(map[BoolVar]bool, len(ba)-1), Ints: make(map[IntVar]int, len(ia)-1)}
	for i := 1; i < len(ba); i++ {
		m.Bools[BoolVar(i)] = ba[i]
	}
	for i := 1; i < len(ia); i++ {
		m.Ints[IntVar(i)] = ia[i]
	}

	return m
}

func (s *FDSolver) evalAll(ba []bool, ia []int) bool {
	for _, c := range s.clauses {
		if !eval(c, ba, ia) {
			return false
		}
	}

	return true
}

func resolveInt(t IntTerm, ia []int) int {
	if t.IsConst {
		return t.Const
	}

	return ia[t.Var]
}

func eval(e Expr, ba []bool, ia []int) bool {
	switch x := e.(type) {
	case BoolLit:
		v := ba[x.Var]
		if x.Negate {
			return !v
		}

		return v
	case Not:
		return !eval(x.X, ba, ia)
	case And:
		for _, c := range x.Xs {
			if !eval(c, ba, ia) {
				return false
			}
		}

		return true
	case Or:
		if len(x.Xs) == 0 {
			return false
		}
		for _, c := range x.Xs {
			if eval(c, ba, ia) {
				return true
			}
		}

		return false
	case Implies:
		return !eval(x.Ante, ba, ia) || eval(x.Cons, ba, ia)
	case IntEq:
		return resolveInt(x.A, ia) == resolveInt(x.B, ia)
	case IntNeq:
		return resolveInt(x.A, ia) != resolveInt(x.B, ia)
	case IntLeq:
		return resolveInt(x.A, ia) <= resolveInt(x.B, ia)
	default:
		panic(fmt.Sprintf("constraint: unknown expr type %T", e))
	}
}
