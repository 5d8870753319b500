package constraint

// BoolVar names a fresh boolean variable.
type BoolVar int

// IntVar names a fresh integer variable.
type IntVar int

// IntTerm is either an integer variable or a literal constant.
type IntTerm struct {
	Var     IntVar
	Const   int
	IsConst bool
}

// Lit builds a term referring to variable v.
func Lit(v IntVar) IntTerm { return IntTerm{Var: v} }

// ConstTerm builds a term for the literal constant n.
func ConstTerm(n int) IntTerm { return IntTerm{Const: n, IsConst: true} }

// Expr is a boolean-valued formula over BoolVars and IntTerms: the
// conjunction/disjunction/negation/implication/equality/ordering algebra
// spec §1 asks the solver capability to support.
type Expr interface{ isExpr() }

// BoolLit asserts that a boolean variable is (or, negated, is not) true.
type BoolLit struct {
	Var    BoolVar
	Negate bool
}

// Not negates a sub-expression.
type Not struct{ X Expr }

// And is the conjunction of every sub-expression (vacuously true when empty).
type And struct{ Xs []Expr }

// Or is the disjunction of every sub-expression (vacuously false when empty).
type Or struct{ Xs []Expr }

// Implies is Ante => Cons.
type Implies struct{ Ante, Cons Expr }

// IntEq asserts A == B.
type IntEq struct{ A, B IntTerm }

// IntNeq asserts A != B.
type IntNeq struct{ A, B IntTerm }

// IntLeq asserts A <= B.
type IntLeq struct{ A, B IntTerm }

func (BoolLit) isExpr()  {}
func (Not) isExpr()      {}
func (And) isExpr()      {}
func (Or) isExpr()       {}
func (Implies) isExpr()  {}
func (IntEq) isExpr()    {}
func (IntNeq) isExpr()   {}
func (IntLeq) isExpr()   {}

// B builds a positive literal for v.
func B(v BoolVar) Expr { return BoolLit{Var: v} }

// NotB builds a negated literal for v.
func NotB(v BoolVar) Expr { return BoolLit{Var: v, Negate: true} }

// AndE builds a conjunction.
func AndE(xs ...Expr) Expr { return And{Xs: xs} }

// OrE builds a disjunction.
func OrE(xs ...Expr) Expr { return Or{Xs: xs} }

// ImpliesE builds ante => cons.
func ImpliesE(ante, cons Expr) Expr { return Implies{Ante: ante, Cons: cons} }

// Eq builds a == b.
func Eq(a, b IntTerm) Expr { return IntEq{A: a, B: b} }

// Neq builds a != b.
func Neq(a, b IntTerm) Expr { return IntNeq{A: a, B: b} }

// Leq builds a <= b.
func Leq(a, b IntTerm) Expr { return IntLeq{A: a, B: b} }

// Model is a satisfying assignment, valid after a successful Check.
type Model struct {
	Bools map[BoolVar]bool
	Ints  map[IntVar]int
}

// Solver is the black-box capability spec §1/§6 names: declare variables,
// assert clauses, check satisfiability, extract a model. Push/Pop give the
// incremental push/pop discipline spec §8's symbolic-variable-lifecycle
// note recommends for per-state_num contextual clauses.
type Solver interface {
	NewBool(name string) BoolVar
	NewInt(name string, lo, hi int) IntVar
	Assert(e Expr)
	Push()
	Pop()
	Check() (bool, error)
	Model() Model
}
