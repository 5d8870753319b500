// Package constraint declares the solver capability spec §1/§6 treats as a
// black box — fresh boolean/integer variables, conjunction, disjunction,
// negation, implication, equality and ordering over integers, a
// satisfiability check, and model extraction — and implements the four
// clause families (C1-C4) of spec §4.6 on top of it.
//
// Solver is an interface so a production deployment can plug in a real
// incremental SMT backend; FDSolver is a bundled reference implementation
// (a brute-force finite-domain backtracker in the style of the bundled
// minikanren/fd.go solver in the retrieval pack) good enough for the
// small variable counts a DOTA learner's observation table produces.
package constraint
