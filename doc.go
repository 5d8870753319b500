// Package dotasmt is an active-learning system for deterministic one-clock
// timed automata (DOTA) and its one-clock Mealy-machine (OCMM) variant.
//
// Given a teacher that answers membership and equivalence queries over
// timed words, the learner package drives an L*-style observation-table
// loop: grow a candidate state count, stabilize and encode the table's
// region-aware distinguishability constraints, hand them to a solver, and
// pose the resulting hypothesis as an equivalence query — feeding any
// counterexample back into the table until the teacher accepts.
//
// Everything is organized one concern per package:
//
//	region/     — clock-region algebra: points, open/closed intervals, the
//	              total successor function, and the Decimal/region bridge
//	letterword/ — fractional-ordered letter-word abstraction used to decide
//	              timed-language inclusion without an infinite region graph
//	tword/      — timed words: (action, delay) steps, prefixes, shifting
//	automaton/  — the DOTA type itself: locations, guarded transitions,
//	              running, completion, and YAML test fixtures
//	ocmm/       — the one-clock Mealy-machine variant: output words instead
//	              of accept/reject/sink
//	obstable/   — the observation table: rows, reset-pair hypotheses,
//	              distinguishing suffixes, closedness
//	constraint/ — the boolean/integer expression algebra, a Solver
//	              interface and bundled brute-force FDSolver, and the
//	              encoder translating a table into C1-C4 clauses
//	candidate/  — assembling a solved model back into a runnable Automaton
//	inclusion/  — deciding timed-language inclusion/equivalence between two
//	              automata, for posing equivalence queries
//	learner/    — the active-learning loop wiring all of the above together
//	metrics/    — query and location counters
//	dotacfg/    — optional goflags binding for learner.Config, for CLI
//	              front ends; not used by the core algorithm
//
// This module has no command-line entry point of its own (see spec §1's
// non-goals): it is a library, meant to be driven by a caller that
// supplies a Teacher and reads back a learned Automaton.
package dotasmt
