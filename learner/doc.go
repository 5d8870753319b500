// Package learner drives the active-learning loop of spec §7: grow a
// candidate state count, close and encode the observation table, solve
// for a model, assemble a candidate automaton, and pose it as an
// equivalence query to the teacher — feeding any counterexample back into
// the table and retrying. It is the orchestrator that wires together
// obstable, constraint, candidate, inclusion, and metrics.
package learner
