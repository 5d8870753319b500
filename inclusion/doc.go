// Package inclusion decides language inclusion/equivalence between two
// (possibly nondeterministic) one-clock timed automata via breadth-first
// exploration of the letter-word region abstraction, with domination-based
// subsumption and concrete timed-counterexample reconstruction (spec
// §4.5).
//
// Check(M, A, B) decides L(B) ⊆ L(A): it explores letter-words reachable
// from the two automata's joint initial configuration, returning
// (true, zero word, nil) if no bad configuration is reachable, or
// (false, witness, nil) with witness a concrete timed word accepted by B
// but not by A. Equivalent reports the symmetric conjunction.
package inclusion

import "errors"

// ErrReconstruction indicates a bad letter-word's predecessor chain did
// not have the expected delay/action alternation — an invariant violation
// in the explorer, never a user-triggerable condition.
var ErrReconstruction = errors.New("inclusion: malformed predecessor chain during counterexample reconstruction")
