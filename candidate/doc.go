// Package candidate assembles a concrete *automaton.Automaton from a
// solved constraint model: one public entry point in the style of the
// retrieval pack's builder.BuildGraph orchestrator — resolve locations
// from the model, then apply transitions in a fixed deterministic order,
// wrapping any assembly error with its calling context. (spec §4.6's
// "candidate automaton" step, §7 step 2.)
package candidate
