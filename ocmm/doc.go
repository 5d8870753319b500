// Package ocmm implements the one-clock Mealy machine variant supplemented
// from the source's ocmm.py (SPEC_FULL §5): membership queries return an
// output word instead of a three-valued accept/reject/sink verdict, and
// locations carry no accept flag — only input/output alphabets, guarded
// resetting transitions, and a designated sink that emits "void" forever.
// The package mirrors automaton's Builder/run/assistant split, adapted for
// the extra output dimension.
package ocmm
