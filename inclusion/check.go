package inclusion

import (
	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/letterword"
	"github.com/dotasmt/dotasmt/tword"
)

// Check decides L(B) ⊆ L(A) for completed automata autA, autB sharing a
// clock bound m equal to the max integer appearing in any guard of either
// (spec §4.5). It returns (true, zero-value, nil) when inclusion holds, or
// (false, witness, nil) with witness a timed word accepted by autB but not
// by autA. An alphabet mismatch between autA and autB is a precondition
// violation, reported as automaton.ErrAlphabetMismatch.
func Check(m int, autA, autB *automaton.Automaton) (bool, tword.TimedWord, error) {
	if !automaton.SameAlphabet(autA, autB) {
		return false, tword.Empty, automaton.ErrAlphabetMismatch
	}

	acceptA := toAcceptSet(autA.AcceptSet())
	acceptB := toAcceptSet(autB.AcceptSet())

	init := letterword.Init(autA.Initial, autB.Initial)
	queue := []letterword.LetterWord{init}
	var explored []letterword.LetterWord

	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		if w.IsBad(acceptA, acceptB) {
			cex, err := findPath(w, init)
			if err != nil {
				return false, tword.Empty, err
			}

			return false, cex, nil
		}

		if dominatedByAny(explored, w) {
			continue
		}

		succs, err := letterword.ComputeWSucc(m, w, autA, autB)
		if err != nil {
			return false, tword.Empty, err
		}
		for _, s := range succs {
			if !containsLW(queue, s) {
				queue = append(queue, s)
			}
		}
		explored = append(explored, w)
	}

	return true, tword.Empty, nil
}

// Equivalent decides whether autA and autB accept the same language: both
// directions of Check must hold. The first failing direction's
// counterexample is returned.
func Equivalent(m int, autA, autB *automaton.Automaton) (bool, tword.TimedWord, error) {
	ok, cex, err := Check(m, autA, autB)
	if err != nil || !ok {
		return ok, cex, err
	}

	return Check(m, autB, autA)
}

func toAcceptSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return set
}

func dominatedByAny(explored []letterword.LetterWord, w letterword.LetterWord) bool {
	for _, v := range explored {
		if v.Dominates(w) {
			return true
		}
	}

	return false
}

func containsLW(words []letterword.LetterWord, w letterword.LetterWord) bool {
	for _, existing := range words {
		if existing.Equal(w) {
			return true
		}
	}

	return false
}
