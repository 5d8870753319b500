package inclusion

import (
	"github.com/dotasmt/dotasmt/letterword"
	"github.com/dotasmt/dotasmt/tword"
)

// findPath reconstructs the timed word reaching the bad letter-word bad
// from the initial configuration init, by walking its predecessor chain
// (spec §4.5). Every enqueued letter-word records its predecessor and
// action label; an action step's predecessor is the delayed configuration
// it fired from, whose own predecessor (one more hop back) is the
// pre-delay configuration annotated with the cumulative delay consumed —
// the two-hop structure DelaySeq and ImmediateASucc build (package
// letterword).
func findPath(bad letterword.LetterWord, init letterword.LetterWord) (tword.TimedWord, error) {
	var steps []tword.Step

	current := bad
	for !current.Equal(init) {
		if current.Via.Kind != letterword.ActionNamed || current.Prev == nil {
			return tword.Empty, ErrReconstruction
		}
		action := current.Via.Name
		current = *current.Prev

		if current.Via.Kind != letterword.ActionDelay || current.Prev == nil {
			return tword.Empty, ErrReconstruction
		}
		delay := current.Via.Delay
		steps = append(steps, tword.Step{Action: action, Delay: delay})
		current = *current.Prev
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return tword.New(steps...), nil
}
