package learner

import (
	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/ocmm"
)

// Teacher is the DOTA oracle the learner queries: automaton.Automaton
// already exposes exactly the membership-query capability (RunTimedWord)
// the loop needs, and the inclusion package already operates on the
// concrete type directly, so Teacher is that type under the name spec §5
// gives the role rather than a new interface duplicating it.
type Teacher = *automaton.Automaton

// OCMMTeacher is the one-clock-Mealy-machine analogue of Teacher
// (SPEC_FULL §5's supplemented OCMM variant).
type OCMMTeacher = *ocmm.Machine
