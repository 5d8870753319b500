package automaton

import (
	"github.com/dotasmt/dotasmt/region"
)

// sinkLocationName is the fixed name given to the fresh sink location
// BuildAssistant introduces.
const sinkLocationName = "__sink__"

// BuildAssistant completes a into its "assistant" (input-enabled) form:
// for every (location,action) pair it adds reset transitions covering the
// complement of the existing guards, routed to a fresh sink location that
// self-loops on every action over [0,+∞) with reset (spec §4.2).
//
// The completion is total (every (location,action) has a guard covering
// all of [0,+∞)) and deterministic (guards still partition the domain,
// since the complement of a partition's guards cannot overlap them).
// Running the completed automaton on any timed word therefore never
// itself observes Sink from a missing transition — Sink is only reported
// once the run has reached the dedicated sink location.
func BuildAssistant(a *Automaton) (*Automaton, error) {
	if a.SinkName != "" {
		return nil, ErrAlreadyCompleted
	}

	b := NewBuilder(a.Name, a.Alphabet)
	for _, loc := range a.Locations() {
		if err := b.AddLocation(loc.Name, loc.Init, loc.Accept, false); err != nil {
			return nil, err
		}
	}
	if err := b.AddLocation(sinkLocationName, false, false, true); err != nil {
		return nil, err
	}

	for _, loc := range a.Locations() {
		for _, action := range a.Alphabet {
			existing := a.Transitions(loc.Name, action)
			for _, t := range existing {
				if err := b.AddTransition(t); err != nil {
					return nil, err
				}
			}
			guards := make([]region.Interval, len(existing))
			for i, t := range existing {
				guards[i] = t.Guard
			}
			for _, gap := range region.ComplementIntervals(guards) {
				if err := b.AddTransition(Transition{
					From:   loc.Name,
					Action: action,
					Guard:  gap,
					Reset:  true,
					To:     sinkLocationName,
				}); err != nil {
					return nil, err
				}
			}
		}
	}

	fullGuard, err := region.NewInfinite(0, true)
	if err != nil {
		return nil, err
	}
	for _, action := range a.Alphabet {
		if err := b.AddTransition(Transition{
			From:   sinkLocationName,
			Action: action,
			Guard:  fullGuard,
			Reset:  true,
			To:     sinkLocationName,
		}); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
