package ocmm

import (
	"github.com/dotasmt/dotasmt/region"
)

const sinkLocationName = "__sink__"

// BuildAssistant completes m into its input-enabled form: for every
// (location,input) pair it adds reset transitions covering the complement
// of the existing guards, outputting VoidOutput and routing to a fresh
// sink location that self-loops on every input over [0,+∞) with reset
// (ocmm.py's buildAssistantOCMM).
func BuildAssistant(m *Machine) (*Machine, error) {
	if m.SinkName != "" {
		return nil, ErrAlreadyCompleted
	}

	b := NewBuilder(m.Name, m.Inputs, m.Outputs)
	for _, loc := range m.Locations() {
		if err := b.AddLocation(loc.Name, loc.Init, false); err != nil {
			return nil, err
		}
	}
	if err := b.AddLocation(sinkLocationName, false, true); err != nil {
		return nil, err
	}

	for _, loc := range m.Locations() {
		for _, input := range m.Inputs {
			existing := m.Transitions(loc.Name, input)
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
					Input:  input,
					Output: VoidOutput,
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
	for _, input := range m.Inputs {
		if err := b.AddTransition(Transition{
			From:   sinkLocationName,
			Input:  input,
			Output: VoidOutput,
			Guard:  fullGuard,
			Reset:  true,
			To:     sinkLocationName,
		}); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
