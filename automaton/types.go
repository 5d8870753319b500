package automaton

import (
	"sort"

	"github.com/dotasmt/dotasmt/region"
)

// Verdict is the three-valued outcome of running a timed word against an
// Automaton (spec §3: accept / reject / sink).
type Verdict int

const (
	// Reject means the run completed at a non-accepting, non-sink location.
	Reject Verdict = 0
	// Accept means the run completed at an accepting location.
	Accept Verdict = 1
	// Sink means no guard matched at some step and the run fell into the sink.
	Sink Verdict = -1
)

// String renders a Verdict for diagnostics.
func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Sink:
		return "sink"
	default:
		return "reject"
	}
}

// Location is a node of the automaton, tagged with its role.
type Location struct {
	Name   string
	Init   bool
	Accept bool
	Sink   bool
}

// Transition is one guarded, optionally resetting edge of a DOTA (spec §3).
type Transition struct {
	From   string
	Action string
	Guard  region.Interval
	Reset  bool
	To     string
}

// Automaton is a deterministic one-clock timed automaton: an alphabet,
// a set of tagged locations, a transition relation, an initial location,
// and (implicitly, once AcceptSet is read) the set of accepting location
// names (spec §3).
//
// Automaton is immutable after Build except for its own membership-query
// cache (see RunTimedWord in run.go), which only this struct's methods
// touch — there is no concurrent access anywhere in this module (spec §5).
type Automaton struct {
	Name     string
	Alphabet []string

	locations map[string]*Location
	locOrder  []string

	// byLocAction indexes transitions for O(guards-at-this-state) lookup
	// during a run, keyed "location\x00action".
	byLocAction map[string][]Transition

	Initial  string
	SinkName string

	cache map[string]Verdict
}

// Locations returns the automaton's locations in the order they were added.
func (a *Automaton) Locations() []*Location {
	out := make([]*Location, len(a.locOrder))
	for i, name := range a.locOrder {
		out[i] = a.locations[name]
	}

	return out
}

// Location looks up a location by name.
func (a *Automaton) Location(name string) (*Location, bool) {
	l, ok := a.locations[name]

	return l, ok
}

// AcceptSet returns the sorted names of every accepting location.
func (a *Automaton) AcceptSet() []string {
	var out []string
	for _, name := range a.locOrder {
		if a.locations[name].Accept {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// Transitions returns every transition out of (loc,action), in the
// deterministic order they were added.
func (a *Automaton) Transitions(loc, action string) []Transition {
	return a.byLocAction[key(loc, action)]
}

// AllTransitions returns every transition of the automaton, grouped by
// (location,action) in the deterministic order used to build it.
func (a *Automaton) AllTransitions() []Transition {
	var out []Transition
	for _, loc := range a.locOrder {
		for _, action := range a.Alphabet {
			out = append(out, a.byLocAction[key(loc, action)]...)
		}
	}

	return out
}

func key(loc, action string) string { return loc + "\x00" + action }

// SameAlphabet reports whether a and b share exactly the same action
// alphabet, ignoring order — the inclusion engine's precondition (spec §4.5).
func SameAlphabet(a, b *Automaton) bool {
	if len(a.Alphabet) != len(b.Alphabet) {
		return false
	}
	set := make(map[string]struct{}, len(a.Alphabet))
	for _, act := range a.Alphabet {
		set[act] = struct{}{}
	}
	for _, act := range b.Alphabet {
		if _, ok := set[act]; !ok {
			return false
		}
	}

	return true
}

