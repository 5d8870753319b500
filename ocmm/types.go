package ocmm

import (
	"errors"

	"github.com/dotasmt/dotasmt/region"
)

// VoidOutput is the output emitted once a run falls into the sink (no
// transition matched), mirroring the source's reserved "void" symbol.
const VoidOutput = "void"

var (
	ErrEmptyName          = errors.New("ocmm: location name must not be empty")
	ErrDuplicateLocation  = errors.New("ocmm: duplicate location")
	ErrUnknownLocation    = errors.New("ocmm: unknown location")
	ErrUnknownInput       = errors.New("ocmm: unknown input action")
	ErrAmbiguousGuards    = errors.New("ocmm: overlapping guards for the same (location,input)")
	ErrNoInitial          = errors.New("ocmm: no initial location set")
	ErrAlreadyCompleted   = errors.New("ocmm: machine already has a sink location")
)

// Location is a node of the machine, tagged with its role. There is no
// accept flag: an OCMM's observable behaviour is its output word, not an
// accept/reject verdict.
type Location struct {
	Name string
	Init bool
	Sink bool
}

// Transition is one guarded, optionally resetting, output-producing edge.
type Transition struct {
	From   string
	Input  string
	Output string
	Guard  region.Interval
	Reset  bool
	To     string
}

// Machine is a deterministic one-clock Mealy machine: input/output
// alphabets, tagged locations, a transition relation, and an initial
// location (SPEC_FULL §5).
type Machine struct {
	Name    string
	Inputs  []string
	Outputs []string

	locations map[string]*Location
	locOrder  []string

	byLocInput map[string][]Transition

	Initial  string
	SinkName string

	cache map[string]string
}

// Locations returns the machine's locations in construction order.
func (m *Machine) Locations() []*Location {
	out := make([]*Location, len(m.locOrder))
	for i, name := range m.locOrder {
		out[i] = m.locations[name]
	}

	return out
}

// Location looks up a location by name.
func (m *Machine) Location(name string) (*Location, bool) {
	l, ok := m.locations[name]

	return l, ok
}

// Transitions returns every transition out of (loc,input), in the
// deterministic order they were added.
func (m *Machine) Transitions(loc, input string) []Transition {
	return m.byLocInput[key(loc, input)]
}

// AllTransitions returns every transition, grouped by (location,input) in
// construction order.
func (m *Machine) AllTransitions() []Transition {
	var out []Transition
	for _, loc := range m.locOrder {
		for _, input := range m.Inputs {
			out = append(out, m.byLocInput[key(loc, input)]...)
		}
	}

	return out
}

func key(loc, input string) string { return loc + "\x00" + input }

// SameAlphabets reports whether a and b share exactly the same input
// alphabet, ignoring order (the inclusion/equivalence precondition).
func SameAlphabets(a, b *Machine) bool {
	if len(a.Inputs) != len(b.Inputs) {
		return false
	}
	set := make(map[string]struct{}, len(a.Inputs))
	for _, in := range a.Inputs {
		set[in] = struct{}{}
	}
	for _, in := range b.Inputs {
		if _, ok := set[in]; !ok {
			return false
		}
	}

	return true
}
