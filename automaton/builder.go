package automaton

import (
	"fmt"

	"github.com/dotasmt/dotasmt/region"
)

// Builder assembles an Automaton incrementally, validating as it goes —
// the single-threaded analogue of core.Graph's AddVertex/AddEdge pair,
// without the teacher's locking (spec §5: no concurrent access exists in
// this domain).
type Builder struct {
	name        string
	alphabet    []string
	alphabetSet map[string]struct{}
	locations   map[string]*Location
	locOrder    []string
	byLocAction map[string][]Transition
	initial     string
	sinkName    string
}

// NewBuilder starts a fresh Automaton builder for the given name and
// action alphabet.
func NewBuilder(name string, alphabet []string) *Builder {
	set := make(map[string]struct{}, len(alphabet))
	for _, a := range alphabet {
		set[a] = struct{}{}
	}

	return &Builder{
		name:        name,
		alphabet:    append([]string(nil), alphabet...),
		alphabetSet: set,
		locations:   make(map[string]*Location),
		byLocAction: make(map[string][]Transition),
	}
}

// AddLocation registers a location with the given role flags.
// Complexity: O(1).
func (b *Builder) AddLocation(name string, init, accept, sink bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := b.locations[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, name)
	}
	b.locations[name] = &Location{Name: name, Init: init, Accept: accept, Sink: sink}
	b.locOrder = append(b.locOrder, name)
	if init {
		b.initial = name
	}
	if sink {
		b.sinkName = name
	}

	return nil
}

// AddTransition adds one guarded transition, checking that both endpoints
// exist, the action is declared, and the new guard does not overlap any
// existing guard for the same (from,action) pair (determinism, spec §4.2).
func (b *Builder) AddTransition(t Transition) error {
	if _, ok := b.locations[t.From]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, t.From)
	}
	if _, ok := b.locations[t.To]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, t.To)
	}
	if _, ok := b.alphabetSet[t.Action]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, t.Action)
	}
	k := key(t.From, t.Action)
	for _, existing := range b.byLocAction[k] {
		if guardsOverlap(existing.Guard, t.Guard) {
			return fmt.Errorf("%w: (%s,%s)", ErrAmbiguousGuards, t.From, t.Action)
		}
	}
	b.byLocAction[k] = append(b.byLocAction[k], t)

	return nil
}

// guardsOverlap reports whether a and b, as guard intervals over the same
// (location,action) pair, share any point — determinism requires they
// never do.
func guardsOverlap(a, b region.Interval) bool {
	return !endsBefore(a, b) && !endsBefore(b, a)
}

// endsBefore reports whether first lies entirely before second begins.
func endsBefore(first, second region.Interval) bool {
	if first.HiInf {
		return false
	}
	if second.Lo.Value > first.Hi.Value {
		return true
	}
	if second.Lo.Value == first.Hi.Value && !(first.Hi.Closed && second.Lo.Closed) {
		return true
	}

	return false
}

// Build finalizes the Automaton. Requires an initial location to have been
// set via AddLocation.
func (b *Builder) Build() (*Automaton, error) {
	if b.initial == "" {
		return nil, ErrNoInitial
	}

	return &Automaton{
		Name:        b.name,
		Alphabet:    append([]string(nil), b.alphabet...),
		locations:   b.locations,
		locOrder:    append([]string(nil), b.locOrder...),
		byLocAction: b.byLocAction,
		Initial:     b.initial,
		SinkName:    b.sinkName,
		cache:       make(map[string]Verdict),
	}, nil
}
