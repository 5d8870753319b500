package ocmm

import (
	"fmt"

	"github.com/dotasmt/dotasmt/region"
)

// Builder assembles a Machine incrementally, validating as it goes —
// the OCMM analogue of automaton.Builder.
type Builder struct {
	name        string
	inputs      []string
	inputSet    map[string]struct{}
	outputs     []string
	outputSet   map[string]struct{}
	locations   map[string]*Location
	locOrder    []string
	byLocInput  map[string][]Transition
	initial     string
	sinkName    string
}

// NewBuilder starts a fresh Machine builder for the given name, input
// alphabet, and output alphabet.
func NewBuilder(name string, inputs, outputs []string) *Builder {
	inSet := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		inSet[in] = struct{}{}
	}
	outSet := make(map[string]struct{}, len(outputs))
	for _, out := range outputs {
		outSet[out] = struct{}{}
	}

	return &Builder{
		name:       name,
		inputs:     append([]string(nil), inputs...),
		inputSet:   inSet,
		outputs:    append([]string(nil), outputs...),
		outputSet:  outSet,
		locations:  make(map[string]*Location),
		byLocInput: make(map[string][]Transition),
	}
}

// AddLocation registers a location with the given role flags.
func (b *Builder) AddLocation(name string, init, sink bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := b.locations[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, name)
	}
	b.locations[name] = &Location{Name: name, Init: init, Sink: sink}
	b.locOrder = append(b.locOrder, name)
	if init {
		b.initial = name
	}
	if sink {
		b.sinkName = name
	}

	return nil
}

// knownOutput lazily grows the declared output alphabet — "void" and any
// sink output are allowed even if absent from the initial declaration,
// matching the source's "add 'void' if not already present" behaviour.
func (b *Builder) knownOutput(o string) {
	if _, ok := b.outputSet[o]; ok {
		return
	}
	b.outputSet[o] = struct{}{}
	b.outputs = append(b.outputs, o)
}

// AddTransition adds one guarded, output-producing transition, checking
// endpoints and input declaration and rejecting overlapping guards for the
// same (from,input) pair.
func (b *Builder) AddTransition(t Transition) error {
	if _, ok := b.locations[t.From]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, t.From)
	}
	if _, ok := b.locations[t.To]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, t.To)
	}
	if _, ok := b.inputSet[t.Input]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInput, t.Input)
	}
	k := key(t.From, t.Input)
	for _, existing := range b.byLocInput[k] {
		if guardsOverlap(existing.Guard, t.Guard) {
			return fmt.Errorf("%w: (%s,%s)", ErrAmbiguousGuards, t.From, t.Input)
		}
	}
	b.knownOutput(t.Output)
	b.byLocInput[k] = append(b.byLocInput[k], t)

	return nil
}

func guardsOverlap(a, b region.Interval) bool {
	return !endsBefore(a, b) && !endsBefore(b, a)
}

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

// Build finalizes the Machine. Requires an initial location.
func (b *Builder) Build() (*Machine, error) {
	if b.initial == "" {
		return nil, ErrNoInitial
	}

	return &Machine{
		Name:       b.name,
		Inputs:     append([]string(nil), b.inputs...),
		Outputs:    append([]string(nil), b.outputs...),
		locations:  b.locations,
		locOrder:   append([]string(nil), b.locOrder...),
		byLocInput: b.byLocInput,
		Initial:    b.initial,
		SinkName:   b.sinkName,
		cache:      make(map[string]string),
	}, nil
}
