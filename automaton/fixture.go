package automaton

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dotasmt/dotasmt/region"
)

// FixtureLocation is the YAML shape of one Location in a fixture file.
type FixtureLocation struct {
	Name   string `yaml:"name"`
	Init   bool   `yaml:"init,omitempty"`
	Accept bool   `yaml:"accept,omitempty"`
	Sink   bool   `yaml:"sink,omitempty"`
}

// FixtureGuard is the YAML shape of a transition's guard interval: an
// integer lower bound, whether it's closed, and either a finite closed/open
// upper bound or an unbounded (infinite) one.
type FixtureGuard struct {
	Lo       int  `yaml:"lo"`
	LoClosed bool `yaml:"loClosed,omitempty"`
	Hi       int  `yaml:"hi,omitempty"`
	HiClosed bool `yaml:"hiClosed,omitempty"`
	HiInf    bool `yaml:"hiInf,omitempty"`
}

func (g FixtureGuard) toInterval() (region.Interval, error) {
	if g.HiInf {
		return region.NewInfinite(g.Lo, g.LoClosed)
	}

	return region.NewFinite(g.Lo, g.LoClosed, g.Hi, g.HiClosed)
}

// FixtureTransition is the YAML shape of one Transition in a fixture file.
type FixtureTransition struct {
	From   string       `yaml:"from"`
	Action string       `yaml:"action"`
	Guard  FixtureGuard `yaml:"guard"`
	Reset  bool         `yaml:"reset,omitempty"`
	To     string       `yaml:"to"`
}

// Fixture is the YAML shape of a whole automaton, for table-driven tests
// that want a declarative alternative to a sequence of Builder calls
// (grounded on projectdiscovery-alterx's config.go struct-tag/Unmarshal
// idiom). Production automata are still built via Builder; this package has
// no parser for a textual automaton notation — Fixture exists for tests only.
type Fixture struct {
	Name        string              `yaml:"name"`
	Alphabet    []string            `yaml:"alphabet"`
	Locations   []FixtureLocation   `yaml:"locations"`
	Transitions []FixtureTransition `yaml:"transitions"`
}

// Build assembles f into an Automaton via Builder, so a loaded fixture goes
// through the exact same validation (duplicate locations, overlapping
// guards, missing initial location) production callers do.
func (f Fixture) Build() (*Automaton, error) {
	b := NewBuilder(f.Name, f.Alphabet)
	for _, loc := range f.Locations {
		if err := b.AddLocation(loc.Name, loc.Init, loc.Accept, loc.Sink); err != nil {
			return nil, err
		}
	}
	for _, tr := range f.Transitions {
		guard, err := tr.Guard.toInterval()
		if err != nil {
			return nil, err
		}
		if err := b.AddTransition(Transition{From: tr.From, Action: tr.Action, Guard: guard, Reset: tr.Reset, To: tr.To}); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// LoadFixture reads and unmarshals a YAML fixture file, then builds it.
func LoadFixture(path string) (*Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return f.Build()
}

// ParseFixtureYAML unmarshals fixture YAML already held in memory and
// builds it — the table-driven-test entry point, avoiding a temp file per
// case.
func ParseFixtureYAML(doc string) (*Automaton, error) {
	var f Fixture
	if err := yaml.Unmarshal([]byte(doc), &f); err != nil {
		return nil, err
	}

	return f.Build()
}
