package dotacfg

import (
	"github.com/projectdiscovery/goflags"

	"github.com/dotasmt/dotasmt/learner"
)

// Flags holds the raw, flag-bound values before they are resolved into a
// learner.Config.
type Flags struct {
	ClockBound         int
	MaxStates          int
	EnhancedResetPairs bool
}

// NewFlagSet registers the learner's tunables onto a fresh goflags.FlagSet,
// in the teacher pack's CreateGroup/VarP idiom, and returns both the set
// and the struct its flags are bound to.
func NewFlagSet() (*goflags.FlagSet, *Flags) {
	f := &Flags{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Active-learning loop tunables for a one-clock timed automaton learner.")

	flagSet.CreateGroup("learner", "Learner",
		flagSet.IntVarP(&f.ClockBound, "clock-bound", "m", 0, "largest guard constant appearing in the teacher's transitions"),
		flagSet.IntVarP(&f.MaxStates, "max-states", "n", 16, "maximum candidate state count to try before giving up"),
		flagSet.BoolVarP(&f.EnhancedResetPairs, "enhanced-reset-pairs", "erp", false, "enumerate reset-pair hypotheses with the enhanced second-to-last-reset variant"),
	)

	return flagSet, f
}

// Config resolves f into a learner.Config via the package's functional
// options, leaving any field f doesn't carry at learner.NewConfig's default.
func (f *Flags) Config() learner.Config {
	return learner.NewConfig(
		learner.WithClockBound(f.ClockBound),
		learner.WithMaxStates(f.MaxStates),
		learner.WithEnhancedResetPairs(f.EnhancedResetPairs),
	)
}

// ParseConfig registers the learner's flags, parses them (command-line
// arguments and any environment-variable overrides goflags recognizes),
// and resolves the result into a learner.Config.
func ParseConfig() (learner.Config, error) {
	flagSet, f := NewFlagSet()
	if err := flagSet.Parse(); err != nil {
		return learner.Config{}, err
	}

	return f.Config(), nil
}
