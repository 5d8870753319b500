package learner

// Config holds the tunables of the learning loop, resolved from
// functional options (the teacher repo's configuration idiom).
type Config struct {
	// ClockBound is the largest guard constant M appearing in the
	// teacher's transitions — the region construction's bound (spec §4.1).
	ClockBound int
	// MaxStates caps how many candidate state counts the search tries
	// before giving up.
	MaxStates int
	// EnhancedResetPairs selects obstable.ResetPairsEnhanced over
	// obstable.ResetPairsSimple when distinguishing rows (SPEC_FULL §5).
	EnhancedResetPairs bool
}

// Option configures a Config.
type Option func(*Config)

// WithClockBound sets the clock bound M.
func WithClockBound(m int) Option { return func(c *Config) { c.ClockBound = m } }

// WithMaxStates caps the number of candidate state counts tried.
func WithMaxStates(n int) Option { return func(c *Config) { c.MaxStates = n } }

// WithEnhancedResetPairs turns on the enhanced reset-pair enumeration.
func WithEnhancedResetPairs(enabled bool) Option {
	return func(c *Config) { c.EnhancedResetPairs = enabled }
}

// NewConfig resolves opts into a Config, starting from defaults of
// ClockBound 0 and MaxStates 16.
func NewConfig(opts ...Option) Config {
	cfg := Config{ClockBound: 0, MaxStates: 16}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
