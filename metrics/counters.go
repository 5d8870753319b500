package metrics

// Counters tracks the two scalar observability metrics spec §6 requires,
// plus the learned location count reported alongside them. Location count
// excludes the sink.
type Counters struct {
	MembershipQueries  int
	EquivalenceQueries int
	Locations          int
}

// RecordEquivalenceQuery increments the equivalence-query counter — called
// once per iteration of the learner's main loop.
func (c *Counters) RecordEquivalenceQuery() { c.EquivalenceQueries++ }

// SyncMembershipQueries pulls the current membership-query count from a
// teacher automaton's own memoisation cache, the single source of truth
// for that count (spec §4.2, §9 design note).
func (c *Counters) SyncMembershipQueries(count int) { c.MembershipQueries = count }

// SetLocations records the learned (non-sink) location count.
func (c *Counters) SetLocations(n int) { c.Locations = n }
