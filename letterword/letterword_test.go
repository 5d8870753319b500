package letterword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/letterword"
	"github.com/dotasmt/dotasmt/region"
)

func TestLetterSet_SubsetAndEqual(t *testing.T) {
	l1 := letterword.NewLetter(letterword.SideA, "1", region.NewPoint(0))
	l2 := letterword.NewLetter(letterword.SideB, "q", region.NewFrac(0))

	small := letterword.NewLetterSet(l1)
	big := letterword.NewLetterSet(l1, l2)

	assert.True(t, small.IsSubsetOf(big))
	assert.False(t, big.IsSubsetOf(small))
	assert.True(t, small.Equal(letterword.NewLetterSet(l1, l1)), "duplicates collapse")
}

func TestLetterWord_IsBad(t *testing.T) {
	set := letterword.NewLetterSet(
		letterword.NewLetter(letterword.SideA, "1", region.NewPoint(0)),
		letterword.NewLetter(letterword.SideB, "q2", region.NewPoint(0)),
	)
	lw, err := letterword.New([]letterword.LetterSet{set}, []region.Decimal{region.Zero})
	require.NoError(t, err)

	acceptA := map[string]bool{"3": true}
	acceptB := map[string]bool{"q2": true}
	assert.True(t, lw.IsBad(acceptA, acceptB), "B accepts, A does not -> bad")

	acceptA2 := map[string]bool{"1": true}
	assert.False(t, lw.IsBad(acceptA2, acceptB), "both accept -> not bad")
}

func TestDominates(t *testing.T) {
	small := letterword.NewLetterSet(letterword.NewLetter(letterword.SideA, "1", region.NewPoint(0)))
	big := small.Union(letterword.NewLetterSet(letterword.NewLetter(letterword.SideB, "q", region.NewPoint(0))))

	lwSmall, err := letterword.New([]letterword.LetterSet{small}, []region.Decimal{region.Zero})
	require.NoError(t, err)
	lwBig, err := letterword.New([]letterword.LetterSet{big}, []region.Decimal{region.Zero})
	require.NoError(t, err)

	assert.True(t, lwSmall.Dominates(lwBig), "subset of a single slot dominates the superset")
	assert.False(t, lwBig.Dominates(lwSmall))
}

func TestDelayOne_PointFirstAdvancesToFrac(t *testing.T) {
	set := letterword.NewLetterSet(letterword.NewLetter(letterword.SideA, "1", region.NewPoint(0)))
	lw, err := letterword.New([]letterword.LetterSet{set}, []region.Decimal{region.Zero})
	require.NoError(t, err)

	next, inc, err := letterword.DelayOne(lw, 4)
	require.NoError(t, err)
	assert.False(t, inc.IsZero())
	assert.True(t, next.Sets[0][0].Region.IsFracRegion())
}

func TestDelaySeq_TerminatesAllInfinite(t *testing.T) {
	set := letterword.NewLetterSet(
		letterword.NewLetter(letterword.SideA, "1", region.NewPoint(0)),
		letterword.NewLetter(letterword.SideB, "q", region.NewPoint(0)),
	)
	lw, err := letterword.New([]letterword.LetterSet{set}, []region.Decimal{region.Zero})
	require.NoError(t, err)

	seq, err := letterword.DelaySeq(lw, 2)
	require.NoError(t, err)
	require.NotEmpty(t, seq)
	assert.True(t, seq[len(seq)-1].IsAllInfinite())
	assert.True(t, seq[0].Equal(lw))
}

// buildPair constructs two tiny one-location-step automata sharing the
// alphabet {a}, used to exercise ImmediateASucc/ComputeWSucc.
func buildPair(t *testing.T) (a, b *automaton.Automaton) {
	t.Helper()

	ab := automaton.NewBuilder("a", []string{"a"})
	require.NoError(t, ab.AddLocation("1", true, false, false))
	require.NoError(t, ab.AddLocation("2", false, true, false))
	full, err := region.NewInfinite(0, true)
	require.NoError(t, err)
	require.NoError(t, ab.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: full, Reset: true, To: "2"}))
	a, err = ab.Build()
	require.NoError(t, err)

	bb := automaton.NewBuilder("b", []string{"a"})
	require.NoError(t, bb.AddLocation("q1", true, false, false))
	require.NoError(t, bb.AddLocation("q2", false, true, false))
	require.NoError(t, bb.AddTransition(automaton.Transition{From: "q1", Action: "a", Guard: full, Reset: true, To: "q2"}))
	b, err = bb.Build()
	require.NoError(t, err)

	return a, b
}

func TestImmediateASucc_FiresMatchingTransitions(t *testing.T) {
	a, b := buildPair(t)

	lw := letterword.Init("1", "q1")
	succs, err := letterword.ImmediateASucc(lw, a, b)
	require.NoError(t, err)
	require.Len(t, succs, 1)

	// Both sides reset into a single merged set at region [0,0].
	assert.Len(t, succs[0].Sets, 1)
	assert.Len(t, succs[0].Sets[0], 2)
}

func TestComputeWSucc_DedupesResults(t *testing.T) {
	a, b := buildPair(t)

	lw := letterword.Init("1", "q1")
	succs, err := letterword.ComputeWSucc(2, lw, a, b)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range succs {
		key := s.String()
		assert.False(t, seen[key], "ComputeWSucc must dedupe identical successors")
		seen[key] = true
	}
	assert.NotEmpty(t, succs)
}
