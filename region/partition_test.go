package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/region"
)

func sample(t *testing.T) []region.Interval {
	t.Helper()
	a, err := region.NewFinite(1, true, 2, true)
	require.NoError(t, err)
	b, err := region.NewFinite(3, false, 5, false)
	require.NoError(t, err)
	c, err := region.NewFinite(4, false, 6, false)
	require.NoError(t, err)

	return []region.Interval{a, b, c}
}

// TestIntervalsPartition matches spec §8 scenario 5: {[1,2], (3,5), (4,6)}
// partitions to [0,1), [1,2], (2,3], (3,4], (4,5), [5,6), [6,+∞).
func TestIntervalsPartition(t *testing.T) {
	got := region.IntervalsPartition(sample(t))
	want := []string{"[0,1)", "[1,2]", "(2,3]", "(3,4]", "(4,5)", "[5,6)", "[6,+)"}
	strs := make([]string, len(got))
	for i, iv := range got {
		strs[i] = iv.String()
	}
	assert.Equal(t, want, strs)
}

// TestComplementIntervals matches spec §8 scenario 6.
func TestComplementIntervals(t *testing.T) {
	got := region.ComplementIntervals(sample(t))
	want := []string{"[0,1)", "(2,3]", "[6,+)"}
	strs := make([]string, len(got))
	for i, iv := range got {
		strs[i] = iv.String()
	}
	assert.Equal(t, want, strs)
}

func TestIntervalsPartition_Empty(t *testing.T) {
	got := region.IntervalsPartition(nil)
	require.Len(t, got, 1)
	assert.Equal(t, "[0,+)", got[0].String())
}

func TestComplementIntervals_Empty(t *testing.T) {
	got := region.ComplementIntervals(nil)
	require.Len(t, got, 1)
	assert.Equal(t, "[0,+)", got[0].String())
}
