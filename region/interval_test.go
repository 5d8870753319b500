package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/region"
)

func TestParseInterval_RoundTrip(t *testing.T) {
	cases := []string{"[0,1)", "[1,1]", "(0,+)", "[3,5]", "(2,3]"}
	for _, s := range cases {
		iv, err := region.ParseInterval(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, iv.String(), "round-trip for %s", s)
	}
}

func TestParseInterval_Errors(t *testing.T) {
	bad := []string{"", "[1,2", "1,2)", "[a,2)", "[1,+]", "[2,1]"}
	for _, s := range bad {
		_, err := region.ParseInterval(s)
		assert.Error(t, err, s)
	}
}

func TestInterval_ContainsPoint(t *testing.T) {
	iv, err := region.NewFinite(1, true, 2, false)
	require.NoError(t, err)

	assert.True(t, iv.ContainsInt(1))
	assert.False(t, iv.ContainsInt(2))
	assert.True(t, iv.ContainsPoint(3, 2)) // 1.5
	assert.False(t, iv.ContainsPoint(1, 2))
}

func TestInterval_ContainsInterval(t *testing.T) {
	outer, err := region.NewFinite(1, true, 5, true)
	require.NoError(t, err)
	inner, err := region.NewFinite(2, false, 3, false)
	require.NoError(t, err)
	assert.True(t, outer.ContainsInterval(inner))
	assert.False(t, inner.ContainsInterval(outer))

	inf, err := region.NewInfinite(4, false)
	require.NoError(t, err)
	assert.False(t, outer.ContainsInterval(inf))
	assert.False(t, inf.ContainsInterval(inner))
}

func TestNewFinite_InvalidBounds(t *testing.T) {
	_, err := region.NewFinite(2, true, 1, true)
	assert.ErrorIs(t, err, region.ErrInvalidBound)

	_, err = region.NewFinite(1, false, 1, true)
	assert.ErrorIs(t, err, region.ErrInvalidBound)

	_, err = region.NewFinite(-1, true, 1, true)
	assert.ErrorIs(t, err, region.ErrNegativeValue)
}
