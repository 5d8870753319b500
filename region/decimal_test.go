package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotasmt/dotasmt/region"
)

// TestRoundDiv2 matches spec §8 scenario 4 exactly.
func TestRoundDiv2(t *testing.T) {
	cases := []struct {
		in   region.Decimal
		want region.Decimal
	}{
		{region.NewDecimal(1, 0), region.NewDecimal(5, 1)},   // round_div_2(1) = 1/2
		{region.NewDecimal(8, 1), region.NewDecimal(4, 1)},   // round_div_2(0.8) = 0.4
		{region.NewDecimal(5, 1), region.NewDecimal(3, 1)},   // round_div_2(0.5) = 0.3
		{region.NewDecimal(3, 1), region.NewDecimal(2, 1)},   // round_div_2(0.3) = 0.2
		{region.NewDecimal(1, 1), region.NewDecimal(5, 2)},   // round_div_2(0.1) = 0.05
		{region.NewDecimal(15, 2), region.NewDecimal(8, 2)},  // round_div_2(0.15) = 0.08
	}
	for _, c := range cases {
		got := region.RoundDiv2(c.in)
		assert.Truef(t, got.Equal(c.want), "RoundDiv2(%v) = %v, want %v", c.in, got, c.want)
	}
}

func TestDecimal_AddSub(t *testing.T) {
	a := region.NewDecimal(1, 1)  // 0.1
	b := region.NewDecimal(25, 2) // 0.25
	assert.Equal(t, 0.35, a.Add(b).Float64())
	assert.InDelta(t, -0.15, a.Sub(b).Float64(), 1e-9)
}

func TestDecimal_Less(t *testing.T) {
	assert.True(t, region.NewDecimal(1, 1).Less(region.NewDecimal(2, 1)))
	assert.False(t, region.NewDecimal(2, 1).Less(region.NewDecimal(1, 1)))
}
