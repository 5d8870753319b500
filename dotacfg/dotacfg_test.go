package dotacfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotasmt/dotasmt/dotacfg"
)

func TestFlags_ConfigResolvesBoundValues(t *testing.T) {
	f := &dotacfg.Flags{ClockBound: 3, MaxStates: 9, EnhancedResetPairs: true}

	cfg := f.Config()
	assert.Equal(t, 3, cfg.ClockBound)
	assert.Equal(t, 9, cfg.MaxStates)
	assert.True(t, cfg.EnhancedResetPairs)
}

func TestNewFlagSet_DefaultsMatchLearnerDefaults(t *testing.T) {
	_, f := dotacfg.NewFlagSet()

	cfg := f.Config()
	assert.Equal(t, 0, cfg.ClockBound)
	assert.Equal(t, 16, cfg.MaxStates)
	assert.False(t, cfg.EnhancedResetPairs)
}
