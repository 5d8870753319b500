package ocmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/ocmm"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

func sampleMachine(t *testing.T) *ocmm.Machine {
	t.Helper()
	b := ocmm.NewBuilder("m", []string{"req"}, []string{"ack", "nack"})
	require.NoError(t, b.AddLocation("1", true, false))
	require.NoError(t, b.AddLocation("2", false, false))
	lo, err := region.NewFinite(0, true, 1, false)
	require.NoError(t, err)
	hi, err := region.NewInfinite(1, true)
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(ocmm.Transition{From: "1", Input: "req", Output: "ack", Guard: lo, Reset: true, To: "2"}))
	require.NoError(t, b.AddTransition(ocmm.Transition{From: "1", Input: "req", Output: "nack", Guard: hi, Reset: true, To: "1"}))
	require.NoError(t, b.AddTransition(ocmm.Transition{From: "2", Input: "req", Output: "ack", Guard: hi, Reset: false, To: "2"}))
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func TestRunInputWord_ProducesExpectedOutputs(t *testing.T) {
	m := sampleMachine(t)

	w := tword.New(tword.NewStep("req", 0))
	assert.Equal(t, []string{"ack"}, m.RunInputWord(w))

	w2 := tword.New(tword.NewStep("req", 2))
	assert.Equal(t, []string{"nack"}, m.RunInputWord(w2))
}

func TestRunInputWord_Memoisation(t *testing.T) {
	m := sampleMachine(t)
	w := tword.New(tword.NewStep("req", 0))
	m.RunInputWord(w)
	m.RunInputWord(tword.New(tword.NewStep("req", 0)))
	assert.Equal(t, 1, m.MembershipQueryCount())
}

func TestBuildAssistant_CompletesMissingGuards(t *testing.T) {
	m := sampleMachine(t)
	completed, err := ocmm.BuildAssistant(m)
	require.NoError(t, err)
	assert.NotEmpty(t, completed.SinkName)

	for _, loc := range completed.Locations() {
		for _, input := range completed.Inputs {
			assert.NotEmpty(t, completed.Transitions(loc.Name, input))
		}
	}
}

func TestBuildAssistant_AlreadyCompleted(t *testing.T) {
	m := sampleMachine(t)
	completed, err := ocmm.BuildAssistant(m)
	require.NoError(t, err)
	_, err = ocmm.BuildAssistant(completed)
	assert.ErrorIs(t, err, ocmm.ErrAlreadyCompleted)
}
