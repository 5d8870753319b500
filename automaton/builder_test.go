package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/region"
)

// sampleTeacherA builds spec §8 scenario 1: alphabet {a,b}, locations
// 1,2,3, initial 1, accept {3}; 1 -a,[0,+∞),n-> 2; 2 -b,[0,+∞),n-> 3.
func sampleTeacherA(t *testing.T) *automaton.Automaton {
	t.Helper()
	b := automaton.NewBuilder("a", []string{"a", "b"})
	require.NoError(t, b.AddLocation("1", true, false, false))
	require.NoError(t, b.AddLocation("2", false, false, false))
	require.NoError(t, b.AddLocation("3", false, true, false))

	full, err := region.NewInfinite(0, true)
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: full, Reset: false, To: "2"}))
	require.NoError(t, b.AddTransition(automaton.Transition{From: "2", Action: "b", Guard: full, Reset: false, To: "3"}))

	aut, err := b.Build()
	require.NoError(t, err)

	return aut
}

func TestBuilder_DuplicateLocation(t *testing.T) {
	b := automaton.NewBuilder("x", []string{"a"})
	require.NoError(t, b.AddLocation("1", true, false, false))
	err := b.AddLocation("1", false, false, false)
	assert.ErrorIs(t, err, automaton.ErrDuplicateLocation)
}

func TestBuilder_UnknownLocationOrAction(t *testing.T) {
	b := automaton.NewBuilder("x", []string{"a"})
	require.NoError(t, b.AddLocation("1", true, false, false))
	full, _ := region.NewInfinite(0, true)

	err := b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: full, To: "2"})
	assert.ErrorIs(t, err, automaton.ErrUnknownLocation)

	require.NoError(t, b.AddLocation("2", false, false, false))
	err = b.AddTransition(automaton.Transition{From: "1", Action: "z", Guard: full, To: "2"})
	assert.ErrorIs(t, err, automaton.ErrUnknownAction)
}

func TestBuilder_OverlappingGuards(t *testing.T) {
	b := automaton.NewBuilder("x", []string{"a"})
	require.NoError(t, b.AddLocation("1", true, false, false))
	require.NoError(t, b.AddLocation("2", false, false, false))
	g1, _ := region.NewFinite(0, true, 2, true)
	g2, _ := region.NewFinite(1, true, 3, true)
	require.NoError(t, b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: g1, To: "2"}))
	err := b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: g2, To: "2"})
	assert.ErrorIs(t, err, automaton.ErrAmbiguousGuards)
}

func TestBuilder_NoInitial(t *testing.T) {
	b := automaton.NewBuilder("x", []string{"a"})
	require.NoError(t, b.AddLocation("1", false, false, false))
	_, err := b.Build()
	assert.ErrorIs(t, err, automaton.ErrNoInitial)
}

func TestSameAlphabet(t *testing.T) {
	a := sampleTeacherA(t)

	reordered := automaton.NewBuilder("other", []string{"b", "a"})
	require.NoError(t, reordered.AddLocation("1", true, false, false))
	other, err := reordered.Build()
	require.NoError(t, err)
	assert.True(t, automaton.SameAlphabet(a, other))

	mismatched := automaton.NewBuilder("mismatch", []string{"a", "c"})
	require.NoError(t, mismatched.AddLocation("1", true, false, false))
	mismatchAut, err := mismatched.Build()
	require.NoError(t, err)
	assert.False(t, automaton.SameAlphabet(a, mismatchAut))
}
