package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/candidate"
	"github.com/dotasmt/dotasmt/constraint"
	"github.com/dotasmt/dotasmt/obstable"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

func sampleTeacherForCandidate(t *testing.T) *automaton.Automaton {
	t.Helper()
	b := automaton.NewBuilder("a", []string{"a", "b"})
	require.NoError(t, b.AddLocation("1", true, false, false))
	require.NoError(t, b.AddLocation("2", false, false, false))
	require.NoError(t, b.AddLocation("3", false, true, false))
	full, err := region.NewInfinite(0, true)
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: full, To: "2"}))
	require.NoError(t, b.AddTransition(automaton.Transition{From: "2", Action: "b", Guard: full, To: "3"}))
	aut, err := b.Build()
	require.NoError(t, err)

	return aut
}

func sampleGuardedTeacherForCandidate(t *testing.T) *automaton.Automaton {
	t.Helper()
	b := automaton.NewBuilder("guarded", []string{"a"})
	require.NoError(t, b.AddLocation("1", true, false, false))
	require.NoError(t, b.AddLocation("2", false, true, false))
	require.NoError(t, b.AddLocation("3", false, false, false))
	atZero, err := region.NewFinite(0, true, 0, true)
	require.NoError(t, err)
	afterZero, err := region.NewInfinite(0, false)
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: atZero, To: "2"}))
	require.NoError(t, b.AddTransition(automaton.Transition{From: "1", Action: "a", Guard: afterZero, To: "3"}))
	aut, err := b.Build()
	require.NoError(t, err)

	return aut
}

// TestAssemble_RecoversNonTrivialGuardPartition exercises a teacher whose
// behavior genuinely depends on the clock (action "a" lands on an accept
// location only when fired at exactly time 0): Assemble must recover two
// distinct guards for (state, action) = ("1","a"), not a single [0,+∞)
// guard, once the table holds both a zero-delay and a positive-delay
// extension.
func TestAssemble_RecoversNonTrivialGuardPartition(t *testing.T) {
	teacher := sampleGuardedTeacherForCandidate(t)
	table := obstable.NewTable(teacher)

	posDelay := tword.New(tword.Step{Action: "a", Delay: region.NewDecimal(1, 1)}) // a fired after a 0.1 delay
	table.AddPath(posDelay)
	require.NoError(t, table.AddToS(tword.New(tword.NewStep("a", 0))))

	stateNum := len(table.S)

	var (
		solver *constraint.FDSolver
		enc    *constraint.Encoder
	)
	for {
		solver = constraint.NewFDSolver()
		enc = constraint.NewEncoder(solver, table, 1, stateNum)
		restart, err := enc.EncodeAll()
		require.NoError(t, err)
		if !restart {
			break
		}
	}

	ok, err := solver.Check()
	require.NoError(t, err)
	require.True(t, ok)

	aut, err := candidate.Assemble(enc, solver.Model(), table, stateNum, teacher.Alphabet, "candidate")
	require.NoError(t, err)

	atZero := tword.New(tword.NewStep("a", 0))
	assert.Equal(t, automaton.Accept, aut.RunTimedWord(atZero))

	afterDelay := tword.New(tword.Step{Action: "a", Delay: region.NewDecimal(1, 1)})
	assert.NotEqual(t, automaton.Accept, aut.RunTimedWord(afterDelay))

	assert.Greater(t, len(aut.Transitions("1", "a")), 1,
		"a teacher whose behavior depends on the clock must yield more than one guard for (1,a)")
}

func TestAssemble_BuildsRunnableAutomaton(t *testing.T) {
	teacher := sampleTeacherForCandidate(t)
	table := obstable.NewTable(teacher)

	ab := tword.New(tword.NewStep("a", 0), tword.NewStep("b", 0))
	table.AddPath(ab)
	require.NoError(t, table.AddToS(tword.New(tword.NewStep("a", 0))))
	require.NoError(t, table.AddToS(ab))

	stateNum := len(table.S)
	solver := constraint.NewFDSolver()
	enc := constraint.NewEncoder(solver, table, 0, stateNum)
	_, err := enc.EncodeAll()
	require.NoError(t, err)

	ok, err := solver.Check()
	require.NoError(t, err)
	require.True(t, ok, "fixed clauses plus the table's own structure must be satisfiable")

	aut, err := candidate.Assemble(enc, solver.Model(), table, stateNum, teacher.Alphabet, "candidate")
	require.NoError(t, err)
	assert.NotEmpty(t, aut.Locations())
	assert.Equal(t, automaton.Accept, aut.RunTimedWord(ab))
}
