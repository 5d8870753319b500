package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/constraint"
	"github.com/dotasmt/dotasmt/obstable"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

func sampleTeacherForEncoder(t *testing.T) *automaton.Automaton {
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

func TestEncoder_FixedClausesAreSatisfiable(t *testing.T) {
	teacher := sampleTeacherForEncoder(t)
	table := obstable.NewTable(teacher)

	solver := constraint.NewFDSolver()
	enc := constraint.NewEncoder(solver, table, 0, len(table.Rows())+len(table.S))
	restart, err := enc.EncodeAll()
	require.NoError(t, err)
	assert.False(t, restart)

	ok, err := solver.Check()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEncoder_DistinctAcceptRejectRowsGetDistinctStates(t *testing.T) {
	teacher := sampleTeacherForEncoder(t)
	table := obstable.NewTable(teacher)

	ab := tword.New(tword.NewStep("a", 0), tword.NewStep("b", 0))
	table.AddPath(ab)
	require.NoError(t, table.AddToS(ab))

	solver := constraint.NewFDSolver()
	enc := constraint.NewEncoder(solver, table, 0, len(table.Rows())+len(table.S))
	_, err := enc.EncodeAll()
	require.NoError(t, err)

	ok, err := solver.Check()
	require.NoError(t, err)
	require.True(t, ok)
	model := solver.Model()

	emptyRow, found := table.RowFor(tword.Empty)
	require.True(t, found)
	acceptRow, found := table.RowFor(ab)
	require.True(t, found)

	_, emptyState := enc.RowVars(emptyRow)
	_, acceptState := enc.RowVars(acceptRow)
	assert.NotEqual(t, model.Ints[emptyState], model.Ints[acceptState])
}

func TestEncoder_EnhancedResetPairsStillSatisfiable(t *testing.T) {
	teacher := sampleTeacherForEncoder(t)
	table := obstable.NewTable(teacher)

	ab := tword.New(tword.NewStep("a", 0), tword.NewStep("b", 0))
	table.AddPath(ab)
	require.NoError(t, table.AddToS(ab))

	solver := constraint.NewFDSolver()
	enc := constraint.NewEncoder(solver, table, 0, len(table.Rows())+len(table.S)).WithEnhancedResetPairs(true)
	_, err := enc.EncodeAll()
	require.NoError(t, err)

	ok, err := solver.Check()
	require.NoError(t, err)
	assert.True(t, ok)
}
