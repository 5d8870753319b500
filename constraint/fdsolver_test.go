package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/constraint"
)

func TestFDSolver_SatisfiesSimpleClauses(t *testing.T) {
	s := constraint.NewFDSolver()
	x := s.NewBool("x")
	a := s.NewInt("a", 1, 3)
	b := s.NewInt("b", 1, 3)

	s.Assert(constraint.ImpliesE(constraint.B(x), constraint.Eq(constraint.Lit(a), constraint.ConstTerm(2))))
	s.Assert(constraint.Neq(constraint.Lit(a), constraint.Lit(b)))

	ok, err := s.Check()
	require.NoError(t, err)
	require.True(t, ok)

	m := s.Model()
	if m.Bools[x] {
		assert.Equal(t, 2, m.Ints[a])
	}
	assert.NotEqual(t, m.Ints[a], m.Ints[b])
}

func TestFDSolver_Unsatisfiable(t *testing.T) {
	s := constraint.NewFDSolver()
	a := s.NewInt("a", 1, 1)
	b := s.NewInt("b", 1, 1)
	s.Assert(constraint.Neq(constraint.Lit(a), constraint.Lit(b)))

	ok, err := s.Check()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFDSolver_PushPop(t *testing.T) {
	s := constraint.NewFDSolver()
	a := s.NewInt("a", 1, 2)

	s.Push()
	s.Assert(constraint.Eq(constraint.Lit(a), constraint.ConstTerm(1)))
	ok, err := s.Check()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, s.Model().Ints[a])

	s.Push()
	s.Assert(constraint.Eq(constraint.Lit(a), constraint.ConstTerm(2)))
	ok, err = s.Check()
	require.NoError(t, err)
	assert.False(t, ok, "a cannot be both 1 and 2")

	s.Pop()
	ok, err = s.Check()
	require.NoError(t, err)
	assert.True(t, ok)
}
