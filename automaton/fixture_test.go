package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/tword"
)

const twoStepFixture = `
name: a
alphabet: [a, b]
locations:
  - {name: "1", init: true}
  - {name: "2"}
  - {name: "3", accept: true}
transitions:
  - {from: "1", action: a, guard: {lo: 0, loClosed: true, hiInf: true}, to: "2"}
  - {from: "2", action: b, guard: {lo: 0, loClosed: true, hiInf: true}, to: "3"}
`

func TestParseFixtureYAML_BuildsRunnableAutomaton(t *testing.T) {
	aut, err := automaton.ParseFixtureYAML(twoStepFixture)
	require.NoError(t, err)

	ab := tword.New(tword.NewStep("a", 0), tword.NewStep("b", 0))
	assert.Equal(t, automaton.Accept, aut.RunTimedWord(ab))
}

func TestParseFixtureYAML_RejectsDuplicateLocation(t *testing.T) {
	_, err := automaton.ParseFixtureYAML(`
name: a
alphabet: [a]
locations:
  - {name: "1", init: true}
  - {name: "1"}
transitions: []
`)
	assert.Error(t, err)
}
