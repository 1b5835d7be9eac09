package fraudsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/fraudsim"
)

func safeIndex(t *testing.T, s content.Scenario) int {
	t.Helper()
	for i, c := range s.Choices {
		if c.Safe {
			return i
		}
	}
	t.Fatalf("scenario %q has no safe choice", s.Prompt)
	return -1
}

func unsafeIndex(t *testing.T, s content.Scenario) int {
	t.Helper()
	for i, c := range s.Choices {
		if !c.Safe {
			return i
		}
	}
	t.Fatalf("scenario %q has no unsafe choice", s.Prompt)
	return -1
}

func TestPerfectRun(t *testing.T) {
	scenarios := content.FraudScenarios()
	m := fraudsim.NewMachine(scenarios)

	for m.Phase() != fraudsim.PhaseFinished {
		require.Equal(t, fraudsim.PhaseChoosing, m.Phase())
		m.Choose(safeIndex(t, *m.Current()))

		require.Equal(t, fraudsim.PhaseFeedback, m.Phase())
		tip, safe := m.Feedback()
		assert.True(t, safe)
		assert.NotEmpty(t, tip)
		m.Advance()
	}

	out := m.Outcome()
	assert.Equal(t, len(scenarios), out.SafeCount)
	assert.Equal(t, 100, out.Percentage)
	assert.Equal(t, fraudsim.BasePoints+100, out.Points)
}

func TestMixedRunScoring(t *testing.T) {
	scenarios := content.FraudScenarios()
	require.Len(t, scenarios, 3)
	m := fraudsim.NewMachine(scenarios)

	// safe, unsafe, safe: 2 of 3.
	m.Choose(safeIndex(t, *m.Current()))
	m.Advance()
	m.Choose(unsafeIndex(t, *m.Current()))
	_, safe := m.Feedback()
	assert.False(t, safe)
	m.Advance()
	m.Choose(safeIndex(t, *m.Current()))
	m.Advance()

	out := m.Outcome()
	assert.Equal(t, 2, out.SafeCount)
	assert.Equal(t, 67, out.Percentage)
	assert.Equal(t, fraudsim.BasePoints+67, out.Points)
}

func TestChooseIgnoredOutsideChoosingPhase(t *testing.T) {
	m := fraudsim.NewMachine(content.FraudScenarios())

	m.Choose(safeIndex(t, *m.Current()))
	require.Equal(t, fraudsim.PhaseFeedback, m.Phase())

	// A second choose while feedback is shown must not double-count.
	m.Choose(0)
	m.Advance()

	step, total := m.Step()
	assert.Equal(t, 2, step)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, m.Outcome().SafeCount)
}

func TestOutOfRangeChoiceIgnored(t *testing.T) {
	m := fraudsim.NewMachine(content.FraudScenarios())

	m.Choose(-1)
	m.Choose(99)
	assert.Equal(t, fraudsim.PhaseChoosing, m.Phase())
}

func TestAdvanceIgnoredWhileChoosing(t *testing.T) {
	m := fraudsim.NewMachine(content.FraudScenarios())

	m.Advance()
	step, _ := m.Step()
	assert.Equal(t, 1, step)
	assert.Equal(t, fraudsim.PhaseChoosing, m.Phase())
}

func TestRestart(t *testing.T) {
	m := fraudsim.NewMachine(content.FraudScenarios())
	m.Choose(safeIndex(t, *m.Current()))
	m.Advance()

	m.Restart()

	step, total := m.Step()
	assert.Equal(t, 1, step)
	assert.Equal(t, 3, total)
	assert.Equal(t, fraudsim.PhaseChoosing, m.Phase())
	assert.Equal(t, 0, m.Outcome().SafeCount)
}

func TestEmptyScenarioSetFinishesImmediately(t *testing.T) {
	m := fraudsim.NewMachine(nil)

	assert.Equal(t, fraudsim.PhaseFinished, m.Phase())
	assert.Nil(t, m.Current())
	out := m.Outcome()
	assert.Equal(t, 0, out.Percentage)
	assert.Equal(t, fraudsim.BasePoints, out.Points)
}
