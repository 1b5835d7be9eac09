// Package fraudsim runs the scripted fraud-awareness simulation as a small
// state machine. The machine holds no clock; whoever drives it decides when
// to call Advance after showing feedback.
package fraudsim

import "github.com/alexanderramin/fincerdas/internal/content"

// BasePoints is the flat award for finishing a run, paid on top of the
// percentage score.
const BasePoints = 30

// Phase is the simulator's current display state.
type Phase int

const (
	// PhaseChoosing waits for the player to pick a response.
	PhaseChoosing Phase = iota
	// PhaseFeedback shows the tip for the chosen response.
	PhaseFeedback
	// PhaseFinished means every scenario has been played.
	PhaseFinished
)

// Outcome summarizes a finished run.
type Outcome struct {
	SafeCount  int
	Total      int
	Percentage int
	Points     int
}

// Machine walks through the scenarios one at a time.
type Machine struct {
	scenarios []content.Scenario
	index     int
	safeCount int
	phase     Phase
	lastTip   string
	lastSafe  bool
}

// NewMachine starts a run over the given scenarios. An empty set finishes
// immediately.
func NewMachine(scenarios []content.Scenario) *Machine {
	m := &Machine{scenarios: scenarios}
	if len(scenarios) == 0 {
		m.phase = PhaseFinished
	}
	return m
}

// Phase reports the current display state.
func (m *Machine) Phase() Phase { return m.phase }

// Current returns the scenario being played, or nil once finished.
func (m *Machine) Current() *content.Scenario {
	if m.phase == PhaseFinished {
		return nil
	}
	return &m.scenarios[m.index]
}

// Step reports 1-based progress through the run.
func (m *Machine) Step() (current, total int) {
	step := m.index + 1
	if m.phase == PhaseFinished {
		step = len(m.scenarios)
	}
	return step, len(m.scenarios)
}

// Choose records the response at the given index and moves to feedback.
// Out-of-range choices and calls outside the choosing phase are ignored.
func (m *Machine) Choose(choice int) {
	if m.phase != PhaseChoosing {
		return
	}
	cur := m.scenarios[m.index]
	if choice < 0 || choice >= len(cur.Choices) {
		return
	}
	picked := cur.Choices[choice]
	if picked.Safe {
		m.safeCount++
	}
	m.lastTip = picked.Tip
	m.lastSafe = picked.Safe
	m.phase = PhaseFeedback
}

// Feedback returns the tip for the last choice and whether it was safe.
// Only meaningful during the feedback phase.
func (m *Machine) Feedback() (tip string, safe bool) {
	return m.lastTip, m.lastSafe
}

// Advance leaves the feedback phase, moving to the next scenario or
// finishing the run. Ignored in any other phase.
func (m *Machine) Advance() {
	if m.phase != PhaseFeedback {
		return
	}
	m.index++
	if m.index >= len(m.scenarios) {
		m.phase = PhaseFinished
		return
	}
	m.phase = PhaseChoosing
}

// Restart begins a fresh run over the same scenarios.
func (m *Machine) Restart() {
	*m = *NewMachine(m.scenarios)
}

// Outcome scores the run. Valid only once finished; the percentage is the
// share of safe choices, rounded.
func (m *Machine) Outcome() Outcome {
	out := Outcome{SafeCount: m.safeCount, Total: len(m.scenarios)}
	if out.Total > 0 {
		out.Percentage = (out.SafeCount*100 + out.Total/2) / out.Total
	}
	out.Points = BasePoints + out.Percentage
	return out
}
