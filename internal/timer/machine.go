// Package timer implements the Pomodoro state machine that drives one study
// session through alternating work and break phases. The machine is pure:
// time enters only through Tick, one call per elapsed second, so tests can
// run entire sessions by feeding synthetic tick counts.
package timer

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an input is not legal in the
// machine's current state.
var ErrInvalidTransition = errors.New("invalid timer transition")

type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

type State string

const (
	StateIdle             State = "idle"
	StateRunning          State = "running"
	StatePaused           State = "paused"
	StateResting          State = "resting" // short delay between phases
	StateAwaitingFeedback State = "awaiting_feedback"
	StateFinalized        State = "finalized"
	StateCancelled        State = "cancelled"
)

// Event signals a notable transition produced by a Tick.
type Event int

const (
	EventNone Event = iota
	// EventPhaseComplete fires when a work or break phase reaches its
	// target duration and the machine moves toward the opposite phase.
	EventPhaseComplete
	// EventAwaitingFeedback fires when the cycle threshold is reached and
	// the machine stops to collect feedback.
	EventAwaitingFeedback
)

// Config holds the phase durations and the cycle threshold.
type Config struct {
	WorkMin        int
	BreakMin       int
	CycleThreshold int // completed work cycles before feedback is requested
	RestDelaySec   int // delay before the next phase auto-resumes
}

const (
	DefaultCycleThreshold = 2
	DefaultRestDelaySec   = 1
)

func (c Config) withDefaults() Config {
	if c.CycleThreshold <= 0 {
		c.CycleThreshold = DefaultCycleThreshold
	}
	if c.RestDelaySec <= 0 {
		c.RestDelaySec = DefaultRestDelaySec
	}
	return c
}

// Feedback is the user's assessment collected after the final work cycle.
type Feedback struct {
	ProductivityRating int
	HadDistractions    bool
	Notes              string
}

// Result is produced exactly once, when feedback is submitted. StudiedMin
// counts completed whole work cycles only; a cancelled partial cycle earns
// nothing.
type Result struct {
	SessionID  string
	StudiedMin int
	Cycles     int
	Feedback   Feedback
}

// Machine drives a single session. At most one machine exists at a time;
// the timer view is modal.
type Machine struct {
	cfg       Config
	sessionID string

	state      State
	phase      Phase
	elapsedSec int
	restSec    int
	cycles     int
}

// New creates an idle machine bound to the given study session.
func New(sessionID string, cfg Config) *Machine {
	return &Machine{
		cfg:       cfg.withDefaults(),
		sessionID: sessionID,
		state:     StateIdle,
		phase:     PhaseWork,
	}
}

func (m *Machine) State() State      { return m.state }
func (m *Machine) Phase() Phase      { return m.phase }
func (m *Machine) Cycles() int       { return m.cycles }
func (m *Machine) SessionID() string { return m.sessionID }
func (m *Machine) ElapsedSec() int   { return m.elapsedSec }

// CycleThreshold returns the configured number of work cycles per run.
func (m *Machine) CycleThreshold() int { return m.cfg.CycleThreshold }

// TargetSec returns the current phase's duration in seconds.
func (m *Machine) TargetSec() int {
	if m.phase == PhaseWork {
		return m.cfg.WorkMin * 60
	}
	return m.cfg.BreakMin * 60
}

// RemainingSec returns seconds left in the current phase, never negative.
func (m *Machine) RemainingSec() int {
	r := m.TargetSec() - m.elapsedSec
	if r < 0 {
		return 0
	}
	return r
}

// StudiedMin returns minutes earned so far: whole work cycles only.
func (m *Machine) StudiedMin() int {
	return m.cycles * m.cfg.WorkMin
}

// Running reports whether Tick currently advances the machine. The timer
// view uses this to decide whether to keep its clock command scheduled.
func (m *Machine) Running() bool {
	return m.state == StateRunning || m.state == StateResting
}

// Start begins the first work phase.
func (m *Machine) Start() error {
	if m.state != StateIdle {
		return fmt.Errorf("start from %s: %w", m.state, ErrInvalidTransition)
	}
	m.state = StateRunning
	m.phase = PhaseWork
	m.elapsedSec = 0
	return nil
}

// Pause suspends the clock. Only legal while running; elapsed time is kept.
func (m *Machine) Pause() error {
	if m.state != StateRunning {
		return fmt.Errorf("pause from %s: %w", m.state, ErrInvalidTransition)
	}
	m.state = StatePaused
	return nil
}

// Resume continues a paused phase without resetting elapsed time.
func (m *Machine) Resume() error {
	if m.state != StatePaused {
		return fmt.Errorf("resume from %s: %w", m.state, ErrInvalidTransition)
	}
	m.state = StateRunning
	return nil
}

// Cancel discards the timer from any non-finalized state. The underlying
// study session is left untouched; partial cycles earn no credit.
func (m *Machine) Cancel() error {
	if m.state == StateFinalized || m.state == StateCancelled {
		return fmt.Errorf("cancel from %s: %w", m.state, ErrInvalidTransition)
	}
	m.state = StateCancelled
	return nil
}

// Tick advances the machine by one second. Ticks are ignored unless the
// machine is running or resting between phases.
func (m *Machine) Tick() Event {
	switch m.state {
	case StateResting:
		m.restSec--
		if m.restSec <= 0 {
			m.state = StateRunning
		}
		return EventNone

	case StateRunning:
		m.elapsedSec++
		if m.elapsedSec < m.TargetSec() {
			return EventNone
		}
		return m.completePhase()

	default:
		return EventNone
	}
}

// completePhase handles a phase that reached its target duration.
func (m *Machine) completePhase() Event {
	if m.phase == PhaseWork {
		m.cycles++
		if m.cycles >= m.cfg.CycleThreshold {
			m.state = StateAwaitingFeedback
			return EventAwaitingFeedback
		}
		m.phase = PhaseBreak
	} else {
		m.phase = PhaseWork
	}
	m.elapsedSec = 0
	m.restSec = m.cfg.RestDelaySec
	m.state = StateResting
	return EventPhaseComplete
}

// RequestFeedback moves a running machine with at least one completed work
// cycle straight to awaiting-feedback, letting the user close out early
// instead of finishing every configured cycle.
func (m *Machine) RequestFeedback() error {
	if m.cycles == 0 {
		return fmt.Errorf("no completed cycles yet: %w", ErrInvalidTransition)
	}
	switch m.state {
	case StateRunning, StatePaused, StateResting:
		m.state = StateAwaitingFeedback
		return nil
	default:
		return fmt.Errorf("request feedback from %s: %w", m.state, ErrInvalidTransition)
	}
}

// SubmitFeedback finalizes the machine and produces the session result.
// This is the only path that yields studied minutes.
func (m *Machine) SubmitFeedback(f Feedback) (*Result, error) {
	if m.state != StateAwaitingFeedback {
		return nil, fmt.Errorf("submit feedback from %s: %w", m.state, ErrInvalidTransition)
	}
	m.state = StateFinalized
	return &Result{
		SessionID:  m.sessionID,
		StudiedMin: m.StudiedMin(),
		Cycles:     m.cycles,
		Feedback:   f,
	}, nil
}
