// Package tui holds the Bubble Tea views: the Pomodoro timer and the
// progress dashboard. Views render state; all persistence happens in the
// CLI layer after the program exits.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/timer"
)

// tickMsg carries the generation of the chain that scheduled it. A
// pause/resume bumps the model's generation, so a tick from the pre-pause
// chain arrives stale and is dropped instead of double-driving the machine.
type tickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// TimerModel runs one study session through the Pomodoro machine. The
// program exits when the machine reaches awaiting-feedback or is
// cancelled; the caller inspects AwaitingFeedback to decide what to
// persist.
type TimerModel struct {
	machine *timer.Machine
	session *domain.StudySession
	width   int
	status  string
	gen     int
}

// NewTimerModel binds a timer view to a session and its machine.
func NewTimerModel(session *domain.StudySession, machine *timer.Machine) TimerModel {
	return TimerModel{machine: machine, session: session, width: 60}
}

// Machine exposes the driven machine, for feedback collection after exit.
func (m TimerModel) Machine() *timer.Machine { return m.machine }

// AwaitingFeedback reports whether the run ended at the feedback gate.
func (m TimerModel) AwaitingFeedback() bool {
	return m.machine.State() == timer.StateAwaitingFeedback
}

func (m TimerModel) Init() tea.Cmd {
	if err := m.machine.Start(); err != nil {
		return tea.Quit
	}
	return tickCmd(m.gen)
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		ev := m.machine.Tick()
		switch ev {
		case timer.EventAwaitingFeedback:
			return m, tea.Quit
		case timer.EventPhaseComplete:
			if m.machine.Phase() == timer.PhaseBreak {
				m.status = "Work cycle done. Break time!"
			} else {
				m.status = "Break over. Back to work!"
			}
		}
		// The clock stays scheduled only while the machine advances.
		if m.machine.Running() {
			return m, tickCmd(m.gen)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Pause):
		if m.machine.State() == timer.StatePaused {
			if err := m.machine.Resume(); err == nil {
				m.status = ""
				// Invalidate any tick still in flight from before the pause.
				m.gen++
				return m, tickCmd(m.gen)
			}
		} else if err := m.machine.Pause(); err == nil {
			m.status = "Paused"
		}
		return m, nil

	case key.Matches(msg, keys.Finish):
		if err := m.machine.RequestFeedback(); err != nil {
			m.status = "Finish at least one work cycle first"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
		_ = m.machine.Cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m TimerModel) View() string {
	w := m.width - 4
	if w < 30 {
		w = 30
	}

	subject := m.session.SubjectName
	if subject == "" {
		subject = "Study session"
	}
	title := titleStyle.Render(fmt.Sprintf("%s  %s %s", subject, m.session.Date, m.session.Time))

	clock := formatClock(m.machine.RemainingSec())
	var phaseLabel string
	display := clockStyle.Width(w - 6).Render(clock)
	switch {
	case m.machine.State() == timer.StatePaused:
		phaseLabel = pausedStyle.Render("PAUSED")
	case m.machine.Phase() == timer.PhaseWork:
		phaseLabel = workStyle.Render("WORK")
		display = workStyle.Width(w - 6).Align(lipgloss.Center).Render(clock)
	default:
		phaseLabel = breakStyle.Render("BREAK")
		display = breakStyle.Width(w - 6).Align(lipgloss.Center).Render(clock)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		display,
		phaseLabel,
		"",
		m.renderCycles(),
	)

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", mutedStyle.Render(m.status))
	}

	controls := mutedStyle.Render("space: pause/resume  f: finish early  x: cancel")
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center, content, "", controls))
}

func (m TimerModel) renderCycles() string {
	done := m.machine.Cycles()
	var parts []string
	for i := 0; i < m.machine.CycleThreshold(); i++ {
		if i < done {
			parts = append(parts, successStyle.Render("●"))
		} else {
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	return strings.Join(parts, " ") + mutedStyle.Render(fmt.Sprintf("  %d min studied", m.machine.StudiedMin()))
}

func formatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
