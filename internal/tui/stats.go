package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ritmo-app/ritmo/internal/service"
)

// subjectColors cycles across chart bars.
var subjectColors = []lipgloss.Color{
	colorPrimary, colorSuccess, colorBreak, colorWarning, colorError,
}

// StatsModel renders the progress dashboard: weekly completion, streak,
// the motivational line and studied minutes per subject as a bar chart.
type StatsModel struct {
	summary *service.ProgressSummary
	chart   barchart.Model
	width   int
	height  int
}

func NewStatsModel(summary *service.ProgressSummary) StatsModel {
	m := StatsModel{summary: summary, width: 72, height: 24}
	m.buildChart()
	return m
}

func (m StatsModel) Init() tea.Cmd { return nil }

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buildChart()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Cancel) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *StatsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 30 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for i, total := range m.summary.Totals {
		name := total.SubjectName
		if name == "" {
			name = "(none)"
		}
		style := lipgloss.NewStyle().Foreground(subjectColors[i%len(subjectColors)])
		bars = append(bars, barchart.BarData{
			Label: name,
			Values: []barchart.BarValue{
				{Name: name, Value: float64(total.Minutes), Style: style},
			},
		})
	}
	if len(bars) == 0 {
		return
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m StatsModel) View() string {
	w := m.width - 4
	if w < 40 {
		w = 40
	}

	week := m.summary.Week
	header := titleStyle.Render("Your progress")
	weekLine := fmt.Sprintf("This week: %d/%d sessions (%.0f%%)", week.Completed, week.Total, week.Percent())
	streakLine := fmt.Sprintf("Streak: %d day(s)", m.summary.Streak)
	if m.summary.LastStudyDate != "" {
		streakLine += mutedStyle.Render("  last studied " + m.summary.LastStudyDate)
	}

	sections := []string{
		header,
		"",
		weekLine,
		streakLine,
		successStyle.Render(m.summary.Message),
	}

	if len(m.summary.Totals) > 0 {
		sections = append(sections, "", titleStyle.Render("Minutes by subject"), m.chart.View())
	} else {
		sections = append(sections, "", mutedStyle.Render("No completed sessions yet."))
	}
	sections = append(sections, "", mutedStyle.Render("q: quit"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
