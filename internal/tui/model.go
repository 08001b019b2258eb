// Package tui is the terminal front end for the focus timer.
package tui

import (
	"fmt"
	"strings"

	"focustimer/internal/core/model"
	"focustimer/internal/core/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 60
	minBarWidth     = 10
)

// Controller is the part of the timer engine the terminal UI drives.
type Controller interface {
	Start()
	Pause()
	Reset()
	SetGoal(goal string)
	Snapshot() timer.Snapshot
}

type eventMsg timer.Event

type closedMsg struct{}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

// Model is the root bubbletea model.
type Model struct {
	timer    Controller
	events   <-chan timer.Event
	snapshot timer.Snapshot
	keys     keyMap
	help     help.Model
	progress progress.Model
	goal     textinput.Model
	editing  bool
}

// New creates a model that mirrors controller and redraws on events.
func New(controller Controller, events <-chan timer.Event) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultBarWidth

	goal := textinput.New()
	goal.Placeholder = "what are you working on?"
	goal.CharLimit = 80
	goal.Width = defaultBarWidth
	goal.Prompt = "Goal: "

	return Model{
		timer:    controller,
		events:   events,
		snapshot: controller.Snapshot(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
		goal:     goal,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		// Observer sends never block, so events can be dropped; the
		// controller always holds the latest state.
		m.snapshot = m.timer.Snapshot()
		return m, waitForEvent(m.events)
	case closedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		width := msg.Width - 10
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width < minBarWidth {
			width = minBarWidth
		}
		m.progress.Width = width
		m.goal.Width = width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateGoal(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.timer.Start()
	case key.Matches(msg, m.keys.Pause):
		m.timer.Pause()
	case key.Matches(msg, m.keys.Toggle):
		if m.snapshot.Status == model.StatusRunning {
			m.timer.Pause()
		} else {
			m.timer.Start()
		}
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Goal):
		m.editing = true
		m.goal.SetValue(m.snapshot.Goal)
		m.goal.CursorEnd()
		return m, m.goal.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m, nil
	}
	m.snapshot = m.timer.Snapshot()
	return m, nil
}

func (m Model) updateGoal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.timer.SetGoal(strings.TrimSpace(m.goal.Value()))
		m.editing = false
		m.goal.Blur()
		m.snapshot = m.timer.Snapshot()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.goal.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.goal, cmd = m.goal.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	snapshot := m.snapshot
	color := colorFocus
	if snapshot.Mode == model.ModeBreak {
		color = colorBreak
	}

	header := fmt.Sprintf("%s  %s",
		modeStyle(color).Render(strings.ToUpper(snapshot.Mode.Title())),
		mutedStyle.Render(string(snapshot.Status)),
	)

	lines := []string{
		header,
		"",
		clockStyle.Foreground(color).Render(snapshot.Display()),
		m.progress.ViewAs(snapshot.Progress()),
		"",
		fmt.Sprintf("%s %d", labelStyle.Render("Sessions:"), snapshot.Sessions),
		m.goalLine(),
	}
	if snapshot.Motivation != "" {
		lines = append(lines, "", motivationStyle.Render(snapshot.Motivation))
	}
	lines = append(lines, "", m.help.View(m.keys))

	return frameStyle.BorderForeground(color).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

func (m Model) goalLine() string {
	if m.editing {
		return m.goal.View()
	}
	if m.snapshot.Goal == "" {
		return labelStyle.Render("Goal:") + " " + mutedStyle.Render("none (press g)")
	}
	return labelStyle.Render("Goal:") + " " + m.snapshot.Goal
}
