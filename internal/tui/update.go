package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lovedays/internal/timeline"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.milestoneBar.Width = min(msg.Width-8, 60)
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		// The per-second timer only runs while the live counter is visible.
		if m.state == StateHome {
			return m, tick()
		}
		return m, nil

	case homeMsg:
		if msg.err != nil {
			if isNotConfigured(msg.err) {
				return m.enterSetup()
			}
			m.lastErr = msg.err.Error()
			return m, nil
		}
		m.lastErr = ""
		m.couple = msg.couple
		m.milestones = msg.milestones
		m.quote = msg.quote
		if start, err := timeline.ParseDate(msg.couple.StartDate); err == nil {
			m.startDate = start
		}
		return m, nil

	case memoriesMsg:
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			return m, nil
		}
		m.lastErr = ""
		m.memories = msg.memories
		if m.cursor >= len(m.memories) {
			m.cursor = 0
		}
		return m, nil

	case countdownsMsg:
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			return m, nil
		}
		m.lastErr = ""
		m.countdowns = msg.countdowns
		if m.cursor >= len(m.countdowns) {
			m.cursor = 0
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.lastErr = msg.err.Error()
		} else {
			m.lastErr = ""
		}
		switch m.state {
		case StateMemories:
			return m, m.fetchMemories()
		case StateDates:
			return m, m.fetchCountdowns()
		default:
			return m, m.fetchHome()
		}
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		state := m.state
		m.form = nil
		switch state {
		case StateSetup:
			m.state = StateHome
			return m, tea.Batch(m.saveCouple(), tick())
		case StateAddMemory:
			m.state = StateMemories
			return m, m.saveMemory()
		case StateAddDate:
			m.state = StateDates
			return m, m.saveDate()
		}
	case huh.StateAborted:
		m.form = nil
		switch m.state {
		case StateSetup:
			return m, tea.Quit
		case StateAddMemory:
			m.state = StateMemories
		case StateAddDate:
			m.state = StateDates
		}
		return m, nil
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchTab((m.state + 1) % tabCount)

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchTab((m.state - 1 + tabCount) % tabCount)

	case key.Matches(msg, m.keys.Refresh):
		return m.switchTab(m.state)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		switch m.state {
		case StateMemories:
			m.memoryForm = &MemoryFormModel{Date: m.now.Format(timeline.DateLayout), Mood: "happy"}
			m.form = NewMemoryForm(m.memoryForm)
			m.state = StateAddMemory
			return m, m.form.Init()
		case StateDates:
			m.dateForm = &DateFormModel{Type: "anniversary"}
			m.form = NewDateForm(m.dateForm)
			m.state = StateAddDate
			return m, m.form.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		switch m.state {
		case StateMemories:
			if m.cursor < len(m.memories) {
				return m, m.deleteMemory(m.memories[m.cursor].ID)
			}
		case StateDates:
			if m.cursor < len(m.countdowns) {
				return m, m.deleteDate(m.countdowns[m.cursor].ID)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) switchTab(next SessionState) (tea.Model, tea.Cmd) {
	m.state = next
	m.cursor = 0
	switch next {
	case StateHome:
		return m, tea.Batch(m.fetchHome(), tick())
	case StateMilestones:
		return m, m.fetchHome()
	case StateMemories:
		return m, m.fetchMemories()
	case StateDates:
		return m, m.fetchCountdowns()
	}
	return m, nil
}

func (m Model) listLen() int {
	switch m.state {
	case StateMemories:
		return len(m.memories)
	case StateDates:
		return len(m.countdowns)
	}
	return 0
}

func (m Model) enterSetup() (tea.Model, tea.Cmd) {
	m.setupForm = &SetupFormModel{}
	m.form = NewSetupForm(m.setupForm)
	m.state = StateSetup
	return m, m.form.Init()
}
