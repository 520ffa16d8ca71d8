package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lovedays/internal/client"
	"github.com/lovedays/internal/db"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateMilestones
	StateMemories
	StateDates
	StateSetup
	StateAddMemory
	StateAddDate
)

// tabCount covers the states reachable with tab, in declaration order.
const tabCount = 4

type Model struct {
	api   *client.Client
	state SessionState
	keys  KeyMap
	help  help.Model

	couple     *db.Couple
	startDate  time.Time
	milestones *client.MilestoneOverview
	memories   []client.Memory
	countdowns []client.DateCountdown
	quote      string

	form       *huh.Form
	setupForm  *SetupFormModel
	memoryForm *MemoryFormModel
	dateForm   *DateFormModel

	milestoneBar progress.Model
	now          time.Time
	cursor       int
	width        int
	height       int
	lastErr      string
	quitting     bool
}

func NewModel(api *client.Client) Model {
	return Model{
		api:          api,
		state:        StateHome,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		milestoneBar: progress.New(progress.WithDefaultGradient()),
		now:          time.Now(),
	}
}

// TickMsg drives the live counter on the home screen.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchHome(), tick())
}

type homeMsg struct {
	couple     *db.Couple
	milestones *client.MilestoneOverview
	quote      string
	err        error
}

type memoriesMsg struct {
	memories []client.Memory
	err      error
}

type countdownsMsg struct {
	countdowns []client.DateCountdown
	err        error
}

type savedMsg struct {
	err error
}

func (m Model) fetchHome() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		couple, err := api.Couple(ctx)
		if err != nil {
			return homeMsg{err: err}
		}
		milestones, err := api.Milestones(ctx)
		if err != nil {
			return homeMsg{couple: couple, err: err}
		}
		quote, err := api.Quote(ctx)
		if err != nil {
			return homeMsg{couple: couple, milestones: milestones, err: err}
		}
		return homeMsg{couple: couple, milestones: milestones, quote: quote}
	}
}

func (m Model) fetchMemories() tea.Cmd {
	api, couple := m.api, m.couple
	return func() tea.Msg {
		if couple == nil {
			return memoriesMsg{err: client.ErrNotConfigured}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		memories, err := api.Memories(ctx, couple.ID)
		return memoriesMsg{memories: memories, err: err}
	}
}

func (m Model) fetchCountdowns() tea.Cmd {
	api, couple := m.api, m.couple
	return func() tea.Msg {
		if couple == nil {
			return countdownsMsg{err: client.ErrNotConfigured}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		countdowns, err := api.Countdowns(ctx, couple.ID)
		return countdownsMsg{countdowns: countdowns, err: err}
	}
}

func (m Model) saveCouple() tea.Cmd {
	api, fm := m.api, *m.setupForm
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := api.CreateCouple(ctx, client.CoupleInput{
			Partner1Name: fm.Partner1Name,
			Partner2Name: fm.Partner2Name,
			StartDate:    fm.StartDate,
		})
		return savedMsg{err: err}
	}
}

func (m Model) saveMemory() tea.Cmd {
	api, fm, couple := m.api, *m.memoryForm, m.couple
	return func() tea.Msg {
		if couple == nil {
			return savedMsg{err: client.ErrNotConfigured}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := api.CreateMemory(ctx, client.MemoryInput{
			CoupleID: couple.ID,
			Title:    fm.Title,
			Content:  fm.Content,
			Date:     fm.Date,
			Mood:     fm.Mood,
		})
		return savedMsg{err: err}
	}
}

func (m Model) saveDate() tea.Cmd {
	api, fm, couple := m.api, *m.dateForm, m.couple
	return func() tea.Msg {
		if couple == nil {
			return savedMsg{err: client.ErrNotConfigured}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := api.CreateImportantDate(ctx, client.ImportantDateInput{
			CoupleID: couple.ID,
			Title:    fm.Title,
			Date:     fm.Date,
			Type:     fm.Type,
		})
		return savedMsg{err: err}
	}
}

func (m Model) deleteMemory(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return savedMsg{err: api.DeleteMemory(ctx, id)}
	}
}

func (m Model) deleteDate(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return savedMsg{err: api.DeleteImportantDate(ctx, id)}
	}
}

func isNotConfigured(err error) bool {
	return errors.Is(err, client.ErrNotConfigured)
}
