package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lovedays/internal/client"
	"github.com/lovedays/internal/db"
)

var coupleFixture = db.Couple{
	ID:           "c1",
	Partner1Name: "An",
	Partner2Name: "Bình",
	StartDate:    "2024-01-01",
}

func newTestModel() Model {
	return NewModel(client.New("http://127.0.0.1:1"))
}

func TestTickAdvancesClockOnHome(t *testing.T) {
	m := newTestModel()
	at := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	next, cmd := m.Update(TickMsg(at))
	got := next.(Model)

	if !got.now.Equal(at) {
		t.Fatalf("expected clock %v, got %v", at, got.now)
	}
	if cmd == nil {
		t.Fatal("expected the timer to be re-armed on the home screen")
	}
}

func TestTickStopsOffHome(t *testing.T) {
	m := newTestModel()
	m.state = StateMilestones

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Fatal("expected the timer to stop off the home screen")
	}
}

func TestTabCyclesScreens(t *testing.T) {
	m := newTestModel()

	states := []SessionState{StateMilestones, StateMemories, StateDates, StateHome}
	var model tea.Model = m
	for _, want := range states {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
		if got := model.(Model).state; got != want {
			t.Fatalf("expected state %d after tab, got %d", want, got)
		}
	}
}

func TestNotConfiguredEntersSetup(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(homeMsg{err: client.ErrNotConfigured})
	got := next.(Model)

	if got.state != StateSetup {
		t.Fatalf("expected setup state, got %d", got.state)
	}
	if got.form == nil {
		t.Fatal("expected a setup form")
	}
	if cmd == nil {
		t.Fatal("expected the form init command")
	}
}

func TestHomeMsgParsesStartDate(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(homeMsg{
		couple: &coupleFixture,
		quote:  "q",
	})
	got := next.(Model)

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	if !got.startDate.Equal(want) {
		t.Fatalf("expected start date %v, got %v", want, got.startDate)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel()
	m.state = StateMemories
	m.memories = []client.Memory{{ID: "a"}, {ID: "b"}}

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := model.(Model).cursor; got != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", got)
	}

	for i := 0; i < 5; i++ {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if got := model.(Model).cursor; got != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", got)
	}
}
