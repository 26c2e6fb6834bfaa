package ui

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"healthtrack/internal/clock"
	"healthtrack/internal/config"
	"healthtrack/internal/dashboard"
	"healthtrack/internal/notify"
	"healthtrack/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Game: config.GameConfig{
			Icons:         state.DefaultIcons,
			MatchDelay:    500 * time.Millisecond,
			MismatchDelay: time.Second,
			CompleteDelay: 500 * time.Millisecond,
		},
		Dashboard: config.DashboardConfig{
			Frame:          16 * time.Millisecond,
			LoadDuration:   2 * time.Second,
			UpdateDuration: time.Second,
			ProgressDelay:  500 * time.Millisecond,
		},
		Notify:   config.NotifyConfig{Visible: 3 * time.Second, Exit: 300 * time.Millisecond},
		Carousel: config.CarouselConfig{Interval: 5 * time.Second},
		Scroll:   config.ScrollConfig{TopThreshold: 300, RevealRatio: 0.1, RowHeight: 20},
		Log:      config.LogConfig{Level: "info"},
	}
}

func newTestModel(t *testing.T) (*Model, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual()
	m := New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Scheduler: clk,
		Rand:      rand.New(rand.NewSource(7)),
		Now:       func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m, clk
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	pgDown   = tea.KeyMsg{Type: tea.KeyPgDown}
)

// hiddenPair returns two face-down cards with the same icon.
func hiddenPair(t *testing.T, m *Model) (int, int) {
	t.Helper()
	seen := map[string]int{}
	for _, c := range m.session.Engine.Cards() {
		if c.State != state.Hidden {
			continue
		}
		if j, ok := seen[c.Icon]; ok {
			return j, c.Index
		}
		seen[c.Icon] = c.Index
	}
	t.Fatal("no hidden pair left")
	return -1, -1
}

func flip(m *Model, index int) {
	m.cursor = index
	press(m, enter)
}

func TestModel_FlipPairWithKeys(t *testing.T) {
	m, clk := newTestModel(t)

	press(m, tab)
	require.Equal(t, sectionGame, focusOrder[m.focus])

	a, b := hiddenPair(t, m)
	flip(m, a)
	card, _ := m.session.Engine.Card(a)
	assert.Equal(t, state.Revealed, card.State)

	flip(m, b)
	assert.True(t, m.session.Engine.Locked())
	assert.Equal(t, 1, m.board.moves)

	clk.Advance(500 * time.Millisecond)
	card, _ = m.session.Engine.Card(b)
	assert.Equal(t, state.Matched, card.State)
	assert.Equal(t, 1, m.board.pairs)
	assert.Contains(t, m.board.status, "match")
}

func TestModel_CursorStaysOnGrid(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tab)

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for range 5 {
		press(m, tea.KeyMsg{Type: tea.KeyRight})
		press(m, down)
	}
	assert.Equal(t, 15, m.cursor)
}

func TestModel_WinPromptAndReplay(t *testing.T) {
	m, clk := newTestModel(t)
	press(m, tab)

	for !m.session.IsFinished() {
		a, b := hiddenPair(t, m)
		flip(m, a)
		flip(m, b)
		clk.Advance(500 * time.Millisecond)
	}
	clk.Advance(500 * time.Millisecond)
	require.NotNil(t, m.session.Prompt)
	assert.Equal(t, 8, m.session.Prompt.Moves)
	assert.Contains(t, m.View(), "Would you like to play again?")

	// the grid ignores input while the prompt is up
	m.cursor = 0
	press(m, runes("r"))
	assert.Equal(t, 0, m.session.Restarts)

	press(m, runes("y"))
	assert.Nil(t, m.session.Prompt)
	assert.Equal(t, 1, m.session.Restarts)
	assert.False(t, m.session.IsFinished())
	assert.Equal(t, 0, m.board.moves)
	assert.Equal(t, 1, m.session.History.Attempts())
}

func TestModel_UpdateHealthData(t *testing.T) {
	m, clk := newTestModel(t)
	clk.Advance(3 * time.Second)

	press(m, runes("e"))
	require.NotNil(t, m.dash.Modal)
	assert.Equal(t, "75", m.inputs[0].Value())
	assert.Equal(t, "8542", m.inputs[1].Value())
	assert.Equal(t, "1850", m.inputs[2].Value())
	assert.Equal(t, "7.5", m.inputs[3].Value())

	press(m, tab)
	assert.Equal(t, 1, m.field)
	press(m, shiftTab)
	assert.Equal(t, 0, m.field)

	m.inputs[0].SetValue("90")
	m.inputs[1].SetValue("12000")
	press(m, enter)
	assert.Nil(t, m.dash.Modal)

	toasts := m.toasts.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.Success, toasts[0].Kind)
	assert.Equal(t, "Health data updated successfully!", toasts[0].Message)

	clk.Advance(1500 * time.Millisecond)
	assert.Equal(t, 90.0, m.dash.Value(dashboard.HeartRate))
	assert.Equal(t, 12000.0, m.dash.Value(dashboard.Steps))
	assert.Equal(t, 1.0, m.dash.Progress(dashboard.Steps))
}

func TestModel_InvalidHealthDataKeepsModal(t *testing.T) {
	m, clk := newTestModel(t)
	clk.Advance(3 * time.Second)

	press(m, runes("e"))
	m.inputs[0].SetValue("999")
	press(m, enter)

	require.NotNil(t, m.dash.Modal)
	toasts := m.toasts.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.Error, toasts[0].Kind)
	assert.Equal(t, 75.0, m.dash.Value(dashboard.HeartRate))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.dash.Modal)
}

func TestModel_CarouselPausesWhileFocused(t *testing.T) {
	m, clk := newTestModel(t)

	press(m, tab)
	press(m, tab)
	require.Equal(t, sectionTestimonials, focusOrder[m.focus])
	assert.True(t, m.carousel.Paused())

	clk.Advance(12 * time.Second)
	assert.Equal(t, 0, m.carousel.Current())

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.carousel.Current())
	press(m, runes("3"))
	assert.Equal(t, 2, m.carousel.Current())

	press(m, tab)
	assert.False(t, m.carousel.Paused())
	clk.Advance(5 * time.Second)
	assert.Equal(t, 0, m.carousel.Current())
}

func TestModel_FAQAccordion(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, shiftTab)
	require.Equal(t, sectionFAQ, focusOrder[m.focus])

	press(m, enter)
	assert.Equal(t, 0, m.faq.Open())

	press(m, down)
	press(m, enter)
	assert.Equal(t, 1, m.faq.Open())
	assert.False(t, m.faq.IsOpen(0))

	press(m, enter)
	assert.Equal(t, -1, m.faq.Open())
}

func TestModel_ScrollAffordances(t *testing.T) {
	m, _ := newTestModel(t)
	assert.False(t, m.page.TopButtonVisible())
	assert.False(t, m.page.Revealed(sectionFAQ))

	press(m, pgDown)
	press(m, pgDown)
	press(m, pgDown)
	assert.True(t, m.page.TopButtonVisible())
	assert.True(t, m.page.Revealed(sectionFAQ))
	assert.Contains(t, m.View(), "Back to top")

	press(m, runes("t"))
	assert.Equal(t, 0, m.vp.YOffset)
	assert.False(t, m.page.TopButtonVisible())
	assert.True(t, m.page.Revealed(sectionFAQ), "revealed sections stay revealed")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_TimersBecomeCommands(t *testing.T) {
	m := New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Rand: rand.New(rand.NewSource(1)),
	})
	require.NotNil(t, m.queue)
	assert.Positive(t, m.queue.Len(), "load animation and carousel are scheduled")

	assert.NotNil(t, m.Init())
	assert.Zero(t, m.queue.Len())

	// a delivered task runs inside Update
	ran := false
	m.Update(taskMsg{run: func() { ran = true }})
	assert.True(t, ran)
}

func TestModel_ZeroOptions(t *testing.T) {
	m := New(testConfig(), nil, Options{})
	require.NotNil(t, m.session)
	assert.Len(t, m.session.Engine.Cards(), 16)
	assert.NotNil(t, m.queue)
}

func TestModel_FocusJumpsToSectionAnchor(t *testing.T) {
	m, _ := newTestModel(t)
	rh := m.cfg.Scroll.RowHeight

	_, sections := m.renderPage()
	var gameTop int
	for _, s := range sections {
		if s.Name == sectionGame {
			gameTop = s.Top
		}
	}
	require.Positive(t, gameTop)

	press(m, tab)
	assert.Equal(t, gameTop, m.vp.YOffset)
	assert.Equal(t, gameTop*rh, m.page.Offset)

	press(m, runes("d"))
	require.Equal(t, sectionDashboard, focusOrder[m.focus])
	assert.Equal(t, m.page.Offset, m.vp.YOffset*rh)
	assert.Less(t, m.vp.YOffset, gameTop)
}

func TestModel_TopKeyOnlyWhenButtonShows(t *testing.T) {
	m, _ := newTestModel(t)

	m.vp.SetYOffset(1)
	press(m, runes("t"))
	assert.Equal(t, 1, m.vp.YOffset, "below the threshold the key does nothing")

	press(m, pgDown)
	press(m, pgDown)
	require.True(t, m.page.TopButtonVisible())
	press(m, runes("t"))
	assert.Zero(t, m.vp.YOffset)
	assert.Zero(t, m.page.Offset)
}

func TestModel_ResultsLine(t *testing.T) {
	m, clk := newTestModel(t)
	assert.Contains(t, m.renderResults(), "No games finished yet")

	press(m, tab)
	for !m.session.IsFinished() {
		a, b := hiddenPair(t, m)
		flip(m, a)
		flip(m, b)
		clk.Advance(500 * time.Millisecond)
	}
	clk.Advance(500 * time.Millisecond)
	press(m, runes("n"))
	require.Nil(t, m.session.Prompt)

	assert.Contains(t, m.renderResults(), "Last game: 8 moves")
	assert.Contains(t, m.renderResults(), "Best games: 8")
	assert.Contains(t, m.renderGame(), "[r] Play again")

	press(m, runes("r"))
	assert.Contains(t, m.renderResults(), "Resets: 1")
	assert.Contains(t, m.renderGame(), "[r] Reset game")
}
