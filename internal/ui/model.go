// Package ui is the bubbletea front end: one scrolling page holding the
// dashboard, the memory game, testimonials and the FAQ.
package ui

import (
	"log/slog"
	"time"

	"healthtrack/internal/accordion"
	"healthtrack/internal/carousel"
	"healthtrack/internal/clock"
	"healthtrack/internal/config"
	"healthtrack/internal/dashboard"
	"healthtrack/internal/game"
	"healthtrack/internal/notify"
	"healthtrack/internal/scroll"
	"healthtrack/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// section names double as scroll anchors.
const (
	sectionHero         = "hero"
	sectionDashboard    = "dashboard"
	sectionGame         = "game"
	sectionTestimonials = "testimonials"
	sectionFAQ          = "faq"
)

// focusOrder is the tab order; the hero has nothing to focus.
var focusOrder = []string{sectionDashboard, sectionGame, sectionTestimonials, sectionFAQ}

const gridColumns = 4

// taskMsg runs a timer callback on the update goroutine.
type taskMsg struct {
	run func()
}

type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	scheduler clock.Scheduler
	queue     *clock.Queue // nil when the scheduler is driven elsewhere

	session  *game.Session
	board    *boardView
	dash     *dashboard.Dashboard
	toasts   *notify.Center
	carousel *carousel.Carousel
	faq      *accordion.Accordion
	page     *scroll.Page

	vp     viewport.Model
	bar    progress.Model
	inputs []textinput.Model
	field  int
	help   help.Model
	keys   keyMap

	focus     int
	cursor    int
	faqCursor int
	width     int
	height    int
	ready     bool
}

// Options are the seams tests use to drive the model without a terminal.
type Options struct {
	// Scheduler defaults to a clock.Queue drained into tea.Tick commands.
	Scheduler clock.Scheduler
	Rand      state.Source
	Now       func() time.Time
}

func New(cfg *config.Config, logger *slog.Logger, opts Options) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		cfg:    cfg,
		logger: logger,
		keys:   newKeyMap(),
		help:   help.New(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage()),
		page:   scroll.NewPage(cfg.Scroll.TopThreshold, cfg.Scroll.RevealRatio),
		faq:    accordion.New(faqItems),
		vp:     viewport.New(80, 20),
		board:  &boardView{},
	}

	m.scheduler = opts.Scheduler
	if m.scheduler == nil {
		m.queue = clock.NewQueue()
		m.scheduler = m.queue
	}

	m.toasts = notify.NewCenter(m.scheduler, cfg.Notify.Visible, cfg.Notify.Exit)
	m.dash = dashboard.New(m.scheduler, dashboard.Timing{
		Frame:          cfg.Dashboard.Frame,
		LoadDuration:   cfg.Dashboard.LoadDuration,
		UpdateDuration: cfg.Dashboard.UpdateDuration,
		ProgressDelay:  cfg.Dashboard.ProgressDelay,
	}, m.toasts, logger)
	m.carousel = carousel.New(m.scheduler, len(testimonials), cfg.Carousel.Interval)

	m.session = game.NewSession(m.scheduler, opts.Rand, m.board, m.toasts,
		game.WithIcons(cfg.Game.Icons),
		game.WithLogger(logger),
		game.WithTiming(game.Timing{
			MatchDelay:    cfg.Game.MatchDelay,
			MismatchDelay: cfg.Game.MismatchDelay,
			CompleteDelay: cfg.Game.CompleteDelay,
		}))
	if opts.Now != nil {
		m.session.SetClock(opts.Now)
	}

	m.inputs = make([]textinput.Model, len(dashboard.All))
	for i, id := range dashboard.All {
		ti := textinput.New()
		ti.Prompt = id.Label() + ": "
		ti.CharLimit = 8
		ti.Width = 10
		m.inputs[i] = ti
	}

	m.dash.Load(dashboard.DefaultTargets)
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.drainTimers()...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case taskMsg:
		msg.run()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	}

	m.refresh()
	cmds = append(cmds, m.drainTimers()...)
	return m, tea.Batch(cmds...)
}

// drainTimers turns every scheduled callback into a tick command so callbacks
// run inside Update.
func (m *Model) drainTimers() []tea.Cmd {
	if m.queue == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, task := range m.queue.Drain() {
		run := task.Run
		cmds = append(cmds, tea.Tick(task.Delay, func(time.Time) tea.Msg {
			return taskMsg{run: run}
		}))
	}
	return cmds
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.vp.Width = width
	// header, toasts and help live outside the viewport
	m.vp.Height = max(height-6, 5)
	m.bar.Width = min(max(width/4-6, 10), 30)
	m.ready = true
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}

	if m.session.Prompt != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.session.Accept()
		case key.Matches(msg, m.keys.Decline):
			m.session.Decline()
		}
		return nil, false
	}

	if m.dash.Modal != nil {
		return m.handleModalKey(msg), false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Edit):
		return m.openModal(), false
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		if m.page.TopButtonVisible() {
			m.page.ScrollToTop()
			m.syncViewport()
		}
	case key.Matches(msg, m.keys.Dashboard):
		m.setFocus(0)
	default:
		m.handleSectionKey(msg)
	}
	return nil, false
}

func (m *Model) handleSectionKey(msg tea.KeyMsg) {
	switch focusOrder[m.focus] {
	case sectionGame:
		cards := len(m.session.Engine.Cards())
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor%gridColumns > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < cards {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor-gridColumns >= 0 {
				m.cursor -= gridColumns
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor+gridColumns < cards {
				m.cursor += gridColumns
			}
		case key.Matches(msg, m.keys.Select):
			m.session.Select(m.cursor)
		}
	case sectionTestimonials:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.carousel.Prev()
		case key.Matches(msg, m.keys.Right):
			m.carousel.Next()
		default:
			if r := msg.Runes; len(r) == 1 && r[0] >= '1' && int(r[0]-'1') < m.carousel.Total() {
				m.carousel.GoTo(int(r[0] - '1'))
			}
		}
	case sectionFAQ:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.faqCursor = max(m.faqCursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.faqCursor = min(m.faqCursor+1, m.faq.Len()-1)
		case key.Matches(msg, m.keys.Select):
			m.faq.Toggle(m.faqCursor)
		}
	}
}

// setFocus moves focus and jumps the page to the focused section. Focusing
// the testimonials counts as hovering the carousel.
func (m *Model) setFocus(i int) {
	n := len(focusOrder)
	m.focus = ((i % n) + n) % n
	name := focusOrder[m.focus]
	m.carousel.Hover(name == sectionTestimonials)
	m.scrollToSection(name)
}

func (m *Model) scrollToSection(name string) {
	if _, ok := m.page.ScrollToSection(name); ok {
		m.syncViewport()
	}
}

// syncViewport moves the viewport to the page offset, converted to rows.
func (m *Model) syncViewport() {
	m.vp.SetYOffset(m.page.Offset / m.cfg.Scroll.RowHeight)
}

func (m *Model) scrollBy(rows int) {
	m.vp.SetYOffset(m.vp.YOffset + rows)
}

func (m *Model) openModal() tea.Cmd {
	m.dash.OpenModal()
	for i := range m.inputs {
		m.inputs[i].SetValue(m.dash.Modal.Fields[i])
		m.inputs[i].Blur()
	}
	m.field = 0
	return m.inputs[0].Focus()
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.dash.CloseModal()
		return nil
	case "tab", "down":
		return m.focusField(m.field + 1)
	case "shift+tab", "up":
		return m.focusField(m.field - 1)
	case "enter":
		var fields [4]string
		for i := range fields {
			fields[i] = m.inputs[i].Value()
		}
		// a rejected form stays open with the error toasted
		_ = m.dash.Submit(fields)
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	n := len(m.inputs)
	m.inputs[m.field].Blur()
	m.field = ((i % n) + n) % n
	return m.inputs[m.field].Focus()
}

// refresh renders the page into the viewport and feeds the new geometry and
// offset to the scroll tracker.
func (m *Model) refresh() {
	content, sections := m.renderPage()
	m.vp.SetContent(content)

	rh := m.cfg.Scroll.RowHeight
	geometry := make([]scroll.Section, len(sections))
	for i, s := range sections {
		geometry[i] = scroll.Section{Name: s.Name, Top: s.Top * rh, Height: s.Height * rh}
	}
	fresh := m.page.Layout(geometry, m.vp.Height*rh)
	fresh = append(fresh, m.page.ScrollTo(m.vp.YOffset*rh)...)
	if len(fresh) > 0 {
		m.logger.Debug("sections revealed", "sections", fresh)
		content, _ = m.renderPage()
		m.vp.SetContent(content)
	}
}
