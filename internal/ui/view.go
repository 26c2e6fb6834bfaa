package ui

import (
	"fmt"
	"strconv"
	"strings"

	"healthtrack/internal/dashboard"
	"healthtrack/internal/notify"
	"healthtrack/internal/scoring"
	"healthtrack/internal/scroll"
	"healthtrack/internal/state"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	accent = lipgloss.Color("#10b981")
	muted  = lipgloss.Color("241")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(muted)
	fadedStyle   = lipgloss.NewStyle().Faint(true)
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)

	metricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Width(5).
			Align(lipgloss.Center)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	successToast = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	errorToast   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Padding(0, 1)
)

func (m *Model) View() string {
	if !m.ready {
		return "Loading HealthTrack Pro..."
	}

	header := titleStyle.Render("HealthTrack Pro") + subtleStyle.Render("  your daily health companion")

	var body string
	switch {
	case m.session.Prompt != nil:
		body = m.renderPrompt()
	case m.dash.Modal != nil:
		body = m.renderModal()
	default:
		body = m.vp.View()
	}

	var footer []string
	if m.page.TopButtonVisible() {
		footer = append(footer, yellowStyle.Render("[t] ↑ Back to top"))
	}
	if m.dash.Modal != nil {
		footer = append(footer, m.help.View(modalKeys{
			next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
			submit: m.keys.Submit,
			cancel: m.keys.Cancel,
		}))
	} else {
		footer = append(footer, m.help.View(m.keys))
	}

	parts := []string{header}
	if t := m.renderToasts(); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, body)
	parts = append(parts, footer...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderToasts() string {
	lines := lo.Map(m.toasts.Toasts(), func(t notify.Toast, _ int) string {
		style := successToast
		if t.Kind == notify.Error {
			style = errorToast
		}
		if t.Phase == notify.Leaving {
			style = style.Faint(true)
		}
		return style.Render(t.Message)
	})
	return strings.Join(lines, "\n")
}

// renderPage lays the sections out top to bottom and returns their row
// geometry.
func (m *Model) renderPage() (string, []scroll.Section) {
	blocks := []struct {
		name string
		body string
	}{
		{sectionHero, m.renderHero()},
		{sectionDashboard, m.renderDashboard()},
		{sectionGame, m.renderGame()},
		{sectionTestimonials, m.renderTestimonials()},
		{sectionFAQ, m.renderFAQ()},
	}

	var (
		out      []string
		sections []scroll.Section
		row      int
	)
	for _, b := range blocks {
		body := b.body
		if !m.page.Revealed(b.name) {
			body = fadedStyle.Render(body)
		}
		h := lipgloss.Height(body)
		sections = append(sections, scroll.Section{Name: b.name, Top: row, Height: h})
		out = append(out, body)
		row += h + 1
	}
	return strings.Join(out, "\n\n"), sections
}

func (m *Model) heading(name, title string) string {
	if focusOrder[m.focus] == name {
		return focusStyle.Render(title)
	}
	return headingStyle.Render(title)
}

func (m *Model) renderHero() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Track your health. Live better."),
		"Heart rate, steps, calories and sleep in one place.",
		subtleStyle.Render("[d] View dashboard"),
	)
}

func (m *Model) renderDashboard() string {
	cards := lo.Map(dashboard.All, func(id dashboard.MetricID, _ int) string {
		value := valueStyle.Render(m.dash.Display(id))
		if u := id.Unit(); u != "" {
			value += " " + u
		}
		return metricStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			headingStyle.Render(id.Label()),
			value,
			m.bar.ViewAs(m.dash.Progress(id)),
			subtleStyle.Render("Goal: "+dashboard.Format(id, id.Goal())),
		))
	})

	perRow := len(cards)
	if m.width > 0 {
		cardWidth := lipgloss.Width(cards[0]) + 1
		perRow = max(m.width/cardWidth, 1)
	}
	rows := lo.Map(lo.Chunk(cards, perRow), func(row []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, lo.Map(row, func(c string, _ int) string { return c + " " })...)
	})

	title := m.heading(sectionDashboard, "Your Dashboard")
	if m.dash.Animating() {
		title += subtleStyle.Render("  updating...")
	}
	lines := []string{title}
	lines = append(lines, rows...)
	lines = append(lines, subtleStyle.Render("[e] Update health data"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderGame() string {
	e := m.session.Engine
	focused := focusOrder[m.focus] == sectionGame

	cells := lo.Map(e.Cards(), func(c state.Card, i int) string {
		face := "?"
		style := cellStyle
		switch c.State {
		case state.Revealed:
			face = yellowStyle.Render(iconLabel(c.Icon))
		case state.Matched:
			face = greenStyle.Render(iconLabel(c.Icon))
			style = style.BorderForeground(lipgloss.Color("10"))
		}
		if focused && i == m.cursor {
			face = cursorStyle.Render(face)
			style = style.BorderForeground(accent)
		}
		return style.Render(face)
	})
	grid := lo.Map(lo.Chunk(cells, gridColumns), func(row []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, row...)
	})

	stats := fmt.Sprintf("Moves: %d   Matches: %d/%d", m.board.moves, m.board.pairs, e.Pairs())
	lines := []string{
		m.heading(sectionGame, "Health Memory Game"),
		stats,
	}
	lines = append(lines, grid...)
	lines = append(lines, m.board.status)
	lines = append(lines, m.renderResults())
	if m.session.IsFinished() {
		lines = append(lines, subtleStyle.Render("[r] Play again"))
	} else {
		lines = append(lines, subtleStyle.Render("[r] Reset game"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderResults summarizes the games finished this run on one line.
func (m *Model) renderResults() string {
	h := m.session.History
	last := h.Last()
	if last == nil {
		return subtleStyle.Render(fmt.Sprintf("No games finished yet. Resets: %d", m.session.Restarts))
	}
	top := lo.Map(h.Top(3), func(r scoring.Result, _ int) string { return strconv.Itoa(r.Moves) })
	return subtleStyle.Render(fmt.Sprintf("Last game: %d moves   Best games: %s   Played: %d   Resets: %d",
		last.Moves, strings.Join(top, ", "), h.Attempts(), m.session.Restarts))
}

func (m *Model) renderTestimonials() string {
	t := testimonials[m.carousel.Current()]
	dots := make([]string, m.carousel.Total())
	for i := range dots {
		dots[i] = "○"
		if i == m.carousel.Current() {
			dots[i] = "●"
		}
	}
	nav := strings.Join(dots, " ")
	if m.carousel.Paused() {
		nav += subtleStyle.Render("  paused")
	}

	width := 60
	if m.width > 0 {
		width = min(m.width-6, 80)
	}
	quote := lipgloss.NewStyle().Italic(true).Width(width).Render(fmt.Sprintf("%q", t.Quote))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.heading(sectionTestimonials, "What Our Users Say"),
		quote,
		subtleStyle.Render("- "+t.Author),
		nav,
	)
}

func (m *Model) renderFAQ() string {
	focused := focusOrder[m.focus] == sectionFAQ
	lines := []string{m.heading(sectionFAQ, "Frequently Asked Questions")}
	for i, item := range m.faq.Items {
		marker := "▸ "
		if m.faq.IsOpen(i) {
			marker = "▾ "
		}
		q := marker + item.Question
		if focused && i == m.faqCursor {
			q = cursorStyle.Render(q)
		}
		lines = append(lines, q)
		if m.faq.IsOpen(i) {
			lines = append(lines, subtleStyle.PaddingLeft(2).Render(item.Answer))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderPrompt() string {
	p := m.session.Prompt
	lines := []string{titleStyle.Render("Game complete"), p.Message}
	if p.Best {
		lines = append(lines, greenStyle.Render("That's a new best!"))
	}
	lines = append(lines, "", subtleStyle.Render("[y] Play again   [n] Not now"))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderModal() string {
	lines := []string{titleStyle.Render("Update Health Data"), ""}
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
