// Package scroll tracks the page offset: the scroll-to-top button, anchor
// jumps and the one-time fade-in of sections entering the viewport.
package scroll

import (
	"github.com/samber/lo"
)

// Section is a named block of the page, in page units.
type Section struct {
	Name   string
	Top    int
	Height int
}

type Page struct {
	Offset    int
	Viewport  int
	Threshold int     // offset past which the top button shows
	Ratio     float64 // visible fraction that reveals a section

	sections []Section
	revealed map[string]bool
}

func NewPage(threshold int, ratio float64) *Page {
	return &Page{
		Threshold: threshold,
		Ratio:     ratio,
		revealed:  map[string]bool{},
	}
}

// Layout replaces the section geometry, keeping what was already revealed.
func (p *Page) Layout(sections []Section, viewport int) []string {
	p.sections = sections
	p.Viewport = viewport
	return p.observe()
}

// ScrollTo moves to offset and returns the sections revealed by the move.
func (p *Page) ScrollTo(offset int) []string {
	if offset < 0 {
		offset = 0
	}
	p.Offset = offset
	return p.observe()
}

func (p *Page) ScrollToTop() []string {
	return p.ScrollTo(0)
}

// ScrollToSection jumps to the start of the named section.
func (p *Page) ScrollToSection(name string) ([]string, bool) {
	s, ok := lo.Find(p.sections, func(s Section) bool { return s.Name == name })
	if !ok {
		return nil, false
	}
	return p.ScrollTo(s.Top), true
}

// TopButtonVisible reports whether the scroll-to-top affordance shows.
func (p *Page) TopButtonVisible() bool {
	return p.Offset > p.Threshold
}

func (p *Page) Revealed(name string) bool {
	return p.revealed[name]
}

// observe reveals every unrevealed section whose visible share reaches Ratio.
// Revealed sections are never observed again.
func (p *Page) observe() []string {
	var fresh []string
	for _, s := range p.sections {
		if p.revealed[s.Name] || s.Height <= 0 {
			continue
		}
		if visibleRatio(s, p.Offset, p.Viewport) >= p.Ratio {
			p.revealed[s.Name] = true
			fresh = append(fresh, s.Name)
		}
	}
	return fresh
}

func visibleRatio(s Section, offset, viewport int) float64 {
	top := max(s.Top, offset)
	bottom := min(s.Top+s.Height, offset+viewport)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(s.Height)
}
