// Package accordion keeps at most one FAQ item open.
package accordion

type Item struct {
	Question string
	Answer   string
}

type Accordion struct {
	Items []Item
	open  int // -1 when every item is closed
}

func New(items []Item) *Accordion {
	return &Accordion{Items: items, open: -1}
}

// Toggle closes every item, then opens i unless it was the open one.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.Items) {
		return
	}
	wasOpen := a.open == i
	a.open = -1
	if !wasOpen {
		a.open = i
	}
}

func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// Open returns the open item index, or -1.
func (a *Accordion) Open() int {
	return a.open
}

func (a *Accordion) Len() int {
	return len(a.Items)
}
