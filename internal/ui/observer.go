package ui

import (
	"fmt"

	"healthtrack/internal/game"
	"healthtrack/internal/state"
)

// boardView keeps the status text shown under the grid. Card faces are read
// straight from the engine on render.
type boardView struct {
	game.NopObserver

	moves  int
	pairs  int
	status string
}

func (b *boardView) BoardDealt([]state.Card) {
	b.status = "Find all the matching pairs!"
}

func (b *boardView) CardsMatched(a, _ state.Card) {
	b.status = fmt.Sprintf("It's a match: %s!", iconLabel(a.Icon))
}

func (b *boardView) CardsHidden(_, _ state.Card) {
	b.status = "Not a match. Try again!"
}

func (b *boardView) MovesChanged(moves int) { b.moves = moves }
func (b *boardView) PairsChanged(pairs int) { b.pairs = pairs }

func (b *boardView) GameComplete(moves int) {
	b.status = fmt.Sprintf("All pairs found in %d moves.", moves)
}
