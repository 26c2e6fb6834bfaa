// Package scoring keeps the results of memory games finished during this run.
// Nothing is written to disk.
package scoring

import (
	"github.com/samber/lo"
)

// History holds completed games in the order they finished.
type History struct {
	results []Result
}

func NewHistory() *History {
	return &History{}
}

// Record appends a finished game.
func (h *History) Record(r Result) {
	h.results = append(h.results, r)
}

// Attempts is the number of finished games.
func (h *History) Attempts() int {
	return len(h.results)
}

// Best returns the result with the fewest moves, or nil before any game finished.
func (h *History) Best() *Result {
	if len(h.results) == 0 {
		return nil
	}
	best := lo.MinBy(h.results, func(a, b Result) bool {
		if a.Moves == b.Moves {
			return a.FinishedAt.Before(b.FinishedAt)
		}
		return a.Moves < b.Moves
	})
	return &best
}

// Top returns up to n results sorted by moves.
func (h *History) Top(n int) []Result {
	sorted := make([]Result, len(h.results))
	copy(sorted, h.results)
	sortByMoves(sorted)

	if n < 0 || len(sorted) < n {
		return sorted
	}
	return sorted[:n]
}

// GotBest reports whether moves ties or beats every recorded result.
func (h *History) GotBest(moves int) bool {
	best := h.Best()
	if best == nil {
		return true
	}
	return moves <= best.Moves
}

// Last returns the most recently finished game.
func (h *History) Last() *Result {
	if len(h.results) == 0 {
		return nil
	}
	last := h.results[len(h.results)-1]
	return &last
}
