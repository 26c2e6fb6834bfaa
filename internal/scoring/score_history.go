package scoring

import (
	"sort"
	"time"
)

// Result is one completed memory game.
type Result struct {
	GameID     string
	Moves      int
	FinishedAt time.Time
}

// sortByMoves orders results fewest moves first, earlier finishes winning ties.
func sortByMoves(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Moves == results[j].Moves {
			return results[i].FinishedAt.Before(results[j].FinishedAt)
		}
		return results[i].Moves < results[j].Moves
	})
}
