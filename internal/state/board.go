package state

import (
	"github.com/samber/lo"
)

// CardState is the per-card lifecycle: Hidden -> Revealed -> Matched | Hidden.
type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

func (cs CardState) String() string {
	switch cs {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// DefaultIcons are the eight face values dealt twice each.
var DefaultIcons = []string{
	"heartbeat", "running", "fire", "bed",
	"apple", "dumbbell", "water", "medkit",
}

// Card is one slot on the board. Its identity is its Index.
type Card struct {
	Index int
	Icon  string
	State CardState
}

// Board is the dealt sequence. The icon multiset is fixed at deal time.
type Board struct {
	Cards []Card
}

// Source is the random number source used for dealing.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Shuffle returns a uniformly permuted copy of values (Fisher-Yates).
func Shuffle(values []string, rng Source) []string {
	out := make([]string, len(values))
	copy(out, values)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deck duplicates every icon, producing the unshuffled deck.
func Deck(icons []string) []string {
	deck := make([]string, 0, len(icons)*2)
	deck = append(deck, icons...)
	return append(deck, icons...)
}

// NewBoard deals a freshly shuffled board with every card hidden.
func NewBoard(icons []string, rng Source) *Board {
	faces := Shuffle(Deck(icons), rng)
	cards := make([]Card, len(faces))
	for i, icon := range faces {
		cards[i] = Card{Index: i, Icon: icon, State: Hidden}
	}
	return &Board{Cards: cards}
}

// Pairs is the number of pairs on the board.
func (b *Board) Pairs() int {
	return len(b.Cards) / 2
}

func (b *Board) CountState(cs CardState) int {
	return lo.CountBy(b.Cards, func(c Card) bool { return c.State == cs })
}

// AllMatched reports whether every card has been matched.
func (b *Board) AllMatched() bool {
	return len(b.Cards) > 0 && b.CountState(Matched) == len(b.Cards)
}

// Snapshot returns a copy of the cards safe to hand to renderers.
func (b *Board) Snapshot() []Card {
	out := make([]Card, len(b.Cards))
	copy(out, b.Cards)
	return out
}
