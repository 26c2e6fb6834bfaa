package state

import (
	"context"

	"github.com/looplab/fsm"
)

// Stats are the per-game counters shown next to the board.
type Stats struct {
	Moves        int // completed two-card turns
	MatchedPairs int
}

// Outcome is what the last match check decided.
type Outcome int

const (
	NoOutcome Outcome = iota
	Match
	Mismatch
	Win
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Win:
		return "win"
	default:
		return "none"
	}
}

type State struct {
	Board     *Board
	Selection []int // indices revealed this turn, at most two
	Stats     Stats
	LastPair  [2]int // pair resolved by the last check
	Outcome   Outcome
	FSM       *fsm.FSM
}

// NewState wraps a dealt board. The machine starts in "start"; call Init.
func NewState(board *Board) *State {
	s := &State{
		Board:     board,
		Selection: make([]int, 0, 2),
		LastPair:  [2]int{-1, -1},
	}

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Init moves the machine to idle, ready for the first selection.
func (s *State) Init() error {
	return s.FSM.Event(context.Background(), "initGame")
}

// Reveal flips the card at index face up. It reports false, changing nothing,
// when the selection is not allowed.
func (s *State) Reveal(index int) bool {
	if !s.CanSelect(index) {
		return false
	}
	return s.FSM.Event(context.Background(), "reveal", index) == nil
}

// Check resolves the pending pair.
func (s *State) Check() error {
	return s.FSM.Event(context.Background(), "check")
}

// FlipBack hides a mismatched pair and unlocks input.
func (s *State) FlipBack() error {
	return s.FSM.Event(context.Background(), "flipBack")
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "idle"},

		// Selection
		{Name: "reveal", Src: []string{"idle"}, Dst: "oneRevealed"},
		{Name: "reveal", Src: []string{"oneRevealed"}, Dst: "pending"},

		// Match check
		{Name: "check", Src: []string{"pending"}, Dst: "checking"},
		{Name: "match", Src: []string{"checking"}, Dst: "idle"},
		{Name: "win", Src: []string{"checking"}, Dst: "complete"},
		{Name: "mismatch", Src: []string{"checking"}, Dst: "flippingBack"},
		{Name: "flipBack", Src: []string{"flippingBack"}, Dst: "idle"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_oneRevealed": func(ctx context.Context, e *fsm.Event) {
			s.revealFromArgs(e.Args)
		},
		"enter_pending": func(ctx context.Context, e *fsm.Event) {
			s.revealFromArgs(e.Args)
			s.Stats.Moves++
		},
		"enter_checking": func(ctx context.Context, e *fsm.Event) {
			first, second := s.Selection[0], s.Selection[1]
			s.LastPair = [2]int{first, second}

			if s.Board.Cards[first].Icon != s.Board.Cards[second].Icon {
				s.Outcome = Mismatch
				e.FSM.Event(ctx, "mismatch")
				return
			}

			s.Board.Cards[first].State = Matched
			s.Board.Cards[second].State = Matched
			s.Stats.MatchedPairs++
			s.Selection = s.Selection[:0]

			if s.Board.AllMatched() {
				s.Outcome = Win
				e.FSM.Event(ctx, "win")
				return
			}
			s.Outcome = Match
			e.FSM.Event(ctx, "match")
		},
		"flipBack": func(ctx context.Context, e *fsm.Event) {
			for _, idx := range s.Selection {
				s.Board.Cards[idx].State = Hidden
			}
			s.Selection = s.Selection[:0]
		},
	}
}

func (s *State) revealFromArgs(args []interface{}) {
	if len(args) == 0 {
		return
	}
	idx, ok := args[0].(int)
	if !ok {
		return
	}
	s.Board.Cards[idx].State = Revealed
	s.Selection = append(s.Selection, idx)
}
