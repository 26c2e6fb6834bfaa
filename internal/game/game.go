package game

import (
	"log/slog"
	"math/rand"
	"time"

	"healthtrack/internal/clock"
	"healthtrack/internal/state"

	"github.com/google/uuid"
)

// Timing holds the delays of a turn.
type Timing struct {
	MatchDelay    time.Duration // second reveal -> match check
	MismatchDelay time.Duration // mismatch -> cards hidden again
	CompleteDelay time.Duration // last match -> completion signal
}

func DefaultTiming() Timing {
	return Timing{
		MatchDelay:    500 * time.Millisecond,
		MismatchDelay: 1000 * time.Millisecond,
		CompleteDelay: 500 * time.Millisecond,
	}
}

// Observer receives state changes for display. Callbacks run on the same
// goroutine that calls the engine.
type Observer interface {
	BoardDealt(cards []state.Card)
	CardRevealed(card state.Card)
	CardsMatched(a, b state.Card)
	CardsHidden(a, b state.Card)
	MovesChanged(moves int)
	PairsChanged(pairs int)
	GameComplete(moves int)
}

// NopObserver ignores every notification. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) BoardDealt([]state.Card)      {}
func (NopObserver) CardRevealed(state.Card)      {}
func (NopObserver) CardsMatched(_, _ state.Card) {}
func (NopObserver) CardsHidden(_, _ state.Card)  {}
func (NopObserver) MovesChanged(int)             {}
func (NopObserver) PairsChanged(int)             {}
func (NopObserver) GameComplete(int)             {}

// Engine is the memory game. One engine lives for the whole session and
// InitGame replaces the game it plays.
type Engine struct {
	icons     []string
	rng       state.Source
	scheduler clock.Scheduler
	timing    Timing
	observer  Observer
	logger    *slog.Logger

	state      *state.State
	gameID     string
	generation uint64
}

type Option func(*Engine)

func WithTiming(t Timing) Option {
	return func(e *Engine) { e.timing = t }
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithIcons(icons []string) Option {
	return func(e *Engine) { e.icons = icons }
}

// NewEngine creates an engine and deals its first game. A nil rng is replaced
// by a time-seeded one.
func NewEngine(scheduler clock.Scheduler, rng state.Source, opts ...Option) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		icons:     state.DefaultIcons,
		rng:       rng,
		scheduler: scheduler,
		timing:    DefaultTiming(),
		observer:  NopObserver{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.InitGame()
	return e
}

// InitGame deals a new board and zeroes the stats. Callbacks scheduled for the
// previous board are invalidated.
func (e *Engine) InitGame() {
	s := state.NewState(state.NewBoard(e.icons, e.rng))
	_ = s.Init()

	// Swap everything in one step; no observer sees a half-reset game.
	e.generation++
	e.state = s
	e.gameID = uuid.NewString()

	e.logger.Debug("memory game dealt", "game_id", e.gameID, "generation", e.generation)

	e.observer.BoardDealt(s.Board.Snapshot())
	e.observer.MovesChanged(0)
	e.observer.PairsChanged(0)
}

// SelectCard is the input entry point. Selections that are not allowed
// (locked, already face up, matched, out of range) are ignored.
func (e *Engine) SelectCard(index int) {
	s := e.state
	if !s.Reveal(index) {
		return
	}
	e.observer.CardRevealed(s.Board.Cards[index])

	if !s.Locked() {
		return
	}
	e.observer.MovesChanged(s.Stats.Moves)
	e.after(e.timing.MatchDelay, e.checkMatch)
}

// FlipCard is an alias of SelectCard.
func (e *Engine) FlipCard(index int) {
	e.SelectCard(index)
}

func (e *Engine) checkMatch() {
	s := e.state
	if err := s.Check(); err != nil {
		e.logger.Warn("match check rejected", "game_id", e.gameID, "state", s.FSM.Current(), "error", err)
		return
	}

	a, b := s.Board.Cards[s.LastPair[0]], s.Board.Cards[s.LastPair[1]]
	switch s.Outcome {
	case state.Match, state.Win:
		e.observer.CardsMatched(a, b)
		e.observer.PairsChanged(s.Stats.MatchedPairs)
		if s.Outcome == state.Win {
			e.logger.Info("memory game complete", "game_id", e.gameID, "moves", s.Stats.Moves)
			e.after(e.timing.CompleteDelay, e.announceComplete)
		}
	case state.Mismatch:
		e.after(e.timing.MismatchDelay, e.flipBack)
	}
}

func (e *Engine) flipBack() {
	s := e.state
	pair := s.SelectionSnapshot()
	if err := s.FlipBack(); err != nil {
		e.logger.Warn("flip back rejected", "game_id", e.gameID, "state", s.FSM.Current(), "error", err)
		return
	}
	if len(pair) == 2 {
		e.observer.CardsHidden(s.Board.Cards[pair[0]], s.Board.Cards[pair[1]])
	}
}

func (e *Engine) announceComplete() {
	e.observer.GameComplete(e.state.Stats.Moves)
}

// after schedules fn against the current game only.
func (e *Engine) after(d time.Duration, fn func()) {
	gen := e.generation
	e.scheduler.AfterFunc(d, func() {
		if gen != e.generation {
			e.logger.Debug("dropped stale callback", "scheduled_generation", gen, "generation", e.generation)
			return
		}
		fn()
	})
}

func (e *Engine) Cards() []state.Card {
	return e.state.Board.Snapshot()
}

func (e *Engine) Card(index int) (state.Card, bool) {
	if !e.state.InRange(index) {
		return state.Card{}, false
	}
	return e.state.Board.Cards[index], true
}

func (e *Engine) Stats() state.Stats {
	return e.state.Stats
}

// Locked reports whether input is being ignored while a pair resolves.
func (e *Engine) Locked() bool {
	return e.state.Locked()
}

func (e *Engine) Selection() []int {
	return e.state.SelectionSnapshot()
}

func (e *Engine) Complete() bool {
	return e.state.IsComplete()
}

func (e *Engine) GameID() string {
	return e.gameID
}

func (e *Engine) Generation() uint64 {
	return e.generation
}

func (e *Engine) Pairs() int {
	return e.state.Board.Pairs()
}

// SetObserver replaces the observer. Used by Session to chain its own.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	e.observer = o
}
