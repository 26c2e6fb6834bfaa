package game

import (
	"fmt"
	"time"

	"healthtrack/internal/clock"
	"healthtrack/internal/scoring"
	"healthtrack/internal/state"
)

// Toaster shows a transient success message.
type Toaster interface {
	Success(message string)
}

// Prompt is the play-again question shown after a win.
type Prompt struct {
	Moves   int
	Best    bool
	Message string
}

// Session owns the single live engine for a run of the app and remembers the
// games finished so far.
type Session struct {
	Engine  *Engine
	History *scoring.History

	// Aggregate State
	Prompt   *Prompt
	Restarts int

	downstream Observer
	toaster    Toaster
	now        func() time.Time
}

// NewSession deals the first game. Notifications are forwarded to downstream
// after the session has handled them.
func NewSession(scheduler clock.Scheduler, rng state.Source, downstream Observer, toaster Toaster, opts ...Option) *Session {
	if downstream == nil {
		downstream = NopObserver{}
	}
	s := &Session{
		History:    scoring.NewHistory(),
		downstream: downstream,
		toaster:    toaster,
		now:        time.Now,
	}
	opts = append(opts, WithObserver(s))
	s.Engine = NewEngine(scheduler, rng, opts...)
	return s
}

// SetClock replaces the wall clock used to stamp results.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Select forwards a card selection unless the play-again prompt is open.
func (s *Session) Select(index int) {
	if s.Prompt != nil {
		return
	}
	s.Engine.SelectCard(index)
}

// Accept answers yes to the play-again prompt.
func (s *Session) Accept() {
	if s.Prompt == nil {
		return
	}
	s.Reset()
}

// Decline closes the prompt and leaves the finished board on screen.
func (s *Session) Decline() {
	s.Prompt = nil
}

// Reset deals a fresh game at any time.
func (s *Session) Reset() {
	s.Prompt = nil
	s.Restarts++
	s.Engine.InitGame()
	if s.toaster != nil {
		s.toaster.Success("Game reset! Good luck!")
	}
}

func (s *Session) IsFinished() bool {
	return s.Engine.Complete()
}

func (s *Session) BoardDealt(cards []state.Card) { s.downstream.BoardDealt(cards) }
func (s *Session) CardRevealed(card state.Card)  { s.downstream.CardRevealed(card) }
func (s *Session) CardsMatched(a, b state.Card)  { s.downstream.CardsMatched(a, b) }
func (s *Session) CardsHidden(a, b state.Card)   { s.downstream.CardsHidden(a, b) }
func (s *Session) MovesChanged(moves int)        { s.downstream.MovesChanged(moves) }
func (s *Session) PairsChanged(pairs int)        { s.downstream.PairsChanged(pairs) }

func (s *Session) GameComplete(moves int) {
	best := s.History.GotBest(moves)
	s.History.Record(scoring.Result{
		GameID:     s.Engine.GameID(),
		Moves:      moves,
		FinishedAt: s.now(),
	})
	s.Prompt = &Prompt{
		Moves:   moves,
		Best:    best,
		Message: fmt.Sprintf("Congratulations! You completed the game in %d moves! Would you like to play again?", moves),
	}
	s.downstream.GameComplete(moves)
}
