package state

// Locked reports whether a pair is waiting to be resolved. Selections made
// while locked are dropped, not queued.
func (s *State) Locked() bool {
	switch s.FSM.Current() {
	case "pending", "checking", "flippingBack":
		return true
	}
	return false
}

func (s *State) IsComplete() bool {
	return s.FSM.Current() == "complete"
}

func (s *State) IsIdle() bool {
	return s.FSM.Current() == "idle"
}

func (s *State) InRange(index int) bool {
	return index >= 0 && index < len(s.Board.Cards)
}

// CanSelect reports whether selecting index would reveal a card.
func (s *State) CanSelect(index int) bool {
	if !s.InRange(index) || s.Locked() || s.IsComplete() {
		return false
	}
	if len(s.Selection) >= 2 {
		return false
	}
	if !s.IsIdle() && s.FSM.Current() != "oneRevealed" {
		return false
	}
	return s.Board.Cards[index].State == Hidden
}

// SelectionSnapshot returns a copy of the selection buffer.
func (s *State) SelectionSnapshot() []int {
	out := make([]int, len(s.Selection))
	copy(out, s.Selection)
	return out
}
