package dashboard

import (
	"time"
)

// Tween steps a counter from Start to End in fixed frames.
type Tween struct {
	Start     float64
	End       float64
	Increment float64
	Current   float64
	done      bool
}

// NewTween spreads the range over duration/frame frames.
func NewTween(start, end float64, duration, frame time.Duration) *Tween {
	t := &Tween{Start: start, End: end, Current: start}
	frames := float64(duration) / float64(frame)
	if frames <= 0 || start == end {
		t.Current = end
		t.done = true
		return t
	}
	t.Increment = (end - start) / frames
	return t
}

// Step advances one frame. It reports true once End is reached.
func (t *Tween) Step() bool {
	if t.done {
		return true
	}
	t.Current += t.Increment
	if (t.Increment > 0 && t.Current >= t.End) || (t.Increment < 0 && t.Current <= t.End) {
		t.Current = t.End
		t.done = true
	}
	return t.done
}

func (t *Tween) Done() bool {
	return t.done
}
