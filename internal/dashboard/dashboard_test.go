package dashboard

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"healthtrack/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notes struct {
	ok   []string
	errs []string
}

func (n *notes) Success(m string) { n.ok = append(n.ok, m) }
func (n *notes) Error(m string)   { n.errs = append(n.errs, m) }

func newDashboard() (*Dashboard, *clock.Manual, *notes) {
	clk := clock.NewManual()
	n := &notes{}
	d := New(clk, DefaultTiming(), n, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return d, clk, n
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "8,542", Format(Steps, 8542))
	assert.Equal(t, "1,850", Format(Calories, 1850.9))
	assert.Equal(t, "75", Format(HeartRate, 75.99))
	assert.Equal(t, "7.5", Format(Sleep, 7.5))
	assert.Equal(t, "0.0", Format(Sleep, 0))
	assert.Equal(t, "12,345,678", Format(Steps, 12345678))
}

func TestParseDisplayed(t *testing.T) {
	v, err := ParseDisplayed(Steps, "12,345,678")
	require.NoError(t, err)
	assert.Equal(t, 12345678.0, v)

	v, err = ParseDisplayed(Sleep, "7.5")
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = ParseDisplayed(HeartRate, "fast")
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 0.375, Progress(HeartRate, 75), 1e-9)
	assert.InDelta(t, 0.8542, Progress(Steps, 8542), 1e-9)
	assert.Equal(t, 1.0, Progress(Calories, 5000), "capped at full")
	assert.Equal(t, 1.0, Progress(Sleep, 8))
	assert.Equal(t, 0.0, Progress(Steps, -4))
}

func TestTween(t *testing.T) {
	tw := NewTween(0, 75, 2000*time.Millisecond, 16*time.Millisecond)
	assert.InDelta(t, 0.6, tw.Increment, 1e-9)

	frames := 0
	for !tw.Step() {
		frames++
		require.Less(t, frames, 1000)
	}
	assert.Equal(t, 75.0, tw.Current)
	assert.InDelta(t, 124, frames, 1, "about 125 frames of 16ms in 2s")

	down := NewTween(10, 2, 160*time.Millisecond, 16*time.Millisecond)
	for !down.Step() {
	}
	assert.Equal(t, 2.0, down.Current)

	same := NewTween(5, 5, time.Second, 16*time.Millisecond)
	assert.True(t, same.Done())
	assert.Equal(t, 5.0, same.Current)
}

func TestDashboard_LoadCountsUp(t *testing.T) {
	d, clk, _ := newDashboard()
	d.Load(DefaultTargets)

	assert.Equal(t, "0", d.Display(Steps))
	assert.True(t, d.Animating())

	clk.Advance(time.Second)
	mid := d.Value(Steps)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 8542.0)

	clk.Advance(time.Second + 16*time.Millisecond)
	assert.False(t, d.Animating())
	assert.Equal(t, "75", d.Display(HeartRate))
	assert.Equal(t, "8,542", d.Display(Steps))
	assert.Equal(t, "1,850", d.Display(Calories))
	assert.Equal(t, "7.5", d.Display(Sleep))
	assert.InDelta(t, 0.925, d.Progress(Calories), 1e-9)
}

func TestDashboard_OpenModalPrefills(t *testing.T) {
	d, clk, _ := newDashboard()
	d.Load(DefaultTargets)
	clk.Advance(3 * time.Second)

	d.OpenModal()
	require.NotNil(t, d.Modal)
	assert.Equal(t, [4]string{"75", "8542", "1850", "7.5"}, d.Modal.Fields)

	d.CloseModal()
	assert.Nil(t, d.Modal)
}

func TestDashboard_Submit(t *testing.T) {
	d, clk, n := newDashboard()
	d.Load(DefaultTargets)
	clk.Advance(3 * time.Second)
	d.OpenModal()

	err := d.Submit([4]string{"90", "12000", "2100", "6.2"})
	require.NoError(t, err)
	assert.Nil(t, d.Modal, "modal closes on submit")
	assert.Equal(t, []string{"Health data updated successfully!"}, n.ok)

	clk.Advance(499 * time.Millisecond)
	assert.InDelta(t, 0.375, d.Progress(HeartRate), 1e-9, "bars wait for the delay")
	clk.Advance(time.Millisecond)
	assert.InDelta(t, 0.45, d.Progress(HeartRate), 1e-9)
	assert.Equal(t, 1.0, d.Progress(Steps))
	assert.Equal(t, 1.0, d.Progress(Calories))
	assert.InDelta(t, 0.775, d.Progress(Sleep), 1e-9)

	clk.Advance(time.Second)
	assert.Equal(t, "90", d.Display(HeartRate))
	assert.Equal(t, "12,000", d.Display(Steps))
	assert.Equal(t, "6.2", d.Display(Sleep))
}

func TestDashboard_SubmitInvalid(t *testing.T) {
	d, clk, n := newDashboard()
	d.Load(DefaultTargets)
	clk.Advance(3 * time.Second)
	d.OpenModal()

	err := d.Submit([4]string{"400", "100", "100", "7"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HeartRate must be at most 250")
	assert.NotNil(t, d.Modal, "modal stays open")
	assert.Len(t, n.errs, 1)
	assert.Empty(t, n.ok)

	err = d.Submit([4]string{"80", "lots", "100", "7"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Steps Today must be a whole number")
	assert.Equal(t, "8,542", d.Display(Steps))
}

func TestDashboard_NewAnimationReplacesOld(t *testing.T) {
	d, clk, _ := newDashboard()
	d.Animate(Steps, 0, 10000, 2*time.Second)
	clk.Advance(500 * time.Millisecond)

	d.Animate(Steps, 100, 200, 160*time.Millisecond)
	clk.Advance(5 * time.Second)
	assert.Equal(t, "200", d.Display(Steps), "the cancelled animation must not keep counting")
}
