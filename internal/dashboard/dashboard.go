package dashboard

import (
	"log/slog"
	"strconv"
	"time"

	"healthtrack/internal/clock"
)

// Notifier shows toast messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type Timing struct {
	Frame          time.Duration // counter animation frame
	LoadDuration   time.Duration // initial count-up
	UpdateDuration time.Duration // count to edited values
	ProgressDelay  time.Duration // edited values -> progress bars
}

func DefaultTiming() Timing {
	return Timing{
		Frame:          16 * time.Millisecond,
		LoadDuration:   2000 * time.Millisecond,
		UpdateDuration: 1000 * time.Millisecond,
		ProgressDelay:  500 * time.Millisecond,
	}
}

// DefaultTargets are the values counted up to on load.
var DefaultTargets = map[MetricID]float64{
	HeartRate: 75,
	Steps:     8542,
	Calories:  1850,
	Sleep:     7.5,
}

// Modal is the open edit form, prefilled from the displayed values.
type Modal struct {
	Fields [4]string
}

type Dashboard struct {
	scheduler clock.Scheduler
	timing    Timing
	notifier  Notifier
	logger    *slog.Logger

	values   map[MetricID]float64
	progress map[MetricID]float64
	tweens   map[MetricID]*Tween
	// per-metric generation; starting an animation cancels the previous one
	generation map[MetricID]uint64

	Modal *Modal
}

func New(scheduler clock.Scheduler, timing Timing, notifier Notifier, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dashboard{
		scheduler:  scheduler,
		timing:     timing,
		notifier:   notifier,
		logger:     logger,
		values:     map[MetricID]float64{},
		progress:   map[MetricID]float64{},
		tweens:     map[MetricID]*Tween{},
		generation: map[MetricID]uint64{},
	}
	return d
}

// Load counts every metric up from zero and sets the bars for the targets.
func (d *Dashboard) Load(targets map[MetricID]float64) {
	for _, id := range All {
		d.progress[id] = Progress(id, targets[id])
		d.Animate(id, 0, targets[id], d.timing.LoadDuration)
	}
}

// Animate tweens the displayed value of id from start to end.
func (d *Dashboard) Animate(id MetricID, start, end float64, duration time.Duration) {
	d.generation[id]++
	gen := d.generation[id]

	t := NewTween(start, end, duration, d.timing.Frame)
	d.tweens[id] = t
	d.values[id] = t.Current
	if t.Done() {
		delete(d.tweens, id)
		return
	}
	d.frame(id, gen, t)
}

func (d *Dashboard) frame(id MetricID, gen uint64, t *Tween) {
	d.scheduler.AfterFunc(d.timing.Frame, func() {
		if d.generation[id] != gen {
			return
		}
		done := t.Step()
		d.values[id] = t.Current
		if done {
			delete(d.tweens, id)
			return
		}
		d.frame(id, gen, t)
	})
}

// Display is the text shown on the metric card.
func (d *Dashboard) Display(id MetricID) string {
	return Format(id, d.values[id])
}

// Value is the displayed value as a number.
func (d *Dashboard) Value(id MetricID) float64 {
	v, err := ParseDisplayed(id, d.Display(id))
	if err != nil {
		return d.values[id]
	}
	return v
}

func (d *Dashboard) Progress(id MetricID) float64 {
	return d.progress[id]
}

func (d *Dashboard) Animating() bool {
	return len(d.tweens) > 0
}

// OpenModal shows the edit form filled with what is on screen.
func (d *Dashboard) OpenModal() {
	var m Modal
	for i, id := range All {
		if id.Fractional() {
			m.Fields[i] = strconv.FormatFloat(d.Value(id), 'f', 1, 64)
		} else {
			m.Fields[i] = strconv.Itoa(int(d.Value(id)))
		}
	}
	d.Modal = &m
}

func (d *Dashboard) CloseModal() {
	d.Modal = nil
}

// Submit applies edited values. Invalid input keeps the modal open and
// toasts the reason.
func (d *Dashboard) Submit(fields [4]string) error {
	form, err := ParseForm(fields)
	if err == nil {
		err = form.Validate()
	}
	if err != nil {
		d.logger.Info("health data rejected", "error", err)
		if d.notifier != nil {
			d.notifier.Error(err.Error())
		}
		return err
	}

	values := form.Values()
	for _, id := range All {
		d.Animate(id, d.Value(id), values[id], d.timing.UpdateDuration)
	}
	d.scheduler.AfterFunc(d.timing.ProgressDelay, func() {
		for _, id := range All {
			d.progress[id] = Progress(id, values[id])
		}
	})

	d.CloseModal()
	d.logger.Info("health data updated",
		"heart_rate", form.HeartRate,
		"steps", form.Steps,
		"calories", form.Calories,
		"sleep", form.Sleep)
	if d.notifier != nil {
		d.notifier.Success("Health data updated successfully!")
	}
	return nil
}
