// Package carousel rotates the testimonial slides.
package carousel

import (
	"time"

	"healthtrack/internal/clock"
)

type Carousel struct {
	scheduler clock.Scheduler
	interval  time.Duration
	total     int
	current   int
	paused    bool
	// generation invalidates ticks of a cancelled interval
	generation uint64
}

// New creates a carousel on slide 0 and starts auto-advancing.
func New(scheduler clock.Scheduler, total int, interval time.Duration) *Carousel {
	if total < 1 {
		total = 1
	}
	c := &Carousel{
		scheduler: scheduler,
		interval:  interval,
		total:     total,
	}
	c.start()
	return c
}

func (c *Carousel) Current() int { return c.current }
func (c *Carousel) Total() int   { return c.total }
func (c *Carousel) Paused() bool { return c.paused }

// GoTo shows slide i, wrapping out-of-range values.
func (c *Carousel) GoTo(i int) {
	c.current = ((i % c.total) + c.total) % c.total
}

func (c *Carousel) Next() {
	c.GoTo(c.current + 1)
}

func (c *Carousel) Prev() {
	c.GoTo(c.current - 1)
}

// Hover pauses auto-advance while the pointer is over the carousel and starts
// a fresh interval when it leaves.
func (c *Carousel) Hover(over bool) {
	if over == c.paused {
		return
	}
	c.paused = over
	c.generation++
	if !over {
		c.start()
	}
}

func (c *Carousel) start() {
	gen := c.generation
	c.scheduler.AfterFunc(c.interval, func() {
		if gen != c.generation {
			return
		}
		c.Next()
		c.start()
	})
}
