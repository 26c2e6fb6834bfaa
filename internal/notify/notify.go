// Package notify implements auto-dismissing toast notifications.
package notify

import (
	"time"

	"healthtrack/internal/clock"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

type Phase int

const (
	Showing Phase = iota
	Leaving
)

type Toast struct {
	ID      string
	Message string
	Kind    Kind
	Phase   Phase
}

// Center owns the visible toasts. Each toast shows for Visible, slides out for
// Exit and is then removed.
type Center struct {
	scheduler clock.Scheduler
	visible   time.Duration
	exit      time.Duration
	toasts    []Toast
}

func NewCenter(scheduler clock.Scheduler, visible, exit time.Duration) *Center {
	return &Center{
		scheduler: scheduler,
		visible:   visible,
		exit:      exit,
	}
}

// Show adds a toast and returns its id.
func (c *Center) Show(message string, kind Kind) string {
	id := uuid.NewString()
	c.toasts = append(c.toasts, Toast{ID: id, Message: message, Kind: kind, Phase: Showing})

	c.scheduler.AfterFunc(c.visible, func() {
		c.setPhase(id, Leaving)
		c.scheduler.AfterFunc(c.exit, func() {
			c.remove(id)
		})
	})
	return id
}

func (c *Center) Success(message string) {
	c.Show(message, Success)
}

func (c *Center) Error(message string) {
	c.Show(message, Error)
}

// Toasts returns the toasts on screen, oldest first.
func (c *Center) Toasts() []Toast {
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) Len() int {
	return len(c.toasts)
}

func (c *Center) setPhase(id string, p Phase) {
	for i := range c.toasts {
		if c.toasts[i].ID == id {
			c.toasts[i].Phase = p
			return
		}
	}
}

func (c *Center) remove(id string) {
	c.toasts = lo.Reject(c.toasts, func(t Toast, _ int) bool { return t.ID == id })
}
