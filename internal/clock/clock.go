// Package clock provides the delayed-callback primitive used by every timed
// behavior in the app, plus a manual clock for tests.
package clock

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d has elapsed.
// Implementations must invoke fn on the same goroutine that drives the UI.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// Task is a callback waiting for its delay to elapse.
type Task struct {
	Delay time.Duration
	Run   func()
}

// Queue collects tasks for an event loop that owns the real timers.
// The bubbletea model drains it after every update and turns each task into a
// tick command, so callbacks come back through Update.
type Queue struct {
	tasks []Task
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) AfterFunc(d time.Duration, fn func()) {
	q.tasks = append(q.tasks, Task{Delay: d, Run: fn})
}

// Drain returns the queued tasks and empties the queue.
func (q *Queue) Drain() []Task {
	tasks := q.tasks
	q.tasks = nil
	return tasks
}

func (q *Queue) Len() int {
	return len(q.tasks)
}

type pending struct {
	at  time.Duration
	seq int
	fn  func()
}

// Manual is a virtual clock. Nothing runs until Advance is called.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []pending
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.seq++
	m.tasks = append(m.tasks, pending{at: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock forward by d, running every task that falls due in
// due-time order. Tasks scheduled by a running task are honored if they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		idx := m.next(end)
		if idx < 0 {
			break
		}
		t := m.tasks[idx]
		m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
		m.now = t.at
		t.fn()
	}
	m.now = end
}

func (m *Manual) next(end time.Duration) int {
	if len(m.tasks) == 0 {
		return -1
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at == m.tasks[j].at {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].at < m.tasks[j].at
	})
	if m.tasks[0].at > end {
		return -1
	}
	return 0
}

// Now reports the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending reports how many tasks have not run yet.
func (m *Manual) Pending() int {
	return len(m.tasks)
}
