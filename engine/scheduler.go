package engine

import (
	"sync"
	"time"
)

// Scheduler runs fn once, d from now
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

// TimerScheduler runs tasks on their own goroutine via time.AfterFunc
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

type task struct {
	delay time.Duration
	fn    func()
}

// ManualScheduler queues tasks until they are run explicitly.
// Tasks run on the caller's goroutine, in the order they were scheduled.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []task
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Schedule(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task{d, fn})
}

// Pending is the number of queued tasks
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Delays lists the delay of each queued task
func (m *ManualScheduler) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	delays := []time.Duration{}
	for _, t := range m.tasks {
		delays = append(delays, t.delay)
	}
	return delays
}

// RunNext runs the oldest queued task
func (m *ManualScheduler) RunNext() bool {
	m.mu.Lock()
	if len(m.tasks) == 0 {
		m.mu.Unlock()
		return false
	}
	next := m.tasks[0]
	m.tasks = m.tasks[1:]
	m.mu.Unlock()

	next.fn()
	return true
}

// RunAll runs queued tasks, including ones they schedule, until the queue
// is empty or limit tasks have run. It returns how many ran.
func (m *ManualScheduler) RunAll(limit int) int {
	ran := 0
	for ran < limit && m.RunNext() {
		ran++
	}
	return ran
}

// Drop forgets every queued task
func (m *ManualScheduler) Drop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = nil
}
