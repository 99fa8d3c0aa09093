package engine

import (
	"container/heap"
	"time"
)

// Scheduler is a cooperative one-shot timer queue
// Tasks run on whichever goroutine calls Run, normally the UI loop on every
// frame tick, so task bodies never race with input handling
// Scheduled tasks cannot be cancelled
// Not safe for concurrent use
type Scheduler struct {
	clock TimeProvider
	queue taskQueue
	seq   uint64

	// Due time of the task being executed, zero outside Run
	cursor time.Time

	executed uint64
}

type scheduledTask struct {
	due time.Time
	seq uint64
	fn  func()
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		queue: make(taskQueue, 0, 64),
	}
}

// Now returns the scheduler's notion of the present
// Inside a running task this is the task's due time rather than the clock,
// which keeps chained delays exact even when Run is called late
func (s *Scheduler) Now() time.Time {
	if !s.cursor.IsZero() {
		return s.cursor
	}
	return s.clock.Now()
}

// After schedules fn to run d after Now
// Non-positive durations schedule for the next Run
func (s *Scheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.At(s.Now().Add(d), fn)
}

// At schedules fn to run once the clock reaches t
func (s *Scheduler) At(t time.Time, fn func()) {
	if fn == nil {
		return
	}
	s.seq++
	heap.Push(&s.queue, &scheduledTask{due: t, seq: s.seq, fn: fn})
}

// Run executes every task due at the current clock time in due order,
// including tasks scheduled by those tasks if they are already due
// Returns the number of tasks executed
func (s *Scheduler) Run() int {
	now := s.clock.Now()
	count := 0

	defer func() {
		s.cursor = time.Time{}
	}()

	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due.After(now) {
			break
		}
		heap.Pop(&s.queue)

		s.cursor = next.due
		next.fn()
		s.cursor = time.Time{}

		count++
		s.executed++
	}

	return count
}

// Pending returns the number of tasks not yet executed
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// NextDue reports the due time of the earliest pending task
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// Executed returns the total number of tasks run since creation
func (s *Scheduler) Executed() uint64 {
	return s.executed
}

// taskQueue orders tasks by due time, ties broken by scheduling order
type taskQueue []*scheduledTask

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*scheduledTask))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
