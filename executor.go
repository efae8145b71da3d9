package futures

import (
	"errors"
	"sync"
)

// ErrShutdown is the launch error reported by [Executor.Spawn] once the
// executor has been closed.
var ErrShutdown = errors.New("futures: executor is shut down")

// An Executor is a single-threaded [Task] runner: the reference
// implementation of the [Spawner] and [LocalSpawner] capabilities.
//
// When a Task is spawned, or woken by the [Waker] it was polled with, it is
// added into an internal run queue. The Run method then pops each task from
// the queue and polls it, until the queue is emptied. It is done in a
// single-threaded manner. If one task blocks, no other tasks can run. The
// best practice is not to block.
//
// The run queue orders tasks by weight, heavier first; tasks of equal
// weight run in arrival order (FIFO).
//
// Manually calling the Run method is usually not desired. One would instead
// use the Autorun method to set up an autorun function to calling the Run
// method automatically whenever a task is spawned or woken. The Executor
// never calls the autorun function twice at the same time.
type Executor struct {
	mu      sync.Mutex
	pq      priorityqueue[*tasknode]
	running bool
	closed  bool
	autorun func()
}

// Weight is the scheduling weight of a spawned [Task].
// Heavier tasks pop out of the run queue first.
type Weight int

const (
	nodeStale uint8 = 1 << iota
	nodeQueued
	nodeEnded
)

// A tasknode owns one spawned task. It doubles as the task's [Waker]: the
// Context a task is polled with carries its own node.
type tasknode struct {
	executor *Executor
	weight   Weight
	task     Task
	flag     uint8
}

func (n *tasknode) less(other *tasknode) bool {
	return n.weight > other.weight
}

// Wake implements the [Waker] interface.
//
// Waking a task that is already queued, or already ended, is a no-op
// beyond marking it stale for another poll.
func (n *tasknode) Wake() {
	e := n.executor
	var autorun func()
	e.mu.Lock()
	switch flag := n.flag; {
	case flag&nodeEnded != 0:
	case flag&nodeQueued != 0:
		n.flag = flag | nodeStale
	default:
		n.flag = flag | nodeStale | nodeQueued
		e.pq.Push(n)
		autorun = e.claimAutorun()
	}
	e.mu.Unlock()
	if autorun != nil {
		autorun()
	}
}

// Autorun sets up an autorun function to calling the Run method
// automatically whenever a [Task] is spawned or woken.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Spawn method may block too. The best practice is not to
// block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// claimAutorun must be called with e.mu held.
func (e *Executor) claimAutorun() func() {
	if !e.running && e.autorun != nil {
		e.running = true
		return e.autorun
	}
	return nil
}

// Run pops and polls every [Task] in the run queue until the queue is
// emptied.
//
// Run must not be called twice at the same time.
//
// A panic in a task does not keep the queue from draining; Run collects it
// and panics when it returns.
func (e *Executor) Run() {
	var pc paniccatcher

	e.mu.Lock()
	e.running = true

	for !e.pq.Empty() {
		n := e.pq.Pop()
		e.runNode(n, &pc)
	}

	e.running = false
	e.mu.Unlock()

	pc.Repanic()
}

// runNode must be called with e.mu held; the lock is dropped around the
// poll itself.
func (e *Executor) runNode(n *tasknode, pc *paniccatcher) {
	flag := n.flag
	flag &^= nodeQueued
	n.flag = flag

	if flag&nodeEnded != 0 || flag&nodeStale == 0 {
		return
	}

	n.flag = flag &^ nodeStale

	e.mu.Unlock()

	done := true
	cx := NewContext(n)
	pc.TryCatch(func() { _, done = n.task.Poll(cx) })

	e.mu.Lock()

	if done {
		n.flag |= nodeEnded
		n.task = nil
	}
}

// Spawn launches t with the default weight of zero.
// Spawn implements the [Spawner] interface and is safe for concurrent use.
//
// After [Executor.Close], Spawn rejects every task with [ErrShutdown].
func (e *Executor) Spawn(t Task) error {
	return e.SpawnWeighted(t, 0)
}

// SpawnWeighted launches t with weight w. Heavier tasks are polled first
// whenever the run queue holds more than one runnable task.
func (e *Executor) SpawnWeighted(t Task, w Weight) error {
	n := &tasknode{executor: e, weight: w, task: t, flag: nodeStale | nodeQueued}

	var autorun func()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrShutdown
	}
	e.pq.Push(n)
	autorun = e.claimAutorun()
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}

	return nil
}

// SpawnLocal implements the [LocalSpawner] interface.
// An Executor runs everything on whatever goroutine calls Run, so the
// local contract costs it nothing extra.
func (e *Executor) SpawnLocal(t Task) error {
	return e.Spawn(t)
}

// Close makes every future Spawn report [ErrShutdown].
// Tasks already in the run queue still run to completion.
func (e *Executor) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// BlockOn drives fut to completion on the calling goroutine, parking it
// between turns, and returns the output.
//
// BlockOn is the bridge from synchronous code into the poll world. It must
// not be called from within a task on an [Executor]: parking there would
// stall every other task on that executor.
func BlockOn[T any](fut Future[T]) T {
	wake := make(chan struct{}, 1)

	cx := NewContext(WakerFunc(func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}))

	for {
		if v, ok := fut.Poll(cx); ok {
			return v
		}
		<-wake
	}
}
