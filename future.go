package futures

// A Waker is the wake-up half of the readiness protocol.
//
// An operand that cannot make progress retains the [Waker] of the current
// turn and calls Wake once progress becomes possible, asking its driver for
// another turn.
//
// Wake may be called from any goroutine, and more than once per turn.
// Waking a future that has already completed has no effect.
type Waker interface {
	Wake()
}

// A WakerFunc is a func() that implements the [Waker] interface.
type WakerFunc func()

// Wake implements the [Waker] interface.
func (f WakerFunc) Wake() { f() }

// A Context carries the [Waker] of the current turn.
//
// Whatever drives a [Future] creates a Context and passes it down,
// unchanged, through every composite to the leaf operands.
type Context struct {
	waker Waker
}

// NewContext returns a new [Context] carrying w.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// Waker returns the [Waker] of the current turn.
func (cx *Context) Waker() Waker {
	return cx.waker
}

// A Future is an asynchronous computation, driven by repeated polling.
//
// Poll either completes, returning the final value and true, or returns
// false after arranging, directly or through a child, for the [Waker] of cx
// to be called when another poll could make progress.
//
// A Future completes at most once.
// Polling a Future after it has completed is a contract violation;
// implementations in this package panic loudly rather than misbehave
// quietly.
//
// Futures compose: everything this package builds out of Futures is itself
// a Future.
type Future[T any] interface {
	Poll(cx *Context) (T, bool)
}

// A FutureFunc is a function that implements the [Future] interface.
type FutureFunc[T any] func(cx *Context) (T, bool)

// Poll implements the [Future] interface.
func (f FutureFunc[T]) Poll(cx *Context) (T, bool) { return f(cx) }

// A Task is a [Future] that completes with no value.
// Tasks are what a [Spawner] launches.
type Task = Future[struct{}]

// Ready returns a [Future] that completes with v on its first poll.
func Ready[T any](v T) Future[T] {
	return FutureFunc[T](func(cx *Context) (T, bool) {
		return v, true
	})
}

// Never returns a [Future] that never completes.
func Never[T any]() Future[T] {
	return FutureFunc[T](func(cx *Context) (T, bool) {
		var zero T
		return zero, false
	})
}

// Do returns a [Task] that calls f, and then completes.
func Do(f func()) Task {
	return FutureFunc[struct{}](func(cx *Context) (struct{}, bool) {
		f()
		return struct{}{}, true
	})
}

// Discard returns a [Task] that drives fut to completion and drops its
// output.
func Discard[T any](fut Future[T]) Task {
	return FutureFunc[struct{}](func(cx *Context) (struct{}, bool) {
		_, ok := fut.Poll(cx)
		return struct{}{}, ok
	})
}

// Map returns a [Future] that completes with f applied to fut's output.
func Map[T, U any](fut Future[T], f func(T) U) Future[U] {
	return FutureFunc[U](func(cx *Context) (U, bool) {
		v, ok := fut.Poll(cx)
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	})
}

// Then returns a [Future] that first completes fut, then switches to the
// future produced by f, completing with that future's output.
//
// The switch happens within one turn: the turn fut completes, the produced
// future is polled immediately.
func Then[T, U any](fut Future[T], f func(T) Future[U]) Future[U] {
	var next Future[U]
	return FutureFunc[U](func(cx *Context) (U, bool) {
		if next == nil {
			v, ok := fut.Poll(cx)
			if !ok {
				var zero U
				return zero, false
			}
			next = f(v)
		}
		return next.Poll(cx)
	})
}
