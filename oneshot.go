package futures

import (
	"errors"
	"sync"
)

// ErrClosed reports that the other end of a one-shot channel is gone.
var ErrClosed = errors.New("futures: one-shot channel closed")

// Oneshot creates a channel for passing a single value between two tasks,
// returning its two ends.
//
// The channel is single-producer, single-consumer: at most one value
// crosses it, exactly once. Either end may outlive the other. Closing the
// receiving end signals disinterest to the sender; it does not interrupt
// anything.
//
// The two ends may live on different executors; the channel carries its own
// synchronization.
func Oneshot[T any]() (*Sender[T], *Receiver[T]) {
	inner := new(oneshotInner[T])
	return &Sender[T]{inner}, &Receiver[T]{inner}
}

const (
	oneshotEmpty int8 = iota
	oneshotSent
	oneshotReceived
	oneshotClosed // either end gone before a value crossed
)

type oneshotInner[T any] struct {
	mu      sync.Mutex
	value   T
	state   int8
	rxWaker Waker // receiver waiting for a value
	txWaker Waker // sender waiting for cancellation
}

// A Sender is the producing end of a one-shot channel.
type Sender[T any] struct {
	inner *oneshotInner[T]
}

// Send delivers v to the receiving end and reports whether the receiver is
// still interested. If the receiving end has been closed, v is dropped and
// Send reports false.
//
// Send may be called at most once; a second call is a contract violation
// and panics.
func (s *Sender[T]) Send(v T) bool {
	inner := s.inner
	inner.mu.Lock()
	switch inner.state {
	case oneshotEmpty:
	case oneshotClosed:
		inner.mu.Unlock()
		return false
	default:
		inner.mu.Unlock()
		panic("futures(Sender): send after send")
	}
	inner.value = v
	inner.state = oneshotSent
	w := inner.rxWaker
	inner.rxWaker = nil
	inner.mu.Unlock()
	if w != nil {
		w.Wake()
	}
	return true
}

// PollCanceled reports whether the receiving end has been closed without
// receiving a value. While it reports false, the [Waker] of cx is retained
// and called if the receiving end closes later.
//
// A sender driving a long computation polls this each turn to learn that
// the output is no longer wanted and remaining work can be abandoned.
func (s *Sender[T]) PollCanceled(cx *Context) bool {
	inner := s.inner
	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.state == oneshotClosed {
		return true
	}
	inner.txWaker = cx.Waker()
	return false
}

// Close drops the sending end without sending. A receiver polling
// afterwards observes [ErrClosed]. Closing after a send, or twice, has no
// effect.
func (s *Sender[T]) Close() {
	s.inner.close(&s.inner.rxWaker)
}

// A Receiver is the consuming end of a one-shot channel.
// It implements [Future], completing with the received value.
type Receiver[T any] struct {
	inner *oneshotInner[T]
}

// PollReceive attempts to receive the value.
//
// It returns the value once one has been sent, or [ErrWouldBlock] while the
// channel is still empty (retaining the [Waker] of cx), or [ErrClosed] if
// the sending end was dropped without sending.
//
// The value is received exactly once; polling again after it has been
// received is a contract violation and panics.
func (r *Receiver[T]) PollReceive(cx *Context) (T, error) {
	inner := r.inner
	inner.mu.Lock()
	defer inner.mu.Unlock()
	var zero T
	switch inner.state {
	case oneshotEmpty:
		inner.rxWaker = cx.Waker()
		return zero, ErrWouldBlock
	case oneshotSent:
		inner.state = oneshotReceived
		v := inner.value
		inner.value = zero
		return v, nil
	case oneshotClosed:
		return zero, ErrClosed
	default:
		panic("futures(Receiver): receive after receive")
	}
}

// Poll implements the [Future] interface.
//
// Poll panics if the sending end was dropped without sending; use
// [Receiver.PollReceive] to observe that case as [ErrClosed] instead.
func (r *Receiver[T]) Poll(cx *Context) (T, bool) {
	v, err := r.PollReceive(cx)
	switch err {
	case nil:
		return v, true
	case ErrWouldBlock:
		var zero T
		return zero, false
	default:
		panic("futures(Receiver): sender dropped without sending")
	}
}

// Close drops the receiving end: the caller is no longer interested in the
// value. A sender polling [Sender.PollCanceled] afterwards observes the
// disinterest. Closing after the value has been received, or twice, has no
// effect.
func (r *Receiver[T]) Close() {
	r.inner.close(&r.inner.txWaker)
}

// close moves an empty channel to the closed state and wakes the other
// end's waker, found at wp.
func (inner *oneshotInner[T]) close(wp *Waker) {
	inner.mu.Lock()
	if inner.state != oneshotEmpty {
		inner.mu.Unlock()
		return
	}
	inner.state = oneshotClosed
	w := *wp
	*wp = nil
	inner.mu.Unlock()
	if w != nil {
		w.Wake()
	}
}
