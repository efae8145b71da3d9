package futures

// A RemoteHandle observes, as a [Future], the output of a task launched
// elsewhere. It is produced by [SpawnWithHandle] and
// [SpawnLocalWithHandle].
//
// A RemoteHandle resolves exactly once, with the value the remote task
// completed with, delivered over a one-shot channel. A caller that loses
// interest before then calls [RemoteHandle.Cancel]; a handle that merely
// goes out of scope keeps the remote task running to completion with its
// output discarded.
type RemoteHandle[T any] struct {
	rx *Receiver[T]
}

// Poll implements the [Future] interface.
//
// Poll panics if the executor dropped the remote task before it could
// complete; an executor that takes a task owes it a run to completion.
func (h *RemoteHandle[T]) Poll(cx *Context) (T, bool) {
	v, err := h.rx.PollReceive(cx)
	switch err {
	case nil:
		return v, true
	case ErrWouldBlock:
		var zero T
		return zero, false
	default:
		panic("futures(RemoteHandle): remote task dropped before completion")
	}
}

// Cancel signals that the output is no longer wanted.
//
// The remote side observes the disinterest at its next turn and abandons
// remaining work. Cancel does not forcibly interrupt the task: a task
// already running may still complete, and its output is then discarded.
// Cancel is safe to call at any time, including after the handle has
// resolved, and never blocks.
func (h *RemoteHandle[T]) Cancel() {
	h.rx.Close()
}

// makeRemote rewrites fut into a spawnable [Task] that pushes its output
// through a one-shot channel, and returns the task together with the
// handle bound to the channel's receiving end.
func makeRemote[T any](fut Future[T]) (Task, *RemoteHandle[T]) {
	tx, rx := Oneshot[T]()
	return &remoteTask[T]{tx: tx, fut: fut}, &RemoteHandle[T]{rx: rx}
}

type remoteTask[T any] struct {
	tx  *Sender[T]
	fut Future[T]
}

func (r *remoteTask[T]) Poll(cx *Context) (struct{}, bool) {
	if r.tx.PollCanceled(cx) {
		// No one wants the output anymore.
		return struct{}{}, true
	}
	v, ok := r.fut.Poll(cx)
	if !ok {
		return struct{}{}, false
	}
	r.tx.Send(v)
	return struct{}{}, true
}
