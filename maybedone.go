package futures

const (
	maybeDonePending int8 = iota
	maybeDoneReady
	maybeDoneTaken
)

// A MaybeDone is a single-operand slot: it wraps one [Future] and, once that
// future completes, parks the output until it is taken.
//
// A MaybeDone starts out pending.
// Polling a pending MaybeDone polls the wrapped future; when that future
// completes, the slot becomes ready and the wrapped future is never polled
// again.
// [MaybeDone.Take] moves the output out of a ready slot; the slot is then
// taken, a terminal state in which neither Poll nor Take may be called.
//
// [Join] and friends are built on MaybeDone.
// It is exported because it is useful on its own whenever some futures of
// a set complete before the rest are needed.
type MaybeDone[T any] struct {
	fut   Future[T]
	value T
	state int8
}

// NewMaybeDone returns a new [MaybeDone] wrapping fut.
func NewMaybeDone[T any](fut Future[T]) *MaybeDone[T] {
	return &MaybeDone[T]{fut: fut}
}

// Poll advances the slot and reports whether the output is ready.
//
// If the slot is pending, Poll polls the wrapped future once.
// If the slot is already ready, Poll reports readiness without side effects.
// Polling a taken slot is a contract violation and panics.
func (m *MaybeDone[T]) Poll(cx *Context) bool {
	switch m.state {
	case maybeDonePending:
		v, ok := m.fut.Poll(cx)
		if !ok {
			return false
		}
		m.value = v
		m.state = maybeDoneReady
		m.fut = nil
		return true
	case maybeDoneReady:
		return true
	default:
		panic("futures(MaybeDone): poll after take")
	}
}

// Ready reports whether the output is ready to be taken.
func (m *MaybeDone[T]) Ready() bool {
	return m.state == maybeDoneReady
}

// Take moves the output out of the slot.
//
// Take requires the slot to be ready.
// Taking a pending or already-taken slot is a contract violation and panics.
func (m *MaybeDone[T]) Take() T {
	switch m.state {
	case maybeDonePending:
		panic("futures(MaybeDone): take of a pending value")
	case maybeDoneTaken:
		panic("futures(MaybeDone): take after take")
	}
	m.state = maybeDoneTaken
	v := m.value
	var zero T
	m.value = zero
	return v
}
