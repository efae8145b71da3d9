package futures

import "io"

// A Chain is an [AsyncReader] that reads the whole of one source and then
// the whole of another, as if the two were one contiguous source.
//
// A Chain owns its two sources. It reads from the first until the first
// reports end-of-data, then switches to the second. The switch happens at
// most once and is permanent: the first source is never polled again
// afterwards. The two sources are never interleaved.
//
// A Chain is itself an [AsyncReader] and an [AsyncVectoredReader], so
// chains compose. It is also an [AsyncBufReader] provided both sources are;
// calling the buffered methods on a Chain whose sources are not is a
// contract violation and panics.
type Chain[T, U AsyncReader] struct {
	first     T
	second    U
	doneFirst bool
}

// NewChain returns a new [Chain] reading first until exhaustion, then
// second.
func NewChain[T, U AsyncReader](first T, second U) *Chain[T, U] {
	return &Chain[T, U]{first: first, second: second}
}

// IntoInner returns the two sources, consuming c: the Chain must not be
// used afterwards.
func (c *Chain[T, U]) IntoInner() (first T, second U) {
	return c.first, c.second
}

// First returns a pointer to the first source.
//
// Mutating a source's read state while it is composed risks
// desynchronizing the chain's cursor; doing so is the caller's
// responsibility.
func (c *Chain[T, U]) First() *T {
	return &c.first
}

// Second returns a pointer to the second source.
//
// See [Chain.First] for the caveat on mutating a composed source.
func (c *Chain[T, U]) Second() *U {
	return &c.second
}

// PollRead implements the [AsyncReader] interface.
//
// When the first source reports end-of-data for a non-empty request, the
// read falls through to the second source within the same call; the
// boundary costs no extra turn. A zero-length request is never taken as
// an end-of-data signal.
func (c *Chain[T, U]) PollRead(cx *Context, p []byte) (int, error) {
	if !c.doneFirst {
		n, err := c.first.PollRead(cx, p)
		if !(err == io.EOF && len(p) != 0) {
			return n, err
		}
		c.doneFirst = true
	}
	return c.second.PollRead(cx, p)
}

// PollReadVectored implements the [AsyncVectoredReader] interface.
//
// The end-of-data rule is evaluated across the whole vector: the request
// counts as non-empty if any segment is.
func (c *Chain[T, U]) PollReadVectored(cx *Context, bufs [][]byte) (int, error) {
	if !c.doneFirst {
		n, err := pollReadVectored(c.first, cx, bufs)
		if !(err == io.EOF && anyNonEmpty(bufs)) {
			return n, err
		}
		c.doneFirst = true
	}
	return pollReadVectored(c.second, cx, bufs)
}

// PollFillBuf implements the [AsyncBufReader] interface.
//
// An exhausted first source flips to the second and retries it within the
// same call.
func (c *Chain[T, U]) PollFillBuf(cx *Context) ([]byte, error) {
	if !c.doneFirst {
		buf, err := bufSource(c.first).PollFillBuf(cx)
		if err == nil && len(buf) != 0 {
			return buf, nil
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		c.doneFirst = true
	}
	return bufSource(c.second).PollFillBuf(cx)
}

// Consume implements the [AsyncBufReader] interface, forwarding the
// acknowledgement to whichever source is currently active.
func (c *Chain[T, U]) Consume(n int) {
	if !c.doneFirst {
		bufSource(c.first).Consume(n)
	} else {
		bufSource(c.second).Consume(n)
	}
}

func bufSource(r AsyncReader) AsyncBufReader {
	br, ok := r.(AsyncBufReader)
	if !ok {
		panic("futures(Chain): source does not implement AsyncBufReader")
	}
	return br
}
