package futures

import "errors"

// ErrWouldBlock reports that an operation cannot make progress now without
// waiting.
//
// A poll that returns ErrWouldBlock has arranged for the [Waker] of the
// current turn to be called once progress becomes possible; the caller
// should return immediately and retry on a later turn.
var ErrWouldBlock = errors.New("futures: operation would block")

// An AsyncReader is an asynchronous byte source, driven by repeated polling
// like a [Future].
//
// PollRead reads up to len(p) bytes into p. It returns the number of bytes
// read, or 0 and [ErrWouldBlock] when no bytes are available yet, or 0 and
// [io.EOF] when the source is exhausted. Unlike [io.Reader], an AsyncReader
// never returns io.EOF alongside a positive count, and it returns io.EOF
// itself, not a wrapper: the zero-count io.EOF is the one and only
// end-of-data signal.
//
// A PollRead with len(p) == 0 reads nothing and reports (0, nil) no matter
// how much data remains; a zero-length request says nothing about
// exhaustion.
type AsyncReader interface {
	PollRead(cx *Context, p []byte) (int, error)
}

// An AsyncVectoredReader is an [AsyncReader] that can scatter a single read
// across multiple destination segments.
//
// PollReadVectored follows the PollRead contract with the destination
// generalized to a vector of segments, filled in order. The zero-length
// rule applies to the vector as a whole: a request is non-empty if any
// segment is.
//
// Composites discover this interface by type assertion, the way package io
// does optional interfaces, and fall back to PollRead on the first
// non-empty segment when it is absent.
type AsyncVectoredReader interface {
	AsyncReader
	PollReadVectored(cx *Context, bufs [][]byte) (int, error)
}

// An AsyncBufReader is an [AsyncReader] with an internal buffer, exposing
// the two-phase fill/consume protocol instead of copying into a caller
// buffer.
//
// PollFillBuf returns the internal buffer once it is non-empty, or nil and
// [io.EOF] when the source is exhausted, or nil and [ErrWouldBlock] when
// filling cannot make progress yet. The returned buffer remains valid until
// the next call on the source.
//
// Consume acknowledges that the first n bytes of the last returned buffer
// have been used and must not be returned again. n must not exceed the
// length of that buffer.
type AsyncBufReader interface {
	AsyncReader
	PollFillBuf(cx *Context) ([]byte, error)
	Consume(n int)
}

func pollReadVectored(r AsyncReader, cx *Context, bufs [][]byte) (int, error) {
	if vr, ok := r.(AsyncVectoredReader); ok {
		return vr.PollReadVectored(cx, bufs)
	}
	for _, p := range bufs {
		if len(p) != 0 {
			return r.PollRead(cx, p)
		}
	}
	return r.PollRead(cx, nil)
}

func anyNonEmpty(bufs [][]byte) bool {
	for _, p := range bufs {
		if len(p) != 0 {
			return true
		}
	}
	return false
}
