package futures_test

import (
	"testing"

	"github.com/b97tsk/futures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordWaker counts wake-ups.
type recordWaker struct {
	n int
}

func (w *recordWaker) Wake() { w.n++ }

func TestOneshot(t *testing.T) {
	tx, rx := futures.Oneshot[int]()

	w := new(recordWaker)
	cx := futures.NewContext(w)

	_, err := rx.PollReceive(cx)
	assert.Equal(t, futures.ErrWouldBlock, err)

	assert.True(t, tx.Send(5))
	assert.Equal(t, 1, w.n)

	v, err := rx.PollReceive(cx)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	// Exactly one value crosses, exactly once.
	assert.PanicsWithValue(t, "futures(Receiver): receive after receive", func() {
		rx.PollReceive(cx)
	})
}

func TestOneshotSendTwice(t *testing.T) {
	tx, _ := futures.Oneshot[int]()
	tx.Send(1)
	assert.PanicsWithValue(t, "futures(Sender): send after send", func() { tx.Send(2) })
}

func TestOneshotReceiverAsFuture(t *testing.T) {
	tx, rx := futures.Oneshot[string]()
	cx := noopContext()

	_, ok := rx.Poll(cx)
	assert.False(t, ok)

	tx.Send("hi")

	v, ok := rx.Poll(cx)
	require.True(t, ok)
	assert.Equal(t, "hi", v)
}

func TestOneshotCancellation(t *testing.T) {
	tx, rx := futures.Oneshot[int]()

	w := new(recordWaker)
	cx := futures.NewContext(w)

	assert.False(t, tx.PollCanceled(cx))

	rx.Close()
	assert.Equal(t, 1, w.n)
	assert.True(t, tx.PollCanceled(cx))

	// The value is dropped, not delivered; that is not an error.
	assert.False(t, tx.Send(7))
}

func TestOneshotSenderClose(t *testing.T) {
	tx, rx := futures.Oneshot[int]()

	w := new(recordWaker)
	cx := futures.NewContext(w)

	_, err := rx.PollReceive(cx)
	assert.Equal(t, futures.ErrWouldBlock, err)

	tx.Close()
	assert.Equal(t, 1, w.n)

	_, err = rx.PollReceive(cx)
	assert.Equal(t, futures.ErrClosed, err)

	assert.Panics(t, func() { rx.Poll(cx) })
}

func TestOneshotCloseAfterSend(t *testing.T) {
	tx, rx := futures.Oneshot[int]()

	tx.Send(3)
	tx.Close() // No effect; the value already crossed.

	v, err := rx.PollReceive(noopContext())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
