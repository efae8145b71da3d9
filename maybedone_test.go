package futures_test

import (
	"testing"

	"github.com/b97tsk/futures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeDone(t *testing.T) {
	cx := noopContext()

	m := futures.NewMaybeDone(after(2, 9))

	assert.False(t, m.Poll(cx))
	assert.False(t, m.Ready())

	require.True(t, m.Poll(cx))
	assert.True(t, m.Ready())

	// Ready slots report readiness without polling the wrapped future.
	require.True(t, m.Poll(cx))

	assert.Equal(t, 9, m.Take())
	assert.False(t, m.Ready())
}

func TestMaybeDoneNoRepoll(t *testing.T) {
	cx := noopContext()

	var polls int
	m := futures.NewMaybeDone(counted(&polls, after(1, "a")))

	require.True(t, m.Poll(cx))
	require.True(t, m.Poll(cx))
	require.True(t, m.Poll(cx))

	assert.Equal(t, 1, polls)
}

func TestMaybeDoneMisuse(t *testing.T) {
	cx := noopContext()

	t.Run("TakeWhilePending", func(t *testing.T) {
		m := futures.NewMaybeDone(after(2, 0))
		m.Poll(cx)
		assert.PanicsWithValue(t, "futures(MaybeDone): take of a pending value", func() { m.Take() })
	})
	t.Run("DoubleTake", func(t *testing.T) {
		m := futures.NewMaybeDone(futures.Ready(1))
		m.Poll(cx)
		m.Take()
		assert.PanicsWithValue(t, "futures(MaybeDone): take after take", func() { m.Take() })
	})
	t.Run("PollAfterTake", func(t *testing.T) {
		m := futures.NewMaybeDone(futures.Ready(1))
		m.Poll(cx)
		m.Take()
		assert.PanicsWithValue(t, "futures(MaybeDone): poll after take", func() { m.Poll(cx) })
	})
}
