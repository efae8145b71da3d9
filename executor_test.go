package futures_test

import (
	"testing"
	"time"

	"github.com/b97tsk/futures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorRunOrder(t *testing.T) {
	var e futures.Executor

	var order []string
	add := func(s string) futures.Task { return futures.Do(func() { order = append(order, s) }) }

	require.NoError(t, e.Spawn(add("a")))
	require.NoError(t, e.SpawnWeighted(add("b"), 1))
	require.NoError(t, e.Spawn(add("c")))

	assert.Empty(t, order) // No autorun; nothing ran yet.

	e.Run()

	// Heavier first, FIFO among equals.
	assert.Equal(t, []string{"b", "a", "c"}, order)
}

func TestExecutorAutorun(t *testing.T) {
	var e futures.Executor

	e.Autorun(e.Run)

	var ran bool
	require.NoError(t, e.Spawn(futures.Do(func() { ran = true })))
	assert.True(t, ran)
}

func TestExecutorSelfWakingTask(t *testing.T) {
	var e futures.Executor

	e.Autorun(e.Run)

	var turns int
	require.NoError(t, e.Spawn(futures.FutureFunc[struct{}](func(cx *futures.Context) (struct{}, bool) {
		turns++
		if turns == 3 {
			return struct{}{}, true
		}
		cx.Waker().Wake()
		return struct{}{}, false
	})))

	// Every self-wake earns another turn within the same run.
	assert.Equal(t, 3, turns)
}

func TestExecutorClose(t *testing.T) {
	var e futures.Executor

	e.Close()

	err := e.Spawn(futures.Do(func() {}))
	assert.ErrorIs(t, err, futures.ErrShutdown)

	err = e.SpawnLocal(futures.Do(func() {}))
	assert.ErrorIs(t, err, futures.ErrShutdown)
}

func TestExecutorTaskPanic(t *testing.T) {
	var e futures.Executor

	require.NoError(t, e.Spawn(futures.Do(func() { panic("boom") })))

	var ran bool
	require.NoError(t, e.Spawn(futures.Do(func() { ran = true })))

	assert.Panics(t, e.Run)

	// A panicking task does not keep the queue from draining.
	assert.True(t, ran)
}

func TestExecutorCrossGoroutineWake(t *testing.T) {
	var e futures.Executor

	done := make(chan struct{})
	e.Autorun(func() { go e.Run() })

	tx, rx := futures.Oneshot[int]()

	var got int
	require.NoError(t, e.Spawn(futures.FutureFunc[struct{}](func(cx *futures.Context) (struct{}, bool) {
		v, ok := rx.Poll(cx)
		if !ok {
			return struct{}{}, false
		}
		got = v
		close(done)
		return struct{}{}, true
	})))

	go func() {
		time.Sleep(time.Millisecond)
		tx.Send(42)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not woken")
	}
	assert.Equal(t, 42, got)
}

func TestBlockOn(t *testing.T) {
	assert.Equal(t, 42, futures.BlockOn(after(3, 42)))
}

func TestBlockOnCrossGoroutine(t *testing.T) {
	tx, rx := futures.Oneshot[string]()

	go func() {
		time.Sleep(time.Millisecond)
		tx.Send("done")
	}()

	var fut futures.Future[string] = rx
	assert.Equal(t, "done", futures.BlockOn(fut))
}
