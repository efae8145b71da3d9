package futures_test

import (
	"fmt"

	"github.com/b97tsk/futures"
)

func Example() {
	// Create an executor to supply the turns.
	var myExecutor futures.Executor

	// Set up an autorun function to run the executor automatically
	// whenever a task is spawned or woken.
	myExecutor.Autorun(myExecutor.Run)

	// Join drives both futures concurrently and completes with both
	// outputs, in operand order.
	pair := futures.Join(futures.Ready(1), futures.Ready(2))

	// Launch the join on the executor and keep a handle on its output.
	handle, err := futures.SpawnWithHandle(&myExecutor, pair)
	if err != nil {
		panic(err)
	}

	// The handle is itself a future; drive it from this goroutine.
	v := futures.BlockOn[futures.Tuple2[int, int]](handle)
	fmt.Println(v.V1, v.V2)

	// Output:
	// 1 2
}

func ExampleJoin3() {
	v, ok := futures.Join3(
		futures.Ready("a"),
		futures.Ready("b"),
		futures.Ready("c"),
	).Poll(futures.NewContext(futures.WakerFunc(func() {})))

	fmt.Println(ok, v.V1+v.V2+v.V3)

	// Output:
	// true abc
}
