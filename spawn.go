package futures

// A Spawner is a task-launching capability: some executor that can take
// ownership of a [Task] and drive it to completion.
//
// Spawn either takes t, or reports a launch error (for example, the
// executor is shutting down). A launch error means t was not taken and will
// never run. Spawn never blocks.
//
// This package never assumes a particular executor; anything that
// implements Spawner can serve, [Executor] being the reference
// implementation.
type Spawner interface {
	Spawn(t Task) error
}

// A LocalSpawner is a task-launching capability bound to a single thread of
// execution. Go tasks carry no cross-thread restrictions, so the contract
// is the same as [Spawner]'s; the split keeps executors honest about which
// guarantee they provide.
type LocalSpawner interface {
	SpawnLocal(t Task) error
}

// Spawn launches fut on sp with its output discarded.
//
// A launch error from sp is returned synchronously and never retried here;
// retry policy, if any, belongs to the caller.
func Spawn[T any](sp Spawner, fut Future[T]) error {
	return sp.Spawn(Discard(fut))
}

// SpawnWithHandle launches fut on sp and returns a [RemoteHandle] that
// completes with fut's output.
//
// If the launch fails, the error is returned and no handle is produced.
// Once obtained, the handle can be polled to completion regardless of
// whether the original caller is still around.
func SpawnWithHandle[T any](sp Spawner, fut Future[T]) (*RemoteHandle[T], error) {
	remote, handle := makeRemote(fut)
	if err := sp.Spawn(remote); err != nil {
		return nil, err
	}
	return handle, nil
}

// SpawnLocal is [Spawn] for a [LocalSpawner].
func SpawnLocal[T any](sp LocalSpawner, fut Future[T]) error {
	return sp.SpawnLocal(Discard(fut))
}

// SpawnLocalWithHandle is [SpawnWithHandle] for a [LocalSpawner].
func SpawnLocalWithHandle[T any](sp LocalSpawner, fut Future[T]) (*RemoteHandle[T], error) {
	remote, handle := makeRemote(fut)
	if err := sp.SpawnLocal(remote); err != nil {
		return nil, err
	}
	return handle, nil
}
