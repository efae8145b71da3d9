// Package futures is a library of composable asynchronous combinators.
//
// An asynchronous computation here is a [Future]: a poll-based state
// machine, repeatedly asked "are you done yet", that either returns its
// final value or arranges, through the [Waker] of the current turn, to be
// asked again once progress is possible. Nothing in this package blocks,
// spawns goroutines behind the caller's back, or embeds a scheduler or an
// I/O reactor; the package only defines how pre-existing asynchronous
// operations compose.
//
// # Fan-In: Join
//
// [Join] (and [Join3], [Join4], [Join5] and the homogeneous [JoinAll])
// takes N independently-progressing futures and yields one future
// completing with all N outputs in operand order. A single poll of the
// composite advances every operand that is not yet ready, so progress on
// the whole set is proportional to the driver's polls and no operand
// starves another. Completed operand outputs park in a [MaybeDone] slot
// and are taken exactly once, the turn the last operand completes.
//
// Join has no failure channel of its own. A combinator that stops at the
// first failed-looking operand is a race, not a join; if an operand's
// output type carries an error, the error rides along in the aggregate for
// the caller to inspect.
//
// # Sequencing Byte Sources: Chain
//
// [Chain] composes two asynchronous byte sources ([AsyncReader]) into one:
// reads drain the first source until it reports end-of-data, then switch,
// permanently, to the second. The switch costs no extra turn, applies to
// the plain, vectored and buffered (fill/consume) read protocols alike,
// and is never triggered by a zero-length read request.
//
// # Crossing Task Boundaries: the Spawn Bridge
//
// [Spawn] and [SpawnWithHandle] bridge between a task-launching capability
// (a [Spawner], supplied by the surrounding executor) and the caller:
// SpawnWithHandle rewrites a future so that its output travels over a
// one-shot channel ([Oneshot]) to a [RemoteHandle] the caller keeps. The
// handle is itself a Future and outlives the caller's interest gracefully:
// cancel it and the spawned side sees, at its next turn, that the output
// is no longer wanted. Launch failures surface synchronously and produce
// no dangling handle.
//
// # Driving It All
//
// Every combinator in this package is itself a Future (or an AsyncReader),
// so composites nest freely. At the outermost layer something must supply
// the turns: the reference [Executor], a single-threaded run queue, or
// [BlockOn], which parks the calling goroutine between turns. Neither is
// privileged; any
// driver that honors the poll/wake contract can run these combinators.
//
// # Errors vs. Contract Violations
//
// Launch failures from a [Spawner] are ordinary errors, returned
// synchronously and never retried internally. Misuses of a one-shot state
// machine, such as taking a [MaybeDone] twice or polling a completed Join,
// are programmer errors; this package panics on them, loudly, rather than
// quietly producing wrong results.
package futures
