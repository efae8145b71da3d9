package futures

// Tuple2 is the aggregate output of [Join], one field per operand, in
// operand order.
type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Tuple3 is the aggregate output of [Join3].
type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Tuple4 is the aggregate output of [Join4].
type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Tuple5 is the aggregate output of [Join5].
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Join returns a [Future] that drives two futures to completion
// concurrently, completing with both outputs.
//
// Every poll advances every operand that is not yet ready, in operand order,
// with no short-circuiting: the second operand is advanced this turn even if
// the first is still pending. Progress on the whole set is therefore
// proportional to the driver's polls and no operand starves another.
// The returned future completes the first turn every operand is ready,
// taking each output exactly once.
//
// Join has no failure channel of its own. If an operand's output type
// carries an error, the error appears in the aggregate for the caller to
// inspect; Join never short-circuits on it.
//
// Polling the returned future after it has completed is a contract
// violation and panics.
func Join[T1, T2 any](fut1 Future[T1], fut2 Future[T2]) Future[Tuple2[T1, T2]] {
	return &join2[T1, T2]{
		f1: MaybeDone[T1]{fut: fut1},
		f2: MaybeDone[T2]{fut: fut2},
	}
}

// Join3 is [Join], but with three futures.
func Join3[T1, T2, T3 any](fut1 Future[T1], fut2 Future[T2], fut3 Future[T3]) Future[Tuple3[T1, T2, T3]] {
	return &join3[T1, T2, T3]{
		f1: MaybeDone[T1]{fut: fut1},
		f2: MaybeDone[T2]{fut: fut2},
		f3: MaybeDone[T3]{fut: fut3},
	}
}

// Join4 is [Join], but with four futures.
func Join4[T1, T2, T3, T4 any](fut1 Future[T1], fut2 Future[T2], fut3 Future[T3], fut4 Future[T4]) Future[Tuple4[T1, T2, T3, T4]] {
	return &join4[T1, T2, T3, T4]{
		f1: MaybeDone[T1]{fut: fut1},
		f2: MaybeDone[T2]{fut: fut2},
		f3: MaybeDone[T3]{fut: fut3},
		f4: MaybeDone[T4]{fut: fut4},
	}
}

// Join5 is [Join], but with five futures.
func Join5[T1, T2, T3, T4, T5 any](fut1 Future[T1], fut2 Future[T2], fut3 Future[T3], fut4 Future[T4], fut5 Future[T5]) Future[Tuple5[T1, T2, T3, T4, T5]] {
	return &join5[T1, T2, T3, T4, T5]{
		f1: MaybeDone[T1]{fut: fut1},
		f2: MaybeDone[T2]{fut: fut2},
		f3: MaybeDone[T3]{fut: fut3},
		f4: MaybeDone[T4]{fut: fut4},
		f5: MaybeDone[T5]{fut: fut5},
	}
}

type join2[T1, T2 any] struct {
	f1 MaybeDone[T1]
	f2 MaybeDone[T2]
}

func (j *join2[T1, T2]) Poll(cx *Context) (Tuple2[T1, T2], bool) {
	allDone := j.f1.Poll(cx)
	allDone = j.f2.Poll(cx) && allDone
	if !allDone {
		return Tuple2[T1, T2]{}, false
	}
	return Tuple2[T1, T2]{j.f1.Take(), j.f2.Take()}, true
}

type join3[T1, T2, T3 any] struct {
	f1 MaybeDone[T1]
	f2 MaybeDone[T2]
	f3 MaybeDone[T3]
}

func (j *join3[T1, T2, T3]) Poll(cx *Context) (Tuple3[T1, T2, T3], bool) {
	allDone := j.f1.Poll(cx)
	allDone = j.f2.Poll(cx) && allDone
	allDone = j.f3.Poll(cx) && allDone
	if !allDone {
		return Tuple3[T1, T2, T3]{}, false
	}
	return Tuple3[T1, T2, T3]{j.f1.Take(), j.f2.Take(), j.f3.Take()}, true
}

type join4[T1, T2, T3, T4 any] struct {
	f1 MaybeDone[T1]
	f2 MaybeDone[T2]
	f3 MaybeDone[T3]
	f4 MaybeDone[T4]
}

func (j *join4[T1, T2, T3, T4]) Poll(cx *Context) (Tuple4[T1, T2, T3, T4], bool) {
	allDone := j.f1.Poll(cx)
	allDone = j.f2.Poll(cx) && allDone
	allDone = j.f3.Poll(cx) && allDone
	allDone = j.f4.Poll(cx) && allDone
	if !allDone {
		return Tuple4[T1, T2, T3, T4]{}, false
	}
	return Tuple4[T1, T2, T3, T4]{j.f1.Take(), j.f2.Take(), j.f3.Take(), j.f4.Take()}, true
}

type join5[T1, T2, T3, T4, T5 any] struct {
	f1 MaybeDone[T1]
	f2 MaybeDone[T2]
	f3 MaybeDone[T3]
	f4 MaybeDone[T4]
	f5 MaybeDone[T5]
}

func (j *join5[T1, T2, T3, T4, T5]) Poll(cx *Context) (Tuple5[T1, T2, T3, T4, T5], bool) {
	allDone := j.f1.Poll(cx)
	allDone = j.f2.Poll(cx) && allDone
	allDone = j.f3.Poll(cx) && allDone
	allDone = j.f4.Poll(cx) && allDone
	allDone = j.f5.Poll(cx) && allDone
	if !allDone {
		return Tuple5[T1, T2, T3, T4, T5]{}, false
	}
	return Tuple5[T1, T2, T3, T4, T5]{j.f1.Take(), j.f2.Take(), j.f3.Take(), j.f4.Take(), j.f5.Take()}, true
}

// JoinAll generalizes [Join] to a runtime-determined number of operands of
// one type, completing with the outputs in operand order.
//
// JoinAll of no operands completes on its first poll with an empty slice.
func JoinAll[T any](futs ...Future[T]) Future[[]T] {
	slots := make([]MaybeDone[T], len(futs))
	for i, fut := range futs {
		slots[i].fut = fut
	}
	return &joinAll[T]{slots: slots}
}

type joinAll[T any] struct {
	slots []MaybeDone[T]
}

func (j *joinAll[T]) Poll(cx *Context) ([]T, bool) {
	allDone := true
	for i := range j.slots {
		if !j.slots[i].Poll(cx) {
			allDone = false
		}
	}
	if !allDone {
		return nil, false
	}
	values := make([]T, len(j.slots))
	for i := range j.slots {
		values[i] = j.slots[i].Take()
	}
	return values, true
}
