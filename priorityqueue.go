package futures

type lesser[E any] interface {
	less(v E) bool
}

// A priorityqueue pops the least element first, by the elements' less
// method. Elements that compare equal pop in arrival order (FIFO).
type priorityqueue[E lesser[E]] struct {
	heap []pqentry[E]
	seq  uint64
}

type pqentry[E lesser[E]] struct {
	v   E
	seq uint64
}

func (a pqentry[E]) before(b pqentry[E]) bool {
	if a.v.less(b.v) {
		return true
	}
	if b.v.less(a.v) {
		return false
	}
	return a.seq < b.seq
}

func (q *priorityqueue[E]) Empty() bool {
	return len(q.heap) == 0
}

func (q *priorityqueue[E]) Push(v E) {
	q.seq++
	q.heap = append(q.heap, pqentry[E]{v, q.seq})
	q.up(len(q.heap) - 1)
}

func (q *priorityqueue[E]) Pop() E {
	h := q.heap
	v := h[0].v
	n := len(h) - 1
	h[0] = h[n]
	h[n] = pqentry[E]{}
	q.heap = h[:n]
	if n > 0 {
		q.down(0)
	}
	return v
}

func (q *priorityqueue[E]) up(i int) {
	h := q.heap
	for i > 0 {
		parent := (i - 1) / 2
		if !h[i].before(h[parent]) {
			break
		}
		h[i], h[parent] = h[parent], h[i]
		i = parent
	}
}

func (q *priorityqueue[E]) down(i int) {
	h := q.heap
	n := len(h)
	for {
		next := 2*i + 1
		if next >= n {
			break
		}
		if right := next + 1; right < n && h[right].before(h[next]) {
			next = right
		}
		if !h[next].before(h[i]) {
			break
		}
		h[i], h[next] = h[next], h[i]
		i = next
	}
}
