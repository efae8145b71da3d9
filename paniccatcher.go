package futures

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// A paniccatcher collects panics out of task turns so that one panicking
// task cannot keep the rest of a run queue from draining.
// Collected panics resurface, combined, when the run ends.
type paniccatcher struct {
	items  []panicitem
	goexit bool
}

type panicitem struct {
	value any
	stack []byte
}

// TryCatch calls f and reports whether f returned normally.
func (pc *paniccatcher) TryCatch(f func()) (ok bool) {
	defer func() {
		if !ok {
			if v := recover(); v != nil {
				pc.items = append(pc.items, panicitem{v, debug.Stack()})
			} else {
				pc.goexit = true
			}
		}
	}()
	f()
	return true
}

// Repanic panics with everything caught so far, if anything was.
func (pc *paniccatcher) Repanic() {
	if len(pc.items) != 0 {
		panic(&panicvalue{items: pc.items})
	}
	if pc.goexit {
		runtime.Goexit()
	}
}

type panicvalue struct {
	items []panicitem
}

func (pv *panicvalue) Error() string {
	var b strings.Builder
	b.WriteString("as follows:")
	for i, p := range pv.items {
		fmt.Fprintf(&b, "\n(%d/%d) panic: %v\n\n", i+1, len(pv.items), p.value)
		b.Write(p.stack)
	}
	return b.String()
}

func (pv *panicvalue) Unwrap() []error {
	var errs []error
	for _, p := range pv.items {
		if err, ok := p.value.(error); ok {
			errs = append(errs, err)
		}
	}
	return errs
}
