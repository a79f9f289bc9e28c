package perf

import (
	"time"
)

// StopWatch accumulates wall time spent in instrumented sections.
type StopWatch struct {
	Count int
	Total time.Duration
}

type Timeable func()

func (t *StopWatch) TimeIt(fn Timeable) (duration time.Duration) {
	start := time.Now()
	t.Count++
	defer func() {
		duration = time.Since(start)
		t.Total += duration
	}()

	fn()
	return
}
