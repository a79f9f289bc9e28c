package perf_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/theory/pg-priv/internal/perf"
)

func ExampleFormatBytes() {
	var value int
	value = 5546875
	fmt.Printf("%dB = %s\n", value, perf.FormatBytes(value))
	value = 4
	fmt.Printf("%dB = %s\n", value, perf.FormatBytes(value))
	value = 900
	fmt.Printf("%dB = %s\n", value, perf.FormatBytes(value))
	// Output:
	// 5546875B = 5.3MiB
	// 4B = 4B
	// 900B = 0.9KiB
}

func TestFormatBytes(t *testing.T) {
	r := require.New(t)

	r.Equal("0B", perf.FormatBytes(0))
	r.Equal("1KiB", perf.FormatBytes(999))
}

func TestStopWatch(t *testing.T) {
	r := require.New(t)

	w := perf.StopWatch{}
	w.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(0*time.Nanosecond, w.Total)
	r.Equal(1, w.Count)
	backup := w.Total

	w.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(backup, w.Total)
	r.Equal(2, w.Count)
}
