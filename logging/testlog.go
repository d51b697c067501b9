package logging

import (
	"io"

	"github.com/go-kit/kit/log"
)

// sink matches the Log method shared by testing.T and testing.B
type sink interface {
	Log(...interface{})
}

// sinkWriter routes writes through a sink so that log output ends up
// interleaved with the test's own output
type sinkWriter struct {
	s sink
}

func (sw sinkWriter) Write(data []byte) (int, error) {
	sw.s.Log(string(data))
	return len(data), nil
}

// NewTestWriter adapts a testing.T or testing.B into an io.Writer.  The test
// runtime serializes Log calls, so no additional synchronization is needed.
func NewTestWriter(s sink) io.Writer {
	return sinkWriter{s}
}

// NewTestLogger builds a logger whose output lands in the supplied test's log.
// When options are nil the level floor drops to DEBUG, since test output is
// only displayed for failing or verbose runs anyway.
func NewTestLogger(o *Options, s sink) log.Logger {
	if o == nil {
		o = &Options{Level: "DEBUG"}
	}

	return NewFilter(
		log.With(
			o.format()(NewTestWriter(s)),
			TimestampKey(), log.DefaultTimestampUTC,
		),
		o,
	)
}
