package logging

import (
	"fmt"

	"github.com/go-kit/kit/log"
)

// captureBuffer is how many events a CaptureLogger holds before Log blocks.
// Tests that emit more than this must drain Output concurrently.
const captureBuffer = 10

// CaptureLogger is a go-kit Logger that records each event on a channel as a
// map of key/value pairs, so tests can assert on exactly what was logged.
//
// Log panics on an odd number of key/value arguments.  That is a programming
// error, and test code is the right place to catch it loudly.
type CaptureLogger interface {
	log.Logger

	// Output returns the channel of recorded events
	Output() <-chan map[interface{}]interface{}
}

type capture struct {
	events chan map[interface{}]interface{}
}

func (c *capture) Output() <-chan map[interface{}]interface{} {
	return c.events
}

func (c *capture) Log(kv ...interface{}) error {
	if len(kv)%2 != 0 {
		panic(fmt.Errorf("odd number of log arguments: %d", len(kv)))
	}

	event := make(map[interface{}]interface{}, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		event[kv[i]] = kv[i+1]
	}

	c.events <- event
	return nil
}

// NewCaptureLogger constructs a CaptureLogger with a small event buffer
func NewCaptureLogger() CaptureLogger {
	return &capture{
		events: make(chan map[interface{}]interface{}, captureBuffer),
	}
}
