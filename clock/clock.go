// Package clock abstracts the parts of the stdlib time package used by this
// library, primarily so timed waits can be driven deterministically in tests.
package clock

import "time"

// Interface represents a source of time and timers.
type Interface interface {
	Now() time.Time
	Sleep(time.Duration)
	NewTimer(time.Duration) Timer
}

// Timer represents an event source triggered at a particular time.  It is the
// analog of time.Timer, with the channel behind an accessor so it can be mocked.
// The C channel is what the LockWait, WaitWait, and GetWait methods elsewhere
// in this library accept.
type Timer interface {
	C() <-chan time.Time
	Reset(time.Duration) bool
	Stop() bool
}

// System returns a clock backed by the time package.
func System() Interface {
	return systemClock{}
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

type systemTimer struct {
	*time.Timer
}

func (st systemTimer) C() <-chan time.Time {
	return st.Timer.C
}

// WrapTimer adapts an existing time.Timer, e.g. WrapTimer(time.NewTimer(time.Second)).
func WrapTimer(t *time.Timer) Timer {
	return systemTimer{t}
}
