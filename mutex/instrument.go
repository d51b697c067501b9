// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package mutex

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-kit/kit/metrics/discard"

	"github.com/lockstep-org/lockstep/clock"
	"github.com/lockstep-org/lockstep/logging"
	"github.com/lockstep-org/lockstep/xmetrics"
)

// InstrumentOption represents a configurable option for instrumenting a mutex
type InstrumentOption func(*instrumentedMutex)

// WithHolds establishes a metric that tracks how many times the lock is currently held,
// i.e. a gauge that is 1 while held and 0 otherwise.  If a nil metric is supplied,
// hold counts are discarded.
func WithHolds(a xmetrics.Adder) InstrumentOption {
	return func(i *instrumentedMutex) {
		if a != nil {
			i.holds = a
		} else {
			i.holds = discard.NewGauge()
		}
	}
}

// WithErrors establishes a metric that tracks how many acquisitions fail, whether
// through timeout, context cancellation, or TryLock contention.  If a nil metric
// is supplied, error counts are discarded.
func WithErrors(a xmetrics.Adder) InstrumentOption {
	return func(i *instrumentedMutex) {
		if a != nil {
			i.errors = a
		} else {
			i.errors = discard.NewCounter()
		}
	}
}

// WithHoldDuration establishes a metric that observes how long the lock is held,
// in seconds, using the supplied clock.  If a nil metric is supplied, observations
// are discarded.  If a nil clock is supplied, the system clock is used.
func WithHoldDuration(o xmetrics.Observer, c clock.Interface) InstrumentOption {
	return func(i *instrumentedMutex) {
		if o != nil {
			i.holdDuration = o
		} else {
			i.holdDuration = discard.NewHistogram()
		}

		if c != nil {
			i.clock = c
		} else {
			i.clock = clock.System()
		}
	}
}

// WithLogger establishes a go-kit logger used to record failed acquisitions and
// Unlock misuse.  If a nil logger is supplied, the default NOP logger is used.
func WithLogger(l log.Logger) InstrumentOption {
	return func(i *instrumentedMutex) {
		if l != nil {
			i.logger = l
		} else {
			i.logger = logging.DefaultLogger()
		}
	}
}

// Instrument decorates an existing mutex with a set of options.  By default all
// metrics are discarded and nothing is logged.
func Instrument(m Interface, o ...InstrumentOption) Interface {
	im := &instrumentedMutex{
		Interface:    m,
		holds:        discard.NewGauge(),
		errors:       discard.NewCounter(),
		holdDuration: discard.NewHistogram(),
		clock:        clock.System(),
		logger:       logging.DefaultLogger(),
	}

	for _, f := range o {
		f(im)
	}

	return im
}

type instrumentedMutex struct {
	Interface
	holds        xmetrics.Adder
	errors       xmetrics.Adder
	holdDuration xmetrics.Observer
	clock        clock.Interface
	logger       log.Logger

	// acquiredAt is the UnixNano timestamp of the most recent acquisition.
	// It is accessed atomically: a misused Unlock must not race the writes
	// of the next acquirer.
	acquiredAt int64
}

func (im *instrumentedMutex) acquired() {
	im.holds.Add(1.0)
	atomic.StoreInt64(&im.acquiredAt, im.clock.Now().UnixNano())
}

func (im *instrumentedMutex) Lock() {
	im.Interface.Lock()
	im.acquired()
}

func (im *instrumentedMutex) LockWait(t <-chan time.Time) (err error) {
	err = im.Interface.LockWait(t)
	if err != nil {
		im.errors.Add(1.0)
		im.logger.Log(level.Key(), level.WarnValue(), logging.MessageKey(), "lock not acquired", logging.ErrorKey(), err)
	} else {
		im.acquired()
	}

	return
}

func (im *instrumentedMutex) LockCtx(ctx context.Context) (err error) {
	err = im.Interface.LockCtx(ctx)
	if err != nil {
		im.errors.Add(1.0)
		im.logger.Log(level.Key(), level.WarnValue(), logging.MessageKey(), "lock not acquired", logging.ErrorKey(), err)
	} else {
		im.acquired()
	}

	return
}

func (im *instrumentedMutex) TryLock() bool {
	acquired := im.Interface.TryLock()
	if acquired {
		im.acquired()
	} else {
		im.errors.Add(1.0)
	}

	return acquired
}

func (im *instrumentedMutex) Unlock() (err error) {
	// the hold duration must be computed before the release: once Unlock
	// returns, the next acquirer is free to overwrite acquiredAt
	held := im.clock.Now().UnixNano() - atomic.LoadInt64(&im.acquiredAt)

	err = im.Interface.Unlock()
	if err != nil {
		im.errors.Add(1.0)
		im.logger.Log(level.Key(), level.ErrorValue(), logging.MessageKey(), "unlock by non-owner", logging.ErrorKey(), err)
	} else {
		im.holdDuration.Observe(time.Duration(held).Seconds())
		im.holds.Add(-1.0)
	}

	return
}
