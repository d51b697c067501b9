// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package cond

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lockstep-org/lockstep/mutex"
)

var (
	// ErrTimeout is returned when a timeout elapses while the predicate is still false.
	// This error does not apply when using a context.  ctx.Err() is returned in that case.
	ErrTimeout = errors.New("the predicate did not become true within the timeout")
)

// Interface represents a condition variable bound to a single mutex.  Callers
// of the wait methods must hold the associated mutex; the predicate is always
// evaluated while the mutex is held, and the mutex is held again when a wait
// method returns.
type Interface interface {
	// Wait blocks the calling goroutine until the predicate is true.  The
	// associated mutex is released while suspended and re-acquired before each
	// re-check, so the predicate is never trusted across a wakeup (spurious or
	// otherwise) without re-evaluation.
	//
	// If the caller does not hold the associated mutex, mutex.ErrNotOwner is
	// returned and the calling goroutine is not suspended.
	Wait(predicate func() bool) error

	// WaitWait behaves as Wait, additionally giving up when the supplied time
	// channel becomes signaled.  On timeout the mutex is re-acquired and the
	// predicate checked one final time; ErrTimeout is returned only if it is
	// still false.
	WaitWait(predicate func() bool, t <-chan time.Time) error

	// WaitCtx behaves as Wait, additionally giving up when the supplied context
	// is canceled.  On cancellation the mutex is re-acquired and the predicate
	// checked one final time; ctx.Err() is returned only if it is still false.
	WaitCtx(ctx context.Context, predicate func() bool) error

	// NotifyOne wakes at most one waiting goroutine.  Which waiter is woken is
	// unspecified.  Calling NotifyOne with no waiters is a no-op.
	NotifyOne()

	// NotifyAll wakes every goroutine currently waiting.
	NotifyAll()
}

// New constructs a condition variable bound to the given mutex.
func New(m mutex.Interface) Interface {
	return &conditionVariable{
		m: m,
	}
}

// conditionVariable is the internal Interface implementation.  Each waiter
// registers a channel in FIFO order before releasing the associated mutex,
// which is what rules out lost wakeups: any notify issued after the waiter
// could observe a false predicate necessarily sees the registration.
type conditionVariable struct {
	m mutex.Interface

	lock    sync.Mutex
	waiters []chan struct{}
}

func (cv *conditionVariable) register() chan struct{} {
	w := make(chan struct{})
	cv.lock.Lock()
	cv.waiters = append(cv.waiters, w)
	cv.lock.Unlock()
	return w
}

// deregister removes a waiter that gave up before being notified.  It returns
// false if the waiter had already been notified, in which case the caller
// consumed a notification meant for it.
func (cv *conditionVariable) deregister(w chan struct{}) bool {
	cv.lock.Lock()
	defer cv.lock.Unlock()

	for i, c := range cv.waiters {
		if c == w {
			cv.waiters = append(cv.waiters[:i], cv.waiters[i+1:]...)
			return true
		}
	}

	return false
}

func (cv *conditionVariable) Wait(predicate func() bool) error {
	for !predicate() {
		w := cv.register()
		if err := cv.m.Unlock(); err != nil {
			cv.deregister(w)
			return err
		}

		<-w
		cv.m.Lock()
	}

	return nil
}

func (cv *conditionVariable) WaitWait(predicate func() bool, t <-chan time.Time) error {
	for !predicate() {
		w := cv.register()
		if err := cv.m.Unlock(); err != nil {
			cv.deregister(w)
			return err
		}

		select {
		case <-w:
			cv.m.Lock()

		case <-t:
			if !cv.deregister(w) {
				// a notification raced the timeout and was consumed here.
				// pass it along so no other waiter loses its wakeup.
				cv.NotifyOne()
			}

			cv.m.Lock()
			if predicate() {
				return nil
			}

			return ErrTimeout
		}
	}

	return nil
}

func (cv *conditionVariable) WaitCtx(ctx context.Context, predicate func() bool) error {
	for !predicate() {
		w := cv.register()
		if err := cv.m.Unlock(); err != nil {
			cv.deregister(w)
			return err
		}

		select {
		case <-w:
			cv.m.Lock()

		case <-ctx.Done():
			if !cv.deregister(w) {
				cv.NotifyOne()
			}

			cv.m.Lock()
			if predicate() {
				return nil
			}

			return ctx.Err()
		}
	}

	return nil
}

func (cv *conditionVariable) NotifyOne() {
	cv.lock.Lock()
	if len(cv.waiters) > 0 {
		close(cv.waiters[0])
		cv.waiters = cv.waiters[1:]
	}
	cv.lock.Unlock()
}

func (cv *conditionVariable) NotifyAll() {
	cv.lock.Lock()
	for _, w := range cv.waiters {
		close(w)
	}
	cv.waiters = nil
	cv.lock.Unlock()
}
