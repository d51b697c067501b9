// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package promise

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/lockstep-org/lockstep/cond"
)

// Future is the read handle of the pair.  Get is single-use: the first call
// that observes the shared state consumes it, and any later call fails with
// ErrAlreadyConsumed.  The timed and context-aware variants only consume on
// success, so a timed-out get can be retried.
type Future[T any] struct {
	s        *state[T]
	consumed int32
}

// Ready returns a channel that is closed once the shared state is ready.
// This channel has similar use cases to context.Done().
func (f *Future[T]) Ready() <-chan struct{} {
	return f.s.done
}

// IsReady tests whether the shared state is ready without blocking or
// consuming the value.
func (f *Future[T]) IsReady() bool {
	select {
	case <-f.s.done:
		return true
	default:
		return false
	}
}

// Get blocks until the shared state is ready, then returns the value or
// re-raises the error the promise was satisfied with.
func (f *Future[T]) Get() (T, error) {
	var zero T
	if !atomic.CompareAndSwapInt32(&f.consumed, 0, 1) {
		return zero, ErrAlreadyConsumed
	}

	f.s.lock.Lock()
	// Wait only fails when the caller does not hold the mutex, and the
	// Lock above guarantees we do
	_ = f.s.cond.Wait(func() bool { return f.s.ready })
	value, err := f.s.value, f.s.err
	f.s.lock.Unlock()

	return value, err
}

// GetWait behaves as Get, additionally giving up with ErrTimeout if the
// supplied time channel becomes signaled while the state is still pending.
func (f *Future[T]) GetWait(t <-chan time.Time) (T, error) {
	var zero T
	if atomic.LoadInt32(&f.consumed) != 0 {
		return zero, ErrAlreadyConsumed
	}

	f.s.lock.Lock()
	waitErr := f.s.cond.WaitWait(func() bool { return f.s.ready }, t)
	if waitErr != nil {
		f.s.lock.Unlock()
		if errors.Is(waitErr, cond.ErrTimeout) {
			return zero, ErrTimeout
		}

		return zero, waitErr
	}

	value, err := f.s.value, f.s.err
	f.s.lock.Unlock()

	if !atomic.CompareAndSwapInt32(&f.consumed, 0, 1) {
		return zero, ErrAlreadyConsumed
	}

	return value, err
}

// GetCtx behaves as Get, additionally giving up with ctx.Err() if the supplied
// context is canceled while the state is still pending.
func (f *Future[T]) GetCtx(ctx context.Context) (T, error) {
	var zero T
	if atomic.LoadInt32(&f.consumed) != 0 {
		return zero, ErrAlreadyConsumed
	}

	f.s.lock.Lock()
	waitErr := f.s.cond.WaitCtx(ctx, func() bool { return f.s.ready })
	if waitErr != nil {
		f.s.lock.Unlock()
		return zero, waitErr
	}

	value, err := f.s.value, f.s.err
	f.s.lock.Unlock()

	if !atomic.CompareAndSwapInt32(&f.consumed, 0, 1) {
		return zero, ErrAlreadyConsumed
	}

	return value, err
}

// Subscribe registers a callback invoked once the shared state becomes ready.
// If the state is already ready, the callback runs on the calling goroutine
// before Subscribe returns; otherwise it runs on the settling goroutine.
// Callbacks do not consume the value and must not block.
func (f *Future[T]) Subscribe(callback func(T, error)) {
	f.s.lock.Lock()
	if f.s.ready {
		value, err := f.s.value, f.s.err
		f.s.lock.Unlock()
		callback(value, err)
		return
	}

	f.s.callbacks = append(f.s.callbacks, callback)
	f.s.lock.Unlock()
}
