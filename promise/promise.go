// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package promise

import (
	"errors"
	"sync/atomic"

	"github.com/lockstep-org/lockstep/cond"
	"github.com/lockstep-org/lockstep/mutex"
)

var (
	// ErrAlreadySatisfied is returned when a promise is given a value or an error
	// after it has already been settled.
	ErrAlreadySatisfied = errors.New("the promise has already been satisfied")

	// ErrAlreadyConsumed is returned by Future.Get after the value has been taken.
	ErrAlreadyConsumed = errors.New("the future value has already been consumed")

	// ErrBrokenPromise is observed by the future when the promise was closed
	// before being satisfied.
	ErrBrokenPromise = errors.New("the promise was abandoned before being satisfied")

	// ErrTimeout is returned by the timed get when the shared state did not
	// become ready soon enough.
	ErrTimeout = errors.New("the shared state did not become ready within the timeout")
)

// state is the shared state jointly owned by a Promise and its Future.
// ready transitions false to true exactly once; after that the value and
// error are immutable.
type state[T any] struct {
	lock mutex.Interface
	cond cond.Interface

	ready bool
	value T
	err   error

	callbacks []func(T, error)
	done      chan struct{}
}

func newState[T any]() *state[T] {
	s := &state[T]{
		lock: mutex.New(),
		done: make(chan struct{}),
	}

	s.cond = cond.New(s.lock)
	return s
}

// settle makes the state ready.  Only the first settle mutates anything;
// subsequent calls return ErrAlreadySatisfied.
func (s *state[T]) settle(value T, err error) error {
	s.lock.Lock()
	if s.ready {
		s.lock.Unlock()
		return ErrAlreadySatisfied
	}

	s.value = value
	s.err = err
	s.ready = true

	callbacks := s.callbacks
	s.callbacks = nil
	s.lock.Unlock()

	close(s.done)
	s.cond.NotifyAll()

	for _, f := range callbacks {
		f(value, err)
	}

	return nil
}

// Promise is the write handle of the pair.  Exactly one of SetValue or
// SetError settles it; later calls fail with ErrAlreadySatisfied.  A Promise
// is safe for concurrent use, although only one settle attempt can win.
type Promise[T any] struct {
	s           *state[T]
	futureTaken int32
}

// New constructs an unsatisfied Promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{
		s: newState[T](),
	}
}

// SetValue satisfies the promise with a value, waking the paired future.
func (p *Promise[T]) SetValue(value T) error {
	return p.s.settle(value, nil)
}

// SetError satisfies the promise with an error, which Future.Get re-raises
// on the consuming goroutine.
func (p *Promise[T]) SetError(err error) error {
	var zero T
	return p.s.settle(zero, err)
}

// Future derives the single read handle paired with this promise.  Deriving
// a second future is a programming error and panics.
func (p *Promise[T]) Future() *Future[T] {
	if !atomic.CompareAndSwapInt32(&p.futureTaken, 0, 1) {
		panic("a future has already been derived from this promise")
	}

	return &Future[T]{s: p.s}
}

// Close abandons the promise.  If it has not been satisfied, the paired future
// observes ErrBrokenPromise.  Closing a satisfied or already closed promise is
// a no-op, so Close is safe to defer unconditionally next to SetValue.
func (p *Promise[T]) Close() error {
	var zero T
	p.s.settle(zero, ErrBrokenPromise)
	return nil
}
