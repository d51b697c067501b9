// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"github.com/lockstep-org/lockstep/promise"
)

// Packaged wraps a callable so that its result is delivered through a
// promise/future pair.  The returned Runnable executes the callable on a new
// goroutine when run; the returned Future yields the callable's value or
// error.  If the lifecycle is stopped before the callable runs, the future
// observes promise.ErrBrokenPromise.
//
// Arguments for the callable are bound by closure capture at the call site:
//
//	r, f := task.Packaged(func() (int, error) { return compute(&shared), nil })
func Packaged[T any](fn func() (T, error)) (Runnable, *promise.Future[T]) {
	p := promise.New[T]()
	future := p.Future()

	r := RunnableFunc(func(lifecycle *Lifecycle) error {
		lifecycle.Go(func(shutdown <-chan struct{}) {
			defer p.Close()

			select {
			case <-shutdown:
				// abandoned before execution; Close breaks the promise
				return
			default:
			}

			value, err := fn()
			if err != nil {
				p.SetError(err)
			} else {
				p.SetValue(value)
			}
		})

		return nil
	})

	return r, future
}
