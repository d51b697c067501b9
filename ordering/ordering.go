// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package ordering

import "sync"

// Operation is a unit of work in a causally ordered execution chain.  An
// operation waits for its dependencies to complete before becoming ready and
// signals its own completion to unblock dependents.  Both channels are closed
// at most once and are safe to receive from in any number of goroutines.
type Operation interface {
	// Ready returns a channel that is closed when every dependency has
	// completed, signalling that this operation may begin.
	Ready() <-chan struct{}

	// Completed returns a channel that is closed when Complete has been called.
	Completed() <-chan struct{}

	// Complete marks this operation as finished, allowing dependents to
	// proceed.  Complete is idempotent, and completing an operation happens
	// before any dependent observes its own Ready channel closed.
	Complete()
}

type operation struct {
	ready     <-chan struct{}
	completed chan struct{}
	once      sync.Once
}

func (o *operation) Ready() <-chan struct{} {
	return o.ready
}

func (o *operation) Completed() <-chan struct{} {
	return o.completed
}

func (o *operation) Complete() {
	o.once.Do(func() {
		close(o.completed)
	})
}

var alwaysReady = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// First returns an operation with no dependencies.  Its Ready channel is
// closed from the start.
func First() Operation {
	return &operation{
		ready:     alwaysReady,
		completed: make(chan struct{}),
	}
}

// After returns an operation that becomes ready only once each dependency has
// completed.
func After(dependencies ...Operation) Operation {
	switch len(dependencies) {
	case 0:
		return First()

	case 1:
		return &operation{
			ready:     dependencies[0].Completed(),
			completed: make(chan struct{}),
		}

	default:
		ready := make(chan struct{})
		go func() {
			defer close(ready)
			for _, d := range dependencies {
				<-d.Completed()
			}
		}()

		return &operation{
			ready:     ready,
			completed: make(chan struct{}),
		}
	}
}

// Chain builds n operations where each happens after the previous one.
// A nonpositive n yields an empty chain.
func Chain(n int) []Operation {
	if n < 1 {
		return nil
	}

	chain := make([]Operation, n)
	chain[0] = First()
	for i := 1; i < n; i++ {
		chain[i] = After(chain[i-1])
	}

	return chain
}
