// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"os"
	"time"
)

// Runnable is a unit of work that may spawn zero or more goroutines.
type Runnable interface {
	// Run starts this unit of work, returning an error if it could not be
	// started.  Every spawned goroutine must be registered with the lifecycle,
	// normally via Lifecycle.Go, and must exit once the shutdown channel
	// closes.
	Run(lifecycle *Lifecycle) error
}

// RunnableFunc is a function type that implements Runnable
type RunnableFunc func(*Lifecycle) error

func (r RunnableFunc) Run(lifecycle *Lifecycle) error {
	return r(lifecycle)
}

// RunnableSet starts several runnables under one lifecycle.  Starting stops at
// the first error, leaving any already-started members running; the caller is
// expected to call Stop on a failed start.
type RunnableSet []Runnable

func (set RunnableSet) Run(lifecycle *Lifecycle) error {
	for _, r := range set {
		if err := r.Run(lifecycle); err != nil {
			return err
		}
	}

	return nil
}

// Lifecycle carries the goroutine accounting and shutdown signal shared by
// everything started under a single Execute call.
type Lifecycle struct {
	waitGroup WaitGroup
	shutdown  chan struct{}
}

// Go runs fn on a new goroutine registered with this lifecycle.  The function
// receives the shutdown channel and must return when it closes.
func (l *Lifecycle) Go(fn func(shutdown <-chan struct{})) {
	l.waitGroup.Add(1)
	go func() {
		defer l.waitGroup.Done()
		fn(l.shutdown)
	}()
}

// Shutdown returns the channel closed to stop work started under this lifecycle
func (l *Lifecycle) Shutdown() <-chan struct{} {
	return l.shutdown
}

// Stop closes the shutdown channel.  It must be called at most once.
func (l *Lifecycle) Stop() {
	close(l.shutdown)
}

// Wait blocks until every goroutine registered via Go has exited
func (l *Lifecycle) Wait() {
	l.waitGroup.Wait()
}

// WaitTimeout is a bounded Wait.  See WaitGroup.WaitTimeout for the caveat
// about the helper goroutine on the timeout path.
func (l *Lifecycle) WaitTimeout(timeout time.Duration) bool {
	return l.waitGroup.WaitTimeout(timeout)
}

// Execute builds a fresh Lifecycle and starts the runnable under it.  The
// caller stops the work through the returned lifecycle.
func Execute(runnable Runnable) (*Lifecycle, error) {
	lifecycle := &Lifecycle{
		shutdown: make(chan struct{}),
	}

	return lifecycle, runnable.Run(lifecycle)
}

// Await starts a runnable via Execute, blocks until the signal channel
// receives any traffic, then stops the lifecycle and waits for its goroutines.
// Typical use passes a channel registered with signal.Notify.
func Await(runnable Runnable, signals <-chan os.Signal) error {
	lifecycle, err := Execute(runnable)
	if err != nil {
		return err
	}

	<-signals

	lifecycle.Stop()
	lifecycle.Wait()
	return nil
}
