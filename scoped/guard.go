// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package scoped

import (
	"context"
	"errors"
	"time"

	"github.com/lockstep-org/lockstep/mutex"
)

var (
	// ErrNotHeld is returned when a guard is asked to release a mutex it does not hold.
	ErrNotHeld = errors.New("the guard does not hold its mutex")

	// ErrAlreadyHeld is returned when a guard is asked to acquire a mutex it already holds.
	ErrAlreadyHeld = errors.New("the guard already holds its mutex")
)

// Option is a configuration option for constructing a Guard
type Option func(*Guard)

// Deferred constructs the guard without acquiring the mutex.  One of the guard's
// lock methods must be used before the guard holds anything.
func Deferred() Option {
	return func(g *Guard) {
		g.mode = modeDeferred
	}
}

// Adopt constructs the guard assuming the mutex is already locked by the caller.
// The guard takes over release responsibility without acquiring.
func Adopt() Option {
	return func(g *Guard) {
		g.mode = modeAdopt
	}
}

const (
	modeAcquire = iota
	modeDeferred
	modeAdopt
)

// Guard owns at most one acquisition of a mutex at a time.  The zero value is
// not usable; construct instances with New.  Guards are not safe for concurrent
// use, matching their role as a scope-local object.
type Guard struct {
	m    mutex.Interface
	mode int
	held bool
}

// New constructs a Guard over the given mutex.  With no options, the mutex is
// acquired before New returns, blocking as necessary.
func New(m mutex.Interface, options ...Option) *Guard {
	g := &Guard{m: m}
	for _, o := range options {
		o(g)
	}

	switch g.mode {
	case modeAcquire:
		m.Lock()
		g.held = true
	case modeAdopt:
		g.held = true
	}

	return g
}

// Held tests whether this guard currently holds its mutex.
func (g *Guard) Held() bool {
	return g.held
}

// Lock acquires the mutex on behalf of a deferred or released guard,
// blocking until ownership is acquired.
func (g *Guard) Lock() error {
	if g.held {
		return ErrAlreadyHeld
	}

	g.m.Lock()
	g.held = true
	return nil
}

// LockWait acquires the mutex as with Lock, giving up if the supplied
// time channel becomes signaled first.
func (g *Guard) LockWait(t <-chan time.Time) error {
	if g.held {
		return ErrAlreadyHeld
	}

	if err := g.m.LockWait(t); err != nil {
		return err
	}

	g.held = true
	return nil
}

// LockCtx acquires the mutex as with Lock, giving up if the supplied
// context is canceled first.
func (g *Guard) LockCtx(ctx context.Context) error {
	if g.held {
		return ErrAlreadyHeld
	}

	if err := g.m.LockCtx(ctx); err != nil {
		return err
	}

	g.held = true
	return nil
}

// TryLock attempts to acquire the mutex without blocking, returning true
// if the guard now holds it.
func (g *Guard) TryLock() bool {
	if g.held {
		return false
	}

	g.held = g.m.TryLock()
	return g.held
}

// Release unlocks the mutex if this guard holds it.  A guard releases at most
// once per acquisition: a second Release without an intervening lock returns
// ErrNotHeld and leaves the mutex untouched.
func (g *Guard) Release() error {
	if !g.held {
		return ErrNotHeld
	}

	g.held = false
	return g.m.Unlock()
}

// Transfer moves ownership to a new guard over the same mutex.  After this
// method returns, the receiver no longer holds the mutex and will not release
// it; the returned guard carries whatever ownership the receiver had.
func (g *Guard) Transfer() *Guard {
	next := &Guard{
		m:    g.m,
		mode: modeDeferred,
		held: g.held,
	}

	g.held = false
	return next
}
