// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package mutex

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout is returned when a timeout occurs while waiting to acquire the lock.
	// This error does not apply when using a context.  ctx.Err() is returned in that case.
	ErrTimeout = errors.New("the mutex could not be acquired within the timeout")

	// ErrNotOwner is returned by Unlock when the mutex is not currently held.
	ErrNotOwner = errors.New("the mutex is not held")
)

// Interface represents an exclusive lock.  When any lock method is successful,
// Unlock *must* be called to release ownership.
//
// The lock is not reentrant.  A goroutine that calls Lock twice without an
// intervening Unlock deadlocks, which is the contract of a non-reentrant mutex
// rather than a recoverable error.
type Interface interface {
	// Lock acquires ownership, blocking until the lock is available.
	Lock()

	// LockWait attempts to acquire ownership before the given time channel becomes
	// signaled.  If the lock was acquired, this method returns nil.  If the time
	// channel gets signaled first, ErrTimeout is returned.
	LockWait(<-chan time.Time) error

	// LockCtx attempts to acquire ownership before the given context is canceled.
	// If the lock was acquired, this method returns nil.  Otherwise, ctx.Err() is returned.
	LockCtx(context.Context) error

	// TryLock attempts to acquire ownership, returning false immediately if the
	// lock was unavailable.  This method returns true if ownership was acquired.
	TryLock() bool

	// Unlock releases ownership.  At most one goroutine observes ownership between
	// an acquisition and the corresponding Unlock.  If the mutex is not held,
	// ErrNotOwner is returned and the mutex is left unchanged.
	Unlock() error
}

// New constructs an unlocked mutex.
func New() Interface {
	return &mutex{
		c: make(chan struct{}, 1),
	}
}

// mutex is the internal Interface implementation.  A send occupies the lock,
// a receive vacates it.  Channel semantics supply the acquire/release edge.
type mutex struct {
	c chan struct{}
}

func (m *mutex) Lock() {
	m.c <- struct{}{}
}

func (m *mutex) LockWait(t <-chan time.Time) error {
	select {
	case m.c <- struct{}{}:
		return nil
	case <-t:
		return ErrTimeout
	}
}

func (m *mutex) LockCtx(ctx context.Context) error {
	select {
	case m.c <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mutex) TryLock() bool {
	select {
	case m.c <- struct{}{}:
		return true
	default:
		return false
	}
}

func (m *mutex) Unlock() error {
	select {
	case <-m.c:
		return nil
	default:
		return ErrNotOwner
	}
}
