// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"sync"
	"time"
)

// WaitGroup extends sync.WaitGroup with a bounded wait.
type WaitGroup struct {
	sync.WaitGroup
}

// WaitTimeout waits until either the group drains or the timeout elapses,
// returning true in the former case.  Each call spawns a helper goroutine
// that blocks in Wait; when the timeout fires and the group never drains,
// that goroutine is never reclaimed.  A caller on the timeout path should
// treat the group as abandoned rather than retrying indefinitely.
func (wg *WaitGroup) WaitTimeout(timeout time.Duration) bool {
	drained := make(chan struct{})
	go func() {
		defer func() {
			// an abandoned group may see concurrent Add calls, which can
			// panic inside Wait, and there is no one left to care
			recover()
		}()
		defer close(drained)
		wg.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-drained:
		return true
	case <-timer.C:
		return false
	}
}
