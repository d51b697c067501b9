// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package cond provides a predicate-driven condition variable bound to a mutex
from this library.  Unlike sync.Cond, waits always take the predicate and
re-check it under the mutex after every wakeup, so callers cannot forget the
re-check loop, and timed and context-aware waits are available.
*/
package cond
