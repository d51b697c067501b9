// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package task provides a small abstraction for launching units of work onto new
goroutines with coordinated shutdown, together with a packaged task that
delivers its result through a promise/future pair.  Shared mutable arguments
are bound by explicit closure capture, never by implicit aliasing.
*/
package task
