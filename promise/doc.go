// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package promise provides a one-shot, single-producer/single-consumer value
channel between goroutines.  A Promise is the write handle and a Future the
read handle over a shared state that becomes ready exactly once, either with a
value or with an error.

The shared state is synchronized with this library's own mutex and condition
variable, so satisfying a promise in one goroutine happens before the paired
Future.Get observes the value in another.
*/
package promise
