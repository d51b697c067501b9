// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package mutex provides a channel-based mutual exclusion lock that can time out
or be canceled during acquisition and that reports misuse of Unlock as an error.

Unlike sync.Mutex, the lock in this package hands back errors rather than
panicking, and its acquisition methods can be bounded by a time channel or a
context.  Releasing the lock in one goroutine and acquiring it in another
establishes a happens-before relation for all writes made while it was held.
*/
package mutex
