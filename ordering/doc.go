// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package ordering builds explicit happens-before edges between units of work.

Without a synchronizing edge, writes made in one goroutine are not guaranteed
visible to reads in another, and both the compiler and the hardware may reorder
operations.  The classic trap: goroutine 1 writes y = 1 and then x = 2;
goroutine 2 observes x == 2 and concludes y == 1.  That conclusion is unsound.
Absent an intervening acquire-release edge the program's behavior is undefined,
and no particular outcome may be assumed.  The race detector flags exactly this
pattern.

The remedies are a mutex held around both the writes and the reads, a channel
operation between them, or an Operation from this package: completing an
operation in one goroutine happens before every dependent operation becomes
ready in another.
*/
package ordering
