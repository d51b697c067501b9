// SPDX-FileCopyrightText: 2025 lockstep contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package scoped ties mutex ownership to the lifetime of a guard object.  A guard
acquires its mutex when constructed (unless deferred or adopting), releases it
exactly once, and can transfer ownership to another guard so that only one
guard is ever responsible for releasing.

A Guard is intended for use by a single goroutine and is typically paired with
defer:

	g := scoped.New(m)
	defer g.Release()
*/
package scoped
