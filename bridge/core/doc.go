// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package core provides state objects and synchronization primitives for
handing events from the callback side to the consumer.

# States

Producer implements state object design pattern:

	Idle -> WaitingForEvent -> Dispatching -> Forwarding -> WaitingForEvent
	                                       -> Terminating
	                                       -> Faulted

# Signals

Signal is a counting wait/post primitive. Two signals form the handshake
between the producer goroutine and the callback side:

	event_full:  0
	event_empty: 1

	[producer] event_full.Wait()   // exclusivity lock released
	[producer] // dispatch and forward, lock held
	[producer] event_empty.Post()

	[callback] event_empty.Wait()
	[callback] // fill pending event
	[callback] event_full.Post()

# Exclusivity lock

ExclusivityLock is the consumer's global execution lock. The producer holds
it for everything except the wait on event_full, which is wrapped in
RunWithoutLock.

# Flow

Flow wraps the two signals required by the producer handshake.
*/
package core
