// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sink provides the consumer-owned destination of forwarded events.
package sink

import (
	"sync"

	"github.com/hallon-go/hallon/bridge/interop"
)

// Queue is an unbounded FIFO of forwarded events. The producer only
// appends; the consumer drains.
type Queue struct {
	mu     sync.Mutex
	events []interop.Event
}

// Append adds ev at the tail. It never blocks on the consumer.
func (q *Queue) Append(ev interop.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Drain returns all queued events in append order and empties the queue.
func (q *Queue) Drain() []interop.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// NewQueue returns new empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}
