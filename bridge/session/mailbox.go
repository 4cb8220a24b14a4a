// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hallon-go/hallon/bridge/interop"
)

type notification struct {
	name     string
	payload  interface{}
	terminal bool
}

// mailbox holds the one notification filled by the callback side between
// event_empty.wait and event_full.post.
type mailbox struct {
	mu       sync.Mutex
	pending  *notification
	sequence uint64
}

func (b *mailbox) put(n *notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = n
}

func (b *mailbox) take() *notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.pending
	b.pending = nil
	return n
}

// handleNotification is the session's event handler. An empty mailbox
// yields the zero result, which the bridge reports as a protocol violation.
func handleNotification(data interface{}) interop.Result {
	box := data.(*mailbox)

	n := box.take()
	if n == nil {
		return interop.Result{}
	}
	if n.terminal {
		return interop.Terminal()
	}

	box.sequence++
	return interop.EventResult(interop.Event{
		ID:       uuid.New().String(),
		Sequence: box.sequence,
		Name:     n.name,
		Payload:  n.payload,
	})
}
