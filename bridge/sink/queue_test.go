// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallon-go/hallon/bridge/interop"
)

func TestAppendKeepsFIFOOrder(t *testing.T) {
	q := NewQueue()
	for i := uint64(0); i < 100; i++ {
		q.Append(interop.Event{Sequence: i})
	}
	assert.Equal(t, 100, q.Len())

	events := q.Drain()
	assert.Len(t, events, 100)
	for i, ev := range events {
		assert.Equal(t, uint64(i), ev.Sequence)
	}
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestDrainHandsOverOwnership(t *testing.T) {
	q := NewQueue()
	q.Append(interop.Event{Name: "A"})
	drained := q.Drain()

	q.Append(interop.Event{Name: "B"})
	drained[0].Name = "changed"

	assert.Equal(t, []interop.Event{{Name: "B"}}, q.Drain())
}

func TestQueueImplementsSink(t *testing.T) {
	var s interop.Sink = NewQueue()
	s.Append(interop.Event{Name: "A"})
	assert.Equal(t, 1, s.(*Queue).Len())
}
