// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hallon-go/hallon/bridge/core"
	"github.com/hallon-go/hallon/bridge/interop"
)

// ScriptedHandler returns its results in order, one per dispatch.
type ScriptedHandler struct {
	Results []interop.Result

	// OnDispatch is called before the result is returned
	OnDispatch func(dispatch int)

	mu    sync.Mutex
	calls int
}

func (h *ScriptedHandler) Handle(data interface{}) interop.Result {
	h.mu.Lock()
	call := h.calls
	h.calls++
	h.mu.Unlock()

	if h.OnDispatch != nil {
		h.OnDispatch(call)
	}
	if call >= len(h.Results) {
		panic("scripted handler exhausted")
	}
	return h.Results[call]
}

func (h *ScriptedHandler) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// Events builds event results named after names, numbered from 1.
func Events(names ...string) []interop.Result {
	results := make([]interop.Result, 0, len(names))
	for i, name := range names {
		results = append(results, interop.EventResult(interop.Event{Name: name, Sequence: uint64(i + 1)}))
	}
	return results
}

// RecordingSink records appended events, calling OnAppend first.
type RecordingSink struct {
	mu       sync.Mutex
	events   []interop.Event
	OnAppend func(interop.Event)
}

func (s *RecordingSink) Append(ev interop.Event) {
	if s.OnAppend != nil {
		s.OnAppend(ev)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *RecordingSink) Events() []interop.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]interop.Event, len(s.events))
	copy(events, s.events)
	return events
}

// Names returns the names of recorded events in append order.
func (s *RecordingSink) Names() []string {
	names := []string{}
	for _, ev := range s.Events() {
		names = append(names, ev.Name)
	}
	return names
}

// RecordingFlow wraps a flow and calls its hooks before the producer
// waits on event_full and before it posts event_empty.
type RecordingFlow struct {
	core.ProducerFlowSynchronization
	OnAwaitEventReady func()
	OnEventForwarded  func()
}

func (f *RecordingFlow) AwaitEventReady() error {
	if f.OnAwaitEventReady != nil {
		f.OnAwaitEventReady()
	}
	return f.ProducerFlowSynchronization.AwaitEventReady()
}

func (f *RecordingFlow) EventForwarded() {
	if f.OnEventForwarded != nil {
		f.OnEventForwarded()
	}
	f.ProducerFlowSynchronization.EventForwarded()
}

// FeedEvents plays the callback side n times: event_empty.wait, event_full.post.
func FeedEvents(flow core.ProducerFlowSynchronization, n int) error {
	for i := 0; i < n; i++ {
		if err := flow.AwaitConsumerReady(); err != nil {
			return err
		}
		flow.EventReady()
	}
	return nil
}

// MockEventsAPI is a testify mock of interop.EventsAPI.
type MockEventsAPI struct {
	mock.Mock
}

func (m *MockEventsAPI) SendProducerStart()            { m.Called() }
func (m *MockEventsAPI) SendEventWait(d time.Duration) { m.Called(d) }
func (m *MockEventsAPI) SendDispatch()                 { m.Called() }
func (m *MockEventsAPI) SendForward(ev interop.Event)  { m.Called(ev) }
func (m *MockEventsAPI) SendTerminal()                 { m.Called() }
func (m *MockEventsAPI) SendHandlerFault(err error)    { m.Called(err) }
func (m *MockEventsAPI) SendDrain(drained int)         { m.Called(drained) }
