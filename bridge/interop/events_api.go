// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package interop

import "time"

// EventsAPI receives producer lifecycle notifications and consumer drains.
// Implementations must return quickly.
type EventsAPI interface {
	SendProducerStart()
	SendEventWait(waited time.Duration)
	SendDispatch()
	SendForward(ev Event)
	SendTerminal()
	SendHandlerFault(err error)
	// SendDrain is called by the consumer side, under the exclusivity
	// lock, after it removed drained events from the sink.
	SendDrain(drained int)
}

// NoOpEventsAPI discards every notification.
type NoOpEventsAPI struct{}

func (NoOpEventsAPI) SendProducerStart()          {}
func (NoOpEventsAPI) SendEventWait(time.Duration) {}
func (NoOpEventsAPI) SendDispatch()               {}
func (NoOpEventsAPI) SendForward(Event)           {}
func (NoOpEventsAPI) SendTerminal()               {}
func (NoOpEventsAPI) SendHandlerFault(error)      {}
func (NoOpEventsAPI) SendDrain(int)               {}
