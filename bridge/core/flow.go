// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// ProducerFlowSynchronization wraps the two signals of the event handshake.
//
// Producer side:
//
//	event_full.wait
//	# dispatch, forward
//	event_empty.post
//
// Callback side:
//
//	event_empty.wait
//	# fill pending event
//	event_full.post
type ProducerFlowSynchronization interface {
	AwaitEventReady() error
	EventForwarded()

	AwaitConsumerReady() error
	EventReady()

	CancelWithError(error)
	Stats() FlowStats
}

// FlowStats is a snapshot of both handshake signals.
type FlowStats struct {
	EventFullCount  uint32 `json:"eventFullCount"`
	EventFullPosts  uint64 `json:"eventFullPosts"`
	EventFullWaits  uint64 `json:"eventFullWaits"`
	EventEmptyCount uint32 `json:"eventEmptyCount"`
	EventEmptyPosts uint64 `json:"eventEmptyPosts"`
	EventEmptyWaits uint64 `json:"eventEmptyWaits"`
}

type producerFlowSynchronizationImpl struct {
	eventFull  Signal
	eventEmpty Signal
}

// AwaitEventReady awaits the callback side to fill an event (event_full.wait).
// Callers must have released the exclusivity lock.
func (s *producerFlowSynchronizationImpl) AwaitEventReady() error {
	return s.eventFull.Wait()
}

// EventForwarded lets the callback side fill the next event (event_empty.post).
func (s *producerFlowSynchronizationImpl) EventForwarded() {
	s.eventEmpty.Post()
}

// AwaitConsumerReady awaits the previous event to be forwarded (event_empty.wait).
func (s *producerFlowSynchronizationImpl) AwaitConsumerReady() error {
	return s.eventEmpty.Wait()
}

// EventReady called by callback side once the pending event is filled (event_full.post).
func (s *producerFlowSynchronizationImpl) EventReady() {
	s.eventFull.Post()
}

// CancelWithError cancels the callback side only. The producer's wait on
// event_full is never preempted: it stops on a terminal result.
func (s *producerFlowSynchronizationImpl) CancelWithError(err error) {
	s.eventEmpty.CancelWithError(err)
}

func (s *producerFlowSynchronizationImpl) Stats() FlowStats {
	return FlowStats{
		EventFullCount:  s.eventFull.Count(),
		EventFullPosts:  s.eventFull.Posts(),
		EventFullWaits:  s.eventFull.Waits(),
		EventEmptyCount: s.eventEmpty.Count(),
		EventEmptyPosts: s.eventEmpty.Posts(),
		EventEmptyWaits: s.eventEmpty.Waits(),
	}
}

// NewProducerFlowSynchronization returns new ProducerFlowSynchronization
// instance with event_full=0 and event_empty=1.
func NewProducerFlowSynchronization() ProducerFlowSynchronization {
	return &producerFlowSynchronizationImpl{
		eventFull:  NewSignal(0),
		eventEmpty: NewSignal(1),
	}
}
