// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"sync"
	"time"
)

// ErrNotAllowed returned on illegal state transition
var ErrNotAllowed = errors.New("State transition is not allowed")

// ProducerState is producer state machine interface.
type ProducerState interface {
	Start() error
	EventReady() error
	Forward() error
	Forwarded() error
	Terminate() error
	Fault() error
	Name() string
}

type disallowEveryTransitionByDefault struct{}

func (s *disallowEveryTransitionByDefault) Start() error      { return ErrNotAllowed }
func (s *disallowEveryTransitionByDefault) EventReady() error { return ErrNotAllowed }
func (s *disallowEveryTransitionByDefault) Forward() error    { return ErrNotAllowed }
func (s *disallowEveryTransitionByDefault) Forwarded() error  { return ErrNotAllowed }
func (s *disallowEveryTransitionByDefault) Terminate() error  { return ErrNotAllowed }
func (s *disallowEveryTransitionByDefault) Fault() error      { return ErrNotAllowed }

// Producer is the event producer state object.
type Producer struct {
	mu                sync.Mutex
	currentState      ProducerState
	stateLastModified time.Time
	dispatches        uint64

	ProducerIdleState            ProducerState
	ProducerWaitingForEventState ProducerState
	ProducerDispatchingState     ProducerState
	ProducerForwardingState      ProducerState
	ProducerTerminatingState     ProducerState
	ProducerFaultedState         ProducerState
}

// SetState ...
func (s *Producer) SetState(state ProducerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStateUnsafe(state)
}

func (s *Producer) setStateUnsafe(state ProducerState) {
	s.currentState = state
	s.stateLastModified = time.Now()
}

// GetState ...
func (s *Producer) GetState() ProducerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState
}

// GetStateLastModified returns the time of the latest transition.
func (s *Producer) GetStateLastModified() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLastModified
}

// Dispatches returns the number of Dispatching entries.
func (s *Producer) Dispatches() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatches
}

// Start delegates to state implementation.
func (s *Producer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState.Start()
}

// EventReady delegates to state implementation.
func (s *Producer) EventReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState.EventReady()
}

// Forward delegates to state implementation.
func (s *Producer) Forward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState.Forward()
}

// Forwarded delegates to state implementation.
func (s *Producer) Forwarded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState.Forwarded()
}

// Terminate delegates to state implementation.
func (s *Producer) Terminate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState.Terminate()
}

// Fault delegates to state implementation.
func (s *Producer) Fault() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentState.Fault()
}

// ProducerIdleState is the state before the producer goroutine runs.
type ProducerIdleState struct {
	disallowEveryTransitionByDefault
	producer *Producer
}

func (s *ProducerIdleState) Start() error {
	s.producer.setStateUnsafe(s.producer.ProducerWaitingForEventState)
	return nil
}

func (s *ProducerIdleState) Name() string {
	return ProducerIdleStateName
}

// ProducerWaitingForEventState is blocked on event_full without the lock.
type ProducerWaitingForEventState struct {
	disallowEveryTransitionByDefault
	producer *Producer
}

func (s *ProducerWaitingForEventState) EventReady() error {
	s.producer.dispatches++
	s.producer.setStateUnsafe(s.producer.ProducerDispatchingState)
	return nil
}

func (s *ProducerWaitingForEventState) Name() string {
	return ProducerWaitingForEventStateName
}

// ProducerDispatchingState invokes the handler with the lock held.
type ProducerDispatchingState struct {
	disallowEveryTransitionByDefault
	producer *Producer
}

func (s *ProducerDispatchingState) Forward() error {
	s.producer.setStateUnsafe(s.producer.ProducerForwardingState)
	return nil
}

func (s *ProducerDispatchingState) Terminate() error {
	s.producer.setStateUnsafe(s.producer.ProducerTerminatingState)
	return nil
}

func (s *ProducerDispatchingState) Fault() error {
	s.producer.setStateUnsafe(s.producer.ProducerFaultedState)
	return nil
}

func (s *ProducerDispatchingState) Name() string {
	return ProducerDispatchingStateName
}

// ProducerForwardingState appends to the sink and posts event_empty.
type ProducerForwardingState struct {
	disallowEveryTransitionByDefault
	producer *Producer
}

func (s *ProducerForwardingState) Forwarded() error {
	s.producer.setStateUnsafe(s.producer.ProducerWaitingForEventState)
	return nil
}

func (s *ProducerForwardingState) Name() string {
	return ProducerForwardingStateName
}

// ProducerTerminatingState is final.
type ProducerTerminatingState struct {
	disallowEveryTransitionByDefault
	producer *Producer
}

func (s *ProducerTerminatingState) Name() string {
	return ProducerTerminatingStateName
}

// ProducerFaultedState is final.
type ProducerFaultedState struct {
	disallowEveryTransitionByDefault
	producer *Producer
}

func (s *ProducerFaultedState) Name() string {
	return ProducerFaultedStateName
}

// NewProducer returns new producer instance in Idle state.
func NewProducer() *Producer {
	producer := &Producer{}

	producer.ProducerIdleState = &ProducerIdleState{producer: producer}
	producer.ProducerWaitingForEventState = &ProducerWaitingForEventState{producer: producer}
	producer.ProducerDispatchingState = &ProducerDispatchingState{producer: producer}
	producer.ProducerForwardingState = &ProducerForwardingState{producer: producer}
	producer.ProducerTerminatingState = &ProducerTerminatingState{producer: producer}
	producer.ProducerFaultedState = &ProducerFaultedState{producer: producer}

	producer.setStateUnsafe(producer.ProducerIdleState)
	return producer
}
