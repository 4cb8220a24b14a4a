// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package producer runs the background goroutine that reads events from
// the callback side and forwards them to the consumer's sink.
package producer

import (
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/core"
	"github.com/hallon-go/hallon/bridge/interop"
)

const producerName = "event-producer"

// EventBridge owns one producer goroutine, one handler, one sink and the
// event_full / event_empty handshake.
type EventBridge struct {
	handler   interop.Handler
	sink      interop.Sink
	lock      core.ExclusivityLock
	flow      core.ProducerFlowSynchronization
	data      interface{}
	eventsAPI interop.EventsAPI
	producer  *core.Producer

	started atomic.Bool
	done    chan struct{}
	err     error
}

// NewEventBridge returns a bridge which is not running yet. data is passed
// to the handler on every dispatch.
func NewEventBridge(handler interop.Handler, sink interop.Sink, lock core.ExclusivityLock, flow core.ProducerFlowSynchronization, data interface{}) *EventBridge {
	return &EventBridge{
		handler:   handler,
		sink:      sink,
		lock:      lock,
		flow:      flow,
		data:      data,
		eventsAPI: interop.NoOpEventsAPI{},
		producer:  core.NewProducer(),
		done:      make(chan struct{}),
	}
}

// SetEventsAPI must be called before Start.
func (b *EventBridge) SetEventsAPI(eventsAPI interop.EventsAPI) {
	b.eventsAPI = eventsAPI
}

// Start spawns the producer goroutine.
func (b *EventBridge) Start() error {
	if !b.started.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %s already started", interop.ErrProtocolViolation, producerName)
	}
	if err := b.producer.Start(); err != nil {
		return err
	}

	go b.run()
	return nil
}

// Join blocks until the producer goroutine returned. A nil error means the
// handler produced the terminal result.
func (b *EventBridge) Join() error {
	<-b.done
	return b.err
}

// Done is closed once the producer goroutine returned.
func (b *EventBridge) Done() <-chan struct{} {
	return b.done
}

// Name of the producer (for logging)
func (b *EventBridge) Name() string {
	return producerName
}

// State returns the current producer state name.
func (b *EventBridge) State() string {
	return b.producer.GetState().Name()
}

// StateLastModified returns the time of the latest producer transition.
func (b *EventBridge) StateLastModified() time.Time {
	return b.producer.GetStateLastModified()
}

// Dispatches returns how many times the handler was invoked.
func (b *EventBridge) Dispatches() uint64 {
	return b.producer.Dispatches()
}

func (b *EventBridge) run() {
	defer close(b.done)

	b.lock.Lock()
	defer b.lock.Unlock()

	b.eventsAPI.SendProducerStart()
	log.Debugf("%s started", producerName)

	b.err = b.loop()
	if b.err != nil {
		log.WithError(b.err).Errorf("%s stopped in state %s", producerName, b.State())
		return
	}
	log.Debugf("%s terminated", producerName)
}

func (b *EventBridge) loop() error {
	for {
		waitStart := time.Now()
		if err := b.lock.RunWithoutLock(b.flow.AwaitEventReady); err != nil {
			return err
		}
		b.eventsAPI.SendEventWait(time.Since(waitStart))

		if err := b.producer.EventReady(); err != nil {
			return err
		}
		b.eventsAPI.SendDispatch()

		result, err := b.dispatch()
		if err == nil && !result.IsValid() {
			err = fmt.Errorf("%w: handler returned neither an event nor the terminal result", interop.ErrProtocolViolation)
		}
		if err != nil {
			if ferr := b.producer.Fault(); ferr != nil {
				log.WithError(ferr).Warn("Failed to enter faulted state")
			}
			b.eventsAPI.SendHandlerFault(err)
			return err
		}

		if result.IsTerminal() {
			b.eventsAPI.SendTerminal()
			return b.producer.Terminate()
		}

		if err := b.producer.Forward(); err != nil {
			return err
		}
		ev, _ := result.Event()
		b.sink.Append(ev)
		b.eventsAPI.SendForward(ev)
		b.flow.EventForwarded()

		if err := b.producer.Forwarded(); err != nil {
			return err
		}
	}
}

// dispatch invokes the handler. A panic is not masked: it stops the
// producer as a handler fault.
func (b *EventBridge) dispatch() (result interop.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", interop.ErrHandlerFault, r)
		}
	}()
	return b.handler.Handle(b.data), nil
}
