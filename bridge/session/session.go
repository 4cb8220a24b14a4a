// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package session owns one event bridge together with the consumer's lock
// and sink, and plays the callback side of the handshake.
package session

import (
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hallon-go/hallon/bridge/appctx"
	"github.com/hallon-go/hallon/bridge/core"
	"github.com/hallon-go/hallon/bridge/interop"
	"github.com/hallon-go/hallon/bridge/producer"
	"github.com/hallon-go/hallon/bridge/sink"
)

const defaultSessionName = "session"

// Config of a session. Zero values get defaults.
type Config struct {
	Name      string
	Lock      core.ExclusivityLock
	EventsAPI interop.EventsAPI
}

// Status is a point-in-time description of a session.
type Status struct {
	Name              string         `json:"name"`
	ProducerState     string         `json:"producerState"`
	StateLastModified time.Time      `json:"stateLastModified"`
	Dispatches        uint64         `json:"dispatches"`
	SinkDepth         int            `json:"sinkDepth"`
	LoggedOut         bool           `json:"loggedOut"`
	FatalErrorType    string         `json:"fatalErrorType,omitempty"`
	Flow              core.FlowStats `json:"flow"`
}

// Service is the session API used by transports.
type Service interface {
	Notify(name string, payload interface{}) error
	Logout() error
	Drain() []interop.Event
	Status() Status
	AppCtx() appctx.ApplicationContext
}

var _ Service = (*Session)(nil)

// Session owns the bridge, its sink and the consumer's exclusivity lock.
type Session struct {
	name      string
	appCtx    appctx.ApplicationContext
	lock      core.ExclusivityLock
	queue     *sink.Queue
	flow      core.ProducerFlowSynchronization
	box       *mailbox
	bridge    *producer.EventBridge
	eventsAPI interop.EventsAPI
	watchdog  *core.Watchdog
	exitChan  chan error
	done      chan struct{}
	group     errgroup.Group

	loggedOut atomic.Bool
}

// New builds a session whose event loop is not started yet.
func New(cfg Config) *Session {
	if cfg.Name == "" {
		cfg.Name = defaultSessionName
	}
	if cfg.Lock == nil {
		cfg.Lock = core.NewGlobalLock()
	}
	if cfg.EventsAPI == nil {
		cfg.EventsAPI = interop.NoOpEventsAPI{}
	}

	appCtx := appctx.NewApplicationContext()
	appCtx.Store(appctx.AppCtxSessionNameKey, cfg.Name)

	flow := core.NewProducerFlowSynchronization()
	queue := sink.NewQueue()
	box := &mailbox{}
	bridge := producer.NewEventBridge(interop.HandlerFunc(handleNotification), queue, cfg.Lock, flow, box)
	bridge.SetEventsAPI(cfg.EventsAPI)

	exitChan := make(chan error, 1)

	return &Session{
		name:      cfg.Name,
		appCtx:    appCtx,
		lock:      cfg.Lock,
		queue:     queue,
		flow:      flow,
		box:       box,
		bridge:    bridge,
		eventsAPI: cfg.EventsAPI,
		watchdog:  core.NewWatchdog(flow, exitChan, appCtx),
		exitChan:  exitChan,
		done:      make(chan struct{}),
	}
}

// Start starts the event loop.
func (s *Session) Start() error {
	if err := s.bridge.Start(); err != nil {
		return err
	}

	s.watchdog.GoWait(s.bridge)
	// The watchdog reports on exitChan only after the fatal error is stored
	// and the flows are canceled.
	s.group.Go(func() error {
		err := <-s.exitChan
		close(s.done)
		return err
	})

	log.WithField("session", s.name).Info("Session event loop started")
	return nil
}

// Notify hands one event to the producer. It blocks until the previous
// event was forwarded and must not be called with the exclusivity lock held.
func (s *Session) Notify(name string, payload interface{}) error {
	if s.loggedOut.Load() {
		return fmt.Errorf("%w: notify %q after logout", interop.ErrProtocolViolation, name)
	}
	return s.post(&notification{name: name, payload: payload})
}

// Logout makes the handler return the terminal result; the producer exits
// after dispatching it.
func (s *Session) Logout() error {
	if !s.loggedOut.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: already logged out", interop.ErrProtocolViolation)
	}
	log.WithField("session", s.name).Debug("Logging out")
	return s.post(&notification{terminal: true})
}

func (s *Session) post(n *notification) error {
	if err := s.flow.AwaitConsumerReady(); err != nil {
		return err
	}
	s.box.put(n)
	s.flow.EventReady()
	return nil
}

// Join waits for the producer to exit and returns its error.
func (s *Session) Join() error {
	return s.group.Wait()
}

// Done is closed once the producer exited and its fatal error, if any,
// is visible through Err and Status.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the cause of the first fatal error, if any.
func (s *Session) Err() error {
	if _, found := appctx.LoadFirstFatalError(s.appCtx); !found {
		return nil
	}
	return appctx.LoadFirstFatalErrorCause(s.appCtx)
}

// Drain takes the exclusivity lock and empties the sink.
func (s *Session) Drain() []interop.Event {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.drainLocked()
}

// Process drains the sink and runs fn with the exclusivity lock held.
func (s *Session) Process(fn func(events []interop.Event)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	fn(s.drainLocked())
}

func (s *Session) drainLocked() []interop.Event {
	events := s.queue.Drain()
	s.eventsAPI.SendDrain(len(events))
	return events
}

func (s *Session) Status() Status {
	status := Status{
		Name:              s.name,
		ProducerState:     s.bridge.State(),
		StateLastModified: s.bridge.StateLastModified(),
		Dispatches:        s.bridge.Dispatches(),
		SinkDepth:         s.queue.Len(),
		LoggedOut:         s.loggedOut.Load(),
		Flow:              s.flow.Stats(),
	}
	if errorType, found := appctx.LoadFirstFatalError(s.appCtx); found {
		status.FatalErrorType = string(errorType)
	}
	return status
}

func (s *Session) AppCtx() appctx.ApplicationContext {
	return s.appCtx
}
