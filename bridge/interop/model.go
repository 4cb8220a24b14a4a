// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"errors"
	"fmt"

	"github.com/hallon-go/hallon/bridge/fatalerror"
)

// Event is one forwarded event. The bridge never inspects it.
type Event struct {
	ID       string      `json:"id"`
	Sequence uint64      `json:"sequence"`
	Name     string      `json:"name"`
	Payload  interface{} `json:"payload,omitempty"`
}

func (e Event) String() string {
	return fmt.Sprintf("EVENT(name: %s, seq: %d, id: %s)", e.Name, e.Sequence, e.ID)
}

type resultKind int

const (
	resultInvalid resultKind = iota
	resultEvent
	resultTerminal
)

// Result is the handler output: either one event or the terminal marker.
// The zero Result is neither and is rejected by the bridge.
type Result struct {
	kind  resultKind
	event Event
}

// EventResult wraps one event produced by the handler.
func EventResult(ev Event) Result {
	return Result{kind: resultEvent, event: ev}
}

// Terminal means no further events: the producer stops.
func Terminal() Result {
	return Result{kind: resultTerminal}
}

func (r Result) IsTerminal() bool {
	return r.kind == resultTerminal
}

func (r Result) IsValid() bool {
	return r.kind == resultEvent || r.kind == resultTerminal
}

// Event returns the wrapped event; ok is false for terminal and zero results.
func (r Result) Event() (ev Event, ok bool) {
	return r.event, r.kind == resultEvent
}

// Handler produces the result for one dispatch. It is invoked on the
// producer goroutine with the exclusivity lock held and must not block.
type Handler interface {
	Handle(data interface{}) Result
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(data interface{}) Result

func (f HandlerFunc) Handle(data interface{}) Result {
	return f(data)
}

// Sink receives forwarded events. Append is called with the exclusivity
// lock held, must not block and must not fail.
type Sink interface {
	Append(Event)
}

// BridgeError is a fatal producer error classified for the owning session.
type BridgeError struct {
	Type    fatalerror.ErrorType
	Message string
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *BridgeError) ErrorType() fatalerror.ErrorType {
	return e.Type
}

// ErrHandlerFault is wrapped around a handler panic.
var ErrHandlerFault = &BridgeError{Type: fatalerror.HandlerFault, Message: "event handler failed"}

// ErrProtocolViolation is wrapped around detected handshake misuse.
var ErrProtocolViolation = &BridgeError{Type: fatalerror.ProtocolViolation, Message: "event handshake misuse"}

// ErrSessionClosed is returned to the callback side once the producer stopped.
var ErrSessionClosed = errors.New("session closed")
