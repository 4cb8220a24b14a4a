// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/appctx"
	"github.com/hallon-go/hallon/bridge/fatalerror"
	"github.com/hallon-go/hallon/bridge/interop"
)

type WaitableProducer interface {
	// Join blocks until the producer exits and returns error in case of abnormal exit
	Join() error
	// Name returns producer name (for logging)
	Name() string
}

// Watchdog watches the producer goroutine.
type Watchdog struct {
	cancelOnce sync.Once
	flow       ProducerFlowSynchronization
	exitChan   chan<- error
	appCtx     appctx.ApplicationContext
	mutedMutex sync.Mutex
	muted      bool
}

func (w *Watchdog) Mute() {
	w.mutedMutex.Lock()
	defer w.mutedMutex.Unlock()
	w.muted = true
}

func (w *Watchdog) Unmute() {
	w.mutedMutex.Lock()
	defer w.mutedMutex.Unlock()
	w.muted = false
}

func (w *Watchdog) Muted() bool {
	w.mutedMutex.Lock()
	defer w.mutedMutex.Unlock()
	return w.muted
}

// GoWait waits for the producer to exit in separate goroutine and handles
// its termination: abnormal exits are stored as the first fatal error, and
// the callback side is released since nobody will post event_empty again.
func (w *Watchdog) GoWait(p WaitableProducer) {
	name := p.Name()
	appCtx := w.appCtx
	go func() {
		err := p.Join()

		cancelErr := interop.ErrSessionClosed
		if err != nil {
			cancelErr = fmt.Errorf("%w: %v", interop.ErrSessionClosed, err)
			if !w.Muted() {
				appctx.StoreFirstFatalError(appCtx, fatalerror.FromError(err), err)
				log.Warnf("Producer %s exited: %s", name, err)
			}
		}

		w.CancelFlows(cancelErr)
		w.exitChan <- err
	}()
}

// CancelFlows cancels the callback side of the flow with error.
func (w *Watchdog) CancelFlows(err error) {
	// The following block protects us from overwriting the error
	// which was first used to cancel flows.
	w.cancelOnce.Do(func() {
		log.Debugf("Canceling flows: %s", err)
		w.flow.CancelWithError(err)
	})
}

// NewWatchdog returns new instance of a Watchdog. exitChan receives the
// producer's exit error once.
func NewWatchdog(flow ProducerFlowSynchronization, exitChan chan<- error, appCtx appctx.ApplicationContext) *Watchdog {
	return &Watchdog{
		flow:       flow,
		exitChan:   exitChan,
		appCtx:     appCtx,
		mutedMutex: sync.Mutex{},
	}
}
