// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"sync"
)

// ErrSignalCanceled is returned by Wait once the signal was canceled without a specific error.
var ErrSignalCanceled = errors.New("ErrSignalCanceled")

// Signal is a counting wait/post primitive handing permission tokens
// between two goroutines.
type Signal interface {
	Wait() error
	Post()
	CancelWithError(error)
	Count() uint32
	Posts() uint64
	Waits() uint64
}

type signalImpl struct {
	count    uint32
	posts    uint64
	waits    uint64
	cond     *sync.Cond
	canceled bool
	err      error
}

// Wait suspends the calling goroutine until the count is positive and then
// takes one token. It must not be called with the exclusivity lock held.
func (s *signalImpl) Wait() error {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()

	for s.count == 0 && !s.canceled {
		s.cond.Wait()
	}

	if s.canceled {
		if s.err != nil {
			return s.err
		}
		return ErrSignalCanceled
	}

	s.count--
	s.waits++
	return nil
}

// Post adds one token and wakes at most one waiter.
func (s *signalImpl) Post() {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.count++
	s.posts++
	s.cond.Signal()
}

// CancelWithError wakes every waiter; current and future waits return err.
func (s *signalImpl) CancelWithError(err error) {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	s.canceled = true
	s.err = err
	s.cond.Broadcast()
}

func (s *signalImpl) Count() uint32 {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	return s.count
}

// Posts returns the number of tokens ever posted.
func (s *signalImpl) Posts() uint64 {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	return s.posts
}

// Waits returns the number of completed (non-canceled) waits.
func (s *signalImpl) Waits() uint64 {
	s.cond.L.Lock()
	defer s.cond.L.Unlock()
	return s.waits
}

// NewSignal returns new signal instance holding initial tokens.
func NewSignal(initial uint32) Signal {
	return &signalImpl{
		count: initial,
		cond:  sync.NewCond(&sync.Mutex{}),
	}
}
