// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"sync"
	"sync/atomic"
)

// ExclusivityLock is the consumer's single global execution lock.
type ExclusivityLock interface {
	Lock()
	Unlock()
	// RunWithoutLock releases the lock for the duration of blockingOperation
	// and reacquires it before returning the operation's result.
	RunWithoutLock(blockingOperation func() error) error
}

// GlobalLock is a non-reentrant ExclusivityLock. Only one of the producer
// (while dispatching) and the consumer may hold it at a time.
type GlobalLock struct {
	mu   sync.Mutex
	held atomic.Bool
}

// Lock acquires the global lock.
func (l *GlobalLock) Lock() {
	l.mu.Lock()
	l.held.Store(true)
}

// Unlock releases the global lock.
func (l *GlobalLock) Unlock() {
	l.held.Store(false)
	l.mu.Unlock()
}

// RunWithoutLock must be called with the lock held. The lock is reacquired
// even if blockingOperation panics.
func (l *GlobalLock) RunWithoutLock(blockingOperation func() error) error {
	l.Unlock()
	defer l.Lock()
	return blockingOperation()
}

// Held reports whether some goroutine currently holds the lock.
func (l *GlobalLock) Held() bool {
	return l.held.Load()
}

// NewGlobalLock returns new unlocked GlobalLock instance.
func NewGlobalLock() *GlobalLock {
	return &GlobalLock{}
}
