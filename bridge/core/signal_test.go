// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestWaitTakesInitialToken(t *testing.T) {
	s := NewSignal(1)
	assert.NoError(t, s.Wait())
	assert.Equal(t, uint32(0), s.Count())
	assert.Equal(t, uint64(1), s.Waits())
	assert.Equal(t, uint64(0), s.Posts())
}

func TestPostThenWait(t *testing.T) {
	s := NewSignal(0)
	s.Post()
	s.Post()
	assert.Equal(t, uint32(2), s.Count())
	assert.NoError(t, s.Wait())
	assert.NoError(t, s.Wait())
	assert.Equal(t, uint32(0), s.Count())
	assert.Equal(t, uint64(2), s.Posts())
	assert.Equal(t, uint64(2), s.Waits())
}

func TestWaitBlocksUntilPost(t *testing.T) {
	s := NewSignal(0)

	var errg errgroup.Group
	errg.Go(s.Wait)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, uint64(0), s.Waits(), "wait returned without a post")

	s.Post()
	assert.NoError(t, errg.Wait())
	assert.Equal(t, uint32(0), s.Count())
}

func TestPostWakesOneWaiterPerToken(t *testing.T) {
	s := NewSignal(0)
	const waiters = 8

	var wg sync.WaitGroup
	returned := make(chan struct{}, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Wait() == nil {
				returned <- struct{}{}
			}
		}()
	}

	for i := 0; i < waiters; i++ {
		s.Post()
		<-returned
		assert.Equal(t, uint64(i+1), s.Waits())
	}
	wg.Wait()
	assert.Equal(t, uint32(0), s.Count())
	assert.Equal(t, s.Posts(), s.Waits())
}

func TestCancel(t *testing.T) {
	s := NewSignal(0)

	var errg errgroup.Group
	errg.Go(s.Wait)
	s.CancelWithError(nil)

	assert.Equal(t, ErrSignalCanceled, errg.Wait())
}

func TestCancelWithError(t *testing.T) {
	s := NewSignal(0)

	var errg errgroup.Group
	errg.Go(s.Wait)

	err := errors.New("MyErr")
	s.CancelWithError(err)

	assert.Equal(t, err, errg.Wait())
}

func TestUseAfterCancel(t *testing.T) {
	s := NewSignal(1)
	err := errors.New("MyErr")
	s.CancelWithError(err)
	assert.Equal(t, err, s.Wait())
	s.Post()
	assert.Equal(t, err, s.Wait())
	assert.Equal(t, uint64(0), s.Waits())
}

func BenchmarkWaitPost(b *testing.B) {
	s := NewSignal(0)

	for n := 0; n < b.N; n++ {
		go s.Post()
		if err := s.Wait(); err != nil {
			panic(err)
		}
	}
}
