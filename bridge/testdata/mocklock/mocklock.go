// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package mocklock

// NoopLock implements core.ExclusivityLock interface but does not
// exclude anybody.
type NoopLock struct{}

// Lock: no-op
func (l *NoopLock) Lock() {}

// Unlock: no-op
func (l *NoopLock) Unlock() {}

// RunWithoutLock runs the operation directly.
func (l *NoopLock) RunWithoutLock(blockingOperation func() error) error {
	return blockingOperation()
}
