// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// String values of possible producer states
const (
	ProducerIdleStateName            = "Idle"
	ProducerWaitingForEventStateName = "WaitingForEvent"
	ProducerDispatchingStateName     = "Dispatching"
	ProducerForwardingStateName      = "Forwarding"
	ProducerTerminatingStateName     = "Terminating"
	// ProducerDispatchingState -> ProducerFaultedState when the handler fails
	ProducerFaultedStateName = "Faulted"
)
