// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fatalerror

import (
	"errors"
	"strings"
)

// This package defines constant error types reported by a session whose
// event producer stopped abnormally.
// Separate package for namespacing

// ErrorType is reported by the owning session once the producer is dead
type ErrorType string

const (
	ProtocolViolation ErrorType = "Bridge.ProtocolViolation" // wait/post pairing broken by the integration
	HandlerFault      ErrorType = "Bridge.HandlerFault"      // event handler failed irrecoverably
	Unknown           ErrorType = "Bridge.Unknown"
)

// Classifier is implemented by errors that know their fatal error type.
type Classifier interface {
	ErrorType() ErrorType
}

// FromError returns the fatal error type carried by err, Unknown otherwise.
func FromError(err error) ErrorType {
	var c Classifier
	if errors.As(err, &c) {
		return c.ErrorType()
	}
	return Unknown
}

// IsValid reports whether errorType belongs to the Bridge namespace.
func IsValid(errorType string) bool {
	return strings.HasPrefix(errorType, "Bridge.") && len(errorType) > len("Bridge.")
}
