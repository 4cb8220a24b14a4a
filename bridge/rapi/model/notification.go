// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"

	"github.com/hallon-go/hallon/bridge/interop"
)

// MaxNotificationSize limits POST /session/events bodies.
const MaxNotificationSize = 1 << 20 // 1 MiB

// NotificationRequest represents the POST /session/events JSON body.
type NotificationRequest struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EventsResponse lists drained events in forwarding order.
type EventsResponse struct {
	Events []interop.Event `json:"events"`
}
