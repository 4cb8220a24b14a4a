// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/interop"
	"github.com/hallon-go/hallon/bridge/rapi/model"
	"github.com/hallon-go/hallon/bridge/rapi/rendering"
	"github.com/hallon-go/hallon/bridge/session"
)

type drainHandler struct {
	service session.Service
}

func (h *drainHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	events := h.service.Drain()
	if events == nil {
		events = []interop.Event{}
	}

	if err := rendering.RenderJSON(http.StatusOK, writer, &model.EventsResponse{Events: events}); err != nil {
		log.WithError(err).Error("Failed to render drained events")
		rendering.RenderInternalServerError(writer, request)
	}
}

// NewDrainHandler returns a new instance of http handler
// for serving GET /session/events.
func NewDrainHandler(service session.Service) http.Handler {
	return &drainHandler{service: service}
}
