// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/hallon-go/hallon/bridge/session"
)

type statusHandler struct {
	service session.Service
}

func (h *statusHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	status := h.service.Status()
	render.Status(request, http.StatusOK)
	render.JSON(writer, request, &status)
}

// NewStatusHandler returns a new instance of http handler
// for serving GET /session/status.
func NewStatusHandler(service session.Service) http.Handler {
	return &statusHandler{service: service}
}
