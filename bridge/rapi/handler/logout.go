// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/hallon-go/hallon/bridge/rapi/model"
	"github.com/hallon-go/hallon/bridge/rapi/rendering"
	"github.com/hallon-go/hallon/bridge/session"
)

type logoutHandler struct {
	service session.Service
}

func (h *logoutHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if err := h.service.Logout(); err != nil {
		rendering.RenderSessionError(writer, request, err)
		return
	}

	render.Status(request, http.StatusAccepted)
	render.JSON(writer, request, &model.StatusResponse{Status: "OK"})
}

// NewLogoutHandler returns a new instance of http handler
// for serving POST /session/logout.
func NewLogoutHandler(service session.Service) http.Handler {
	return &logoutHandler{service: service}
}
