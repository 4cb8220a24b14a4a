// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/metrics"
	"github.com/hallon-go/hallon/bridge/rapi/model"
	"github.com/hallon-go/hallon/bridge/rapi/rendering"
	"github.com/hallon-go/hallon/bridge/session"
)

const (
	notificationAccepted = "accepted"
	notificationRejected = "rejected"
	notificationInvalid  = "invalid"
)

type notifyHandler struct {
	service session.Service
}

func parseNotification(request *http.Request) (*model.NotificationRequest, error) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, err
	}

	req := &model.NotificationRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errors.New("event name is required")
	}
	return req, nil
}

func (h *notifyHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, model.MaxNotificationSize)

	req, err := parseNotification(request)
	if err != nil {
		metrics.ObserveNotification(notificationInvalid)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			rendering.RenderRequestEntityTooLarge(writer, request)
			return
		}
		rendering.RenderInvalidRequest(writer, request, "%s", err)
		return
	}

	var payload interface{}
	if len(req.Payload) > 0 {
		payload = req.Payload
	}

	if err := h.service.Notify(req.Name, payload); err != nil {
		metrics.ObserveNotification(notificationRejected)
		log.WithError(err).WithField("event", req.Name).Warn("Notification rejected")
		rendering.RenderSessionError(writer, request, err)
		return
	}

	metrics.ObserveNotification(notificationAccepted)
	render.Status(request, http.StatusAccepted)
	render.JSON(writer, request, &model.StatusResponse{Status: "OK"})
}

// NewNotifyHandler returns a new instance of http handler
// for serving POST /session/events.
func NewNotifyHandler(service session.Service) http.Handler {
	metrics.Init()
	return &notifyHandler{service: service}
}
