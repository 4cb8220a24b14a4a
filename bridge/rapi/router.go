// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rapi

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/hallon-go/hallon/bridge/appctx"
	"github.com/hallon-go/hallon/bridge/rapi/handler"
	"github.com/hallon-go/hallon/bridge/rapi/middleware"
	"github.com/hallon-go/hallon/bridge/session"
)

// NewRouter returns a new instance of chi router serving the session API.
func NewRouter(appCtx appctx.ApplicationContext, service session.Service) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AppCtxMiddleware(appCtx))
	router.Use(middleware.AccessLogMiddleware())

	router.Get("/ping", handler.NewPingHandler().ServeHTTP)
	router.Get("/session/status", handler.NewStatusHandler(service).ServeHTTP)

	// Events forwarded before a fault stay drainable.
	router.Get("/session/events", handler.NewDrainHandler(service).ServeHTTP)

	router.Post("/session/events",
		middleware.RejectIfSessionFaulted(
			handler.NewNotifyHandler(service)).ServeHTTP)

	router.Post("/session/logout",
		middleware.RejectIfSessionFaulted(
			handler.NewLogoutHandler(service)).ServeHTTP)

	return router
}
