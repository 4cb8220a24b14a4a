// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/appctx"
	"github.com/hallon-go/hallon/bridge/rapi/rendering"
)

// AppCtxMiddleware injects application context into request context.
func AppCtxMiddleware(appCtx appctx.ApplicationContext) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			r = appctx.RequestWithAppCtx(r, appCtx)
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// AccessLogMiddleware writes api access log. Must run after AppCtxMiddleware.
func AccessLogMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(log.Fields{
				"session": appctx.GetSessionName(appctx.FromRequest(r)),
				"method":  r.Method,
				"path":    r.URL.Path,
			}).Debug("API request")
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// RejectIfSessionFaulted answers with the recorded fatal error once the
// producer stopped abnormally. Must run after AppCtxMiddleware.
func RejectIfSessionFaulted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := appctx.FromRequest(r)
		if errorType, found := appctx.LoadFirstFatalError(appCtx); found {
			rendering.RenderSessionClosed(w, r, errorType, appctx.LoadFirstFatalErrorCause(appCtx))
			return
		}
		next.ServeHTTP(w, r)
	})
}
