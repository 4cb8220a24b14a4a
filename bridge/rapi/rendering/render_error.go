// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rendering

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/appctx"
	"github.com/hallon-go/hallon/bridge/fatalerror"
	"github.com/hallon-go/hallon/bridge/interop"
	"github.com/hallon-go/hallon/bridge/rapi/model"
)

const (
	// ErrorTypeInternalServerError error type for internal server error
	ErrorTypeInternalServerError = "InternalServerError"
	// ErrorTypeInvalidRequest error type for malformed request bodies
	ErrorTypeInvalidRequest = "InvalidRequest"
	// ErrorTypeRequestEntityTooLarge error type for payload too large
	ErrorTypeRequestEntityTooLarge = "RequestEntityTooLarge"
	// ErrorTypeSessionClosed error type for requests after the producer stopped
	ErrorTypeSessionClosed fatalerror.ErrorType = "SessionClosed"
)

func renderError(w http.ResponseWriter, status int, errorType string, message string) {
	if err := RenderJSON(status, w, &model.ErrorResponse{
		ErrorType:    errorType,
		ErrorMessage: message,
	}); err != nil {
		log.WithError(err).Warn("Error while rendering response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RenderForbiddenWithTypeMsg method for rendering error response
func RenderForbiddenWithTypeMsg(w http.ResponseWriter, r *http.Request, errorType string, format string, args ...interface{}) {
	renderError(w, http.StatusForbidden, errorType, fmt.Sprintf(format, args...))
}

// RenderInvalidRequest method for rendering error response
func RenderInvalidRequest(w http.ResponseWriter, r *http.Request, format string, args ...interface{}) {
	renderError(w, http.StatusBadRequest, ErrorTypeInvalidRequest, fmt.Sprintf(format, args...))
}

// RenderInternalServerError method for rendering error response
func RenderInternalServerError(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusInternalServerError, ErrorTypeInternalServerError, "Internal Server Error")
}

// RenderRequestEntityTooLarge method for rendering error response
func RenderRequestEntityTooLarge(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusRequestEntityTooLarge, ErrorTypeRequestEntityTooLarge,
		fmt.Sprintf("Exceeded maximum allowed payload size (%d bytes).", model.MaxNotificationSize))
}

// RenderSessionClosed renders error response for a session whose producer
// already stopped. A fatal error type, if recorded, is reported instead.
func RenderSessionClosed(w http.ResponseWriter, r *http.Request, errorType fatalerror.ErrorType, cause error) {
	message := interop.ErrSessionClosed.Error()
	if cause != nil {
		message = cause.Error()
	}
	if errorType == "" {
		errorType = ErrorTypeSessionClosed
	}
	renderError(w, http.StatusGone, string(errorType), message)
}

// RenderSessionError maps an error returned by a session call to a response.
// A closed session reports the fatal error type stored in the request's
// application context.
func RenderSessionError(w http.ResponseWriter, r *http.Request, err error) {
	var bridgeErr *interop.BridgeError
	switch {
	case errors.Is(err, interop.ErrSessionClosed):
		var errorType fatalerror.ErrorType
		if appCtx, ok := appctx.LookupFromRequest(r); ok {
			errorType, _ = appctx.LoadFirstFatalError(appCtx)
		}
		RenderSessionClosed(w, r, errorType, err)
	case errors.As(err, &bridgeErr) && bridgeErr.Type == fatalerror.ProtocolViolation:
		RenderForbiddenWithTypeMsg(w, r, string(bridgeErr.Type), "%s", err)
	default:
		log.WithError(err).Warn("Unexpected session error")
		RenderInternalServerError(w, r)
	}
}
