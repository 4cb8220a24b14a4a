// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package appctx

import (
	"context"
	"net/http"

	"github.com/hallon-go/hallon/bridge/fatalerror"

	log "github.com/sirupsen/logrus"
)

// This package contains a set of utility methods for accessing application
// context and application context data.

// A ReqCtxKey type is used as a key for storing values in the request context.
type ReqCtxKey int

// ReqCtxApplicationContextKey is used for injecting application
// context object into request context.
const ReqCtxApplicationContextKey ReqCtxKey = iota

// FromRequest retrieves application context from the request context.
func FromRequest(request *http.Request) ApplicationContext {
	return request.Context().Value(ReqCtxApplicationContextKey).(ApplicationContext)
}

// LookupFromRequest is like FromRequest but reports whether the request
// carries an application context.
func LookupFromRequest(request *http.Request) (ApplicationContext, bool) {
	appCtx, ok := request.Context().Value(ReqCtxApplicationContextKey).(ApplicationContext)
	return appCtx, ok
}

// RequestWithAppCtx places application context into request context.
func RequestWithAppCtx(request *http.Request, appCtx ApplicationContext) *http.Request {
	return request.WithContext(context.WithValue(request.Context(), ReqCtxApplicationContextKey, appCtx))
}

// GetSessionName returns the session name stored in app context.
func GetSessionName(appCtx ApplicationContext) string {
	return appCtx.GetOrDefault(AppCtxSessionNameKey, "").(string)
}

// firstFatalError is stored as a single value so that readers never see
// the error type without its cause.
type firstFatalError struct {
	errorType fatalerror.ErrorType
	cause     error
}

// StoreFirstFatalError stores unrecoverable error type and its cause in appctx once.
// This error is considered to be the rootcause of failure
func StoreFirstFatalError(appCtx ApplicationContext, errorType fatalerror.ErrorType, cause error) {
	if !fatalerror.IsValid(string(errorType)) {
		log.Warnf("Unexpected fatal error type %q, storing %s", errorType, fatalerror.Unknown)
		errorType = fatalerror.Unknown
	}
	if existing := appCtx.StoreIfNotExists(AppCtxFirstFatalErrorKey, firstFatalError{errorType: errorType, cause: cause}); existing != nil {
		log.Warnf("Omitting fatal error %s: %s already stored", errorType, existing.(firstFatalError).errorType)
		return
	}

	log.Warnf("First fatal error stored in appctx: %s", errorType)
}

// LoadFirstFatalError returns stored error type if found
func LoadFirstFatalError(appCtx ApplicationContext) (errorType fatalerror.ErrorType, found bool) {
	v, found := appCtx.Load(AppCtxFirstFatalErrorKey)
	if !found {
		return "", false
	}
	return v.(firstFatalError).errorType, true
}

// LoadFirstFatalErrorCause returns the error stored along with the first fatal error type
func LoadFirstFatalErrorCause(appCtx ApplicationContext) error {
	v, found := appCtx.Load(AppCtxFirstFatalErrorKey)
	if !found {
		return nil
	}
	return v.(firstFatalError).cause
}
