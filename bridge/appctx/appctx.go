// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package appctx holds values shared by everything owned by one session:
// its name and the first fatal error its producer ran into.
package appctx

import (
	"sync"
)

// A Key type is used as a key for storing values in the application context.
type Key int

const (
	// AppCtxFirstFatalErrorKey is used to store first unrecoverable error type
	// encountered by the producer together with its cause
	AppCtxFirstFatalErrorKey Key = iota

	// AppCtxSessionNameKey is used to store the name of the owning session
	AppCtxSessionNameKey
)

// ApplicationContext is a session scope context. It is written by the
// producer's watchdog and read by request handlers concurrently.
type ApplicationContext interface {
	Store(key Key, value interface{})
	Load(key Key) (value interface{}, ok bool)
	GetOrDefault(key Key, defaultValue interface{}) interface{}
	// StoreIfNotExists returns the existing value, or nil if value was stored.
	StoreIfNotExists(key Key, value interface{}) interface{}
}

type applicationContext struct {
	values sync.Map
}

func (appCtx *applicationContext) Store(key Key, value interface{}) {
	appCtx.values.Store(key, value)
}

func (appCtx *applicationContext) StoreIfNotExists(key Key, value interface{}) interface{} {
	if existing, loaded := appCtx.values.LoadOrStore(key, value); loaded {
		return existing
	}
	return nil
}

func (appCtx *applicationContext) Load(key Key) (interface{}, bool) {
	return appCtx.values.Load(key)
}

func (appCtx *applicationContext) GetOrDefault(key Key, defaultValue interface{}) interface{} {
	if value, ok := appCtx.Load(key); ok {
		return value
	}
	return defaultValue
}

// NewApplicationContext returns a new instance of application context.
func NewApplicationContext() ApplicationContext {
	return &applicationContext{}
}
