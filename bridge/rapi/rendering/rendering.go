// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rendering writes API responses. Everything is rendered as JSON
// whatever the request's Accept header says.
package rendering

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const contentTypeJSON = "application/json"

// RenderJSON marshals v and writes it with the given status. Nothing is
// written when marshalling fails; the error is returned instead.
func RenderJSON(status int, w http.ResponseWriter, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.WithError(err).Warn("Error while writing response body")
	}
	return nil
}
