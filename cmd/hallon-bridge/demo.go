// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/interop"
	"github.com/hallon-go/hallon/bridge/session"
)

var defaultDemoEvents = []string{"logged_in", "connection_error", "metadata_updated", "logged_out"}

// runDemo notifies every name, logs out, joins the producer and writes the
// drained events to out as JSON lines.
func runDemo(s *session.Session, names []string, out io.Writer) error {
	if len(names) == 0 {
		names = defaultDemoEvents
	}

	for _, name := range names {
		if err := s.Notify(name, nil); err != nil {
			return err
		}
	}
	if err := s.Logout(); err != nil {
		return err
	}
	if err := s.Join(); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	var encodeErr error
	s.Process(func(events []interop.Event) {
		for _, ev := range events {
			if encodeErr = enc.Encode(ev); encodeErr != nil {
				return
			}
		}
		log.WithField("count", len(events)).Info("Drained forwarded events")
	})
	return encodeErr
}
