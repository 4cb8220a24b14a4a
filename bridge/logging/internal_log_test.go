// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusPrint(t *testing.T) {
	var logsBuffer bytes.Buffer
	SetOutput(&logsBuffer)
	defer SetOutput(os.Stderr)
	logrus.Print("hello bridge")
	assert.Contains(t, logsBuffer.String(), "hello bridge")
}

func TestLogPrint(t *testing.T) {
	var logsBuffer bytes.Buffer
	SetOutput(&logsBuffer)
	defer SetOutput(os.Stderr)
	log.Print("hello log")
	assert.Contains(t, logsBuffer.String(), "hello log")
}

func TestInternalFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, time.March, 5, 10, 11, 12, 13000000, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "Producer event-producer exited",
		Data: logrus.Fields{
			"state": "Faulted",
			"error": errors.New("boom"),
		},
	}

	out, err := (&InternalFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "05 Mar 2024 10:11:12.013 [WARNING] Producer event-producer exited (error=boom state=Faulted)\n", string(out))
}

func TestInternalFormatterWithoutFields(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, time.March, 5, 10, 11, 12, 0, time.UTC),
		Level:   logrus.DebugLevel,
		Message: "event-producer started",
	}

	out, err := (&InternalFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "05 Mar 2024 10:11:12.000 [DEBUG] event-producer started\n", string(out))
}

func TestSetLogLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	SetLogLevel("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &InternalFormatter{}, logrus.StandardLogger().Formatter)
}
