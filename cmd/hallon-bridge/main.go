// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/logging"
	"github.com/hallon-go/hallon/bridge/metrics"
	"github.com/hallon-go/hallon/bridge/rapi"
	"github.com/hallon-go/hallon/bridge/session"
)

type options struct {
	LogLevel string   `long:"log-level" env:"HALLON_LOG_LEVEL" default:"info" description:"log level"`
	Name     string   `long:"name" env:"HALLON_SESSION_NAME" default:"hallon" description:"session name"`
	Listen   string   `long:"listen" env:"HALLON_LISTEN" default:"127.0.0.1" description:"control API host"`
	Port     int      `long:"port" env:"HALLON_PORT" default:"9563" description:"control API port, 0 picks a free one"`
	Serve    bool     `long:"serve" description:"serve the control API until interrupted"`
	Events   []string `long:"events" description:"event names emitted in demo mode"`
}

func main() {
	opts := getCLIArgs()
	logging.SetLogLevel(opts.LogLevel)

	metrics.Init()
	s := session.New(session.Config{Name: opts.Name, EventsAPI: metrics.EventsAPI{}})
	if err := s.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start session")
	}

	if !opts.Serve {
		if err := runDemo(s, opts.Events, os.Stdout); err != nil {
			log.WithError(err).Fatal("Demo session failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, s, opts); err != nil {
		log.WithError(err).Fatal("Session API server failed")
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	return opts
}

// serve runs the control API until ctx is done or the producer exits, then
// logs the session out and waits for the producer.
func serve(ctx context.Context, s *session.Session, opts options) error {
	server := rapi.NewServer(opts.Listen, opts.Port, s.AppCtx(), s)
	if err := server.Listen(); err != nil {
		return err
	}
	log.Infof("Session API listening on %s", server.URL(""))

	go func() {
		<-s.Done()
		server.Exit(s.Err())
	}()

	err := server.Serve(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if logoutErr := s.Logout(); logoutErr != nil {
		log.WithError(logoutErr).Debug("Logout skipped")
	}
	if joinErr := s.Join(); joinErr != nil {
		return joinErr
	}
	return err
}
