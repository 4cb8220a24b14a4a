// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/hallon-go/hallon/bridge/appctx"
	"github.com/hallon-go/hallon/bridge/metrics"
	"github.com/hallon-go/hallon/bridge/session"
)

const version20240101 = "/2024-01-01"

const shutdownTimeout = 5 * time.Second

// Server exposes one session over HTTP.
type Server struct {
	host     string
	port     int
	server   *http.Server
	listener net.Listener
	exit     chan error
}

// NewServer creates a session API server. Listen must be called before
// Serve so that the port is known (and allocated when port is 0) before
// anyone is told about the server.
func NewServer(host string, port int, appCtx appctx.ApplicationContext, service session.Service) *Server {
	metrics.Init()

	router := chi.NewRouter()
	router.Mount(version20240101, NewRouter(appCtx, service))
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	return &Server{
		host:   host,
		port:   port,
		server: &http.Server{Handler: router},
		exit:   make(chan error, 1),
	}
}

// Listen on port
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
	if err != nil {
		return err
	}

	s.listener = ln
	if s.port == 0 {
		s.port = ln.Addr().(*net.TCPAddr).Port
		log.WithField("port", s.port).Info("Listening port was dynamically allocated")
	}
	log.Debugf("Session API Server listening on %s", ln.Addr())
	return nil
}

func (s *Server) IsListening() bool {
	return s.listener != nil
}

// Serve requests until ctx is done, Exit is called or serving fails.
// Open requests get shutdownTimeout to complete.
func (s *Server) Serve(ctx context.Context) error {
	served := make(chan error, 1)
	go func() {
		served <- s.server.Serve(s.listener)
	}()

	var err error
	select {
	case err = <-served:
		return err
	case err = <-s.exit:
		if err != nil {
			log.WithError(err).Error("Session API Server exiting")
		}
	case <-ctx.Done():
		err = ctx.Err()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := s.server.Shutdown(shutdownCtx); shutdownErr != nil {
		log.WithError(shutdownErr).Warn("Graceful shutdown failed, closing")
		_ = s.server.Close()
	}
	if servedErr := <-served; !errors.Is(servedErr, http.ErrServerClosed) {
		log.WithError(servedErr).Warn("Unexpected serve error")
	}
	log.Info("Session API Server closed")
	return err
}

// Exit makes Serve return err. Only the first call has an effect.
func (s *Server) Exit(err error) {
	select {
	case s.exit <- err:
	default:
	}
}

// Port is server's port
func (s *Server) Port() int {
	return s.port
}

// URL is full server url for specified endpoint
func (s *Server) URL(endpoint string) string {
	return "http://" + net.JoinHostPort(s.host, strconv.Itoa(s.port)) + version20240101 + endpoint
}

// MetricsURL is the url of the Prometheus endpoint.
func (s *Server) MetricsURL() string {
	return "http://" + net.JoinHostPort(s.host, strconv.Itoa(s.port)) + "/metrics"
}
