// Copyright 2025 Pondside Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pondside/docbrief/ingestion"
	"github.com/pondside/docbrief/query"
)

// Server exposes the document pipeline and query service over HTTP.
type Server struct {
	echo           *echo.Echo
	pipeline       *ingestion.Pipeline
	queries        *query.Service
	maxUploadBytes int64
	logger         *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMaxUploadBytes sets the request body limit for uploads.
// Default is ingestion.DefaultMaxContentSize.
func WithMaxUploadBytes(limit int64) Option {
	return func(s *Server) error {
		if limit < 1 {
			return fmt.Errorf("max upload bytes must be positive, got %d", limit)
		}
		s.maxUploadBytes = limit
		return nil
	}
}

// NewServer creates an HTTP server wired to the given pipeline and query
// service.
func NewServer(pipeline *ingestion.Pipeline, queries *query.Service, opts ...Option) (*Server, error) {
	if pipeline == nil {
		return nil, ingestion.ErrDocumentRepositoryRequired
	}
	if queries == nil {
		return nil, query.ErrDocumentRepositoryRequired
	}

	s := &Server{
		pipeline:       pipeline,
		queries:        queries,
		maxUploadBytes: ingestion.DefaultMaxContentSize,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error("request", "method", v.Method, "uri", v.URI,
					"status", v.Status, "latency", v.Latency, "err", v.Error)
			} else {
				s.logger.Info("request", "method", v.Method, "uri", v.URI,
					"status", v.Status, "latency", v.Latency)
			}
			return nil
		},
	}))
	// Coarse outer guard; the pipeline enforces the exact byte limit.
	// Rounded up to whole mebibytes with slack for multipart framing.
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", (s.maxUploadBytes>>20)+2)))

	s.registerRoutes(e)
	s.echo = e

	return s, nil
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealth)

	docs := e.Group("/api/documents")
	docs.POST("/upload", s.handleUpload)
	docs.GET("", s.handleList)
	docs.GET("/:id", s.handleGet)
	docs.GET("/:id/download", s.handleDownload)
	docs.DELETE("/:id", s.handleDelete)
}

// Start begins serving on the given address and blocks until the server
// stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying Echo instance. Exposed for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
