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

// Package docbrief assembles the document enrichment service: a badger
// backed document store, AI enrichment provider, ingestion pipeline and
// query service behind a single handle.
package docbrief

import (
	"log/slog"

	"github.com/pondside/docbrief/ai"
	"github.com/pondside/docbrief/ai/openai"
	"github.com/pondside/docbrief/ingestion"
	"github.com/pondside/docbrief/query"
	"github.com/pondside/docbrief/storage"
	"github.com/pondside/docbrief/storage/badger"
)

// Service owns the storage backend and AI provider shared by the
// pipeline and query layers.
type Service struct {
	backend   *badger.Backend
	documents storage.DocumentRepository
	provider  ai.Provider
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the configuration for the default AI provider.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider instead of the default
// OpenAI-compatible one. Used by tests with mock providers.
func WithProvider(provider ai.Provider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithInMemory stores documents in memory instead of on disk.
// The file path is ignored and nothing survives a restart.
func WithInMemory() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens the document store at filePath and wires the AI
// provider.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	// Apply options
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create document repository
	documents, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings unless one was injected
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			documents.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		backend:   backend,
		documents: documents,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// Close shuts down the AI provider, repositories and backend.
func (s *Service) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	// Close repository
	if err := s.documents.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DocumentRepository returns the underlying document repository.
func (s *Service) DocumentRepository() storage.DocumentRepository {
	return s.documents
}

// Provider returns the AI provider used for enrichment.
func (s *Service) Provider() ai.Provider {
	return s.provider
}

// NewPipeline creates an ingestion pipeline bound to this service's
// repository and provider.
func (s *Service) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.documents, s.provider, opts...)
}

// NewQueryService creates a query service bound to this service's
// repository.
func (s *Service) NewQueryService(opts ...query.Option) (*query.Service, error) {
	return query.NewService(s.documents, opts...)
}
