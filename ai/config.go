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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for enrichment service providers.
type Config struct {
	// SummarizerHost is the base URL for the summarization service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	SummarizerHost string

	// ClassifierHost is the base URL for the classification service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	ClassifierHost string

	// SummarizerModel is the model identifier used for summaries.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	SummarizerModel string

	// ClassifierModel is the model identifier used for classification.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ClassifierModel string

	// MaxSummaryWords bounds the requested summary length.
	// Default: 80
	MaxSummaryWords int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSummarizerHost sets the summarization service host URL.
func WithSummarizerHost(host string) ConfigOption {
	return func(c *Config) {
		c.SummarizerHost = host
	}
}

// WithClassifierHost sets the classification service host URL.
func WithClassifierHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
	}
}

// WithHost sets both summarizer and classifier hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.SummarizerHost = host
		c.ClassifierHost = host
	}
}

// WithSummarizerModel sets the summarizer model identifier.
func WithSummarizerModel(model string) ConfigOption {
	return func(c *Config) {
		c.SummarizerModel = model
	}
}

// WithClassifierModel sets the classifier model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithMaxSummaryWords sets the requested summary length bound.
func WithMaxSummaryWords(words int) ConfigOption {
	return func(c *Config) {
		c.MaxSummaryWords = words
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. By default both services use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		SummarizerHost:  defaultHost,
		ClassifierHost:  defaultHost,
		SummarizerModel: "qwen2.5:3b",
		ClassifierModel: "qwen2.5:3b",
		MaxSummaryWords: 80,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithSummarizerModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.SummarizerHost != "" && !strings.HasSuffix(c.SummarizerHost, "/v1") {
		c.SummarizerHost = strings.TrimSuffix(c.SummarizerHost, "/")
		c.SummarizerHost = c.SummarizerHost + "/v1"
	}
	if c.ClassifierHost != "" && !strings.HasSuffix(c.ClassifierHost, "/v1") {
		c.ClassifierHost = strings.TrimSuffix(c.ClassifierHost, "/")
		c.ClassifierHost = c.ClassifierHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.SummarizerHost == "" {
		return errors.New("ai config: SummarizerHost is required")
	}
	if c.ClassifierHost == "" {
		return errors.New("ai config: ClassifierHost is required")
	}
	if c.SummarizerModel == "" {
		return errors.New("ai config: SummarizerModel is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.MaxSummaryWords < 1 {
		return errors.New("ai config: MaxSummaryWords must be positive")
	}
	return nil
}
