package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	aiHostEnv          = "DOCBRIEF_AI_HOST"
	summarizerHostEnv  = "DOCBRIEF_SUMMARIZER_HOST"
	classifierHostEnv  = "DOCBRIEF_CLASSIFIER_HOST"
	summarizerModelEnv = "DOCBRIEF_SUMMARIZER_MODEL"
	classifierModelEnv = "DOCBRIEF_CLASSIFIER_MODEL"
	databasePathEnv    = "DOCBRIEF_DATABASE_PATH"
	listenAddrEnv      = "DOCBRIEF_LISTEN_ADDR"
)

// Config holds all application settings.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	AI       AIConfig       `yaml:"ai"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes"`
}

// DatabaseConfig describes where document records are stored.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// PipelineConfig tunes the background enrichment workers.
type PipelineConfig struct {
	PoolSize                 int `yaml:"poolSize"`
	EnrichmentTimeoutSeconds int `yaml:"enrichmentTimeoutSeconds"`
}

// EnrichmentTimeout returns the configured timeout as a duration.
func (p PipelineConfig) EnrichmentTimeout() time.Duration {
	return time.Duration(p.EnrichmentTimeoutSeconds) * time.Second
}

// AIConfig describes the model endpoints used for enrichment.
type AIConfig struct {
	SummarizerHost  string `yaml:"summarizerHost"`
	ClassifierHost  string `yaml:"classifierHost"`
	SummarizerModel string `yaml:"summarizerModel"`
	ClassifierModel string `yaml:"classifierModel"`
	MaxSummaryWords int    `yaml:"maxSummaryWords"`
}

// Default returns the built-in configuration: a local listener, an
// on-disk store under the working directory and a local model endpoint.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8085",
			MaxUploadBytes: 16 << 20,
		},
		Database: DatabaseConfig{
			Path: "docbrief.db",
		},
		Pipeline: PipelineConfig{
			PoolSize:                 0, // 0 means derive from CPU count
			EnrichmentTimeoutSeconds: 120,
		},
		AI: AIConfig{
			SummarizerHost:  "http://localhost:11434/v1",
			ClassifierHost:  "http://localhost:11434/v1",
			SummarizerModel: "qwen2.5:3b",
			ClassifierModel: "qwen2.5:3b",
			MaxSummaryWords: 80,
		},
	}
}

// Load reads YAML configuration from path (if non-empty) on top of the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(aiHostEnv); v != "" {
		c.AI.SummarizerHost = v
		c.AI.ClassifierHost = v
	}
	if v := os.Getenv(summarizerHostEnv); v != "" {
		c.AI.SummarizerHost = v
	}
	if v := os.Getenv(classifierHostEnv); v != "" {
		c.AI.ClassifierHost = v
	}
	if v := os.Getenv(summarizerModelEnv); v != "" {
		c.AI.SummarizerModel = v
	}
	if v := os.Getenv(classifierModelEnv); v != "" {
		c.AI.ClassifierModel = v
	}
	if v := os.Getenv(databasePathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.MaxUploadBytes < 1 {
		return fmt.Errorf("server.maxUploadBytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Pipeline.PoolSize < 0 {
		return fmt.Errorf("pipeline.poolSize must not be negative, got %d", c.Pipeline.PoolSize)
	}
	if c.Pipeline.EnrichmentTimeoutSeconds < 1 {
		return fmt.Errorf("pipeline.enrichmentTimeoutSeconds must be positive, got %d", c.Pipeline.EnrichmentTimeoutSeconds)
	}
	if c.AI.MaxSummaryWords < 1 {
		return fmt.Errorf("ai.maxSummaryWords must be positive, got %d", c.AI.MaxSummaryWords)
	}
	return nil
}
