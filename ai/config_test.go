package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.SummarizerHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ClassifierHost)
	assert.Equal(t, "qwen2.5:3b", cfg.SummarizerModel)
	assert.Equal(t, "qwen2.5:3b", cfg.ClassifierModel)
	assert.Equal(t, 80, cfg.MaxSummaryWords)

	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithSummarizerHost("http://summaries:8000/v1"),
		WithClassifierHost("http://labels:8000/v1"),
		WithSummarizerModel("gpt-4o-mini"),
		WithClassifierModel("qwen2.5:7b"),
		WithMaxSummaryWords(40),
	)

	assert.Equal(t, "http://summaries:8000/v1", cfg.SummarizerHost)
	assert.Equal(t, "http://labels:8000/v1", cfg.ClassifierHost)
	assert.Equal(t, "gpt-4o-mini", cfg.SummarizerModel)
	assert.Equal(t, "qwen2.5:7b", cfg.ClassifierModel)
	assert.Equal(t, 40, cfg.MaxSummaryWords)
}

func TestNewConfig_WithHost(t *testing.T) {
	cfg := NewConfig(WithHost("http://models:11434/v1"))

	assert.Equal(t, "http://models:11434/v1", cfg.SummarizerHost)
	assert.Equal(t, "http://models:11434/v1", cfg.ClassifierHost)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"missing suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SummarizerHost: tt.host, ClassifierHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.SummarizerHost)
			assert.Equal(t, tt.want, cfg.ClassifierHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"missing summarizer host", func(c *Config) { c.SummarizerHost = "" }, true},
		{"missing classifier host", func(c *Config) { c.ClassifierHost = "" }, true},
		{"missing summarizer model", func(c *Config) { c.SummarizerModel = "" }, true},
		{"missing classifier model", func(c *Config) { c.ClassifierModel = "" }, true},
		{"zero summary words", func(c *Config) { c.MaxSummaryWords = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidate_NormalizesHosts(t *testing.T) {
	cfg := NewConfig(WithHost("http://localhost:11434"))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:11434/v1", cfg.SummarizerHost)
}
