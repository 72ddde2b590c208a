// Package openai implements the ai service interfaces against
// OpenAI-compatible chat APIs (OpenAI, Ollama, LocalAI, vLLM) using
// langchaingo.
package openai
