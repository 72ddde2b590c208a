// Package config loads application settings from an optional YAML file
// with environment variable overrides for deployment-sensitive values.
package config
