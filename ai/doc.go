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


// Package ai provides abstractions for the enrichment services used in
// docbrief.
//
// This package defines interfaces for the two enrichment operations the
// ingestion pipeline consumes: summarization and topic classification. It
// follows the dependency inversion principle, allowing the pipeline to
// depend on abstractions rather than concrete model clients.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Summarizer: produces a short summary of extracted document text
//   - Classifier: produces ranked topic classifications for the text
//   - Provider: aggregates both services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// # Empty Input
//
// Both services degrade gracefully on empty input rather than failing:
// Summarize returns the fixed EmptySummary sentinel and Classify returns
// an empty slice, without calling any model.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	summary, err := provider.Summarizer().Summarize(ctx, text)
//	categories, err := provider.Classifier().Classify(ctx, text)
package ai
