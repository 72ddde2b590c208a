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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/pondside/docbrief/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// category is an internal type used for JSON unmarshaling.
// It matches the structure expected by the LLM.
type category struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// classification is the wrapper structure for the LLM's JSON response.
type classification struct {
	Categories []category `json:"categories"`
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new classifier using the provided configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// Classify assigns topic classifications to text using an LLM.
// Empty input returns an empty slice without a model call.
func (c *Classifier) Classify(ctx context.Context, text string) ([]ai.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return []ai.Classification{}, nil
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildClassificationPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result classification
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			c.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			c.logger.Debug("no choices returned from model")
			return []ai.Classification{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		c.logger.Error("failed to parse classifier response after retries", "err", lastErr)
		return nil, lastErr
	}

	classifications := make([]ai.Classification, 0, len(result.Categories))
	for _, cat := range result.Categories {
		if cat.Label == "" {
			continue
		}
		classifications = append(classifications, ai.Classification{
			Label: strings.ToLower(strings.TrimSpace(cat.Label)),
			Score: cat.Score,
		})
	}

	classifications = RankClassifications(classifications)

	c.logger.Debug("classified text",
		"total", len(result.Categories),
		"kept", len(classifications))

	return classifications, nil
}

// RankClassifications clamps scores to [0,1], sorts by descending score and
// keeps at most ai.MaxCategories entries.
func RankClassifications(classifications []ai.Classification) []ai.Classification {
	for i := range classifications {
		if classifications[i].Score < 0 {
			classifications[i].Score = 0
		}
		if classifications[i].Score > 1 {
			classifications[i].Score = 1
		}
	}

	slices.SortStableFunc(classifications, func(a, b ai.Classification) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(classifications) > ai.MaxCategories {
		classifications = classifications[:ai.MaxCategories]
	}
	return classifications
}
