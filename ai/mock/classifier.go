package mock

import (
	"context"
	"strings"

	"github.com/pondside/docbrief/ai"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses the default deterministic classification.
	ClassifyFunc func(ctx context.Context, text string) ([]ai.Classification, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify produces deterministic mock classifications.
// Default behavior: empty input returns an empty slice; otherwise up to
// three labels chosen by the text length, with descending scores.
func (m *MockClassifier) Classify(ctx context.Context, text string) ([]ai.Classification, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}

	if len(strings.Fields(text)) == 0 {
		return []ai.Classification{}, nil
	}

	// Deterministic label selection so tests can assert on results
	labels := ai.CategoryLabels
	first := len(text) % len(labels)
	score := 0.9
	classifications := make([]ai.Classification, 0, ai.MaxCategories)
	for i := 0; i < ai.MaxCategories; i++ {
		classifications = append(classifications, ai.Classification{
			Label: labels[(first+i)%len(labels)],
			Score: score,
		})
		score -= 0.2
	}

	return classifications, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
