package ai

import "context"

// Summarizer produces a short prose summary of document text.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize generates a summary of the given text.
	// For empty input it returns the EmptySummary sentinel without
	// invoking any model.
	// Returns an error if summary generation fails.
	Summarize(ctx context.Context, text string) (string, error)
}

// Classifier assigns ranked topic classifications to document text.
// Implementations must be thread-safe for concurrent use.
type Classifier interface {
	// Classify analyzes text and returns up to MaxCategories topic
	// classifications, sorted by descending score, with scores in [0,1].
	// For empty input it returns an empty slice without invoking any model.
	// Returns an error if classification fails.
	Classify(ctx context.Context, text string) ([]Classification, error)
}

// Classification is one topic label with a confidence score.
type Classification struct {
	// Label is one of the CategoryLabels values.
	Label string

	// Score is the model's confidence in [0,1]. Higher means more relevant.
	Score float64
}

// Provider aggregates enrichment services for convenient initialization and
// lifecycle management. A provider creates and manages Summarizer and
// Classifier instances, ensuring they share configuration and resources.
type Provider interface {
	// Summarizer returns the summarization service.
	// The returned Summarizer is safe for concurrent use.
	Summarizer() Summarizer

	// Classifier returns the classification service.
	// The returned Classifier is safe for concurrent use.
	Classifier() Classifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
