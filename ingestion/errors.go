package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentRepositoryRequired is returned when a document repository is not provided.
	ErrDocumentRepositoryRequired = errors.New("document repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrExtractorRequired is returned when a text extractor is not provided.
	ErrExtractorRequired = errors.New("text extractor required")

	// ErrInvalidInput is the umbrella for upload rejections. Every
	// rejection below wraps it, so callers can match the class with a
	// single errors.Is check.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFileType is returned when an uploaded file has an
	// extension that no extractor handles.
	ErrUnsupportedFileType = fmt.Errorf("%w: unsupported file type", ErrInvalidInput)

	// ErrEmptyFilename is returned when an upload carries no filename.
	ErrEmptyFilename = fmt.Errorf("%w: filename required", ErrInvalidInput)

	// ErrEmptyPayload is returned when an upload carries no content.
	ErrEmptyPayload = fmt.Errorf("%w: document content required", ErrInvalidInput)

	// ErrPayloadTooLarge is returned when an upload exceeds the configured
	// content size limit.
	ErrPayloadTooLarge = fmt.Errorf("%w: document content exceeds size limit", ErrInvalidInput)
)
