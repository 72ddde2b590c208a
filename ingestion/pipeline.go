package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/pondside/docbrief/ai"
	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/extract"
	"github.com/pondside/docbrief/storage"
)

const (
	// DefaultMaxContentSize is the default upload size limit (16 MiB).
	DefaultMaxContentSize = 16 << 20

	// DefaultEnrichmentTimeout bounds a single document's summarization and
	// classification calls. Local models can be slow on long documents.
	DefaultEnrichmentTimeout = 120 * time.Second
)

// contentTypes maps lowercase file extensions to their MIME types. The
// stdlib mime table does not reliably carry the OOXML entries on every
// platform, so the supported set is pinned here.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// TextExtractor maps a document payload to plain text.
// Implementations must be safe for concurrent use.
type TextExtractor interface {
	Extract(kind extract.Kind, data []byte) (string, error)
}

// defaultExtractor dispatches to the extract package.
type defaultExtractor struct{}

func (defaultExtractor) Extract(kind extract.Kind, data []byte) (string, error) {
	return extract.Extract(kind, data)
}

// Pipeline orchestrates the acceptance and enrichment of documents.
// Accept persists the document and returns immediately; extraction,
// summarization and classification run on a bounded worker pool.
type Pipeline struct {
	documents      storage.DocumentRepository
	pool           *ants.Pool
	proc           *documentProcessor
	extractor      TextExtractor
	maxContentSize int
	enrichTimeout  time.Duration
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithMaxContentSize sets the upload size limit in bytes.
// Default is DefaultMaxContentSize.
func WithMaxContentSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("max content size must be positive, got %d", size)
		}
		p.maxContentSize = size
		return nil
	}
}

// WithEnrichmentTimeout bounds the AI calls made for a single document.
// Default is DefaultEnrichmentTimeout.
func WithEnrichmentTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) error {
		if timeout <= 0 {
			return fmt.Errorf("enrichment timeout must be positive, got %s", timeout)
		}
		p.enrichTimeout = timeout
		return nil
	}
}

// WithTextExtractor replaces the default text extractor.
// Intended for tests that need deterministic extraction behavior.
func WithTextExtractor(extractor TextExtractor) Option {
	return func(p *Pipeline) error {
		if extractor == nil {
			return ErrExtractorRequired
		}
		p.extractor = extractor
		return nil
	}
}

// NewPipeline creates a new document pipeline.
func NewPipeline(
	documents storage.DocumentRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		documents:      documents,
		pool:           pool,
		extractor:      defaultExtractor{},
		maxContentSize: DefaultMaxContentSize,
		enrichTimeout:  DefaultEnrichmentTimeout,
		logger:         slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processor after options are applied (so it gets final config)
	proc, err := newDocumentProcessor(documents, p.extractor,
		provider.Summarizer(), provider.Classifier(), p.enrichTimeout, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.proc = proc

	return p, nil
}

// Accept validates and persists an uploaded document, then submits it for
// asynchronous enrichment. It returns the assigned ID as soon as the
// document is durably stored in the pending state; the caller never waits
// for processing. Errors during async processing are recorded on the
// document, they do not surface here.
//
// mimeType is the type declared by the uploader; when empty, the type is
// derived from the filename extension.
func (p *Pipeline) Accept(ctx context.Context, filename, mimeType string, content []byte) (core.ID, error) {
	if strings.TrimSpace(filename) == "" {
		return 0, ErrEmptyFilename
	}
	if _, ok := extract.KindForFilename(filename); !ok {
		return 0, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedFileType, filepath.Ext(filename), strings.Join(extract.SupportedExtensions(), ", "))
	}
	if len(content) == 0 {
		return 0, ErrEmptyPayload
	}
	if len(content) > p.maxContentSize {
		return 0, fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, len(content), p.maxContentSize)
	}

	if mimeType == "" {
		mimeType = contentTypes[strings.ToLower(filepath.Ext(filename))]
	}

	doc := &core.Document{
		Filename:    filename,
		MimeType:    mimeType,
		RawContent:  content,
		Fingerprint: core.FingerprintFromContent(content),
		Status:      core.StatusPending,
	}

	added, err := p.documents.AddDocument(ctx, doc)
	if err != nil {
		return 0, err
	}

	id := added.Id
	p.logger.Info("accepted document", "id", id, "filename", filename, "bytes", len(content))

	// Submit for async processing
	p.pool.Submit(func() {
		if err := p.proc.process(context.Background(), id); err != nil {
			p.logger.Error("error processing document", "id", id, "err", err)
		}
	})

	return id, nil
}

// Recover re-submits documents a previous run left unfinished. Documents
// found in the processing state were orphaned by a crash and are reset to
// pending before resubmission. Returns the number of documents submitted.
// Call once at startup, before accepting new uploads.
func (p *Pipeline) Recover(ctx context.Context) (int, error) {
	stale, err := p.documents.ListDocumentsByStatus(ctx, core.StatusProcessing)
	if err != nil {
		return 0, err
	}
	for _, doc := range stale {
		doc.Status = core.StatusPending
		if _, err := p.documents.UpdateDocument(ctx, doc); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return 0, err
		}
	}

	pending, err := p.documents.ListDocumentsByStatus(ctx, core.StatusPending)
	if err != nil {
		return 0, err
	}
	for _, doc := range pending {
		id := doc.Id
		p.pool.Submit(func() {
			if err := p.proc.process(context.Background(), id); err != nil {
				p.logger.Error("error processing document", "id", id, "err", err)
			}
		})
	}

	if len(pending) > 0 {
		p.logger.Info("recovered unfinished documents", "count", len(pending))
	}
	return len(pending), nil
}

// Delete removes a document and any derived data. A document currently
// being processed is simply removed; the in-flight worker detects the
// deletion and abandons its result instead of resurrecting the record.
// Returns storage.ErrNotFound if the document does not exist.
func (p *Pipeline) Delete(ctx context.Context, id core.ID) error {
	return p.documents.DeleteDocument(ctx, id)
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
