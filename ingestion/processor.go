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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/pondside/docbrief/ai"
	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/extract"
	"github.com/pondside/docbrief/storage"
)

// documentProcessor runs the enrichment workflow for a single document:
// claim, extract, summarize, classify, finalize. Any error or panic is
// recorded on the document as a failed terminal state and never escapes
// to the worker pool.
type documentProcessor struct {
	documents     storage.DocumentRepository
	extractor     TextExtractor
	summarizer    ai.Summarizer
	classifier    ai.Classifier
	enrichTimeout time.Duration
	logger        *slog.Logger
}

// newDocumentProcessor creates a new document processor.
func newDocumentProcessor(
	documents storage.DocumentRepository,
	extractor TextExtractor,
	summarizer ai.Summarizer,
	classifier ai.Classifier,
	enrichTimeout time.Duration,
	logger *slog.Logger,
) (*documentProcessor, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if summarizer == nil {
		return nil, fmt.Errorf("summarizer required")
	}
	if classifier == nil {
		return nil, fmt.Errorf("classifier required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &documentProcessor{
		documents:     documents,
		extractor:     extractor,
		summarizer:    summarizer,
		classifier:    classifier,
		enrichTimeout: enrichTimeout,
		logger:        logger.With("processor", "documents"),
	}, nil
}

// process enriches the document identified by id. A document deleted at
// any point during processing is silently abandoned; the final write goes
// through UpdateDocument, which refuses to re-create a deleted record.
func (dp *documentProcessor) process(ctx context.Context, id core.ID) (err error) {
	var doc *core.Document

	defer func() {
		if r := recover(); r != nil {
			dp.logger.Error("panic while processing document", "id", id, "panic", r)
			if doc != nil {
				dp.markFailed(ctx, doc, "internal error during processing")
			}
			err = fmt.Errorf("panic while processing document %d: %v", id, r)
		}
	}()

	doc, err = dp.documents.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Deleted before a worker picked it up.
			return nil
		}
		return err
	}

	if doc.Status != core.StatusPending {
		dp.logger.Warn("skipping document not in pending state", "id", id, "status", doc.Status)
		return nil
	}

	doc.Status = core.StatusProcessing
	doc, err = dp.documents.UpdateDocument(ctx, doc)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	kind, ok := extract.KindForFilename(doc.Filename)
	if !ok {
		// Accept validates the extension, so this means the record was
		// written by something else.
		dp.markFailed(ctx, doc, fmt.Sprintf("unsupported file type: %s", doc.Filename))
		return nil
	}

	dp.logger.Debug("extracting text", "id", id, "kind", kind)
	text, err := dp.extractor.Extract(kind, doc.RawContent)
	if err != nil {
		dp.markFailed(ctx, doc, fmt.Sprintf("text extraction failed: %v", err))
		return nil
	}
	doc.ExtractedText = text

	summary, categories, err := dp.enrich(ctx, text)
	if err != nil {
		dp.markFailed(ctx, doc, fmt.Sprintf("enrichment failed: %v", err))
		return nil
	}

	doc.Summary = summary
	doc.Categories = categories
	doc.Status = core.StatusReady
	doc.ErrorDetail = ""

	if _, err = dp.documents.UpdateDocument(ctx, doc); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			dp.logger.Debug("document deleted during processing, result discarded", "id", id)
			return nil
		}
		return err
	}

	dp.logger.Info("document ready", "id", id, "categories", len(categories))
	return nil
}

// enrich produces the summary and ranked categories for extracted text.
// A document with no extractable text is still enriched successfully: it
// gets the standard empty summary and no categories.
func (dp *documentProcessor) enrich(ctx context.Context, text string) (string, []core.Category, error) {
	if text == "" {
		return ai.EmptySummary, nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, dp.enrichTimeout)
	defer cancel()

	summary, err := dp.summarizer.Summarize(ctx, text)
	if err != nil {
		return "", nil, fmt.Errorf("summarize: %w", err)
	}

	classifications, err := dp.classifier.Classify(ctx, text)
	if err != nil {
		return "", nil, fmt.Errorf("classify: %w", err)
	}

	return summary, rankCategories(classifications), nil
}

// markFailed records a terminal failure on the document. Partial
// enrichment results are discarded so a failed document never carries a
// summary or categories. A concurrent delete makes this a no-op.
func (dp *documentProcessor) markFailed(ctx context.Context, doc *core.Document, detail string) {
	doc.Status = core.StatusFailed
	doc.ErrorDetail = detail
	doc.Summary = ""
	doc.Categories = nil

	if _, err := dp.documents.UpdateDocument(ctx, doc); err != nil && !errors.Is(err, storage.ErrNotFound) {
		dp.logger.Error("error recording document failure", "id", doc.Id, "err", err)
	}
	dp.logger.Warn("document failed", "id", doc.Id, "detail", detail)
}

// rankCategories converts classifications into the stored category form:
// scores clamped to [0,1], ordered by descending score, at most
// core.MaxCategories entries.
func rankCategories(classifications []ai.Classification) []core.Category {
	if len(classifications) == 0 {
		return nil
	}

	categories := make([]core.Category, 0, len(classifications))
	for _, c := range classifications {
		score := min(max(c.Score, 0.0), 1.0)
		categories = append(categories, core.Category{Label: c.Label, Score: score})
	}

	slices.SortStableFunc(categories, func(a, b core.Category) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(categories) > core.MaxCategories {
		categories = categories[:core.MaxCategories]
	}
	return categories
}
