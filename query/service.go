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


package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/storage"
)

// DocumentHeader is the listing form of a document: identity, status and
// enrichment results, never raw content or extracted text. Summary and
// categories are present only once the document is ready.
type DocumentHeader struct {
	Id         core.ID         `json:"id"`
	Filename   string          `json:"filename"`
	MimeType   string          `json:"mimeType"`
	Size       int             `json:"size"`
	Status     core.Status     `json:"status"`
	Summary    string          `json:"summary,omitempty"`
	Categories []core.Category `json:"categories,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// DocumentView is the full presentation of a single document. The
// enrichment fields are populated according to status: a ready document
// exposes its summary, categories and extracted text, a failed document
// exposes its error detail, and a transient document exposes neither.
type DocumentView struct {
	DocumentHeader
	ExtractedText string `json:"extractedText,omitempty"`
	ErrorDetail   string `json:"errorDetail,omitempty"`
}

// RawDocument carries the original uploaded payload for download.
type RawDocument struct {
	Filename string
	MimeType string
	Content  []byte
}

// Service provides read access to stored documents.
type Service struct {
	documents storage.DocumentRepository
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new query service.
func NewService(documents storage.DocumentRepository, opts ...Option) (*Service, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	s := &Service{
		documents: documents,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Get returns the view of a single document.
// Returns storage.ErrNotFound if the document does not exist.
func (s *Service) Get(ctx context.Context, id core.ID) (*DocumentView, error) {
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewOf(doc), nil
}

// List returns headers for all documents, ordered by upload time ascending.
func (s *Service) List(ctx context.Context) ([]*DocumentHeader, error) {
	docs, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	headers := make([]*DocumentHeader, len(docs))
	for i, doc := range docs {
		h := headerOf(doc)
		headers[i] = &h
	}
	return headers, nil
}

// Raw returns the original uploaded payload of a document.
// Returns storage.ErrNotFound if the document does not exist.
func (s *Service) Raw(ctx context.Context, id core.ID) (*RawDocument, error) {
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RawDocument{
		Filename: doc.Filename,
		MimeType: doc.MimeType,
		Content:  doc.RawContent,
	}, nil
}

func headerOf(doc *core.Document) DocumentHeader {
	h := DocumentHeader{
		Id:        doc.Id,
		Filename:  doc.Filename,
		MimeType:  doc.MimeType,
		Size:      len(doc.RawContent),
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if doc.Status == core.StatusReady {
		h.Summary = doc.Summary
		h.Categories = doc.Categories
	}
	return h
}

func viewOf(doc *core.Document) *DocumentView {
	view := &DocumentView{DocumentHeader: headerOf(doc)}

	switch doc.Status {
	case core.StatusReady:
		view.ExtractedText = doc.ExtractedText
	case core.StatusFailed:
		view.ErrorDetail = doc.ErrorDetail
	}

	return view
}
