package query

import (
	"context"
	"testing"

	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/storage"
	"github.com/pondside/docbrief/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (*Service, storage.DocumentRepository) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(nil)
	assert.ErrorIs(t, err, ErrDocumentRepositoryRequired)
}

func TestGet_PendingDocument(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	doc, err := repo.AddDocument(ctx, &core.Document{
		Filename:   "report.pdf",
		MimeType:   "application/pdf",
		RawContent: []byte("%PDF fake"),
		Status:     core.StatusPending,
	})
	require.NoError(t, err)

	view, err := svc.Get(ctx, doc.Id)
	require.NoError(t, err)

	assert.Equal(t, doc.Id, view.Id)
	assert.Equal(t, "report.pdf", view.Filename)
	assert.Equal(t, core.StatusPending, view.Status)
	assert.Equal(t, len("%PDF fake"), view.Size)

	// Transient documents expose no enrichment fields
	assert.Empty(t, view.Summary)
	assert.Empty(t, view.Categories)
	assert.Empty(t, view.ExtractedText)
	assert.Empty(t, view.ErrorDetail)
}

func TestGet_ReadyDocument(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	doc, err := repo.AddDocument(ctx, &core.Document{
		Filename:      "report.pdf",
		RawContent:    []byte("%PDF fake"),
		Status:        core.StatusReady,
		ExtractedText: "quarterly results",
		Summary:       "A quarterly report.",
		Categories:    []core.Category{{Label: "finance", Score: 0.9}},
	})
	require.NoError(t, err)

	view, err := svc.Get(ctx, doc.Id)
	require.NoError(t, err)

	assert.Equal(t, core.StatusReady, view.Status)
	assert.Equal(t, "A quarterly report.", view.Summary)
	assert.Equal(t, "quarterly results", view.ExtractedText)
	require.Len(t, view.Categories, 1)
	assert.Equal(t, "finance", view.Categories[0].Label)
	assert.Empty(t, view.ErrorDetail)
}

func TestGet_FailedDocument(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	doc, err := repo.AddDocument(ctx, &core.Document{
		Filename:    "broken.docx",
		RawContent:  []byte("junk"),
		Status:      core.StatusFailed,
		ErrorDetail: "text extraction failed: malformed document",
	})
	require.NoError(t, err)

	view, err := svc.Get(ctx, doc.Id)
	require.NoError(t, err)

	assert.Equal(t, core.StatusFailed, view.Status)
	assert.Equal(t, "text extraction failed: malformed document", view.ErrorDetail)
	assert.Empty(t, view.Summary)
	assert.Empty(t, view.Categories)
	assert.Empty(t, view.ExtractedText)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Get(context.Background(), core.ID(404))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestList_HeadersOnly(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"a.pdf", "b.docx", "c.pptx"} {
		_, err := repo.AddDocument(ctx, &core.Document{
			Filename:   name,
			RawContent: []byte("content of " + name),
			Status:     core.StatusPending,
		})
		require.NoError(t, err)
	}

	headers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 3)

	assert.Equal(t, "a.pdf", headers[0].Filename)
	assert.Equal(t, "b.docx", headers[1].Filename)
	assert.Equal(t, "c.pptx", headers[2].Filename)
	for _, h := range headers {
		assert.NotZero(t, h.Id)
		assert.NotZero(t, h.Size)
	}
}

func TestList_ReadyDocumentCarriesResults(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	_, err := repo.AddDocument(ctx, &core.Document{
		Filename:      "report.pdf",
		RawContent:    []byte("%PDF fake"),
		Status:        core.StatusReady,
		ExtractedText: "full extracted text",
		Summary:       "A quarterly report.",
		Categories:    []core.Category{{Label: "finance", Score: 0.9}},
	})
	require.NoError(t, err)

	headers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 1)

	// Listing carries the enrichment results but never the full text
	assert.Equal(t, "A quarterly report.", headers[0].Summary)
	require.Len(t, headers[0].Categories, 1)
	assert.Equal(t, "finance", headers[0].Categories[0].Label)
}

func TestRaw(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	content := []byte("%PDF original bytes")
	doc, err := repo.AddDocument(ctx, &core.Document{
		Filename:   "report.pdf",
		MimeType:   "application/pdf",
		RawContent: content,
		Status:     core.StatusReady,
		Summary:    "s",
	})
	require.NoError(t, err)

	raw, err := svc.Raw(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", raw.Filename)
	assert.Equal(t, "application/pdf", raw.MimeType)
	assert.Equal(t, content, raw.Content)

	_, err = svc.Raw(ctx, core.ID(404))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
