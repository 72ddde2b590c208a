package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/storage"
)

func TestDocumentBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	doc := &core.Document{
		Filename:    "report.pdf",
		MimeType:    "application/pdf",
		RawContent:  []byte("%PDF-1.4 fake payload"),
		Fingerprint: core.FingerprintFromContent([]byte("%PDF-1.4 fake payload")),
		Status:      core.StatusPending,
	}

	added, err := repo.AddDocument(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	retrieved, err := repo.GetDocument(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if retrieved.Filename != "report.pdf" {
		t.Fatalf("Expected 'report.pdf', got '%s'", retrieved.Filename)
	}
	if retrieved.Status != core.StatusPending {
		t.Fatalf("Expected pending status, got %s", retrieved.Status)
	}
	if string(retrieved.RawContent) != "%PDF-1.4 fake payload" {
		t.Fatal("Raw content did not round-trip")
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	_, err = repo.GetDocument(context.Background(), core.ID(9999))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetDocuments_SkipsMissing(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := repo.AddDocument(ctx, &core.Document{
		Filename:   "one.pdf",
		RawContent: []byte("one"),
		Status:     core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	docs, err := repo.GetDocuments(ctx, added.Id, core.ID(9999))
	if err != nil {
		t.Fatalf("Failed to get documents: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(docs))
	}
	if docs[0].Id != added.Id {
		t.Fatalf("Expected document %d, got %d", added.Id, docs[0].Id)
	}
}

func TestListDocuments_OrderedByCreation(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	// Insert out of chronological order
	docs := []*core.Document{
		{Filename: "second.pdf", RawContent: []byte("b"), Status: core.StatusPending, CreatedAt: now.Add(-1 * time.Hour)},
		{Filename: "third.pdf", RawContent: []byte("c"), Status: core.StatusPending, CreatedAt: now},
		{Filename: "first.pdf", RawContent: []byte("a"), Status: core.StatusPending, CreatedAt: now.Add(-2 * time.Hour)},
	}
	for _, doc := range docs {
		if _, err := repo.AddDocument(ctx, doc); err != nil {
			t.Fatalf("Failed to add document: %v", err)
		}
	}

	listed, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("Expected 3 documents, got %d", len(listed))
	}

	want := []string{"first.pdf", "second.pdf", "third.pdf"}
	for i, name := range want {
		if listed[i].Filename != name {
			t.Fatalf("Position %d: expected %s, got %s", i, name, listed[i].Filename)
		}
	}
}

func TestListDocumentsByStatus(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	pending, err := repo.AddDocument(ctx, &core.Document{
		Filename: "pending.pdf", RawContent: []byte("p"), Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	ready, err := repo.AddDocument(ctx, &core.Document{
		Filename: "done.pdf", RawContent: []byte("d"), Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	ready.Status = core.StatusReady
	ready.Summary = "Done."
	if _, err := repo.UpdateDocument(ctx, ready); err != nil {
		t.Fatalf("Failed to update document: %v", err)
	}

	pendingDocs, err := repo.ListDocumentsByStatus(ctx, core.StatusPending)
	if err != nil {
		t.Fatalf("Failed to list pending documents: %v", err)
	}
	if len(pendingDocs) != 1 || pendingDocs[0].Id != pending.Id {
		t.Fatalf("Expected only document %d pending, got %d results", pending.Id, len(pendingDocs))
	}

	readyDocs, err := repo.ListDocumentsByStatus(ctx, core.StatusReady)
	if err != nil {
		t.Fatalf("Failed to list ready documents: %v", err)
	}
	if len(readyDocs) != 1 || readyDocs[0].Id != ready.Id {
		t.Fatalf("Expected only document %d ready, got %d results", ready.Id, len(readyDocs))
	}
}

func TestUpdateDocument(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := repo.AddDocument(ctx, &core.Document{
		Filename: "report.pdf", RawContent: []byte("data"), Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	added.Status = core.StatusReady
	added.ExtractedText = "extracted text"
	added.Summary = "A summary."
	added.Categories = []core.Category{{Label: "finance", Score: 0.8}}

	updated, err := repo.UpdateDocument(ctx, added)
	if err != nil {
		t.Fatalf("Failed to update document: %v", err)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Fatal("Expected UpdatedAt >= CreatedAt")
	}

	retrieved, err := repo.GetDocument(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if retrieved.Status != core.StatusReady {
		t.Fatalf("Expected ready status, got %s", retrieved.Status)
	}
	if retrieved.Summary != "A summary." {
		t.Fatalf("Expected summary to persist, got '%s'", retrieved.Summary)
	}
	if len(retrieved.Categories) != 1 || retrieved.Categories[0].Label != "finance" {
		t.Fatal("Expected categories to persist")
	}
}

func TestUpdateDocument_NotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	doc := &core.Document{
		Id: core.ID(424242), Filename: "ghost.pdf", RawContent: []byte("x"), Status: core.StatusReady, Summary: "s",
	}
	_, err = repo.UpdateDocument(context.Background(), doc)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

// A record deleted while a worker holds its enrichment result must stay
// deleted: the final update fails with ErrNotFound and writes nothing.
func TestUpdateDocument_DoesNotResurrectDeleted(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := repo.AddDocument(ctx, &core.Document{
		Filename: "report.pdf", RawContent: []byte("data"), Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	// Simulate a worker holding a reference while the document is deleted
	inFlight := *added

	if err := repo.DeleteDocument(ctx, added.Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	inFlight.Status = core.StatusReady
	inFlight.Summary = "Result for a deleted document."
	if _, err := repo.UpdateDocument(ctx, &inFlight); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	if _, err := repo.GetDocument(ctx, added.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("Deleted document was resurrected by a late update")
	}

	listed, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("Expected empty listing after delete, got %d documents", len(listed))
	}
}

func TestDeleteDocument(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := repo.AddDocument(ctx, &core.Document{
		Filename: "report.pdf", RawContent: []byte("data"), Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if err := repo.DeleteDocument(ctx, added.Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	if _, err := repo.GetDocument(ctx, added.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	// Status index must be cleaned up too
	pendingDocs, err := repo.ListDocumentsByStatus(ctx, core.StatusPending)
	if err != nil {
		t.Fatalf("Failed to list pending documents: %v", err)
	}
	if len(pendingDocs) != 0 {
		t.Fatalf("Expected no pending documents after delete, got %d", len(pendingDocs))
	}

	// Deleting again reports not found
	if err := repo.DeleteDocument(ctx, added.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on double delete, got %v", err)
	}
}
