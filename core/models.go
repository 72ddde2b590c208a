package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for documents.
// It is assigned from a database sequence at creation time and is stable
// for the lifetime of the store.
type ID uint64

// Fingerprint identifies the raw content of a document.
type Fingerprint uint64

// FingerprintFromContent computes a deterministic content fingerprint using
// BLAKE2b hashing. Identical content always produces the same fingerprint.
func FingerprintFromContent(data []byte) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// Status describes where a document is in its enrichment lifecycle.
//
// Pending and Processing are transient; Ready and Failed are terminal and
// no transition ever leaves a terminal state.
type Status int

const (
	// StatusPending means the document is persisted and waiting for a worker.
	StatusPending Status = iota + 1
	// StatusProcessing means a background worker has claimed the document.
	StatusProcessing
	// StatusReady means extraction and enrichment completed successfully.
	StatusReady
	// StatusFailed means processing hit a terminal error; ErrorDetail holds the cause.
	StatusFailed
)

// Terminal reports whether no further automatic transition occurs.
func (s Status) Terminal() bool {
	return s == StatusReady || s == StatusFailed
}

// String returns the lowercase wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its lowercase wire name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Category is a single topic classification with a confidence score in [0,1].
type Category struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Document is the central entity: one uploaded file and everything derived
// from it. RawContent is owned by the store once persisted and never mutated.
// ExtractedText, Summary and Categories are written exactly once, by the
// single processing run for this document.
type Document struct {
	Id            ID
	Filename      string
	MimeType      string
	RawContent    []byte
	Fingerprint   Fingerprint
	Status        Status
	ExtractedText string
	Summary       string
	Categories    []Category // length <= 3, descending by score
	ErrorDetail   string     // set only when Status == StatusFailed
	CreatedAt     time.Time  // upload acceptance time
	UpdatedAt     time.Time  // last store write
}
