package storage

import (
	"testing"
	"time"

	"github.com/pondside/docbrief/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name string
		doc  *core.Document
	}{
		{
			name: "pending document",
			doc: &core.Document{
				Id:          1,
				Filename:    "report.pdf",
				MimeType:    "application/pdf",
				RawContent:  []byte("%PDF-1.4 fake payload"),
				Fingerprint: core.FingerprintFromContent([]byte("%PDF-1.4 fake payload")),
				Status:      core.StatusPending,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "ready document with categories",
			doc: &core.Document{
				Id:            77,
				Filename:      "deck.pptx",
				MimeType:      "application/vnd.openxmlformats-officedocument.presentationml.presentation",
				RawContent:    []byte{0x50, 0x4b, 0x03, 0x04},
				Fingerprint:   12345,
				Status:        core.StatusReady,
				ExtractedText: "Q3 revenue grew twelve percent",
				Summary:       "Revenue grew in Q3.",
				Categories: []core.Category{
					{Label: "finance", Score: 0.92},
					{Label: "business", Score: 0.41},
				},
				CreatedAt: now.Add(-time.Hour),
				UpdatedAt: now,
			},
		},
		{
			name: "failed document",
			doc: &core.Document{
				Id:          3,
				Filename:    "broken.docx",
				RawContent:  []byte("not actually a zip"),
				Status:      core.StatusFailed,
				ErrorDetail: "text extraction failed: malformed document",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDocument(tt.doc)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.doc.Id, decoded.Id)
			assert.Equal(t, tt.doc.Filename, decoded.Filename)
			assert.Equal(t, tt.doc.MimeType, decoded.MimeType)
			assert.Equal(t, tt.doc.RawContent, decoded.RawContent)
			assert.Equal(t, tt.doc.Fingerprint, decoded.Fingerprint)
			assert.Equal(t, tt.doc.Status, decoded.Status)
			assert.Equal(t, tt.doc.ExtractedText, decoded.ExtractedText)
			assert.Equal(t, tt.doc.Summary, decoded.Summary)
			assert.Equal(t, tt.doc.Categories, decoded.Categories)
			assert.Equal(t, tt.doc.ErrorDetail, decoded.ErrorDetail)
			assert.True(t, tt.doc.CreatedAt.Equal(decoded.CreatedAt), "CreatedAt mismatch")
			assert.True(t, tt.doc.UpdatedAt.Equal(decoded.UpdatedAt), "UpdatedAt mismatch")
		})
	}
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	now := time.Now().UTC()
	doc := &core.Document{
		Id:         9,
		Filename:   "report.pdf",
		RawContent: []byte("payload bytes here"),
		Status:     core.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	data := MarshalDocument(doc)
	_, err := UnmarshalDocument(data[:len(data)/2])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
