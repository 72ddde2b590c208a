package core

import (
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid pending document",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("%PDF-1.4"),
				Status:     StatusPending,
			},
			wantErr: nil,
		},
		{
			name: "valid ready document",
			doc: &Document{
				Id:            1,
				Filename:      "report.pdf",
				RawContent:    []byte("%PDF-1.4"),
				Status:        StatusReady,
				ExtractedText: "quarterly results",
				Summary:       "A quarterly report.",
				Categories: []Category{
					{Label: "finance", Score: 0.9},
					{Label: "business", Score: 0.4},
				},
			},
			wantErr: nil,
		},
		{
			name: "valid failed document",
			doc: &Document{
				Id:          1,
				Filename:    "broken.docx",
				RawContent:  []byte("not a zip"),
				Status:      StatusFailed,
				ErrorDetail: "text extraction failed",
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name: "empty filename",
			doc: &Document{
				RawContent: []byte("data"),
				Status:     StatusPending,
			},
			wantErr: ErrEmptyFilename,
		},
		{
			name: "empty content",
			doc: &Document{
				Filename: "report.pdf",
				Status:   StatusPending,
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "invalid status",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     Status(42),
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "too many categories",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     StatusReady,
				Summary:    "A report.",
				Categories: []Category{
					{Label: "a", Score: 0.9},
					{Label: "b", Score: 0.8},
					{Label: "c", Score: 0.7},
					{Label: "d", Score: 0.6},
				},
			},
			wantErr: ErrTooManyCategories,
		},
		{
			name: "category score out of range",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     StatusReady,
				Summary:    "A report.",
				Categories: []Category{{Label: "finance", Score: 1.2}},
			},
			wantErr: ErrCategoryScoreRange,
		},
		{
			name: "category with empty label",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     StatusReady,
				Summary:    "A report.",
				Categories: []Category{{Label: "", Score: 0.5}},
			},
			wantErr: ErrEmptyCategoryLabel,
		},
		{
			name: "failed without error detail",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     StatusFailed,
			},
			wantErr: ErrTerminalStateConflict,
		},
		{
			name: "failed with summary",
			doc: &Document{
				Filename:    "report.pdf",
				RawContent:  []byte("data"),
				Status:      StatusFailed,
				ErrorDetail: "boom",
				Summary:     "should not be here",
			},
			wantErr: ErrTerminalStateConflict,
		},
		{
			name: "ready without summary",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     StatusReady,
			},
			wantErr: ErrTerminalStateConflict,
		},
		{
			name: "pending with summary",
			doc: &Document{
				Filename:   "report.pdf",
				RawContent: []byte("data"),
				Status:     StatusPending,
				Summary:    "too early",
			},
			wantErr: ErrTerminalStateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateDocument() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory(Category{Label: "finance", Score: 0.0}); err != nil {
		t.Errorf("score 0.0 should be valid, got %v", err)
	}
	if err := ValidateCategory(Category{Label: "finance", Score: 1.0}); err != nil {
		t.Errorf("score 1.0 should be valid, got %v", err)
	}
	if err := ValidateCategory(Category{Label: "finance", Score: -0.1}); !errors.Is(err, ErrCategoryScoreRange) {
		t.Errorf("negative score error = %v, want %v", err, ErrCategoryScoreRange)
	}
}
