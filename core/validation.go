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


package core

import "fmt"

// MaxCategories is the maximum number of classifications kept per document.
const MaxCategories = 3

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Filename must not be empty
//   - RawContent must not be empty
//   - Status must be a known value
//   - Categories must each be valid, at most MaxCategories
//   - Failed documents must carry an ErrorDetail; non-Failed must not
//
// NOT validated (populated by the processing run):
//   - ExtractedText, Summary (empty until the document reaches Ready)
//   - ID (0 is valid before the store assigns one)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFilename)
	}

	if len(doc.RawContent) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if err := ValidateStatus(doc.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if len(doc.Categories) > MaxCategories {
		return fmt.Errorf("%w: %w: %d", ErrInvalidDocument, ErrTooManyCategories, len(doc.Categories))
	}
	for i := range doc.Categories {
		if err := ValidateCategory(doc.Categories[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	// Exactly one of Ready-with-results / Failed-with-detail /
	// transient-with-neither may hold.
	switch doc.Status {
	case StatusFailed:
		if doc.ErrorDetail == "" || doc.Summary != "" || len(doc.Categories) > 0 {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrTerminalStateConflict)
		}
	case StatusReady:
		if doc.Summary == "" || doc.ErrorDetail != "" {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrTerminalStateConflict)
		}
	default:
		if doc.Summary != "" || doc.ErrorDetail != "" || len(doc.Categories) > 0 {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrTerminalStateConflict)
		}
	}

	return nil
}

// ValidateStatus validates that a Status has a known value.
func ValidateStatus(status Status) error {
	switch status {
	case StatusPending, StatusProcessing, StatusReady, StatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
}

// ValidateCategory validates a single classification entry.
func ValidateCategory(c Category) error {
	if c.Label == "" {
		return ErrEmptyCategoryLabel
	}
	if c.Score < 0 || c.Score > 1 {
		return fmt.Errorf("%w: %v", ErrCategoryScoreRange, c.Score)
	}
	return nil
}
