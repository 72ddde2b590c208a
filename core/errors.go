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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidStatus indicates an invalid Status value.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEmptyFilename indicates the Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrEmptyContent indicates the RawContent field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyCategoryLabel indicates a category with no label.
	ErrEmptyCategoryLabel = errors.New("category label cannot be empty")

	// ErrCategoryScoreRange indicates a category score outside [0,1].
	ErrCategoryScoreRange = errors.New("category score must be between 0 and 1")

	// ErrTooManyCategories indicates more than the allowed number of categories.
	ErrTooManyCategories = errors.New("too many categories")

	// ErrTerminalStateConflict indicates a terminal document whose result
	// fields do not match its status.
	ErrTerminalStateConflict = errors.New("terminal state conflicts with result fields")
)
