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


package extract

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind identifies a supported document container format.
type Kind int

const (
	// KindPDF covers .pdf files.
	KindPDF Kind = iota + 1
	// KindWord covers .doc and .docx files.
	KindWord
	// KindPowerPoint covers .ppt and .pptx files.
	KindPowerPoint
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindWord:
		return "word"
	case KindPowerPoint:
		return "powerpoint"
	default:
		return "unknown"
	}
}

// kindByExtension maps lowercase file extensions to their kind.
var kindByExtension = map[string]Kind{
	".pdf":  KindPDF,
	".doc":  KindWord,
	".docx": KindWord,
	".ppt":  KindPowerPoint,
	".pptx": KindPowerPoint,
}

// KindForFilename returns the document kind for a filename based on its
// extension, case-insensitively. The second return value is false when the
// extension is not supported.
func KindForFilename(name string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	kind, ok := kindByExtension[ext]
	return kind, ok
}

// SupportedExtensions returns the supported file extensions, sorted,
// without the leading dot.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(kindByExtension))
	for ext := range kindByExtension {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(exts)
	return exts
}

// Extract maps raw document bytes to cleaned plain text.
// The result has every whitespace run collapsed to a single space and is
// trimmed, so downstream enrichment sees consistent input regardless of
// the source format.
func Extract(kind Kind, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch kind {
	case KindPDF:
		text, err = extractPDF(data)
	case KindWord:
		text, err = extractWord(data)
	case KindPowerPoint:
		text, err = extractPowerPoint(data)
	default:
		return "", ErrUnsupportedKind
	}
	if err != nil {
		return "", err
	}
	return Clean(text), nil
}

// Clean collapses any run of whitespace (including newlines) to a single
// space and trims leading and trailing whitespace.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
