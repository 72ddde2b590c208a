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

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the document record format. The record shapes are
// small and stable, so these are written directly against the mus-go
// primitives rather than generated.

// IDMUS serializes ID values with varint encoding.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

// FingerprintMUS serializes Fingerprint values with varint encoding.
var FingerprintMUS = fingerprintMUS{}

type fingerprintMUS struct{}

func (fingerprintMUS) Marshal(fp Fingerprint, bs []byte) int {
	return varint.Uint64.Marshal(uint64(fp), bs)
}

func (fingerprintMUS) Unmarshal(bs []byte) (Fingerprint, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return Fingerprint(v), n, err
}

func (fingerprintMUS) Size(fp Fingerprint) int {
	return varint.Uint64.Size(uint64(fp))
}

// StatusMUS serializes Status values with varint encoding.
var StatusMUS = statusMUS{}

type statusMUS struct{}

func (statusMUS) Marshal(s Status, bs []byte) int {
	return varint.Int.Marshal(int(s), bs)
}

func (statusMUS) Unmarshal(bs []byte) (Status, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	return Status(v), n, err
}

func (statusMUS) Size(s Status) int {
	return varint.Int.Size(int(s))
}

// CategoryMUS serializes Category values.
var CategoryMUS = categoryMUS{}

type categoryMUS struct{}

func (categoryMUS) Marshal(c Category, bs []byte) int {
	n := ord.String.Marshal(c.Label, bs)
	n += raw.Float64.Marshal(c.Score, bs[n:])
	return n
}

func (categoryMUS) Unmarshal(bs []byte) (c Category, n int, err error) {
	c.Label, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	c.Score, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (categoryMUS) Size(c Category) int {
	return ord.String.Size(c.Label) + raw.Float64.Size(c.Score)
}

// DocumentMUS serializes Document records. Timestamps are stored as Unix
// microseconds.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (documentMUS) Marshal(doc Document, bs []byte) int {
	n := IDMUS.Marshal(doc.Id, bs)
	n += ord.String.Marshal(doc.Filename, bs[n:])
	n += ord.String.Marshal(doc.MimeType, bs[n:])
	n += marshalBytes(doc.RawContent, bs[n:])
	n += FingerprintMUS.Marshal(doc.Fingerprint, bs[n:])
	n += StatusMUS.Marshal(doc.Status, bs[n:])
	n += ord.String.Marshal(doc.ExtractedText, bs[n:])
	n += ord.String.Marshal(doc.Summary, bs[n:])
	n += varint.Int.Marshal(len(doc.Categories), bs[n:])
	for i := range doc.Categories {
		n += CategoryMUS.Marshal(doc.Categories[i], bs[n:])
	}
	n += ord.String.Marshal(doc.ErrorDetail, bs[n:])
	n += marshalTime(doc.CreatedAt, bs[n:])
	n += marshalTime(doc.UpdatedAt, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (doc Document, n int, err error) {
	var n1 int
	if doc.Id, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Filename, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.MimeType, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.RawContent, n1, err = unmarshalBytes(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Fingerprint, n1, err = FingerprintMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Status, n1, err = StatusMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.ExtractedText, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.Summary, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var count int
	if count, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if count < 0 {
		err = ErrInvalidDocument
		return
	}
	if count > 0 {
		doc.Categories = make([]Category, count)
		for i := 0; i < count; i++ {
			if doc.Categories[i], n1, err = CategoryMUS.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}
	if doc.ErrorDetail, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.CreatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	if doc.UpdatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (documentMUS) Size(doc Document) int {
	size := IDMUS.Size(doc.Id)
	size += ord.String.Size(doc.Filename)
	size += ord.String.Size(doc.MimeType)
	size += sizeBytes(doc.RawContent)
	size += FingerprintMUS.Size(doc.Fingerprint)
	size += StatusMUS.Size(doc.Status)
	size += ord.String.Size(doc.ExtractedText)
	size += ord.String.Size(doc.Summary)
	size += varint.Int.Size(len(doc.Categories))
	for i := range doc.Categories {
		size += CategoryMUS.Size(doc.Categories[i])
	}
	size += ord.String.Size(doc.ErrorDetail)
	size += sizeTime(doc.CreatedAt)
	size += sizeTime(doc.UpdatedAt)
	return size
}

func marshalBytes(b []byte, bs []byte) int {
	n := varint.Int.Marshal(len(b), bs)
	n += copy(bs[n:], b)
	return n
}

func unmarshalBytes(bs []byte) ([]byte, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrInvalidDocument
	}
	if length == 0 {
		return nil, n, nil
	}
	b := make([]byte, length)
	copy(b, bs[n:n+length])
	return b, n + length, nil
}

func sizeBytes(b []byte) int {
	return varint.Int.Size(len(b)) + len(b)
}

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
