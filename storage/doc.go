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


// Package storage provides the storage abstraction layer for docbrief.
//
// This package defines the DocumentRepository interface that decouples the
// ingestion pipeline and query surface from the storage implementation, so
// different backends (BadgerDB, in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return the interface type
// to enforce abstraction:
//
//	repo, err := badger.NewDocumentRepository(backend)  // returns storage.DocumentRepository
//
// # Thread Safety
//
// All repository implementations must be thread-safe. Every mutating method
// must be atomic: a concurrent reader never observes a half-updated record,
// and updating a record that was deleted concurrently returns ErrNotFound
// rather than resurrecting it.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support.
package storage
