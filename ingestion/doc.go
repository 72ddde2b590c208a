// Package ingestion provides pipeline orchestration for document enrichment.
//
// The Pipeline type manages the document workflow, including:
//   - Validating and persisting uploaded documents
//   - Extracting text from document payloads asynchronously
//   - Summarizing and classifying extracted text asynchronously
//
// Accept returns as soon as the document is persisted with a pending
// status; enrichment runs on a bounded worker pool. Errors during async
// processing are recorded on the document and logged, they never fail
// the accept operation or crash the pipeline.
package ingestion
