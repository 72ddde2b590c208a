// Package query provides read-side views over stored documents.
//
// The Service shapes documents for presentation: listings carry headers
// with enrichment results but never full text, and a single document view
// exposes extracted text or failure detail depending on the document's
// status. Raw content is only reachable through the explicit Raw
// operation.
package query
