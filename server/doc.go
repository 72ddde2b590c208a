// Package server exposes the document pipeline over HTTP.
//
// Routes:
//
//	POST   /api/documents/upload        multipart upload, returns the new ID
//	GET    /api/documents               list document headers
//	GET    /api/documents/:id           document view (202 while transient)
//	GET    /api/documents/:id/download  original payload
//	DELETE /api/documents/:id           remove a document
//	GET    /health                      liveness probe
//
// Errors are returned as structured JSON bodies with a stable code field.
package server
