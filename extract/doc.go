// Package extract turns uploaded document bytes into cleaned plain text.
//
// Extraction is a pure mapping from (kind, raw bytes) to text: it holds no
// state, has no side effects, and is safe to call concurrently for
// different inputs. A malformed container yields ErrMalformedDocument with
// the underlying cause; a document that parses but contains no text yields
// an empty string, not an error.
package extract
