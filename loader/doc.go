// SPDX-License-Identifier: MIT

// Package loader reads delimiter-separated route records into edges.
//
// Every source is exposed through one pull-based contract, Iterator:
//
//	for it.Next() {
//	    e := it.Edge()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// Two variants implement it:
//
//   - List: an in-memory, ordered slice of records.
//   - File: a line-oriented source read lazily, one line per Next. Blank lines
//     are skipped. The underlying handle is closed as soon as the source is
//     exhausted, a malformed line is met, or a read fails.
//
// Record format:
//
//	"Atlanta,Charlotte"          → Edge{From: "Atlanta", To: "Charlotte"}
//	"New Orleans, Oklahoma City" → fields are trimmed
//	"Atlanta"                    → ErrMalformedRecord (fewer than 2 fields)
//	"A,B,extra"                  → extra fields are ignored
//
// The delimiter is a literal string (default ","), set with WithDelimiter.
//
// Errors:
//
//	ErrMalformedRecord – a record has fewer than 2 non-empty fields
//	ErrSourceNotFound  – the file to open does not exist
//	ErrRead            – the underlying reader failed mid-stream
package loader
