// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the loader package.
//
// Callers branch with errors.Is; implementations attach the offending record
// or path with %w.

package loader

import "errors"

// ErrMalformedRecord indicates a record that does not split into at least two
// non-empty fields. Loading stops at the first such record.
var ErrMalformedRecord = errors.New("loader: malformed record")

// ErrSourceNotFound indicates that the file to load does not exist.
var ErrSourceNotFound = errors.New("loader: source not found")

// ErrRead indicates an I/O failure while reading a line source.
var ErrRead = errors.New("loader: read failed")
