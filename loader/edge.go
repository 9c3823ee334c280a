// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"strings"
)

// Edge is one connection between two endpoint names, already trimmed.
type Edge struct {
	From string
	To   string
}

// NewEdge returns an Edge with both names trimmed.
func NewEdge(a, b string) Edge {
	return Edge{From: strings.TrimSpace(a), To: strings.TrimSpace(b)}
}

// Iterator is the pull-based source of edges.
//
// Next advances to the next edge and reports whether one is available.
// Edge returns the current edge and is valid only after Next returned true.
// Err returns the first error met; it is nil when the source simply ran out.
type Iterator interface {
	Next() bool
	Edge() Edge
	Err() error
}

// ParseRecord splits record on the literal delimiter into an Edge.
// Returns ErrMalformedRecord, naming the record, when fewer than two fields
// are present or either of the first two is empty after trimming.
func ParseRecord(record, delimiter string) (Edge, error) {
	fields := strings.Split(record, delimiter)
	if len(fields) < 2 {
		return Edge{}, fmt.Errorf("%w: %q: want 2 fields, got %d", ErrMalformedRecord, record, len(fields))
	}
	e := NewEdge(fields[0], fields[1])
	if e.From == "" || e.To == "" {
		return Edge{}, fmt.Errorf("%w: %q: empty endpoint", ErrMalformedRecord, record)
	}

	return e, nil
}

// Collect drains it and returns every edge, or the iterator's error.
func Collect(it Iterator) ([]Edge, error) {
	var out []Edge
	for it.Next() {
		out = append(out, it.Edge())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
