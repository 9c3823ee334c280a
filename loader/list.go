// SPDX-License-Identifier: MIT

package loader

// List iterates an in-memory, ordered slice of records.
// It is single-use and not safe for concurrent use.
type List struct {
	records []string
	cfg     loaderConfig
	pos     int
	cur     Edge
	err     error
}

// NewList returns an Iterator over records. The slice is not copied.
func NewList(records []string, opts ...Option) *List {
	return &List{records: records, cfg: newConfig(opts)}
}

// Next parses the next record. A malformed record stops the iteration and
// is reported by Err.
func (l *List) Next() bool {
	if l.err != nil || l.pos >= len(l.records) {
		return false
	}
	rec := l.records[l.pos]
	l.pos++

	e, err := ParseRecord(rec, l.cfg.delimiter)
	if err != nil {
		l.err = err
		return false
	}
	l.cur = e

	return true
}

// Edge returns the current edge.
func (l *List) Edge() Edge { return l.cur }

// Err returns the first parse error, if any.
func (l *List) Err() error { return l.err }
