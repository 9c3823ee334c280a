// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// File iterates a line-oriented source, one record per non-blank line.
// It is single-use and not safe for concurrent use.
//
// The source is closed (when it is an io.Closer) as soon as it is exhausted,
// a malformed line is met, or a read fails. Close may be called earlier to
// abandon the iteration; it is idempotent.
type File struct {
	name    string
	src     io.Reader
	scanner *bufio.Scanner
	cfg     loaderConfig
	line    int
	cur     Edge
	err     error
	closed  bool
}

// Open opens path for lazy reading.
// Returns ErrSourceNotFound naming path when the file does not exist.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}

	return newFile(path, f, opts), nil
}

// NewReader returns an Iterator over the lines of r. If r is an io.Closer it
// is closed under the same rules as a file opened with Open.
func NewReader(r io.Reader, opts ...Option) *File {
	return newFile("reader", r, opts)
}

func newFile(name string, r io.Reader, opts []Option) *File {
	return &File{
		name:    name,
		src:     r,
		scanner: bufio.NewScanner(r),
		cfg:     newConfig(opts),
	}
}

// Next reads lines until it finds a non-blank one and parses it.
func (f *File) Next() bool {
	if f.closed || f.err != nil {
		return false
	}
	for f.scanner.Scan() {
		f.line++
		text := f.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := ParseRecord(text, f.cfg.delimiter)
		if err != nil {
			f.fail(fmt.Errorf("%s:%d: %w", f.name, f.line, err))
			return false
		}
		f.cur = e

		return true
	}
	if err := f.scanner.Err(); err != nil {
		f.fail(fmt.Errorf("%w: %s:%d: %v", ErrRead, f.name, f.line+1, err))
		return false
	}
	f.fail(nil)

	return false
}

// Edge returns the current edge.
func (f *File) Edge() Edge { return f.cur }

// Err returns the first parse, read or close error, if any.
func (f *File) Err() error { return f.err }

// Close releases the underlying source. Safe to call more than once.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if c, ok := f.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// fail records err (if it is the first) and closes the source.
func (f *File) fail(err error) {
	if f.err == nil {
		f.err = err
	}
	if cerr := f.Close(); cerr != nil && f.err == nil {
		f.err = fmt.Errorf("%w: close %s: %v", ErrRead, f.name, cerr)
	}
}
