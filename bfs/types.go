// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start endpoint is absent.
	ErrStartNotFound = errors.New("bfs: start endpoint not found")

	// ErrTargetNotFound is returned when the target endpoint is absent.
	ErrTargetNotFound = errors.New("bfs: target endpoint not found")

	// ErrSameEndpoint is returned when start and target are the same endpoint.
	ErrSameEndpoint = errors.New("bfs: start and target are the same endpoint")

	// ErrNoRoute is returned when the target cannot be reached from the start.
	ErrNoRoute = errors.New("bfs: no route")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when an endpoint is enqueued with its depth from the start.
	OnEnqueue func(name string, depth int)

	// OnDequeue is called immediately before visiting an endpoint.
	OnDequeue func(name string, depth int)

	// OnVisit is called when visiting an endpoint. A non-nil error aborts the search.
	OnVisit func(name string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip a curr→neighbor step by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(name string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(name string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// buildOptions applies opts over the defaults and reports any recorded violation.
func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFSResult holds the outcome of a BFS traversal, keyed by display name:
//   - Order: endpoints visited, in visit sequence.
//   - Depth: distance (in hops) from the start.
//   - Parent: predecessor in the BFS tree.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start endpoint to dest.
// dest is matched case-insensitively against the recorded display names.
// Returns ErrNoRoute if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	name, ok := r.lookup(dest)
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoRoute, dest)
	}
	// build reversed path
	path := []string{}
	for cur := name; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// lookup resolves dest to the display name recorded in Depth.
func (r *BFSResult) lookup(dest string) (string, bool) {
	display, _ := core.Normalize(dest)
	if _, ok := r.Depth[display]; ok {
		return display, true
	}
	for name := range r.Depth {
		if core.SameEndpoint(name, dest) {
			return name, true
		}
	}

	return "", false
}
