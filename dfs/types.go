// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start endpoint does not exist.
	ErrStartNotFound = errors.New("dfs: start endpoint not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when an endpoint is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(name string) error

	// OnExit, if non-nil, is invoked after all descendants were explored (post-order).
	OnExit func(name string) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the start.
	MaxDepth int

	// FullTraversal restarts from every unvisited endpoint, covering the whole forest.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit
// and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context checked before each discovery.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal makes DFS cover every component, in sorted start order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// All maps and slices use display names.
type DFSResult struct {
	// Order records endpoints in the sequence they finished (post-order).
	Order []string

	// Depth maps each endpoint to its tree depth from the root it was reached from.
	Depth map[string]int

	// Parent maps each endpoint to the endpoint it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Roots lists the root of every DFS tree, in traversal order.
	Roots []string
}
