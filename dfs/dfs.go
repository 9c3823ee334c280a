// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) over a
// core.Graph and derives connected components from it.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//   - Components(g): every group of mutually reachable endpoints
//
// Neighbors are expanded in insertion order and forest roots in sorted order,
// so results are deterministic for a fixed graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrStartNotFound   if start is missing in single-source mode.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts    DFSOptions
	visited map[string]bool // canonical keys
	res     *DFSResult
}

// DFS performs depth-first search on g from start. With WithFullTraversal the
// start argument is ignored and every component is covered.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var roots []*core.Vertex
	if o.FullTraversal {
		for _, name := range g.Endpoints() {
			if v, ok := g.Vertex(name); ok {
				roots = append(roots, v)
			}
		}
	} else {
		v, ok := g.Vertex(start)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
		}
		roots = append(roots, v)
	}

	w := &dfsWalker{
		opts:    o,
		visited: make(map[string]bool, len(roots)),
		res: &DFSResult{
			Order:  make([]string, 0, len(roots)),
			Depth:  make(map[string]int, len(roots)),
			Parent: make(map[string]string, len(roots)),
		},
	}
	for _, root := range roots {
		if w.visited[root.Key()] {
			continue
		}
		w.res.Roots = append(w.res.Roots, root.Name())
		if err := w.traverse(root, nil, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits v at depth, then recurses into unvisited neighbors.
func (w *dfsWalker) traverse(v, parent *core.Vertex, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[v.Key()] = true
	w.res.Depth[v.Name()] = depth
	if parent != nil {
		w.res.Parent[v.Name()] = parent.Name()
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v.Name()); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %q: %w", v.Name(), err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nbr := range v.Neighbors() {
			if w.visited[nbr.Key()] {
				continue
			}
			if err := w.traverse(nbr, v, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v.Name()); err != nil {
			return fmt.Errorf("dfs: OnExit error at %q: %w", v.Name(), err)
		}
	}
	w.res.Order = append(w.res.Order, v.Name())

	return nil
}
