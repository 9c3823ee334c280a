// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// pathWalker holds the queue of candidate paths for ShortestPath.
// Every queued path ends in a distinct vertex; paths are dequeued in
// non-decreasing length order.
type pathWalker struct {
	opts    BFSOptions
	ctx     context.Context
	target  *core.Vertex
	queue   [][]*core.Vertex
	visited map[string]bool // canonical keys
}

// ShortestPath returns the first fewest-hop route from `from` to `to`,
// inclusive of both endpoints, as display names.
//
// Implementation:
//   - Stage 1: Validate graph, options and both endpoints; equal endpoints are
//     rejected with ErrSameEndpoint. No search runs for invalid input.
//   - Stage 2: Seed the queue with the one-element path [from]; mark from visited.
//   - Stage 3: Dequeue the front path. If it ends at `to`, return it.
//   - Stage 4: Otherwise extend it by every unvisited neighbor, in insertion
//     order, marking each neighbor visited as it is enqueued.
//   - Stage 5: An exhausted queue yields ErrNoRoute.
//
// Behavior highlights:
//   - The first path reaching `to` has minimum hop count (BFS level property).
//   - Ties are broken by neighbor insertion order, so results are reproducible
//     for a fixed insertion history.
//
// Complexity:
//   - Time O(V + E) expansions plus O(L) per enqueued path copy, Space O(V·L)
//     where L is the route length.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start, ok := g.Vertex(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, from)
	}
	target, ok := g.Vertex(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, to)
	}
	if start == target {
		return nil, fmt.Errorf("%w: %q", ErrSameEndpoint, start.Name())
	}

	w := &pathWalker{
		opts:    o,
		ctx:     o.Ctx,
		target:  target,
		visited: make(map[string]bool),
	}
	w.enqueue([]*core.Vertex{start})

	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoRoute, start.Name(), target.Name())
	}

	return names(found), nil
}

// enqueue marks the last vertex of path visited and appends path to the queue.
func (w *pathWalker) enqueue(path []*core.Vertex) {
	last := path[len(path)-1]
	w.visited[last.Key()] = true
	w.opts.OnEnqueue(last.Name(), len(path)-1)
	w.queue = append(w.queue, path)
}

// loop returns the first dequeued path ending at the target, or nil when the
// queue runs dry.
func (w *pathWalker) loop() ([]*core.Vertex, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		path := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		current := path[len(path)-1]
		depth := len(path) - 1

		w.opts.OnDequeue(current.Name(), depth)
		if err := w.opts.OnVisit(current.Name(), depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", current.Name(), err)
		}
		if current == w.target {
			return path, nil
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		for _, nbr := range current.Neighbors() {
			if w.visited[nbr.Key()] {
				continue
			}
			if !w.opts.FilterNeighbor(current.Name(), nbr.Name()) {
				continue
			}
			next := make([]*core.Vertex, len(path), len(path)+1)
			copy(next, path)
			w.enqueue(append(next, nbr))
		}
	}

	return nil, nil
}

// names maps a vertex path to display names.
func names(path []*core.Vertex) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = v.Name()
	}

	return out
}
