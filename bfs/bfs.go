// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool // canonical keys
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	root, ok := g.Vertex(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &BFSResult{
			Order:  make([]string, 0),
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and calls OnEnqueue.
func (w *walker) enqueue(v *core.Vertex, d int, parent *core.Vertex) {
	w.visited[v.Key()] = true
	w.res.Depth[v.Name()] = d
	if parent != nil {
		w.res.Parent[v.Name()] = parent.Name()
	}
	w.opts.OnEnqueue(v.Name(), d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.v.Name(), item.depth)

		w.res.Order = append(w.res.Order, item.v.Name())
		if err := w.opts.OnVisit(item.v.Name(), item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.v.Name(), err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in insertion order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.v.Neighbors() {
		if w.visited[nbr.Key()] {
			continue
		}
		if !w.opts.FilterNeighbor(item.v.Name(), nbr.Name()) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
