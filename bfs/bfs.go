package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hullpath/core"
)

type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or a wrapped OnVisit error.
//
// BFS only reads the graph; processed state is left untouched.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	return w.res, w.loop()
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
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors follows outgoing (or, undirected, all incident) edges
// and enqueues each unseen far endpoint within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	var (
		edges []*core.Edge
		err   error
	)
	if w.opts.Undirected {
		edges, err = w.graph.IncidentEdges(item.id)
	} else {
		edges, err = w.graph.OutgoingEdges(item.id)
	}
	if err != nil {
		return fmt.Errorf("bfs: edges of %d: %w", item.id, err)
	}

	for _, e := range edges {
		nbr := e.To
		if w.opts.Undirected {
			nbr = e.Other(item.id)
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem{id: nbr, depth: next})
	}

	return nil
}
