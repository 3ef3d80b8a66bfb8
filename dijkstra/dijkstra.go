package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hullpath/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// The frontier is a min-heap of candidate edges keyed by cumulative length
// from the source. Settling a vertex pushes one fresh entry per relaxable
// edge; entries are never decreased or removed early, and an entry whose
// target is already processed is discarded when popped.
//
// Returns:
//
//   - dist: indexed by vertex ID, sized max(VertexCount, MaxVertexID)+1.
//     dist[source] == 0; Unreached for vertices with no path (and for indices
//     that are not vertex IDs).
//   - prev: predecessor vector if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v ends with an edge u→v.
//     NoPredecessor for the source and unreached vertices.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No vertex of g may be processed, unless WithReset (ErrDirtyGraph).
//
// Side effects: every settled vertex stays processed on g after the call.
// Edge lengths are never modified.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}
	if cfg.Reset {
		g.ClearProcessed()
	} else if n := g.ProcessedCount(); n > 0 {
		return nil, nil, fmt.Errorf("%w: %d processed", ErrDirtyGraph, n)
	}

	size := g.VertexCount()
	if m := g.MaxVertexID(); m > size {
		size = m
	}
	size++

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, size),
		pq:      make(edgePQ, 0, g.EdgeCount()),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, size)
	}

	if err := r.init(source); err != nil {
		return nil, nil, err
	}
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64 // vertex ID → settled distance or Unreached
	prev    []int   // vertex ID → predecessor, nil unless ReturnPath
	pq      edgePQ  // lazy frontier of candidate edges
	seq     uint64  // insertion counter for deterministic ties
}

// init fills the result vectors, settles the source and seeds the frontier.
func (r *runner) init(source int) error {
	for i := range r.dist {
		r.dist[i] = Unreached
	}
	for i := range r.prev {
		r.prev[i] = NoPredecessor
	}
	heap.Init(&r.pq)

	if err := r.settle(source, NoPredecessor, 0); err != nil {
		return err
	}

	return r.seed(source)
}

// seed pushes the source's candidate edges: those whose tail is the source
// under directed semantics, every incident edge otherwise.
func (r *runner) seed(source int) error {
	edges, err := r.g.IncidentEdges(source)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %d: %w", source, err)
	}
	for _, e := range edges {
		if !r.options.Undirected && e.From != source {
			continue
		}
		r.push(e, source, e.Other(source), e.Length)
	}

	return nil
}

// process pops candidates until the frontier is empty or MaxDistance is
// exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*edgeItem)

		// Both endpoints settled: stale frontier entry.
		if r.g.Processed(item.target) {
			continue
		}
		if item.length > r.options.MaxDistance {
			break
		}

		if err := r.settle(item.target, item.from, item.length); err != nil {
			return err
		}
		if err := r.relax(item.target); err != nil {
			return err
		}
	}

	return nil
}

// settle marks v processed and records its final distance.
func (r *runner) settle(v, from int, d int64) error {
	if err := r.g.SetProcessed(v); err != nil {
		return fmt.Errorf("dijkstra: settle %d: %w", v, err)
	}
	r.dist[v] = d
	if r.prev != nil {
		r.prev[v] = from
	}
	if r.options.OnSettle != nil {
		r.options.OnSettle(v, d)
	}

	return nil
}

// relax pushes every edge incident to the freshly settled u whose far
// endpoint is still unprocessed, carrying dist[u] plus the edge length.
// Directed semantics only follow edges whose head is unprocessed, which
// excludes edges into u since u is processed.
func (r *runner) relax(u int) error {
	edges, err := r.g.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %d: %w", u, err)
	}
	base := r.dist[u]
	var v int
	for _, e := range edges {
		if r.options.Undirected {
			v = e.Other(u)
		} else {
			v = e.To
		}
		if r.g.Processed(v) {
			continue
		}
		r.push(e, u, v, addSat(base, e.Length))
	}

	return nil
}

func (r *runner) push(e *core.Edge, from, target int, length int64) {
	heap.Push(&r.pq, &edgeItem{
		edge:   e,
		from:   from,
		target: target,
		length: length,
		seq:    r.seq,
	})
	r.seq++
}

// addSat adds two non-negative lengths, saturating at math.MaxInt64.
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// edgeItem is a frontier entry: an edge tagged with the cumulative length of
// the path that reaches target through it.
type edgeItem struct {
	edge   *core.Edge
	from   int    // settled endpoint the entry was pushed from
	target int    // endpoint to settle when popped
	length int64  // cumulative length from the source
	seq    uint64 // push order
}

// edgePQ is a min-heap of *edgeItem ordered by length, then push order.
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].length != pq[j].length {
		return pq[i].length < pq[j].length
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
