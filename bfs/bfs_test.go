package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hullpath/bfs"
	"github.com/katalvlaran/hullpath/core"
	"github.com/katalvlaran/hullpath/dijkstra"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 1)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex(1))
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(3))

	res, err := bfs.BFS(g, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.Order)
	require.Equal(t, 0, res.Depth[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, path)
}

// TestBFS_CycleDepths covers a 4-cycle walked in both modes.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 4, 1)
	_, _ = g.AddEdge(4, 1, 1)

	directed, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, directed.Order)
	require.Equal(t, 3, directed.Depth[4])

	undirected, err := bfs.BFS(g, 1, bfs.WithUndirected())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 3}, undirected.Order)
	require.Equal(t, 1, undirected.Depth[4])
	require.Equal(t, 2, undirected.Depth[3])
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 3, 0)

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Order)
	require.False(t, res.Reached(3))

	res, err = bfs.BFS(g, 1, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Order)
}

func TestBFS_NoPath(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	require.NoError(t, g.AddVertex(9))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	_, err = res.PathTo(9)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	stop := errors.New("stop")

	var seen []int
	_, err := bfs.BFS(g, 1, bfs.WithOnVisit(func(id, _ int) error {
		seen = append(seen, id)
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 1, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_LeavesProcessedStateAlone checks BFS can run on a graph a
// shortest-path run has already marked.
func TestBFS_LeavesProcessedStateAlone(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	before := g.ProcessedVertices()

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.True(t, res.Reached(2))
	require.Equal(t, before, g.ProcessedVertices())
}

// TestBFS_MatchesShortestPathReachability checks that BFS reaches exactly the
// vertices a shortest-path run assigns a real distance, in both modes.
func TestBFS_MatchesShortestPathReachability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		n := 2 + rng.Intn(10)
		g := core.NewGraph()
		for v := 0; v < n; v++ {
			require.NoError(t, g.AddVertex(v))
		}
		for k := rng.Intn(2 * n); k > 0; k-- {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge(u, v, int64(rng.Intn(20)))
			require.NoError(t, err)
		}

		for _, undirected := range []bool{false, true} {
			var (
				bopts []bfs.Option
				dopts []dijkstra.Option
			)
			if undirected {
				bopts = append(bopts, bfs.WithUndirected())
				dopts = append(dopts, dijkstra.WithUndirected())
			}
			res, err := bfs.BFS(g, 0, bopts...)
			require.NoError(t, err)
			dist, _, err := dijkstra.Dijkstra(g.Clone(), 0, dopts...)
			require.NoError(t, err)

			for v := 0; v < n; v++ {
				require.Equal(t, res.Reached(v), dist[v] != dijkstra.Unreached,
					"round %d undirected=%v vertex %d", round, undirected, v)
			}
		}
	}
}
