// Package dijkstra defines core types and configuration options
// for the lazy-queue shortest-path engine on core.Graph.
//
// Options:
//
//	– Undirected:  seed and relax across incident edges in both directions.
//	– ReturnPath:  if true, return the predecessor vector for path reconstruction.
//	– Reset:       clear processed flags before running instead of failing.
//	– MaxDistance: optional cap on distances to explore; vertices beyond stay Unreached.
//	– OnSettle:    observer hook invoked once per settled vertex.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrDirtyGraph      if a vertex is already processed and Reset is off.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in WithMaxDistance).
//	– ErrNoPath          if PathTo is asked for an unreachable vertex.
//	– ErrNoPredecessors  if PathTo receives a nil predecessor vector.
package dijkstra

import (
	"errors"
	"math"
)

// Unreached is the distance reported for vertices with no path from the
// source. Callers must compare against it explicitly.
const Unreached int64 = 1_000_000

// NoPredecessor marks the source and unreached vertices in the prev vector.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrDirtyGraph indicates leftover processed flags from an earlier run.
	// Call ClearProcessed on the graph or pass WithReset.
	ErrDirtyGraph = errors.New("dijkstra: graph has processed vertices from a previous run")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates the requested vertex was not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrNoPredecessors indicates PathTo was called without a prev vector
	// (Dijkstra ran without WithReturnPath).
	ErrNoPredecessors = errors.New("dijkstra: predecessor vector not recorded")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Undirected  – treat every incident edge as traversable both ways.
// ReturnPath  – if true, return the predecessor vector; otherwise prev is nil.
// Reset       – clear processed flags before the run.
// MaxDistance – stop once the smallest queued length exceeds it.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnSettle    – called with (vertex, distance) when a vertex is settled,
//
//	the source included. Nil disables it.
type Options struct {
	Undirected  bool
	ReturnPath  bool
	Reset       bool
	MaxDistance int64
	OnSettle    func(id int, dist int64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithUndirected switches seeding and relaxation to undirected semantics:
// every edge incident to a settled vertex leads to its other endpoint.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

// WithReturnPath enables generation of the predecessor vector in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithReset clears the graph's processed flags before running, so repeated
// runs on one graph need no manual ClearProcessed.
func WithReset() Option {
	return func(o *Options) {
		o.Reset = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not settled.
// Panics with ErrBadMaxDistance on negative values.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnSettle registers a callback run each time a vertex is settled.
func WithOnSettle(fn func(id int, dist int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns directed semantics, no predecessor vector, no
// reset, no distance cap and no hook.
func DefaultOptions() Options {
	return Options{
		Undirected:  false,
		ReturnPath:  false,
		Reset:       false,
		MaxDistance: math.MaxInt64,
	}
}
