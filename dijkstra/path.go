package dijkstra

import "fmt"

// Reached reports whether id has a computed distance in dist.
// Out-of-range IDs report false.
func Reached(dist []int64, id int) bool {
	return id >= 0 && id < len(dist) && dist[id] != Unreached
}

// PathTo rebuilds the vertex sequence source→…→target from the vectors
// returned by Dijkstra with WithReturnPath.
//
// The source is the unique vertex with distance 0 and no predecessor; any
// other vertex without a predecessor was not reached.
//
// Errors:
//   - ErrNoPredecessors: prev is nil.
//   - ErrNoPath:         target out of range or unreached.
//
// Complexity: O(path length).
func PathTo(dist []int64, prev []int, target int) ([]int, error) {
	if prev == nil {
		return nil, ErrNoPredecessors
	}
	if target < 0 || target >= len(prev) || target >= len(dist) {
		return nil, fmt.Errorf("%w: %d out of range", ErrNoPath, target)
	}
	if prev[target] == NoPredecessor && dist[target] != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, target)
	}

	var rev []int
	for v := target; v != NoPredecessor; v = prev[v] {
		rev = append(rev, v)
		if len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle at %d", ErrNoPath, v)
		}
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}
