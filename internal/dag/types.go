package dag

import "context"

// Graph is the read-only view of the dependency digraph the sorter needs.
// topologystore.Store satisfies it.
type Graph interface {
	// Tags returns every vertex in a stable order.
	Tags(ctx context.Context) []string
	// DependenciesOf returns the outgoing edges of a vertex in a stable order.
	// Unknown vertices must yield an empty slice.
	DependenciesOf(ctx context.Context, tag string) []string
}

// state is the per-vertex visitation state of one Sort call.
type state int

const (
	unvisited state = iota
	inProgress
	done
)
