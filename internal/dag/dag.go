package dag

import (
	"context"
	"slices"

	"github.com/specialistvlad/tagweaver/internal/ctxlog"
)

// Sort returns the vertices of g in dependency-first order: a tag always
// appears after every tag it depends on.
//
// Vertices are visited in g.Tags order and edges in g.DependenciesOf order,
// so the result is deterministic for a deterministic graph. Edges that leave
// the vertex set (references to tags that have no document) are treated as
// leaves with no edges and are not part of the result. A tag that depends on
// itself is not a cycle here; the builder refuses the self-inclusion instead.
func Sort(ctx context.Context, g Graph) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	tags := g.Tags(ctx)
	states := make(map[string]state, len(tags))
	for _, tag := range tags {
		states[tag] = unvisited
	}

	output := make([]string, 0, len(tags))
	var path []string

	var visit func(vertex string) error
	visit = func(vertex string) error {
		states[vertex] = inProgress
		path = append(path, vertex)

		for _, next := range g.DependenciesOf(ctx, vertex) {
			if next == vertex {
				continue
			}
			st, known := states[next]
			if !known {
				logger.Debug("Skipping dangling dependency.", "tag", vertex, "dependency", next)
				continue
			}
			switch st {
			case inProgress:
				start := slices.Index(path, next)
				cycle := append(slices.Clone(path[start:]), next)
				return &CycleError{Path: cycle}
			case unvisited:
				if err := visit(next); err != nil {
					return err
				}
			}
		}

		path = path[:len(path)-1]
		states[vertex] = done
		output = append(output, vertex)
		return nil
	}

	for _, tag := range tags {
		if states[tag] != unvisited {
			continue
		}
		if err := visit(tag); err != nil {
			return nil, err
		}
	}

	logger.Debug("Topological sort complete.", "order", output)
	return output, nil
}
