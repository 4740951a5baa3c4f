package graph

import (
	"sort"

	"github.com/giantswarm/piceli/internal/object"
)

// Layered is the plan's public shape: an ordered sequence of levels, each a
// set of object identities with no mutual dependencies. Level i contains
// exactly the nodes whose in-edges all originate in levels < i.
type Layered struct {
	Levels  [][]object.Identity
	Objects map[object.Identity]object.CanonicalObject
}

// assignLevels runs Kahn's algorithm: each node's level is one more than
// the maximum level of its dependencies, computed by repeatedly removing
// nodes whose dependencies have all been assigned. Ties within a
// processing round are broken by (kind, namespace, name) so the same input
// always yields the same level assignment regardless of slice order.
func assignLevels(g *Graph) (Layered, error) {
	level := make(map[object.Identity]int, len(g.objects))
	remaining := make(map[object.Identity]map[object.Identity]bool, len(g.objects))
	for id, deps := range g.deps {
		cp := make(map[object.Identity]bool, len(deps))
		for d := range deps {
			cp[d] = true
		}
		remaining[id] = cp
	}

	assigned := 0
	total := len(g.objects)
	var levels [][]object.Identity

	for assigned < total {
		var ready []object.Identity
		for id, deps := range remaining {
			if len(deps) == 0 {
				ready = append(ready, id)
			}
		}
		if len(ready) == 0 {
			return Layered{}, &CycleError{Witness: findCycle(g, remaining)}
		}

		sort.Slice(ready, func(i, j int) bool { return ready[i].Less(ready[j]) })

		for _, id := range ready {
			level[id] = len(levels)
			delete(remaining, id)
		}
		for _, deps := range remaining {
			for _, id := range ready {
				delete(deps, id)
			}
		}

		levels = append(levels, ready)
		assigned += len(ready)
	}

	return Layered{Levels: levels, Objects: g.objects}, nil
}

// findCycle returns one witnessing cycle among the nodes still unresolved
// once no node has zero remaining dependencies, by walking dependency
// edges until a node repeats.
func findCycle(g *Graph, remaining map[object.Identity]map[object.Identity]bool) []object.Identity {
	var start object.Identity
	for id := range remaining {
		start = id
		break
	}

	visited := []object.Identity{start}
	seen := map[object.Identity]int{start: 0}
	current := start
	for {
		var next object.Identity
		found := false
		for d := range remaining[current] {
			if _, stillPending := remaining[d]; stillPending {
				next = d
				found = true
				break
			}
		}
		if !found {
			// Shouldn't happen for a genuine cycle, but fall back to
			// reporting the single stuck node rather than panicking.
			return visited
		}
		if idx, ok := seen[next]; ok {
			cycle := append(visited[idx:], next)
			return cycle
		}
		seen[next] = len(visited)
		visited = append(visited, next)
		current = next
	}
}
