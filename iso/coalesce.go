package iso

import "sort"

// edgeKey canonically identifies an undirected edge by its two
// endpoints in a fixed order, so the same physical edge reached from
// either triangle dedups to one entry.
type edgeKey struct{ A, B IJ }

func canonicalEdge(a, b IJ) edgeKey {
	if less(a, b) {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

func less(a, b IJ) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

// coalesce builds the three (vertical/u-parallel/v-parallel) edge
// connectivity graphs from triangles' visible edges and walks each to
// emit one polyline per maximal straight run (spec §4.5.4 steps 3-4).
func coalesce(triangles triangleList) []Polyline {
	var edgeSets [3]map[edgeKey]bool
	for i := range edgeSets {
		edgeSets[i] = make(map[edgeKey]bool)
	}

	for _, t := range triangles {
		for i := 0; i < 3; i++ {
			if !t.Visible[i] {
				continue
			}
			a, b := t.Pts[i], t.Pts[(i+1)%3]
			edgeSets[i][canonicalEdge(a, b)] = true
		}
	}

	var out []Polyline
	for bit := 0; bit < 3; bit++ {
		out = append(out, coalesceBit(edgeSets[bit])...)
	}
	return out
}

func coalesceBit(edges map[edgeKey]bool) []Polyline {
	adj := make(map[IJ][]IJ)
	for e := range edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	verts := make([]IJ, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return less(verts[i], verts[j]) })

	visited := make(map[edgeKey]bool)
	var out []Polyline

	walk := func(start IJ) Polyline {
		path := []IJ{start}
		current := start
		for {
			var next IJ
			found := false
			for _, n := range adj[current] {
				if !visited[canonicalEdge(current, n)] {
					next = n
					found = true
					break
				}
			}
			if !found {
				break
			}
			visited[canonicalEdge(current, next)] = true
			path = append(path, next)
			current = next
		}
		return toXYPolyline(path)
	}

	// open runs: start from every degree-1 endpoint first.
	for _, v := range verts {
		if len(adj[v]) == 1 {
			if p := walk(v); len(p) > 1 {
				out = append(out, p)
			}
		}
	}
	// remaining closed loops: start anywhere still unvisited.
	for _, v := range verts {
		for _, n := range adj[v] {
			if !visited[canonicalEdge(v, n)] {
				if p := walk(v); len(p) > 1 {
					out = append(out, p)
				}
			}
		}
	}

	return out
}

func toXYPolyline(path []IJ) Polyline {
	out := make(Polyline, len(path))
	for i, ij := range path {
		out[i] = halve(projectIso(ij))
	}
	return out
}
