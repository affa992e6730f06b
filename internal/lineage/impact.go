package lineage

import "sort"

// Impact returns the upstream and downstream tables of the given table,
// traversing column-level edges at table granularity. depth limits the
// traversal (0 = unlimited). Results are deduplicated and sorted; the root
// table itself is excluded. Edges referencing unknown tables still
// participate: staleness is a rendering concern, not a traversal one.
func Impact(snap *Snapshot, table string, depth int) (upstream, downstream []string) {
	parents := make(map[string][]string)
	children := make(map[string][]string)
	for _, e := range snap.Edges {
		parents[e.To.Table] = append(parents[e.To.Table], e.From.Table)
		children[e.From.Table] = append(children[e.From.Table], e.To.Table)
	}

	upstream = traverse(table, parents, depth)
	downstream = traverse(table, children, depth)
	return upstream, downstream
}

// traverse walks the adjacency map breadth-first from root, honoring the
// depth limit (0 = unlimited).
func traverse(root string, adjacency map[string][]string, depth int) []string {
	visited := map[string]struct{}{root: {}}
	var result []string

	frontier := []string{root}
	for level := 0; len(frontier) > 0 && (depth == 0 || level < depth); level++ {
		var next []string
		for _, id := range frontier {
			for _, neighbor := range adjacency[id] {
				if _, ok := visited[neighbor]; ok {
					continue
				}
				visited[neighbor] = struct{}{}
				result = append(result, neighbor)
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	sort.Strings(result)
	return result
}
