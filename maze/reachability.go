package maze

// Reachable pairs a location with the index, into the sources slice given
// to MultiSourceReachableLocations, of the source whose BFS first claimed
// it.
type Reachable struct {
	Location          Location
	ParentSourceIndex int
}

// ReachableLocations returns every location connected to source, source
// itself included, in breadth-first discovery order.
func ReachableLocations(g Graph, source Location) []Location {
	reached := MultiSourceReachableLocations(g, []Location{source})
	out := make([]Location, len(reached))
	for i, r := range reached {
		out[i] = r.Location
	}
	return out
}

// MultiSourceReachableLocations runs one BFS per source, in order: each
// source's frontier is expanded to exhaustion before the next source
// starts, so a location already claimed by an earlier source is never
// revisited or reassigned. The returned slice is in the order locations
// were first discovered.
func MultiSourceReachableLocations(g Graph, sources []Location) []Reachable {
	visited := make(map[Location]bool, g.extent*g.extent)
	var out []Reachable
	for idx, src := range sources {
		if visited[src] {
			continue
		}
		queue := []Location{src}
		visited[src] = true
		out = append(out, Reachable{Location: src, ParentSourceIndex: idx})
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			g.ForEachNeighbor(cur, func(_ Direction, n Location) {
				if visited[n] {
					return
				}
				visited[n] = true
				out = append(out, Reachable{Location: n, ParentSourceIndex: idx})
				queue = append(queue, n)
			})
		}
	}
	return out
}
