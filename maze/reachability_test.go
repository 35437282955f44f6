package maze

import "testing"

// crossGraph builds a 3x3 grid with a single connected plus-shaped
// corridor through the center, isolating the four corners.
func crossGraph(t *testing.T) Graph {
	t.Helper()
	b := NewGraphBuilder(3)
	b.SetOutPaths(Location{Row: 0, Col: 1}, PathSouth)
	b.SetOutPaths(Location{Row: 1, Col: 0}, PathEast)
	b.SetOutPaths(Location{Row: 1, Col: 1}, Cross)
	b.SetOutPaths(Location{Row: 1, Col: 2}, PathWest)
	b.SetOutPaths(Location{Row: 2, Col: 1}, PathNorth)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestReachableLocationsFindsConnectedComponent(t *testing.T) {
	g := crossGraph(t)
	got := ReachableLocations(g, Location{Row: 1, Col: 1})
	if len(got) != 5 {
		t.Fatalf("expected 5 reachable locations, got %d: %v", len(got), got)
	}
	if got[0] != (Location{Row: 1, Col: 1}) {
		t.Fatalf("expected source first in BFS order, got %v", got[0])
	}
}

func TestReachableLocationsExcludesDisconnectedCorners(t *testing.T) {
	g := crossGraph(t)
	got := ReachableLocations(g, Location{Row: 1, Col: 1})
	for _, corner := range []Location{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		for _, loc := range got {
			if loc == corner {
				t.Fatalf("corner %v should be unreachable from center", corner)
			}
		}
	}
}

func TestMultiSourceReachableLocationsFirstSourceWins(t *testing.T) {
	g := crossGraph(t)
	sources := []Location{{Row: 1, Col: 1}, {Row: 0, Col: 0}}
	got := MultiSourceReachableLocations(g, sources)

	seen := map[Location]int{}
	for _, r := range got {
		seen[r.Location] = r.ParentSourceIndex
	}
	if idx := seen[Location{Row: 1, Col: 0}]; idx != 0 {
		t.Fatalf("expected (1,0) claimed by source 0, got source %d", idx)
	}
	if idx, ok := seen[Location{Row: 0, Col: 0}]; !ok || idx != 1 {
		t.Fatalf("expected isolated corner (0,0) claimed by source 1, got %d ok=%v", idx, ok)
	}
}

func TestMultiSourceReachableLocationsSkipsAlreadyVisitedSource(t *testing.T) {
	g := crossGraph(t)
	sources := []Location{{Row: 1, Col: 1}, {Row: 0, Col: 1}}
	got := MultiSourceReachableLocations(g, sources)
	count := 0
	for _, r := range got {
		if r.Location == (Location{Row: 0, Col: 1}) {
			count++
			if r.ParentSourceIndex != 0 {
				t.Fatalf("expected (0,1) to remain claimed by source 0")
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected (0,1) to appear exactly once, got %d", count)
	}
}
