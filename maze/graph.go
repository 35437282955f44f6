package maze

// Graph is an extent x extent grid of Nodes plus one leftover tile held
// off-grid. Node identity (ID) is preserved across shifts; grid position is
// not. A Graph value shares its backing slice with any shallow copy — call
// Clone before handing a Graph to a routine that mutates it, the same way
// callers are expected to clone a board before speculative play.
type Graph struct {
	extent         int
	nodes          []Node // row-major, length extent*extent
	leftover       Node
	shiftLocations []Location
}

// NewGraph builds an empty graph of the given extent, assigning node IDs
// 0..extent*extent-1 in row-major order and giving the leftover tile ID
// extent*extent. All tiles start with an empty path set.
func NewGraph(extent int) Graph {
	n := extent * extent
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: i}
	}
	return Graph{extent: extent, nodes: nodes, leftover: Node{ID: n}}
}

// NewGraphFromNodes builds a graph from a caller-supplied flat node list of
// length extent*extent+1, the last entry being the leftover tile.
func NewGraphFromNodes(extent int, nodes []Node) (Graph, error) {
	want := extent*extent + 1
	if len(nodes) != want {
		return Graph{}, ErrNodeCountMismatch
	}
	g := Graph{extent: extent}
	g.nodes = append([]Node(nil), nodes[:extent*extent]...)
	g.leftover = nodes[extent*extent]
	return g, nil
}

// Clone returns a deep copy: the returned Graph shares no backing arrays
// with g, so mutating one never affects the other.
func (g Graph) Clone() Graph {
	clone := g
	clone.nodes = append([]Node(nil), g.nodes...)
	clone.shiftLocations = append([]Location(nil), g.shiftLocations...)
	return clone
}

// Extent returns the grid's side length.
func (g Graph) Extent() int {
	return g.extent
}

// Leftover returns the tile currently held off-grid.
func (g Graph) Leftover() Node {
	return g.leftover
}

// InBounds reports whether loc names a cell inside the grid.
func (g Graph) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.extent && loc.Col >= 0 && loc.Col < g.extent
}

func (g Graph) index(loc Location) int {
	return loc.Row*g.extent + loc.Col
}

// NodeAt returns the tile currently at loc. loc must be in bounds.
func (g Graph) NodeAt(loc Location) Node {
	return g.nodes[g.index(loc)]
}

func (g *Graph) setNodeAt(loc Location, n Node) {
	g.nodes[g.index(loc)] = n
}

// SetRotationAt overwrites the rotation of the tile currently at loc,
// leaving its ID and path set untouched. Used by the negamax solver to try
// every candidate leftover rotation at an insertion point without paying
// for a full Shift per rotation.
func (g *Graph) SetRotationAt(loc Location, r Rotation) {
	g.nodes[g.index(loc)].Rotation = r
}

// ValidShiftLocations returns the configured border insertion points, in
// the canonical order used for tie-breaking: top row (left to right),
// bottom row, left column (top to bottom), right column.
func (g Graph) ValidShiftLocations() []Location {
	return append([]Location(nil), g.shiftLocations...)
}

func standardShiftLocations(extent int) []Location {
	var locs []Location
	for col := 1; col < extent; col += 2 {
		locs = append(locs, Location{Row: 0, Col: col})
	}
	for col := 1; col < extent; col += 2 {
		locs = append(locs, Location{Row: extent - 1, Col: col})
	}
	for row := 1; row < extent; row += 2 {
		locs = append(locs, Location{Row: row, Col: 0})
	}
	for row := 1; row < extent; row += 2 {
		locs = append(locs, Location{Row: row, Col: extent - 1})
	}
	return locs
}

// InwardOffset returns the unit vector pointing from border location loc
// toward the grid's interior. loc must be a border cell.
func (g Graph) InwardOffset(loc Location) Offset {
	switch {
	case loc.Row == 0:
		return Offset{DRow: 1}
	case loc.Row == g.extent-1:
		return Offset{DRow: -1}
	case loc.Col == 0:
		return Offset{DCol: 1}
	case loc.Col == g.extent-1:
		return Offset{DCol: -1}
	default:
		return Offset{}
	}
}

// OpposingShift returns the mirrored border location on the same line (row
// or column), swapping 0 and extent-1 on the varying axis. Interior
// locations and the NoPreviousShift sentinel are returned unchanged.
func (g Graph) OpposingShift(loc Location) Location {
	switch {
	case loc.Row == 0:
		return Location{Row: g.extent - 1, Col: loc.Col}
	case loc.Row == g.extent-1:
		return Location{Row: 0, Col: loc.Col}
	case loc.Col == 0:
		return Location{Row: loc.Row, Col: g.extent - 1}
	case loc.Col == g.extent-1:
		return Location{Row: loc.Row, Col: 0}
	default:
		return loc
	}
}

// IsValidShiftLocation reports whether loc is one of the graph's
// configured insertion points.
func (g Graph) IsValidShiftLocation(loc Location) bool {
	for _, l := range g.shiftLocations {
		if l == loc {
			return true
		}
	}
	return false
}

// ForEachNeighbor calls fn once for every location reachable from loc by a
// single connected step, in North, East, South, West order. A step connects
// iff loc's effective out-paths include d, the destination is in bounds,
// and the destination's effective out-paths include the opposite direction.
func (g Graph) ForEachNeighbor(loc Location, fn func(d Direction, neighbor Location)) {
	if !g.InBounds(loc) {
		return
	}
	node := g.NodeAt(loc)
	for _, d := range directionOrder {
		if !node.HasDirection(d) {
			continue
		}
		nloc := loc.Add(d.Offset())
		if !g.InBounds(nloc) {
			continue
		}
		neighbor := g.NodeAt(nloc)
		if !neighbor.HasDirection(d.opposite()) {
			continue
		}
		fn(d, nloc)
	}
}

// Neighbors returns the locations connected to loc, in North, East, South,
// West order.
func (g Graph) Neighbors(loc Location) []Location {
	var out []Location
	g.ForEachNeighbor(loc, func(_ Direction, n Location) {
		out = append(out, n)
	})
	return out
}

// TranslateByShift returns where pieceLoc ends up after Shift(insertLoc, _)
// is applied. Pieces off the shifted line are unchanged; pieces on it move
// by InwardOffset(insertLoc) with wrap-around, the same offset Shift uses
// to move tiles, so a piece rides its tile. The piece standing on the tile
// that gets pushed out (the line's far end) is the one that wraps around to
// insertLoc; a piece already at insertLoc simply advances inward with the
// rest of the line.
func (g Graph) TranslateByShift(pieceLoc, insertLoc Location) Location {
	dir := g.InwardOffset(insertLoc)
	extent := g.extent
	switch {
	case dir.DRow != 0:
		if pieceLoc.Col != insertLoc.Col {
			return pieceLoc
		}
		newRow := ((pieceLoc.Row+dir.DRow)%extent + extent) % extent
		return Location{Row: newRow, Col: pieceLoc.Col}
	case dir.DCol != 0:
		if pieceLoc.Row != insertLoc.Row {
			return pieceLoc
		}
		newCol := ((pieceLoc.Col+dir.DCol)%extent + extent) % extent
		return Location{Row: pieceLoc.Row, Col: newCol}
	default:
		return pieceLoc
	}
}
