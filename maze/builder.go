package maze

// GraphBuilder assembles a Graph incrementally: set each tile's out-paths,
// configure the leftover, pick shift locations, then Build. Setters return
// the builder so calls can be chained.
type GraphBuilder struct {
	extent int
	nodes  []Node
	left   Node
	shifts []Location
	err    error
}

// NewGraphBuilder starts a builder for an extent x extent grid with every
// tile's out-paths initially empty.
func NewGraphBuilder(extent int) *GraphBuilder {
	n := extent * extent
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: i}
	}
	return &GraphBuilder{extent: extent, nodes: nodes, left: Node{ID: n}}
}

// SetOutPaths sets the unrotated out-path set of the tile at loc.
func (b *GraphBuilder) SetOutPaths(loc Location, paths OutPaths) *GraphBuilder {
	if b.err != nil {
		return b
	}
	if loc.Row < 0 || loc.Row >= b.extent || loc.Col < 0 || loc.Col >= b.extent {
		b.err = ErrLocationOutOfBounds
		return b
	}
	idx := loc.Row*b.extent + loc.Col
	b.nodes[idx].Paths = paths
	return b
}

// SetRotation sets the initial rotation of the tile at loc.
func (b *GraphBuilder) SetRotation(loc Location, rotation Rotation) *GraphBuilder {
	if b.err != nil {
		return b
	}
	if loc.Row < 0 || loc.Row >= b.extent || loc.Col < 0 || loc.Col >= b.extent {
		b.err = ErrLocationOutOfBounds
		return b
	}
	idx := loc.Row*b.extent + loc.Col
	b.nodes[idx].Rotation = rotation
	return b
}

// SetLeftover sets the off-grid leftover tile's out-paths and rotation.
func (b *GraphBuilder) SetLeftover(paths OutPaths, rotation Rotation) *GraphBuilder {
	b.left.Paths = paths
	b.left.Rotation = rotation
	return b
}

// UseStandardShiftLocations configures the conventional border insertion
// points: odd columns of the top and bottom rows, odd rows of the left and
// right columns.
func (b *GraphBuilder) UseStandardShiftLocations() *GraphBuilder {
	b.shifts = standardShiftLocations(b.extent)
	return b
}

// SetShiftLocations configures an explicit set of insertion points,
// overriding UseStandardShiftLocations.
func (b *GraphBuilder) SetShiftLocations(locs []Location) *GraphBuilder {
	b.shifts = append([]Location(nil), locs...)
	return b
}

// Build finalizes the graph, or returns the first error recorded by an
// earlier builder call.
func (b *GraphBuilder) Build() (Graph, error) {
	if b.err != nil {
		return Graph{}, b.err
	}
	return Graph{
		extent:         b.extent,
		nodes:          append([]Node(nil), b.nodes...),
		leftover:       b.left,
		shiftLocations: append([]Location(nil), b.shifts...),
	}, nil
}
