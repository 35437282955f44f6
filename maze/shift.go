package maze

// Shift slides the row or column starting at insertLoc by one cell along
// the inward offset, cycling the leftover tile in and the tile at the far
// end of the line out. leftoverRotation is stamped onto the leftover tile
// as it is placed at insertLoc; the tile that gets pushed out keeps
// whatever rotation it already had.
//
// insertLoc must be one of g.ValidShiftLocations(); Shift panics otherwise,
// the same way the teacher's board mutators panic on an out-of-range index
// rather than returning a sentinel error for a caller bug.
func (g *Graph) Shift(insertLoc Location, leftoverRotation Rotation) {
	if !g.IsValidShiftLocation(insertLoc) {
		panic(ErrInvalidShift)
	}
	dir := g.InwardOffset(insertLoc)
	positions := make([]Location, g.extent)
	loc := insertLoc
	for i := 0; i < g.extent; i++ {
		positions[i] = loc
		loc = loc.Add(dir)
	}

	pushedOut := g.NodeAt(positions[g.extent-1])
	for i := g.extent - 1; i > 0; i-- {
		g.setNodeAt(positions[i], g.NodeAt(positions[i-1]))
	}

	inserted := g.leftover
	inserted.Rotation = leftoverRotation
	g.setNodeAt(positions[0], inserted)
	g.leftover = pushedOut
}
