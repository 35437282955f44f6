package maze

// Node is a single tile: its unrotated path set, its current rotation, and
// a stable identity that survives shifts.
type Node struct {
	ID       int
	Paths    OutPaths
	Rotation Rotation
}

// Effective returns the tile's out-paths in board-relative directions,
// i.e. Paths rotated by Rotation.
func (n Node) Effective() OutPaths {
	return Rotate(n.Paths, n.Rotation)
}

// HasDirection reports whether the tile has an opening toward d once its
// rotation is accounted for.
func (n Node) HasDirection(d Direction) bool {
	return n.Effective().Has(d)
}
