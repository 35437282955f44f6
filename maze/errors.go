package maze

import "errors"

var (
	// ErrNodeCountMismatch is returned when a node slice handed to
	// NewGraphFromNodes does not have exactly extent*extent+1 entries.
	ErrNodeCountMismatch = errors.New("maze: node count does not match extent*extent+1")

	// ErrLocationOutOfBounds is recorded by GraphBuilder.SetOutPaths and
	// GraphBuilder.SetRotation when given a location outside the grid, and
	// returned from GraphBuilder.Build.
	ErrLocationOutOfBounds = errors.New("maze: location out of bounds")

	// ErrInvalidShift is the value Shift panics with when insert_loc is not
	// a configured border insertion point.
	ErrInvalidShift = errors.New("maze: location is not a valid shift insertion point")
)
