// Package textlayout builds a maze.Graph from a textual maze rendering: the
// narrow input-parsing collaborator, kept separate from maze itself so the
// core graph model never depends on a text format.
package textlayout

import (
	"errors"
	"strings"

	"github.com/j-arz-blue/labyrinth/maze"
)

// ErrMalformedLayout is returned when the input text is not a well-formed
// grid of 3x3 character blocks.
var ErrMalformedLayout = errors.New("textlayout: malformed maze layout")

const (
	open   = '.'
	closed = '#'
)

// Parse reads a textual maze where each cell is rendered as a 3x3 character
// block: corners '#', the center '.', and the four mid-edge characters '.'
// if that side is open or '#' if closed. Cell (r,c) occupies text rows
// 3r..3r+2 and text columns 3c..3c+2. The resulting graph uses the standard
// border shift locations and an unrotated straight-vertical leftover tile,
// since the text format has no room to describe one.
func Parse(text string) (maze.Graph, error) {
	lines := splitLines(text)
	if len(lines) == 0 || len(lines)%3 != 0 {
		return maze.Graph{}, ErrMalformedLayout
	}
	extent := len(lines) / 3
	width := 3 * extent
	for _, line := range lines {
		if len(line) != width {
			return maze.Graph{}, ErrMalformedLayout
		}
	}

	b := maze.NewGraphBuilder(extent)
	for row := 0; row < extent; row++ {
		for col := 0; col < extent; col++ {
			paths, err := cellPaths(lines, row, col)
			if err != nil {
				return maze.Graph{}, err
			}
			b.SetOutPaths(maze.Location{Row: row, Col: col}, paths)
		}
	}
	b.SetLeftover(maze.StraightVertical, maze.Rotation0)
	b.UseStandardShiftLocations()
	return b.Build()
}

func cellPaths(lines []string, row, col int) (maze.OutPaths, error) {
	top := lines[3*row]
	mid := lines[3*row+1]
	bot := lines[3*row+2]
	c0, c1, c2 := 3*col, 3*col+1, 3*col+2

	corners := []byte{top[c0], top[c2], bot[c0], bot[c2]}
	for _, ch := range corners {
		if ch != closed {
			return 0, ErrMalformedLayout
		}
	}
	if mid[c1] != open {
		return 0, ErrMalformedLayout
	}

	var paths maze.OutPaths
	north, err := edgeOpen(top[c1])
	if err != nil {
		return 0, err
	}
	south, err := edgeOpen(bot[c1])
	if err != nil {
		return 0, err
	}
	west, err := edgeOpen(mid[c0])
	if err != nil {
		return 0, err
	}
	east, err := edgeOpen(mid[c2])
	if err != nil {
		return 0, err
	}
	if north {
		paths |= maze.PathNorth
	}
	if south {
		paths |= maze.PathSouth
	}
	if west {
		paths |= maze.PathWest
	}
	if east {
		paths |= maze.PathEast
	}
	return paths, nil
}

func edgeOpen(ch byte) (bool, error) {
	switch ch {
	case open:
		return true, nil
	case closed:
		return false, nil
	default:
		return false, ErrMalformedLayout
	}
}

func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
