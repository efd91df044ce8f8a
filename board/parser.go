package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// ErrParse is the sentinel wrapped by all level parsing failures.
var ErrParse = errors.New("level parse error")

// ParseLevel parses an XSB-format level string.
//
// Standard characters:
//
//	#  wall
//	@  player          +  player on goal
//	$  box             *  box on goal
//	.  goal
//	(space), -, _      floor
//
// Alternates used by some collections: B box, & player, X box on goal.
// Unknown characters are treated as floor. Ragged lines are padded with
// floor to the widest line. After parsing, exterior floor (floor reachable
// from the grid boundary without crossing a wall or goal) is converted to
// wall so that padding never becomes playable area.
func ParseLevel(levelText string) (*ParsedLevel, error) {
	lines := strings.Split(strings.Trim(levelText, "\n\r"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && strings.TrimSpace(lines[0]) == "") {
		return nil, fmt.Errorf("%w: empty level", ErrParse)
	}

	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	grid := make([][]CellType, height)
	var boxes, goals []Position
	player := Position{Row: -1, Col: -1}
	havePlayer := false

	for row, line := range lines {
		grid[row] = make([]CellType, width)
		for col := 0; col < width; col++ {
			ch := byte(' ')
			if col < len(line) {
				ch = line[col]
			}
			cell, hasPlayer, hasBox, hasGoal := parseChar(ch)
			grid[row][col] = cell
			if hasPlayer {
				if havePlayer {
					return nil, fmt.Errorf("%w: multiple players at (%d, %d)", ErrParse, row, col)
				}
				player = Position{Row: row, Col: col}
				havePlayer = true
			}
			if hasBox {
				boxes = append(boxes, Position{Row: row, Col: col})
			}
			if hasGoal {
				goals = append(goals, Position{Row: row, Col: col})
			}
		}
	}

	if !havePlayer {
		return nil, fmt.Errorf("%w: no player found in level", ErrParse)
	}
	if len(boxes) != len(goals) {
		return nil, fmt.Errorf("%w: box count (%d) != goal count (%d)", ErrParse, len(boxes), len(goals))
	}
	if len(boxes) == 0 {
		return nil, fmt.Errorf("%w: no boxes found in level", ErrParse)
	}

	markExteriorAsWall(grid, width, height)

	return &ParsedLevel{
		Width:  width,
		Height: height,
		Grid:   grid,
		Player: player,
		Boxes:  boxes,
		Goals:  goals,
	}, nil
}

func parseChar(ch byte) (cell CellType, hasPlayer, hasBox, hasGoal bool) {
	switch ch {
	case '#':
		return Wall, false, false, false
	case ' ', '-', '_':
		return Floor, false, false, false
	case '.':
		return Goal, false, false, true
	case '@', '&':
		return Floor, true, false, false
	case '+':
		return Goal, true, false, true
	case '$', 'B':
		return Floor, false, true, false
	case '*', 'X':
		return Goal, false, true, true
	}
	// Unknown characters are floor, for robustness against odd collections.
	return Floor, false, false, false
}

// markExteriorAsWall flood-fills from floor cells on the grid boundary and
// converts everything it reaches to wall. Only plain floor expands the
// fill: goals on the boundary are intentional level content and act as
// barriers, which preserves levels that use the grid edge as an implicit
// wall.
func markExteriorAsWall(grid [][]CellType, width, height int) {
	exterior := mapset.New[Position]()
	var queue []Position

	seed := func(row, col int) {
		p := Position{Row: row, Col: col}
		if grid[row][col] == Floor && !exterior.Has(p) {
			exterior.Put(p)
			queue = append(queue, p)
		}
	}
	for col := 0; col < width; col++ {
		seed(0, col)
		seed(height-1, col)
	}
	for row := 0; row < height; row++ {
		seed(row, 0)
		seed(row, width-1)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			dr, dc := d.Delta()
			n := Position{Row: p.Row + dr, Col: p.Col + dc}
			if n.Row < 0 || n.Row >= height || n.Col < 0 || n.Col >= width {
				continue
			}
			if grid[n.Row][n.Col] != Floor || exterior.Has(n) {
				continue
			}
			exterior.Put(n)
			queue = append(queue, n)
		}
	}

	exterior.Each(func(p Position) {
		grid[p.Row][p.Col] = Wall
	})
}
