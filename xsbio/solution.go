package xsbio

import (
	"fmt"
	"strings"

	"github.com/woodgrain/sokoban/board"
	"github.com/woodgrain/sokoban/game"
)

// Solutions use LURD notation: u/d/l/r for the player's movements, with
// uppercase marking moves that pushed a box.

var dirChars = map[board.Direction]byte{
	board.Up:    'u',
	board.Down:  'd',
	board.Left:  'l',
	board.Right: 'r',
}

func charDir(c byte) (board.Direction, bool) {
	switch c {
	case 'u', 'U':
		return board.Up, true
	case 'd', 'D':
		return board.Down, true
	case 'l', 'L':
		return board.Left, true
	case 'r', 'R':
		return board.Right, true
	}
	return 0, false
}

// ParseSolution reads a LURD string into move records, skipping any
// non-direction characters.
func ParseSolution(solution string) []game.MoveRecord {
	var records []game.MoveRecord
	for i := 0; i < len(solution); i++ {
		c := solution[i]
		d, ok := charDir(c)
		if !ok {
			continue
		}
		records = append(records, game.MoveRecord{Dir: d, Push: c >= 'A' && c <= 'Z'})
	}
	return records
}

// SolutionString renders move records as LURD. With markPushes false the
// whole string is lowercase.
func SolutionString(records []game.MoveRecord, markPushes bool) string {
	var sb strings.Builder
	for _, r := range records {
		c := dirChars[r.Dir]
		if markPushes && r.Push {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// SolutionDirections reads only the directions out of a LURD string.
func SolutionDirections(solution string) []board.Direction {
	var dirs []board.Direction
	for i := 0; i < len(solution); i++ {
		if d, ok := charDir(solution[i]); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ValidSolutionFormat reports whether the string contains only direction
// characters and whitespace.
func ValidSolutionFormat(solution string) bool {
	for _, c := range solution {
		if !strings.ContainsRune("uUdDlLrR \t\n", c) {
			return false
		}
	}
	return true
}

// ApplySolution plays a LURD string against a game and reports whether the
// game is solved afterwards. A blocked move aborts with an error, leaving
// the game at the position before the failed move; the caller decides
// whether to undo back or reset.
func ApplySolution(g *game.Game, solution string) (bool, error) {
	for i, d := range SolutionDirections(solution) {
		if result := g.Move(d); !result.Success() {
			return false, fmt.Errorf("solution move %d (%s) failed: %s", i+1, d, result)
		}
	}
	return g.IsSolved(), nil
}
