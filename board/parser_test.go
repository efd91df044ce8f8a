package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

const microLevel = "#####\n#@$.#\n#####"

func TestParseMicroLevel(t *testing.T) {
	is := is.New(t)
	parsed, err := ParseLevel(microLevel)
	is.NoErr(err)
	is.Equal(parsed.Width, 5)
	is.Equal(parsed.Height, 3)
	is.Equal(parsed.Player, Position{Row: 1, Col: 1})
	is.Equal(parsed.Boxes, []Position{{Row: 1, Col: 2}})
	is.Equal(parsed.Goals, []Position{{Row: 1, Col: 3}})
	is.Equal(parsed.Grid[1][3], Goal)
	is.Equal(parsed.Grid[0][0], Wall)
}

func TestParseCombinedCells(t *testing.T) {
	is := is.New(t)
	// + is player-on-goal, * is box-on-goal.
	parsed, err := ParseLevel("####\n#+*#\n####")
	is.NoErr(err)
	is.Equal(parsed.Player, Position{Row: 1, Col: 1})
	is.Equal(parsed.Boxes, []Position{{Row: 1, Col: 2}})
	is.Equal(len(parsed.Goals), 2)
	is.Equal(parsed.Grid[1][1], Goal)
	is.Equal(parsed.Grid[1][2], Goal)
}

func TestParseAlternateCharacters(t *testing.T) {
	is := is.New(t)
	// & player, B box, X box-on-goal, _ floor.
	parsed, err := ParseLevel("######\n#&B.X#\n######")
	is.NoErr(err)
	is.Equal(parsed.Player, Position{Row: 1, Col: 1})
	is.Equal(len(parsed.Boxes), 2)
	is.Equal(len(parsed.Goals), 2)
}

func TestParseRaggedLinesArePadded(t *testing.T) {
	is := is.New(t)
	parsed, err := ParseLevel("#####\n#@$.#\n###")
	is.NoErr(err)
	is.Equal(parsed.Width, 5)
	// The padded cells are boundary floor, so the exterior fill walls them.
	is.Equal(parsed.Grid[2][4], Wall)
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)

	_, err := ParseLevel("")
	is.True(errors.Is(err, ErrParse))

	_, err = ParseLevel("#####\n#@@$.#\n#####")
	is.True(errors.Is(err, ErrParse)) // two players

	_, err = ParseLevel("#####\n#$. #\n#####")
	is.True(errors.Is(err, ErrParse)) // no player

	_, err = ParseLevel("#####\n#@$ #\n#####")
	is.True(errors.Is(err, ErrParse)) // box/goal mismatch

	_, err = ParseLevel("#####\n#@  #\n#####")
	is.True(errors.Is(err, ErrParse)) // no boxes
}

func TestExteriorFloorBecomesWall(t *testing.T) {
	is := is.New(t)
	parsed, err := ParseLevel("  #####\n  #@$.#\n  #####")
	is.NoErr(err)
	// The padding left of the walls is exterior and must become wall.
	is.Equal(parsed.Grid[0][0], Wall)
	is.Equal(parsed.Grid[1][1], Wall)
	// Interior cells are untouched.
	is.Equal(parsed.Grid[1][3], Floor)
	is.Equal(parsed.Grid[1][5], Goal)
}

func TestEnclosedInteriorSurvivesExteriorFill(t *testing.T) {
	is := is.New(t)
	// The pocket below the playable row is enclosed by walls, so the fill
	// from the boundary cannot reach it.
	parsed, err := ParseLevel("#####\n#@$.#\n#   #\n#####")
	is.NoErr(err)
	is.Equal(parsed.Grid[2][1], Floor)
	is.Equal(parsed.Grid[2][2], Floor)
}
