package board

// Direction is one of the four orthogonal movement directions. The numeric
// order (up, down, left, right) is load-bearing: the neighbor tables in
// StaticMap are indexed by it, and every enumeration in the engine (legal
// moves, legal pushes) iterates it in this order.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// NumDirections is the number of orthogonal directions.
const NumDirections = 4

// Directions lists all directions in enumeration order.
var Directions = [NumDirections]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// Delta returns the (row, col) offset for one step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 1
}
