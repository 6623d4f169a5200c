package crucible

// Direction is the heading of the most recent move. The set of values is
// closed; None only appears on the start state of a 1×1 grid.
type Direction uint8

const (
	// None marks a state reached without any move.
	None Direction = iota
	// Up decreases the row.
	Up
	// Right increases the column.
	Right
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
)

// Directions lists the four cardinal headings in their fixed order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the (row, col) offset of one move in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Turn returns the heading after a quarter turn to the right (clockwise)
// or to the left. None stays None.
func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	return None
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	return None
}

// String renders d as an arrow glyph.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "."
}
