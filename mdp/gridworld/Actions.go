package gridworld

import "fmt"

// Action is one of the nine discrete grid moves: the eight compass
// directions plus Absorb, which leaves the agent in place.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	Absorb
)

// NumActions is the size of the action set
const NumActions int = 9

// actionOffsets maps each action to its (row, column) displacement. Left
// and Right move along the row axis, Up and Down along the column axis, and
// the diagonals combine the two. Absorb does not move.
var actionOffsets = [NumActions][2]int{
	Up:        {0, 1},
	Down:      {0, -1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-1, 1},
	UpRight:   {1, 1},
	DownLeft:  {-1, -1},
	DownRight: {1, -1},
	Absorb:    {0, 0},
}

// DiagonalActions lists the four diagonal moves, whose rewards are scaled
// by sqrt(2) when Euclidean rewards are enabled
var DiagonalActions = []Action{UpLeft, UpRight, DownLeft, DownRight}

// Offset returns the (row, column) displacement of taking a
func (a Action) Offset() (dRow, dCol int) {
	return actionOffsets[a][0], actionOffsets[a][1]
}

// Diagonal returns whether a is one of the four diagonal moves
func (a Action) Diagonal() bool {
	switch a {
	case UpLeft, UpRight, DownLeft, DownRight:
		return true
	}
	return false
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	case Absorb:
		return "Absorb"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
