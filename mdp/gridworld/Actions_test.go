package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plankit/gridmdp/mdp/gridworld"
)

// TestActionOffsets pins down the displacement convention: Left and Right
// move along the row axis, Up and Down along the column axis.
func TestActionOffsets(t *testing.T) {
	cases := []struct {
		action     gridworld.Action
		dRow, dCol int
	}{
		{gridworld.Up, 0, 1},
		{gridworld.Down, 0, -1},
		{gridworld.Left, -1, 0},
		{gridworld.Right, 1, 0},
		{gridworld.UpLeft, -1, 1},
		{gridworld.UpRight, 1, 1},
		{gridworld.DownLeft, -1, -1},
		{gridworld.DownRight, 1, -1},
		{gridworld.Absorb, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.action.String(), func(t *testing.T) {
			dRow, dCol := tc.action.Offset()
			assert.Equal(t, tc.dRow, dRow)
			assert.Equal(t, tc.dCol, dCol)
		})
	}
}

// TestDiagonal verifies that exactly the four diagonal moves report as
// diagonal.
func TestDiagonal(t *testing.T) {
	diagonal := map[gridworld.Action]bool{
		gridworld.UpLeft:    true,
		gridworld.UpRight:   true,
		gridworld.DownLeft:  true,
		gridworld.DownRight: true,
	}

	for a := 0; a < gridworld.NumActions; a++ {
		action := gridworld.Action(a)
		assert.Equal(t, diagonal[action], action.Diagonal(), action.String())
	}

	assert.Len(t, gridworld.DiagonalActions, 4)
	for _, a := range gridworld.DiagonalActions {
		assert.True(t, a.Diagonal())
	}
}

// TestActionString spot-checks the printable action names.
func TestActionString(t *testing.T) {
	assert.Equal(t, "Up", gridworld.Up.String())
	assert.Equal(t, "DownRight", gridworld.DownRight.String())
	assert.Equal(t, "Absorb", gridworld.Absorb.String())
	assert.Equal(t, "Action(42)", gridworld.Action(42).String())
}
