package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/plankit/gridmdp/mdp"
)

// stay is a trivial transition function that leaves every state unchanged.
func stay(s, a int) int { return s }

// TestNew_Errors verifies that New rejects non-positive counts, nil
// transition functions, and reward tables of the wrong shape.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		states     int
		actions    int
		rewards    *mat.Dense
		transition mdp.TransitionFunc
		err        error
	}{
		{"ZeroStates", 0, 2, mat.NewDense(1, 2, nil), stay, mdp.ErrConfig},
		{"NegativeStates", -3, 2, mat.NewDense(1, 2, nil), stay, mdp.ErrConfig},
		{"ZeroActions", 2, 0, mat.NewDense(2, 1, nil), stay, mdp.ErrConfig},
		{"NilTransition", 2, 2, mat.NewDense(2, 2, nil), nil, mdp.ErrConfig},
		{"NilRewards", 2, 2, nil, stay, mdp.ErrShape},
		{"WrongRows", 3, 2, mat.NewDense(2, 2, nil), stay, mdp.ErrShape},
		{"WrongCols", 2, 3, mat.NewDense(2, 2, nil), stay, mdp.ErrShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mdp.New(tc.states, tc.actions, tc.rewards, tc.transition)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew verifies that a valid MDP is packaged without modification.
func TestNew(t *testing.T) {
	rewards := mat.NewDense(4, 2, []float64{
		0, 1,
		2, 3,
		4, 5,
		6, 7,
	})

	m, err := mdp.New(4, 2, rewards, stay)
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumStates)
	assert.Equal(t, 2, m.NumActions)
	assert.True(t, mat.Equal(rewards, m.Rewards), "reward table must be "+
		"held as given")
	assert.Equal(t, 3, m.Transition(3, 1))
}
