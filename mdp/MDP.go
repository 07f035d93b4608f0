// Package mdp provides the contract for finite, deterministic Markov
// decision processes
package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TransitionFunc is a deterministic state transition function, mapping a
// (state, action) pair to the state that results from taking the action.
// It must be total over [0, NumStates) x [0, NumActions).
type TransitionFunc func(state, action int) int

// MDP packages together the data defining a finite deterministic MDP: the
// number of states S, the number of actions A, a dense SxA reward table,
// and the transition function. An MDP holds no behaviour of its own;
// concrete environments embed it and fill in the tables.
type MDP struct {
	NumStates  int
	NumActions int

	// Rewards is an SxA matrix where Rewards.At(s, a) is the reward
	// received for taking action a at state s. Entries may be
	// math.Inf(-1) for illegal actions.
	Rewards *mat.Dense

	// Transition returns the state resulting from taking an action at a
	// state.
	Transition TransitionFunc
}

// New validates and packages the data defining a deterministic MDP. The
// state and action counts must be positive, the transition function must be
// non-nil, and the reward table must have exactly numStates rows and
// numActions columns.
func New(numStates, numActions int, rewards *mat.Dense,
	transition TransitionFunc) (*MDP, error) {
	if numStates <= 0 {
		return nil, fmt.Errorf("new: state count %d must be positive: %w",
			numStates, ErrConfig)
	}
	if numActions <= 0 {
		return nil, fmt.Errorf("new: action count %d must be positive: %w",
			numActions, ErrConfig)
	}
	if transition == nil {
		return nil, fmt.Errorf("new: nil transition function: %w", ErrConfig)
	}
	if rewards == nil {
		return nil, fmt.Errorf("new: nil reward table: %w", ErrShape)
	}
	if r, c := rewards.Dims(); r != numStates || c != numActions {
		return nil, fmt.Errorf("new: reward table is %dx%d, want %dx%d: %w",
			r, c, numStates, numActions, ErrShape)
	}

	return &MDP{numStates, numActions, rewards, transition}, nil
}
