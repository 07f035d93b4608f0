package gridworld

// Coord identifies a grid cell by its 0-indexed (row, column) position
type Coord struct {
	Row, Col int
}

// NoGoal configures a GridWorld without a goal state
const NoGoal int = -1

// Config contains the tunable parameters of a GridWorld. Use
// DefaultConfig() as a starting point: the zero value sets GoalState to
// state 0, not to NoGoal.
type Config struct {
	// RewardDict maps a cell to the reward granted for transitioning into
	// it. Cells not listed grant DefaultReward.
	RewardDict map[Coord]float64

	// GoalState is the state at which Absorb is legal and costs 0. Set to
	// NoGoal for no goal.
	GoalState int

	// DefaultReward is granted by every legal transition into a cell not
	// covered by RewardDict.
	DefaultReward float64

	// EuclideanRewards scales the reward for moving diagonally by sqrt(2)
	// to approximate true distance cost.
	EuclideanRewards bool

	// AllowWait prices Absorb at DefaultReward in non-goal states. When
	// false, Absorb is illegal in all states except the goal.
	AllowWait bool

	// DisallowDiag makes the four diagonal moves illegal. This is useful
	// for reducing the dimensionality of search.
	DisallowDiag bool
}

// DefaultConfig returns the default GridWorld parameters: no reward
// overrides, no goal, a default reward of -1, Euclidean rewards on, and
// waiting and diagonal moves as in the standard grid.
func DefaultConfig() Config {
	return Config{
		RewardDict:       nil,
		GoalState:        NoGoal,
		DefaultReward:    -1,
		EuclideanRewards: true,
		AllowWait:        false,
		DisallowDiag:     false,
	}
}
