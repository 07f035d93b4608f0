// Package gridworld implements a deterministic MDP over a 2D grid with
// eight directional moves plus an Absorb action
package gridworld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/plankit/gridmdp/mdp"
	"github.com/plankit/gridmdp/utils/matutils"
)

// Neighbor is one entry of an adjacency list: the action taken and the
// state at the other end of the move
type Neighbor struct {
	Action Action
	State  int
}

// GridWorld is a deterministic MDP over a rows x cols grid. States are
// integers in [0, rows*cols) encoding cells row-major; the action set is
// the eight compass directions plus Absorb. An agent that chooses an
// illegal action stays in place and receives a reward of negative infinity.
//
// The transition cache, adjacency lists, and base rewards are computed once
// at construction in a single O(S*A) pass and never recomputed. SetGoal and
// SetAllGoals rewrite the Absorb reward column after construction. A
// GridWorld provides no internal synchronization; concurrent callers must
// serialize goal reconfiguration and reward mutation themselves.
type GridWorld struct {
	*mdp.MDP

	rows, cols int

	defaultReward    float64
	euclideanRewards bool
	allowWait        bool
	disallowDiag     bool

	goal int

	// transitions caches the resulting state of every (state, action)
	// pair, indexed by action + state*NumActions.
	transitions      []int
	transitionTensor *tensor.Dense

	neighbors        [][]Neighbor
	reverseNeighbors [][]Neighbor

	stateRewards *mat.VecDense
}

// New creates a rows x cols GridWorld with the given parameters. It fails
// with mdp.ErrConfig if either dimension is non-positive and with
// mdp.ErrRange if a RewardDict coordinate or the GoalState lies outside the
// grid.
func New(rows, cols int, cfg Config) (*GridWorld, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("gridworld: dimensions (%d, %d) must be "+
			"positive: %w", rows, cols, mdp.ErrConfig)
	}
	for coord := range cfg.RewardDict {
		if coord.Row < 0 || coord.Row >= rows ||
			coord.Col < 0 || coord.Col >= cols {
			return nil, fmt.Errorf("gridworld: reward override at (%d, %d) "+
				"outside %dx%d grid: %w", coord.Row, coord.Col, rows, cols,
				mdp.ErrRange)
		}
	}

	numStates := rows * cols

	g := &GridWorld{
		rows:             rows,
		cols:             cols,
		defaultReward:    cfg.DefaultReward,
		euclideanRewards: cfg.EuclideanRewards,
		allowWait:        cfg.AllowWait,
		disallowDiag:     cfg.DisallowDiag,
		goal:             NoGoal,
		transitions:      make([]int, numStates*NumActions),
		neighbors:        make([][]Neighbor, numStates),
		reverseNeighbors: make([][]Neighbor, numStates),
	}

	data := make([]float64, numStates*NumActions)
	for i := range data {
		data[i] = cfg.DefaultReward
	}
	rewards := mat.NewDense(numStates, NumActions, data)

	for s := 0; s < numStates; s++ {
		for a := 0; a < NumActions; a++ {
			sPrime, illegal := g.computeTransition(s, Action(a))
			g.transitions[a+s*NumActions] = sPrime

			if illegal {
				rewards.Set(s, a, math.Inf(-1))
				continue
			}

			coord := Coord{sPrime / cols, sPrime % cols}
			if r, ok := cfg.RewardDict[coord]; ok {
				rewards.Set(s, a, r)
			}
			g.neighbors[s] = append(g.neighbors[s],
				Neighbor{Action(a), sPrime})
			g.reverseNeighbors[sPrime] = append(g.reverseNeighbors[sPrime],
				Neighbor{Action(a), s})
		}
	}

	if cfg.EuclideanRewards {
		for _, a := range DiagonalActions {
			matutils.ScaleCol(rewards, int(a), math.Sqrt2)
		}
	}

	g.transitionTensor = tensor.New(tensor.WithShape(numStates, NumActions),
		tensor.WithBacking(g.transitions))

	m, err := mdp.New(numStates, NumActions, rewards, g.Transition)
	if err != nil {
		return nil, err
	}
	g.MDP = m

	g.stateRewards = matutils.VecFull(numStates, cfg.DefaultReward)
	for coord, r := range cfg.RewardDict {
		g.stateRewards.SetVec(coord.Row*cols+coord.Col, r)
	}

	if err := g.SetGoal(cfg.GoalState); err != nil {
		return nil, err
	}

	return g, nil
}

// computeTransition applies a to the cell encoded by s and reports the
// resulting state and whether the move was illegal. A move is illegal if it
// leaves the grid or if it is diagonal while diagonal moves are disallowed;
// illegal moves resolve to the origin state.
func (g *GridWorld) computeTransition(s int, a Action) (int, bool) {
	row := s / g.cols
	col := s % g.cols

	dRow, dCol := a.Offset()
	rPrime, cPrime := row+dRow, col+dCol

	if rPrime < 0 || rPrime >= g.rows || cPrime < 0 || cPrime >= g.cols ||
		(g.disallowDiag && a.Diagonal()) {
		return s, true
	}
	return rPrime*g.cols + cPrime, false
}

// Dims returns the number of rows and columns in the grid
func (g *GridWorld) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// CoordToState encodes the cell at (row, col) as a state. It fails with
// mdp.ErrRange if the cell lies outside the grid.
func (g *GridWorld) CoordToState(row, col int) (int, error) {
	if row < 0 || row >= g.rows {
		return 0, fmt.Errorf("gridworld: row %d outside [0, %d): %w",
			row, g.rows, mdp.ErrRange)
	}
	if col < 0 || col >= g.cols {
		return 0, fmt.Errorf("gridworld: column %d outside [0, %d): %w",
			col, g.cols, mdp.ErrRange)
	}
	return row*g.cols + col, nil
}

// StateToCoord decodes a state into its (row, col) cell. It fails with
// mdp.ErrRange if the state does not encode a cell of the grid.
func (g *GridWorld) StateToCoord(state int) (row, col int, err error) {
	if state < 0 || state >= g.rows*g.cols {
		return 0, 0, fmt.Errorf("gridworld: state %d outside [0, %d): %w",
			state, g.rows*g.cols, mdp.ErrRange)
	}
	return state / g.cols, state % g.cols, nil
}

// Transition returns the state that results from taking action a at state
// s. Illegal moves leave the agent in place. Lookup is O(1) from the cache
// computed at construction; s and a must lie in [0, NumStates) and
// [0, NumActions).
func (g *GridWorld) Transition(s, a int) int {
	return g.transitions[a+s*NumActions]
}

// Neighbors returns the legal moves out of s as (action, next state)
// pairs. Illegal moves are excluded. The returned slice is owned by the
// GridWorld and must not be modified.
func (g *GridWorld) Neighbors(s int) []Neighbor {
	return g.neighbors[s]
}

// ReverseNeighbors returns the legal moves into s as (action, predecessor)
// pairs, symmetric to Neighbors. The returned slice is owned by the
// GridWorld and must not be modified.
func (g *GridWorld) ReverseNeighbors(s int) []Neighbor {
	return g.reverseNeighbors[s]
}

// StateRewards returns the length-S vector holding the reward for entering
// each cell regardless of the action used to get there: DefaultReward
// everywhere except at RewardDict cells.
func (g *GridWorld) StateRewards() *mat.VecDense {
	return g.stateRewards
}

// TransitionTensor returns the cached transition table as a
// (NumStates, NumActions) tensor of ints. The tensor shares the cache's
// backing array, which is never written after construction.
func (g *GridWorld) TransitionTensor() *tensor.Dense {
	return g.transitionTensor
}

// Goal returns the current goal state. The second return value is false
// when no goal is set.
func (g *GridWorld) Goal() (int, bool) {
	return g.goal, g.goal != NoGoal
}

// SetGoal reconfigures the goal state by allowing an agent at the goal to
// use the Absorb action at no cost. The entire Absorb reward column is
// rewritten: when AllowWait is set, non-goal states pay DefaultReward to
// wait; otherwise Absorb is illegal outside the goal and costs negative
// infinity. Pass NoGoal to clear the goal. SetGoal overrides any previous
// goal and fails with mdp.ErrRange if goal is neither NoGoal nor a state.
func (g *GridWorld) SetGoal(goal int) error {
	if goal != NoGoal && (goal < 0 || goal >= g.NumStates) {
		return fmt.Errorf("gridworld: goal state %d outside [0, %d): %w",
			goal, g.NumStates, mdp.ErrRange)
	}

	g.goal = goal
	if g.allowWait {
		matutils.FillCol(g.Rewards, int(Absorb), g.defaultReward)
	} else {
		matutils.FillCol(g.Rewards, int(Absorb), math.Inf(-1))
	}
	if goal != NoGoal {
		g.Rewards.Set(goal, int(Absorb), 0)
	}

	return nil
}

// SetAllGoals allows Absorb at every state at no cost, bypassing the goal
// and AllowWait discipline. Experimental.
func (g *GridWorld) SetAllGoals() {
	matutils.FillCol(g.Rewards, int(Absorb), 0)
}

// Copy returns a GridWorld with the same dimensions, flags, reward tables,
// and goal as g, sharing no mutable state with it. The transition cache and
// adjacency lists are rebuilt rather than cloned; they are pure functions
// of the dimensions and flags, so the rebuild is identical.
func (g *GridWorld) Copy() *GridWorld {
	cfg := DefaultConfig()
	cfg.DefaultReward = g.defaultReward
	cfg.EuclideanRewards = g.euclideanRewards
	cfg.AllowWait = g.allowWait
	cfg.DisallowDiag = g.disallowDiag

	cp, err := New(g.rows, g.cols, cfg)
	if err != nil {
		// Unreachable: g was built from these same parameters.
		panic(err)
	}

	cp.goal = g.goal
	cp.Rewards.Copy(g.Rewards)
	cp.stateRewards.CopyVec(g.stateRewards)

	return cp
}

func (g *GridWorld) String() string {
	goal := "none"
	if g.goal != NoGoal {
		goal = fmt.Sprint(g.goal)
	}

	str := "GridWorld | Dims: (%d, %d)  |  Goal: %v  |  State rewards: %v"
	return fmt.Sprintf(str, g.rows, g.cols, goal,
		matutils.Format(g.stateRewards.T()))
}
