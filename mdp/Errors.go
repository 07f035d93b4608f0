package mdp

import "errors"

// Sentinel errors shared by the MDP contract and the concrete environments
// that extend it. Call sites wrap these with fmt.Errorf and %w so callers
// can test with errors.Is.
var (
	// ErrShape indicates a reward table whose dimensions do not match the
	// declared state and action counts.
	ErrShape = errors.New("mdp: reward table shape mismatch")

	// ErrRange indicates a state index or grid coordinate outside its valid
	// bounds.
	ErrRange = errors.New("mdp: index out of range")

	// ErrConfig indicates invalid construction parameters, such as
	// non-positive state or action counts.
	ErrConfig = errors.New("mdp: invalid configuration")
)
