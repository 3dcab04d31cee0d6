// SPDX-License-Identifier: MIT

package stepwise

// State is a step of the selection state machine.
//
//	Fitting → Testing → Converged
//	                  ↘ Pruning → Fitting
//	                  ↘ Exhausted
type State uint8

const (
	StateFitting State = iota
	StateTesting
	StatePruning
	StateConverged
	StateExhausted
)

var stateNames = [...]string{
	StateFitting:   "fitting",
	StateTesting:   "testing",
	StatePruning:   "pruning",
	StateConverged: "converged",
	StateExhausted: "exhausted",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "unknown"
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool { return s == StateConverged || s == StateExhausted }

// Policy selects which non-significant columns a pruning round removes.
type Policy uint8

const (
	// PruneAll removes every non-significant unprotected column in one round.
	PruneAll Policy = iota
	// PruneWorst removes only the unprotected column with the largest p-value.
	PruneWorst
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PruneAll:
		return "all"
	case PruneWorst:
		return "worst"
	default:
		return "unknown"
	}
}

// ParsePolicy maps "all" and "worst" onto a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "all":
		return PruneAll, nil
	case "worst":
		return PruneWorst, nil
	}

	return 0, ErrUnknownPolicy
}
