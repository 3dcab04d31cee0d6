// SPDX-License-Identifier: MIT

// Package stepwise implements backward stepwise selection on top of the
// regression engine: fit, t-test every coefficient, prune the non-significant
// columns, and repeat until every remaining coefficient is significant.
//
// Column bookkeeping lives in an IndexMap owned by a single Run, so results
// always report the caller's original column indices. A Selector holds only
// configuration and may run concurrently on independent inputs.
package stepwise

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvreg/matrix"
	"github.com/katalvlaran/lvreg/regression"
	"go.uber.org/zap"
)

var (
	// ErrNoSignificantPredictors is returned when pruning would remove the last
	// unprotected column.
	ErrNoSignificantPredictors = errors.New("stepwise: no significant predictors")

	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("stepwise: unknown pruning policy")

	// ErrOutOfRange is matrix.ErrOutOfRange, re-exported for IndexMap and
	// protected indices beyond the design.
	ErrOutOfRange = matrix.ErrOutOfRange
)

const opRun = "stepwise.Run"

// Coefficient is one retained predictor of the final model.
type Coefficient struct {
	OriginalIndex int
	Label         string
	Beta          float64
	StdErr        float64
	TStatistic    float64
	PValue        float64
	Lower, Upper  float64
}

// Result is the outcome of a converged selection.
type Result struct {
	RunID        uuid.UUID
	Coefficients []Coefficient
	Dropped      []int // original indices, in removal order
	Rounds       int
	Summary      regression.Summary
	Design       *matrix.Dense[float64] // final pruned design
	Trace        []State
}

// Selector runs backward stepwise selection.
type Selector struct {
	engine    *regression.Engine
	policy    Policy
	protected map[int]struct{}
	labels    []string
	log       *zap.Logger
}

// NewSelector builds a Selector; without WithEngine a default engine is used.
func NewSelector(opts ...Option) *Selector {
	o := gatherOptions(opts...)

	return &Selector{
		engine:    o.engine,
		policy:    o.policy,
		protected: o.protected,
		labels:    o.labels,
		log:       o.logger,
	}
}

// Run selects predictors for y from the columns of x.
//
// Implementation:
//   - Stage 1: validate labels and protected indices; clone x; identity IndexMap.
//   - Stage 2 (Fitting/Testing): Fit, then SignificanceTest on the working design.
//   - Stage 3: if every unprotected coefficient is significant, Summarize and stop.
//   - Stage 4 (Pruning): pick columns per policy, remove them from the clone
//     (highest position first) and from the IndexMap, then go back to Stage 2.
//
// Behavior highlights:
//   - x is never modified.
//   - Protected columns stay in the model whatever their p-value.
//   - PruneWorst breaks p-value ties by the lowest current position.
//
// Errors:
//   - ErrNoSignificantPredictors when a round would prune every unprotected column.
//   - ErrOutOfRange (protected index ≥ cols), regression.ErrDimensionMismatch
//     (label count), and any engine error (ErrEmptyDesign, ErrRankDeficient, ...).
//
// Complexity:
//   - At most cols rounds, each O(m·n² + n³).
func (s *Selector) Run(x *matrix.Dense[float64], y *matrix.Vector[float64]) (*Result, error) {
	if x == nil || x.Cols() == 0 {
		return nil, fmt.Errorf("%s: %w", opRun, regression.ErrEmptyDesign)
	}
	cols := x.Cols()
	if s.labels != nil && len(s.labels) != cols {
		return nil, fmt.Errorf("%s: %d labels for %d columns: %w", opRun, len(s.labels), cols, regression.ErrDimensionMismatch)
	}
	for p := range s.protected {
		if p >= cols {
			return nil, fmt.Errorf("%s: protected column %d: %w", opRun, p, ErrOutOfRange)
		}
	}

	var (
		runID   = uuid.Must(uuid.NewV7())
		log     = s.log.With(zap.Stringer("run_id", runID))
		work    = x.Clone()
		idx     = Identity(cols)
		trace   []State
		dropped []int
		round   int
	)

	for round = 1; ; round++ {
		trace = append(trace, StateFitting)
		beta, err := s.engine.Fit(work, y)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", opRun, round, err)
		}

		trace = append(trace, StateTesting)
		tests, err := s.engine.SignificanceTest(work, y, beta)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", opRun, round, err)
		}

		prune, unprotected := s.candidates(idx, tests)
		if len(prune) == 0 {
			trace = append(trace, StateConverged)
			res, err := s.finish(work, y, beta, idx, tests)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opRun, err)
			}
			res.RunID, res.Rounds, res.Dropped, res.Trace = runID, round, dropped, trace

			log.Info("stepwise converged",
				zap.Int("rounds", round),
				zap.Ints("kept", idx.Originals()),
				zap.Ints("dropped", dropped),
			)
			return res, nil
		}

		if len(prune) == unprotected {
			trace = append(trace, StateExhausted)
			log.Info("stepwise exhausted", zap.Int("rounds", round), zap.Ints("dropped", dropped))
			return nil, fmt.Errorf("%s: round %d: %w", opRun, round, ErrNoSignificantPredictors)
		}

		trace = append(trace, StatePruning)
		originals := make([]int, len(prune))
		for i, p := range prune {
			originals[i], _ = idx.Original(p)
		}
		// descending so earlier removals do not shift later positions
		for i := len(prune) - 1; i >= 0; i-- {
			if err = work.RemoveColumn(prune[i]); err != nil {
				return nil, fmt.Errorf("%s: round %d: %w", opRun, round, err)
			}
		}
		if idx, err = idx.Remove(prune...); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", opRun, round, err)
		}
		dropped = append(dropped, originals...)

		log.Debug("stepwise round",
			zap.Int("round", round),
			zap.Int("cols", work.Cols()),
			zap.Ints("pruned", originals),
		)
	}
}

// candidates returns the ascending positions to prune under the policy and
// the number of unprotected columns in the current design.
func (s *Selector) candidates(idx IndexMap, tests []regression.SignificanceResult) ([]int, int) {
	var (
		out         []int
		unprotected int
		worst       = -1
	)
	for pos, r := range tests {
		orig, _ := idx.Original(pos)
		if _, ok := s.protected[orig]; ok {
			continue
		}
		unprotected++
		if r.Significant {
			continue
		}
		out = append(out, pos)
		if worst < 0 || r.PValue > tests[worst].PValue {
			worst = pos
		}
	}
	if s.policy == PruneWorst && worst >= 0 {
		return []int{worst}, unprotected
	}
	slices.Sort(out)

	return out, unprotected
}

func (s *Selector) finish(
	work *matrix.Dense[float64],
	y, beta *matrix.Vector[float64],
	idx IndexMap,
	tests []regression.SignificanceResult,
) (*Result, error) {
	sum, err := s.engine.Summarize(work, y, beta)
	if err != nil {
		return nil, err
	}

	coefs := make([]Coefficient, len(tests))
	for pos, r := range tests {
		orig, _ := idx.Original(pos)
		coefs[pos] = Coefficient{
			OriginalIndex: orig,
			Label:         s.label(orig),
			Beta:          r.Beta,
			StdErr:        r.StdErr,
			TStatistic:    r.TStatistic,
			PValue:        r.PValue,
			Lower:         r.Lower,
			Upper:         r.Upper,
		}
	}

	return &Result{Coefficients: coefs, Summary: sum, Design: work}, nil
}

func (s *Selector) label(orig int) string {
	if s.labels != nil {
		return s.labels[orig]
	}

	return fmt.Sprintf("x%d", orig)
}
