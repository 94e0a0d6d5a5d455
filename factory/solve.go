package factory

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// bottleneckHint accompanies every infeasible report.
const bottleneckHint = "Review machine or raw material caps"

// Solve validates, encodes and solves one factory instance.
//
// The primary phase requires the target rate exactly and minimizes machine
// cost. When the solver reports infeasibility, the rescaled phase finds the
// largest achievable fraction y of the target; the result then carries
// y·rate as MaxFeasibleTargetPerMin. Any other solver outcome (unbounded,
// singular) wraps ErrSolver - such outcomes indicate a modeling bug and are
// never reported as domain infeasibility.
func Solve(p *Problem, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := newModel(p)

	rate := p.Target.RatePerMin
	if rate == 0 {
		// Trivially feasible: produce nothing, run nothing. The maps match
		// the shape of a solved plan so callers see one result contract.
		crafts := make(map[string]float64, len(m.recipes))
		for _, rec := range m.recipes {
			crafts[rec] = 0
		}

		return &Result{
			Status:                StatusOK,
			PerRecipeCraftsPerMin: crafts,
			PerMachineCounts:      make(map[string]float64),
			RawConsumptionPerMin:  make(map[string]float64),
		}, nil
	}

	sys, degenerate := m.build(rate, false)
	var x []float64
	var err error
	if !degenerate {
		_, x, err = runSimplex(sys.c, sys.a, sys.b, opts.LPTolerance)
	}
	switch {
	case !degenerate && err == nil:
		return m.decode(x), nil
	case degenerate || errors.Is(err, lp.ErrInfeasible):
		// Fall through to the rescaled phase.
	default:
		return nil, fmt.Errorf("%w: primary phase: %v", ErrSolver, err)
	}

	sys2, _ := m.build(rate, true)
	_, x2, err := runSimplex(sys2.c, sys2.a, sys2.b, opts.LPTolerance)
	if err != nil {
		// y = 0 is always feasible here, so any failure is an anomaly.
		return nil, fmt.Errorf("%w: rescaled phase: %v", ErrSolver, err)
	}
	maxRate := x2[sys2.n-1] * rate

	return &Result{
		Status:                  StatusInfeasible,
		MaxFeasibleTargetPerMin: &maxRate,
		BottleneckHint:          []string{bottleneckHint},
	}, nil
}

// runSimplex calls gonum's simplex with panic containment: the solver
// reports some malformed standard forms by panicking, and a crash must
// never escape Solve for input that passed validation.
func runSimplex(c []float64, a mat.Matrix, b []float64, tol float64) (opt float64, x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simplex panic: %v", r)
		}
	}()

	return lp.Simplex(c, a, b, tol, nil)
}

// decode converts a primary-phase solution vector into the domain answer.
func (m *model) decode(x []float64) *Result {
	nx := len(m.recipes)

	crafts := make(map[string]float64, nx)
	counts := make(map[string]float64)
	for i, rec := range m.recipes {
		crafts[rec] = x[i]
		if x[i] > reportTolerance {
			counts[m.p.Recipes[rec].Machine] += x[i] / m.effCrafts[rec]
		}
	}

	raw := make(map[string]float64)
	for _, item := range m.rawVars {
		if v := x[nx+m.rawIndex[item]]; v > reportTolerance {
			raw[item] = v
		}
	}

	return &Result{
		Status:                StatusOK,
		PerRecipeCraftsPerMin: crafts,
		PerMachineCounts:      counts,
		RawConsumptionPerMin:  raw,
	}
}
