// Package factory turns a recipe network with machine and raw-material
// limits into a linear program and decodes the solved program back into a
// production plan.
//
// The model has one non-negative crafts-per-minute variable per recipe and
// one net-consumption variable per raw item. Conservation holds as an
// equality row per item: intermediates net to zero, the target item nets to
// the requested rate, raw items net to their consumption variable. Machine
// caps and raw-supply caps are inequality rows. Module effects (speed and
// productivity bonuses) are folded into the coefficients before encoding -
// they are never solver variables.
//
// Solving is two-phase. The primary phase minimizes total machine cost
//
//	Σ crafts[r] / effective_crafts_per_min(r)
//
// with a per-recipe ε·index term so that ties between equal-cost plans break
// by recipe declaration order, independent of solver pivoting. If the
// primary phase is infeasible, a rescaled phase replaces the target rate
// with y·rate, y ∈ [0,1], and maximizes y under the same hard caps; the
// reported y·rate is the largest achievable output. The rescaled phase is
// always feasible (y = 0), so the caller always receives a numeric answer.
//
// The LP itself is delegated to gonum's simplex
// (gonum.org/v1/gonum/optimize/convex/lp). An unbounded or otherwise
// anomalous solver outcome signals a modeling bug and surfaces as an error
// wrapping ErrSolver - it is never reported as domain infeasibility.
package factory
