package factory

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// tieBreakEps separates equally priced plans by recipe declaration order.
// Far smaller than any meaningful cost difference in this domain, it makes
// the chosen optimum independent of solver pivoting.
const tieBreakEps = 1e-9

// reportTolerance prunes numerically-zero quantities from decoded results.
const reportTolerance = 1e-9

// capSlack widens every cap row by a hair so a plan sitting exactly on a
// cap (e.g. re-solving at the phase-2 rate) is not rejected over float
// rounding. The feasibility decision itself stays with the solver.
const capSlack = 1e-9

// model is the indexed, module-adjusted view of a Problem. Index maps are
// fixed once, before any matrix is filled, so both the ε tie-break and the
// decoded maps are reproducible across runs.
type model struct {
	p *Problem

	recipes []string // recipe names, ascending
	items   []string // item names, ascending
	rawVars []string // raw items occurring in recipes, ascending

	itemIndex map[string]int
	rawIndex  map[string]int // raw item → raw-variable offset

	effCrafts map[string]float64            // crafts/min after speed effects
	effOut    map[string]map[string]float64 // produced amounts after prod effects
}

func newModel(p *Problem) *model {
	m := &model{
		p:         p,
		itemIndex: make(map[string]int),
		rawIndex:  make(map[string]int),
		effCrafts: make(map[string]float64, len(p.Recipes)),
		effOut:    make(map[string]map[string]float64, len(p.Recipes)),
	}

	for name := range p.Recipes {
		m.recipes = append(m.recipes, name)
	}
	sort.Strings(m.recipes)

	itemSet := make(map[string]struct{})
	for _, name := range m.recipes {
		r := p.Recipes[name]
		for item := range r.In {
			itemSet[item] = struct{}{}
		}
		for item := range r.Out {
			itemSet[item] = struct{}{}
		}
	}
	for item := range itemSet {
		m.items = append(m.items, item)
	}
	sort.Strings(m.items)
	for i, item := range m.items {
		m.itemIndex[item] = i
	}

	// The target role wins over the raw role, matching the item
	// classification order: target, then raw, then intermediate.
	for item := range p.Limits.RawSupplyPerMin {
		if _, occurs := itemSet[item]; occurs && item != p.Target.Item {
			m.rawVars = append(m.rawVars, item)
		}
	}
	sort.Strings(m.rawVars)
	for i, item := range m.rawVars {
		m.rawIndex[item] = i
	}

	// Pre-apply module effects; they never reach the solver as variables.
	for _, name := range m.recipes {
		r := p.Recipes[name]
		mods := p.Modules[r.Machine]
		base := p.Machines[r.Machine].CraftsPerMin
		m.effCrafts[name] = base * (1 + mods.Speed) * 60.0 / r.TimeS
		out := make(map[string]float64, len(r.Out))
		for item, amt := range r.Out {
			out[item] = amt * (1 + mods.Prod)
		}
		m.effOut[name] = out
	}

	return m
}

func (m *model) isRaw(item string) bool {
	_, ok := m.rawIndex[item]

	return ok
}

// net returns produced-minus-consumed of item per craft of recipe, with
// productivity effects applied to the produced side.
func (m *model) net(recipe, item string) float64 {
	return m.effOut[recipe][item] - m.p.Recipes[recipe].In[item]
}

// linearSystem is a solver-ready standard-form program:
// minimize c·x subject to A·x = b, x ≥ 0, slack variables included.
type linearSystem struct {
	c []float64
	a *mat.Dense
	b []float64
	n int // structural (non-slack) variable count; y is the last one when present
}

type lpRow struct {
	coef []float64
	rhs  float64
}

// build assembles the standard-form program for one phase.
//
// rescaled=false encodes the primary phase: hit targetRate exactly and
// minimize machine cost. rescaled=true appends the scalar y ∈ [0,1],
// re-targets the equality row to y·targetRate and maximizes y; the machine
// cost term is dropped while every cap stays a hard constraint.
//
// The second return value reports a target row with all-zero coefficients
// and a non-zero rhs - a directly infeasible system the solver never needs
// to see.
func (m *model) build(targetRate float64, rescaled bool) (*linearSystem, bool) {
	nx := len(m.recipes)
	n := nx + len(m.rawVars)
	yCol := -1
	if rescaled {
		yCol = n
		n++
	}

	// Equality rows, one per item. All-zero intermediate rows (0 = 0) are
	// dropped so the solver never sees a rank-deficient constraint.
	var eq []lpRow
	degenerate := false
	for _, item := range m.items {
		coef := make([]float64, n)
		switch {
		case item == m.p.Target.Item:
			nonzero := false
			for i, rec := range m.recipes {
				coef[i] = m.net(rec, item)
				nonzero = nonzero || coef[i] != 0
			}
			if rescaled {
				coef[yCol] = -targetRate
				eq = append(eq, lpRow{coef, 0})
			} else if nonzero {
				eq = append(eq, lpRow{coef, targetRate})
			} else {
				degenerate = true
			}
		case m.isRaw(item):
			for i, rec := range m.recipes {
				coef[i] = -m.net(rec, item) // consumption-positive orientation
			}
			coef[nx+m.rawIndex[item]] = -1
			eq = append(eq, lpRow{coef, 0})
		default:
			nonzero := false
			for i, rec := range m.recipes {
				coef[i] = m.net(rec, item)
				nonzero = nonzero || coef[i] != 0
			}
			if nonzero {
				eq = append(eq, lpRow{coef, 0})
			}
		}
	}

	// Inequality rows; each receives one slack column below.
	var ineq []lpRow
	for _, item := range m.rawVars {
		coef := make([]float64, n)
		coef[nx+m.rawIndex[item]] = 1
		ineq = append(ineq, lpRow{coef, m.p.Limits.RawSupplyPerMin[item] + capSlack})
	}
	machines := make([]string, 0, len(m.p.Limits.MaxMachines))
	for machine := range m.p.Limits.MaxMachines {
		machines = append(machines, machine)
	}
	sort.Strings(machines)
	for _, machine := range machines {
		coef := make([]float64, n)
		used := false
		for i, rec := range m.recipes {
			if m.p.Recipes[rec].Machine == machine {
				coef[i] = 1 / m.effCrafts[rec]
				used = true
			}
		}
		if !used {
			continue // a cap on an idle machine constrains nothing
		}
		ineq = append(ineq, lpRow{coef, m.p.Limits.MaxMachines[machine] + capSlack})
	}
	if rescaled {
		coef := make([]float64, n)
		coef[yCol] = 1
		ineq = append(ineq, lpRow{coef, 1})
	}

	// When equality rows outnumber structural variables (a recipe with a
	// by-product does it), the standard form comes out taller than wide and
	// the solver rejects it outright. Re-expressing each equality as a
	// slack/surplus pair (a·x+s = rhs, a·x−t = rhs, s,t ≥ 0 forces s=t=0)
	// keeps the matrix wide with an identical feasible set.
	pairEq := len(eq) > n
	eqCols := 0
	rowsPerEq := 1
	if pairEq {
		eqCols = 2 * len(eq)
		rowsPerEq = 2
	}

	cols := n + eqCols + len(ineq)
	c := make([]float64, cols)
	if rescaled {
		c[yCol] = -1 // maximize y
	} else {
		for i, rec := range m.recipes {
			c[i] = 1/m.effCrafts[rec] + tieBreakEps*float64(i+1)
		}
	}

	rows := rowsPerEq*len(eq) + len(ineq)
	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for i, r := range eq {
		for k := 0; k < rowsPerEq; k++ {
			row := rowsPerEq*i + k
			for j, v := range r.coef {
				a.Set(row, j, v)
			}
			b[row] = r.rhs
		}
		if pairEq {
			a.Set(2*i, n+2*i, 1)
			a.Set(2*i+1, n+2*i+1, -1)
		}
	}
	for k, r := range ineq {
		i := rowsPerEq*len(eq) + k
		for j, v := range r.coef {
			a.Set(i, j, v)
		}
		a.Set(i, n+eqCols+k, 1)
		b[i] = r.rhs
	}

	return &linearSystem{c: c, a: a, b: b, n: n}, degenerate
}
