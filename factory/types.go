package factory

import "fmt"

// Status values reported by Solve.
const (
	// StatusOK marks a plan that hits the requested target rate exactly.
	StatusOK = "ok"

	// StatusInfeasible marks a target beyond capacity; the result then
	// carries the maximum achievable rate instead.
	StatusInfeasible = "infeasible"
)

// ErrNoRecipes is returned when the recipe set is empty.
var ErrNoRecipes = fmt.Errorf("factory: %w", errNoRecipes)
var errNoRecipes = fmt.Errorf("no recipes")

// ErrUnknownMachine is returned when a recipe references an undeclared machine.
var ErrUnknownMachine = fmt.Errorf("factory: %w", errUnknownMachine)
var errUnknownMachine = fmt.Errorf("unknown machine")

// ErrUnknownTarget is returned when the target item appears in no recipe.
var ErrUnknownTarget = fmt.Errorf("factory: %w", errUnknownTarget)
var errUnknownTarget = fmt.Errorf("unknown target item")

// ErrBadSpeed is returned when a machine's effective speed is not positive.
var ErrBadSpeed = fmt.Errorf("factory: %w", errBadSpeed)
var errBadSpeed = fmt.Errorf("non-positive effective speed")

// ErrBadCraftTime is returned when a recipe's craft time is not positive.
var ErrBadCraftTime = fmt.Errorf("factory: %w", errBadCraftTime)
var errBadCraftTime = fmt.Errorf("non-positive craft time")

// ErrNegativeQuantity is returned when an amount, cap or rate is below zero.
var ErrNegativeQuantity = fmt.Errorf("factory: %w", errNegativeQuantity)
var errNegativeQuantity = fmt.Errorf("negative quantity")

// ErrSolver wraps anomalous LP outcomes (unbounded, singular basis, internal
// failure). These indicate a modeling bug, not a legitimate "no solution".
var ErrSolver = fmt.Errorf("factory: %w", errSolver)
var errSolver = fmt.Errorf("solver anomaly")

// Machine is one machine type; CraftsPerMin is its base craft speed.
type Machine struct {
	CraftsPerMin float64 `json:"crafts_per_min"`
}

// Recipe converts input items into output items on one machine type.
// TimeS is the base seconds per craft before speed effects.
type Recipe struct {
	Machine string             `json:"machine"`
	TimeS   float64            `json:"time_s"`
	In      map[string]float64 `json:"in,omitempty"`
	Out     map[string]float64 `json:"out"`
}

// ModuleEffects are per-machine additive bonuses: Speed scales effective
// craft speed by (1+Speed), Prod scales produced amounts by (1+Prod).
type ModuleEffects struct {
	Speed float64 `json:"speed,omitempty"`
	Prod  float64 `json:"prod,omitempty"`
}

// Limits bound the plan: available raw material per minute and machines per
// type. Machines absent from MaxMachines are uncapped.
type Limits struct {
	RawSupplyPerMin map[string]float64 `json:"raw_supply_per_min,omitempty"`
	MaxMachines     map[string]float64 `json:"max_machines,omitempty"`
}

// Target names the item to produce and the required rate per minute.
type Target struct {
	Item       string  `json:"item"`
	RatePerMin float64 `json:"rate_per_min"`
}

// Problem is one factory instance, decoded straight from the input JSON.
type Problem struct {
	Machines map[string]Machine       `json:"machines"`
	Recipes  map[string]Recipe        `json:"recipes"`
	Modules  map[string]ModuleEffects `json:"modules,omitempty"`
	Limits   Limits                   `json:"limits,omitempty"`
	Target   Target                   `json:"target"`
}

// Result is the outcome of one factory solve.
//
// Status StatusOK populates the per-recipe, per-machine and raw-consumption
// maps; StatusInfeasible populates MaxFeasibleTargetPerMin and the hint.
type Result struct {
	Status                  string             `json:"status"`
	PerRecipeCraftsPerMin   map[string]float64 `json:"per_recipe_crafts_per_min,omitempty"`
	PerMachineCounts        map[string]float64 `json:"per_machine_counts,omitempty"`
	RawConsumptionPerMin    map[string]float64 `json:"raw_consumption_per_min,omitempty"`
	MaxFeasibleTargetPerMin *float64           `json:"max_feasible_target_per_min,omitempty"`
	BottleneckHint          []string           `json:"bottleneck_hint,omitempty"`
}

// Options tunes the LP solve.
//   - LPTolerance: pivot tolerance forwarded to gonum's simplex; 0 selects
//     the solver default.
type Options struct {
	LPTolerance float64
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{LPTolerance: 0}
}
