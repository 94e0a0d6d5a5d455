package factory

import "fmt"

// Validate rejects malformed instances before any matrix is assembled.
// Solver calls never see an invalid model.
func (p *Problem) Validate() error {
	if len(p.Recipes) == 0 {
		return ErrNoRecipes
	}

	targetKnown := false
	for name, r := range p.Recipes {
		m, ok := p.Machines[r.Machine]
		if !ok {
			return fmt.Errorf("%w: %q in recipe %q", ErrUnknownMachine, r.Machine, name)
		}
		if r.TimeS <= 0 {
			return fmt.Errorf("%w: time_s=%g in recipe %q", ErrBadCraftTime, r.TimeS, name)
		}
		if m.CraftsPerMin <= 0 {
			return fmt.Errorf("%w: machine %q crafts_per_min=%g", ErrBadSpeed, r.Machine, m.CraftsPerMin)
		}
		mods := p.Modules[r.Machine]
		if 1+mods.Speed <= 0 {
			return fmt.Errorf("%w: machine %q speed bonus %g", ErrBadSpeed, r.Machine, mods.Speed)
		}
		if 1+mods.Prod < 0 {
			return fmt.Errorf("%w: machine %q prod bonus %g", ErrNegativeQuantity, r.Machine, mods.Prod)
		}
		for item, amt := range r.In {
			if amt < 0 {
				return fmt.Errorf("%w: input %q=%g in recipe %q", ErrNegativeQuantity, item, amt, name)
			}
			if item == p.Target.Item {
				targetKnown = true
			}
		}
		for item, amt := range r.Out {
			if amt < 0 {
				return fmt.Errorf("%w: output %q=%g in recipe %q", ErrNegativeQuantity, item, amt, name)
			}
			if item == p.Target.Item {
				targetKnown = true
			}
		}
	}

	for item, cap := range p.Limits.RawSupplyPerMin {
		if cap < 0 {
			return fmt.Errorf("%w: raw_supply_per_min[%q]=%g", ErrNegativeQuantity, item, cap)
		}
	}
	for machine, cap := range p.Limits.MaxMachines {
		if cap < 0 {
			return fmt.Errorf("%w: max_machines[%q]=%g", ErrNegativeQuantity, machine, cap)
		}
	}

	if p.Target.RatePerMin < 0 {
		return fmt.Errorf("%w: target rate %g", ErrNegativeQuantity, p.Target.RatePerMin)
	}
	if !targetKnown {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, p.Target.Item)
	}

	return nil
}
