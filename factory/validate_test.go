package factory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvasily/flowforge/factory"
)

func validProblem() *factory.Problem {
	return &factory.Problem{
		Machines: map[string]factory.Machine{"press": {CraftsPerMin: 10}},
		Recipes: map[string]factory.Recipe{
			"plate": {
				Machine: "press", TimeS: 2,
				In:  map[string]float64{"ore": 1},
				Out: map[string]float64{"plate": 1},
			},
		},
		Limits: factory.Limits{RawSupplyPerMin: map[string]float64{"ore": 50}},
		Target: factory.Target{Item: "plate", RatePerMin: 10},
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	require.NoError(t, validProblem().Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*factory.Problem)
		want   error
	}{
		{
			name:   "no recipes",
			mutate: func(p *factory.Problem) { p.Recipes = nil },
			want:   factory.ErrNoRecipes,
		},
		{
			name: "unknown machine",
			mutate: func(p *factory.Problem) {
				r := p.Recipes["plate"]
				r.Machine = "ghost"
				p.Recipes["plate"] = r
			},
			want: factory.ErrUnknownMachine,
		},
		{
			name: "zero craft time",
			mutate: func(p *factory.Problem) {
				r := p.Recipes["plate"]
				r.TimeS = 0
				p.Recipes["plate"] = r
			},
			want: factory.ErrBadCraftTime,
		},
		{
			name: "zero machine speed",
			mutate: func(p *factory.Problem) {
				p.Machines["press"] = factory.Machine{CraftsPerMin: 0}
			},
			want: factory.ErrBadSpeed,
		},
		{
			name: "speed module cancels speed",
			mutate: func(p *factory.Problem) {
				p.Modules = map[string]factory.ModuleEffects{"press": {Speed: -1}}
			},
			want: factory.ErrBadSpeed,
		},
		{
			name: "negative input amount",
			mutate: func(p *factory.Problem) {
				p.Recipes["plate"].In["ore"] = -1
			},
			want: factory.ErrNegativeQuantity,
		},
		{
			name: "negative raw cap",
			mutate: func(p *factory.Problem) {
				p.Limits.RawSupplyPerMin["ore"] = -5
			},
			want: factory.ErrNegativeQuantity,
		},
		{
			name:   "negative target rate",
			mutate: func(p *factory.Problem) { p.Target.RatePerMin = -1 },
			want:   factory.ErrNegativeQuantity,
		},
		{
			name:   "unknown target item",
			mutate: func(p *factory.Problem) { p.Target.Item = "gear" },
			want:   factory.ErrUnknownTarget,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProblem()
			tc.mutate(p)
			require.ErrorIs(t, p.Validate(), tc.want)
		})
	}
}
