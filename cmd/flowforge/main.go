// Command flowforge answers production-planning questions: the factory
// subcommand sizes a recipe network against a target rate, the belts
// subcommand checks a bounded belt graph for a feasible routing. Both read
// one JSON problem (stdin or -i) and print one JSON answer on stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rvasily/flowforge/belts"
	"github.com/rvasily/flowforge/config"
	"github.com/rvasily/flowforge/factory"
)

var (
	inputPath  string
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "flowforge",
		Short:         "Production-planning solvers: factory LP and bounded belt flow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "problem JSON file (default: stdin)")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "solver tuning YAML file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(factoryCmd(), beltsCmd())

	if err := root.Execute(); err != nil {
		// Domain and validation failures still answer in JSON, mirroring
		// the solver outputs, so callers can always parse stdout.
		emit(map[string]string{"status": "error", "message": err.Error()})
		os.Exit(1)
	}
}

func factoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factory",
		Short: "Size a recipe network against a target output rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, cfg, raw, err := setup()
			if err != nil {
				return err
			}
			var p factory.Problem
			if err := json.Unmarshal(raw, &p); err != nil {
				return fmt.Errorf("decode problem: %w", err)
			}
			log.Debug("solving factory instance",
				zap.Int("recipes", len(p.Recipes)),
				zap.String("target", p.Target.Item),
				zap.Float64("rate_per_min", p.Target.RatePerMin))
			res, err := factory.Solve(&p, cfg.FactoryOptions())
			if err != nil {
				return err
			}
			log.Debug("factory solve finished", zap.String("status", res.Status))

			return emit(res)
		},
	}
}

func beltsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "belts",
		Short: "Check a bounded belt graph for a feasible routing",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, cfg, raw, err := setup()
			if err != nil {
				return err
			}
			var p belts.Problem
			if err := json.Unmarshal(raw, &p); err != nil {
				return fmt.Errorf("decode problem: %w", err)
			}
			log.Debug("solving belts instance",
				zap.Int("nodes", len(p.Nodes)),
				zap.Int("edges", len(p.Edges)))
			res, err := belts.Solve(&p, cfg.FlowOptions())
			if err != nil {
				return err
			}
			log.Debug("belts solve finished", zap.String("status", res.Status))

			return emit(res)
		},
	}
}

// setup builds the logger, loads tuning config and reads the problem bytes.
func setup() (*zap.Logger, config.Config, []byte, error) {
	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, config.Config{}, nil, err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	var raw []byte
	if inputPath != "" {
		raw, err = os.ReadFile(inputPath)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("read problem: %w", err)
	}

	return log, cfg, raw, nil
}

func emit(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}
