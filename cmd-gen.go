package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oliverbestmann/hullchains/hull"
	"github.com/oliverbestmann/hullchains/pointgen"
	"github.com/oliverbestmann/hullchains/stream"
	"github.com/spf13/cobra"
)

var (
	genCount      int
	genSeed       uint64
	genDeleteProb float64
	genDrain      bool
	genOutput     string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random sequence of hull operations",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		genCfg := cfg.Generator

		flags := cmd.Flags()
		if flags.Changed("count") {
			genCfg.Count = genCount
		}

		if flags.Changed("seed") {
			genCfg.Seed = genSeed
		}

		if flags.Changed("delete-prob") {
			genCfg.DeleteProbability = genDeleteProb
		}

		if genCfg.DeleteProbability < 0 || genCfg.DeleteProbability >= 1 {
			return fmt.Errorf("delete probability must be in [0, 1), got %g", genCfg.DeleteProbability)
		}

		opts := []pointgen.Option{pointgen.WithPrecision(genCfg.Precision)}
		if genCfg.FeatureSize > 0 {
			opts = append(opts, pointgen.WithFeatureSize(genCfg.FeatureSize))
		}

		gen := pointgen.New(genCfg.Seed, genCfg.Bounds.Rect(), opts...)

		ops := gen.Operations(genCfg.Count, genCfg.DeleteProbability)
		if genDrain {
			ops = append(ops, gen.Drain()...)
		}

		var output io.Writer = os.Stdout
		if genOutput != "" && genOutput != "-" {
			fp, err := os.Create(genOutput)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}

			defer fp.Close()

			output = fp
		}

		if err := stream.WriteOperations(output, ops); err != nil {
			return fmt.Errorf("write operations: %w", err)
		}

		slog.Info("Operations generated",
			slog.Int("operations", len(ops)),
			slog.Int("inserts", countKind(ops, hull.OpInsert)),
			slog.Uint64("seed", genCfg.Seed),
		)

		return nil
	},
}

func init() {
	flags := genCmd.Flags()
	flags.IntVar(&genCount, "count", 0, "number of operations, defaults to the configured count")
	flags.Uint64Var(&genSeed, "seed", 0, "seed of the generator, defaults to the configured seed")
	flags.Float64Var(&genDeleteProb, "delete-prob", 0, "probability that an operation deletes a point")
	flags.BoolVar(&genDrain, "drain", false, "delete all remaining points at the end")
	flags.StringVarP(&genOutput, "output", "o", "", "output file, stdout if empty")
}

func countKind(ops []hull.Operation, kind hull.OpKind) int {
	var count int
	for _, op := range ops {
		if op.Kind == kind {
			count++
		}
	}

	return count
}
