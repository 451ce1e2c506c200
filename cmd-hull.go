package main

import (
	"log/slog"
	"os"

	"github.com/oliverbestmann/hullchains/geom"
	"github.com/oliverbestmann/hullchains/report"
	"github.com/oliverbestmann/hullchains/stream"
	"github.com/spf13/cobra"
)

var (
	hullCheck      bool
	hullUnbalanced bool
)

var hullCmd = &cobra.Command{
	Use:   "hull [FILE]",
	Short: "Apply insert and delete operations and print the convex hull",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := openInput(args)
		if err != nil {
			return err
		}

		defer input.Close()

		var seq geom.Sequence
		ops, err := stream.ReadOperations(input, &seq)
		if err != nil {
			return err
		}

		return report.Hull(os.Stdout, ops, report.HullOptions{
			Balance: cfg.Hull.Balance && !hullUnbalanced,
			Check:   hullCheck,
			Logger:  slog.Default(),
		})
	},
}

func init() {
	hullCmd.Flags().BoolVar(&hullCheck, "check", false, "compare the result against a batch computation")
	hullCmd.Flags().BoolVar(&hullUnbalanced, "unbalanced", false, "do not rebalance the hull trees")
}
