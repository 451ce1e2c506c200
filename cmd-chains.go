package main

import (
	"log/slog"
	"os"

	"github.com/oliverbestmann/hullchains/chains"
	"github.com/oliverbestmann/hullchains/report"
	"github.com/oliverbestmann/hullchains/stream"
	"github.com/spf13/cobra"
)

var chainsCmd = &cobra.Command{
	Use:   "chains [FILE]",
	Short: "Decompose a planar graph into monotone chains and locate the query point",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := openInput(args)
		if err != nil {
			return err
		}

		defer input.Close()

		graph, query, err := stream.ReadGraph(input, chains.WithLogger(slog.Default()))
		if err != nil {
			return err
		}

		return report.Chains(os.Stdout, graph, query)
	},
}
