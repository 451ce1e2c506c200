package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/hullchains/chains"
	"github.com/oliverbestmann/hullchains/geom"
	"github.com/oliverbestmann/hullchains/hull"
	"github.com/oliverbestmann/hullchains/pointgen"
	"github.com/oliverbestmann/hullchains/stream"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [FILE]",
	Short: "Show hull operations or a graph with its chains in a window",
	Long: "Show hull operations or a graph with its chains in a window. The format of\n" +
		"the input is detected automatically. Without input an empty hull is shown\n" +
		"that can be edited with the mouse.",
	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		genCfg := cfg.Generator
		gen := pointgen.New(genCfg.Seed, genCfg.Bounds.Rect(), pointgen.WithPrecision(genCfg.Precision))

		var hullOpts []hull.Option
		if !cfg.Hull.Balance {
			hullOpts = append(hullOpts, hull.WithoutBalancing())
		}

		opts := ViewerOptions{
			Config:    cfg.Viewer,
			Logger:    logger,
			Bounds:    genCfg.Bounds.Rect(),
			Hull:      hull.New(append(hullOpts, hull.WithLogger(logger))...),
			Generator: gen,
		}

		if len(args) > 0 {
			if err := loadViewerInput(cmd, args, &opts); err != nil {
				return err
			}
		}

		ebiten.SetWindowSize(cfg.Viewer.Width, cfg.Viewer.Height)
		ebiten.SetWindowTitle("hullchains")
		ebiten.SetVsyncEnabled(true)
		ebiten.SetTPS(ebiten.SyncWithFPS)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		return ebiten.RunGame(NewViewer(opts))
	},
}

func loadViewerInput(cmd *cobra.Command, args []string, opts *ViewerOptions) error {
	input, err := openInput(args)
	if err != nil {
		return err
	}

	defer input.Close()

	format, content, err := stream.Sniff(cmd.Context(), input)
	if err != nil {
		return err
	}

	defer content.Close()

	opts.Logger.Info("Input detected", slog.String("format", format.String()))

	switch format {
	case stream.FormatOperations:
		var seq geom.Sequence
		opts.Script, err = stream.ReadOperations(content, &seq)
		return err

	case stream.FormatGraph:
		graph, query, err := stream.ReadGraph(content, chains.WithLogger(opts.Logger))
		if err != nil {
			return err
		}

		found, err := graph.FindChains()
		if err != nil {
			return fmt.Errorf("decompose graph: %w", err)
		}

		localizer, err := chains.NewLocalizer(found, cfg.Chains.CacheSize)
		if err != nil {
			return err
		}

		opts.Graph = graph
		opts.Localizer = localizer
		opts.Query = query

		return nil

	default:
		return fmt.Errorf("unsupported input format %s", format)
	}
}
