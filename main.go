package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oliverbestmann/hullchains/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	cpuProfile string

	cfg         *config.Config
	stopProfile func()
)

var rootCmd = &cobra.Command{
	Use:   "hullchains",
	Short: "Dynamic convex hulls and chain decomposition of planar graphs",

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg = config.Default()
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		}

		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))

		if cpuProfile != "" {
			stopProfile = ProfileStart(cpuProfile)
		}

		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if stopProfile != nil {
			stopProfile()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "yaml file overriding the default configuration")
	flags.StringVar(&logLevel, "log-level", "", "one of debug, info, warn or error")
	flags.StringVar(&cpuProfile, "cpuprofile", "", "write a cpu profile into this directory")

	rootCmd.AddCommand(hullCmd, chainsCmd, genCmd, viewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput opens the file named by the first argument, stdin if there is
// no argument or the argument is a dash.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	fp, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return fp, nil
}
