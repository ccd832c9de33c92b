package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cschone/bikefit/internal/server"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "bikefit",
		Short:        "Compare bicycle frame geometries from JSON/YAML files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func compareCmd() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Render an overlay comparison chart for one or more bicycles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.bikePaths, "bike", "j", nil,
		"path to a bicycle JSON/YAML file (repeat to compare multiple bikes)")
	cmd.Flags().StringVarP(&opts.riderPath, "rider", "r", "",
		"path to a rider measurement file")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "bikefit.png",
		"output chart file (.png, .svg, .pdf)")
	cmd.Flags().StringVar(&opts.stylePath, "style", "",
		"path to a TOML chart style file")
	_ = cmd.MarkFlagRequired("bike")

	return cmd
}

func infoCmd() *cobra.Command {
	var riderPath string

	cmd := &cobra.Command{
		Use:   "info [bike-file...]",
		Short: "Print dimensions and derived fit metrics for each bicycle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args, riderPath)
		},
	}
	cmd.Flags().StringVarP(&riderPath, "rider", "r", "", "path to a rider measurement file")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [bike-file...]",
		Short: "Validate bicycle files without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args)
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		cfg  server.Config
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison chart and solved geometry over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Port = port
			srv := server.New(cfg, loggerFromContext(cmd.Context()))
			return srv.Start()
		},
	}

	cmd.Flags().StringArrayVarP(&cfg.BikePaths, "bike", "j", nil,
		"path to a bicycle JSON/YAML file (repeatable)")
	cmd.Flags().StringVarP(&cfg.RiderPath, "rider", "r", "", "path to a rider measurement file")
	cmd.Flags().StringVar(&cfg.StylePath, "style", "", "path to a TOML chart style file")
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	_ = cmd.MarkFlagRequired("bike")

	return cmd
}
