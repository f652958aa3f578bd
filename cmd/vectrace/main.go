package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector/internal/config"
	"github.com/pavanmanishd/vector/internal/workload"
)

var (
	ops        int
	batch      int
	factor     int
	initial    int
	limit      int
	configFile string
	plot       bool
	height     int
	width      int
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

// main registers the vectrace commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "vectrace",
		Short:        "replay vector workloads and trace storage growth",
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [workload]",
		Short: "replay a workload and list every reallocation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWorkload,
	}
	addGrowthFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot size and capacity per op")
	runCmd.Flags().IntVar(&height, "height", config.DefaultPlotHeight, "plot height")
	runCmd.Flags().IntVar(&width, "width", config.DefaultPlotWidth, "plot width")

	compareCmd := &cobra.Command{
		Use:   "compare [workload] [factor...]",
		Short: "replay one workload under several growth factors",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareFactors,
	}
	compareCmd.Flags().IntVar(&ops, "ops", config.DefaultOps, "number of operations")
	compareCmd.Flags().IntVar(&batch, "batch", config.DefaultBatch, "elements per batched op")
	compareCmd.Flags().IntVar(&initial, "initial", 0, "initial capacity (0 = default)")
	compareCmd.Flags().IntVar(&limit, "limit", 0, "slot limit (0 = unlimited)")

	workloadsCmd := &cobra.Command{
		Use:   "workloads",
		Short: "list built-in workloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range workload.Names() {
				w, _ := workload.Get(name)
				fmt.Printf("  %-14s %s\n", name, subtleStyle.Render(w.Description))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, workloadsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGrowthFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ops, "ops", config.DefaultOps, "number of operations")
	cmd.Flags().IntVar(&batch, "batch", config.DefaultBatch, "elements per batched op")
	cmd.Flags().IntVar(&factor, "factor", 0, "growth factor (0 = default)")
	cmd.Flags().IntVar(&initial, "initial", 0, "initial capacity (0 = default)")
	cmd.Flags().IntVar(&limit, "limit", 0, "slot limit (0 = unlimited)")
}

// resolveConfig merges the config file, if any, with flags. Flags override
// the file only when set explicitly.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Workload = args[0]
	}
	flags := cmd.Flags()
	if configFile == "" || flags.Changed("ops") {
		cfg.Ops = ops
	}
	if configFile == "" || flags.Changed("batch") {
		cfg.Batch = batch
	}
	if flags.Changed("factor") {
		cfg.Growth.Factor = factor
	}
	if flags.Changed("initial") {
		cfg.Growth.InitialCapacity = initial
	}
	if flags.Changed("limit") {
		cfg.Growth.Limit = limit
	}
	if configFile == "" || flags.Changed("height") {
		cfg.Plot.Height = height
	}
	if configFile == "" || flags.Changed("width") {
		cfg.Plot.Width = width
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWorkload(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := workload.Run(cfg.Workload, cfg.Ops, cfg.Batch, cfg.Options()...)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: %d ops, factor %d, initial capacity %d",
		res.Workload, cfg.Ops, res.Policy.Factor, res.Policy.InitialCapacity)))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "op\tsize\told cap\tnew cap")
	for _, e := range res.Events {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", e.Op, e.Size, e.OldCapacity, e.NewCapacity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	m := res.Metrics
	fmt.Println()
	fmt.Printf("size: %d  capacity: %d  reallocations: %d\n", m.Size, m.Capacity, m.Reallocations)
	fmt.Printf("utilization: %.2f%%  bytes reserved: %d\n", m.Utilization*100, m.BytesReserved)
	fmt.Printf("amortized copies per op: %.3f\n", res.AmortizedCopies())
	if res.Stopped != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("stopped after %d ops: %v", len(res.Samples)-1, res.Stopped)))
	}

	if plot && len(res.Samples) > 1 {
		sizes, capacities := res.Series()
		fmt.Println()
		graph := asciigraph.PlotMany([][]float64{capacities, sizes},
			asciigraph.Height(cfg.Plot.Height),
			asciigraph.Width(cfg.Plot.Width),
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Green),
			asciigraph.Caption("capacity (cyan) vs size (green) per op"),
		)
		fmt.Println(graph)
	}
	return nil
}

func compareFactors(cmd *cobra.Command, args []string) error {
	name := args[0]
	if _, err := workload.Get(name); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: %d ops", name, ops)))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "factor\treallocations\tfinal cap\tutilization\tcopies/op\tstopped")
	for _, arg := range args[1:] {
		f, err := strconv.Atoi(arg)
		if err != nil || f < 2 {
			return fmt.Errorf("invalid growth factor %q: must be an integer >= 2", arg)
		}
		cfg := config.DefaultConfig()
		cfg.Workload = name
		cfg.Ops = ops
		cfg.Batch = batch
		cfg.Growth = config.GrowthConfig{Factor: f, InitialCapacity: initial, Limit: limit}
		if err := cfg.Validate(); err != nil {
			return err
		}
		res, err := workload.Run(cfg.Workload, cfg.Ops, cfg.Batch, cfg.Options()...)
		if err != nil {
			return err
		}
		stopped := "-"
		if res.Stopped != nil {
			stopped = fmt.Sprintf("op %d", len(res.Samples))
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f%%\t%.3f\t%s\n",
			f, res.Metrics.Reallocations, res.Metrics.Capacity,
			res.Metrics.Utilization*100, res.AmortizedCopies(), stopped)
	}
	return tw.Flush()
}
