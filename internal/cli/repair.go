package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isotree/internal/dataio"
	"github.com/katalvlaran/isotree/repair"
)

// Output file names inside the output directory.
const (
	fileQ   = "q.txt"
	fileX   = "x.txt"
	fileR   = "r.txt"
	fileDOT = "tree.dot"
	fileSVG = "tree.svg"
)

var errNoGraph = errors.New("no graph file: pass one as argument or set input.graph")

// repairOpts are the effective settings of one repair run.
type repairOpts struct {
	graph        string
	weights      string
	priorities   string
	outDir       string
	connectivity bool
	dot          bool
	svg          bool
	name         string
	threshold    float64
}

func newRepairCmd(g *globalOpts) *cobra.Command {
	var flags repairOpts

	cmd := &cobra.Command{
		Use:   "repair [graph]",
		Short: "Repair a candidate weighting into an ordered spanning tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mergeRepairOpts(cmd, g, flags)
			if len(args) == 1 {
				opts.graph = args[0]
			}
			if opts.graph == "" {
				return errNoGraph
			}
			return runRepair(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.weights, "weights", "x", "", "candidate arc weights, one per line")
	f.StringVarP(&flags.priorities, "priorities", "q", "", "node priorities, one per line")
	f.StringVarP(&flags.outDir, "output", "o", "", "output directory")
	f.BoolVar(&flags.connectivity, "check-connectivity", false, "fail fast on disconnected graphs")
	f.BoolVar(&flags.dot, "dot", false, "write "+fileDOT)
	f.BoolVar(&flags.svg, "svg", false, "write "+fileSVG)
	f.StringVar(&flags.name, "name", "", "digraph name in the drawing")
	f.Float64Var(&flags.threshold, "threshold", 0, "priority above which nodes are drawn red")

	return cmd
}

// mergeRepairOpts starts from the config file and applies explicitly set flags.
func mergeRepairOpts(cmd *cobra.Command, g *globalOpts, flags repairOpts) repairOpts {
	c := g.cfg
	opts := repairOpts{
		graph:        c.Input.Graph,
		weights:      c.Input.Weights,
		priorities:   c.Input.Priorities,
		outDir:       c.Output.Dir,
		connectivity: c.Repair.CheckConnectivity,
		dot:          c.Render.DOT,
		svg:          c.Render.SVG,
		name:         c.Render.Name,
		threshold:    c.Render.Threshold,
	}

	set := cmd.Flags().Changed
	if set("weights") {
		opts.weights = flags.weights
	}
	if set("priorities") {
		opts.priorities = flags.priorities
	}
	if set("output") {
		opts.outDir = flags.outDir
	}
	if set("check-connectivity") {
		opts.connectivity = flags.connectivity
	}
	if set("dot") {
		opts.dot = flags.dot
	}
	if set("svg") {
		opts.svg = flags.svg
	}
	if set("name") {
		opts.name = flags.name
	}
	if set("threshold") {
		opts.threshold = flags.threshold
	}
	return opts
}

func runRepair(ctx context.Context, opts repairOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, names, err := dataio.ReadGraphFile(opts.graph)
	if err != nil {
		return err
	}
	x, err := dataio.ReadVectorFile(opts.weights)
	if err != nil {
		return err
	}
	q, err := dataio.ReadVectorFile(opts.priorities)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded", "nodes", g.NodeCount(), "arcs", g.ArcCount())
	if err := ctx.Err(); err != nil {
		return err
	}

	ropts := []repair.Option{repair.WithLogger(logger)}
	if opts.connectivity {
		ropts = append(ropts, repair.WithConnectivityCheck())
	}
	res, err := repair.Repair(g, x, q, ropts...)
	if err != nil {
		return fmt.Errorf("%s: %w", repair.KindOf(err), err)
	}
	logger.Info("tree repaired", "root", names.Name(res.Root), "merges", res.Merges, "plateaus", len(res.Plateaus))

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}
	outputs := []struct {
		name string
		v    []float64
	}{
		{fileQ, res.Priorities},
		{fileX, res.Selection},
		{fileR, res.RootIndicator},
	}
	for _, o := range outputs {
		if err := dataio.WriteVectorFile(filepath.Join(opts.outDir, o.name), o.v); err != nil {
			return err
		}
	}

	if opts.dot || opts.svg {
		if err := writeDrawings(ctx, opts, g, names, res); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Wrote results to %s", opts.outDir))
	return nil
}
