package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/katalvlaran/isotree/arcgraph"
	"github.com/katalvlaran/isotree/dotviz"
	"github.com/katalvlaran/isotree/internal/dataio"
	"github.com/katalvlaran/isotree/repair"
)

func writeDrawings(ctx context.Context, opts repairOpts, g *arcgraph.Graph, names *dataio.Names, res *repair.Result) error {
	logger := loggerFromContext(ctx)

	dot, err := dotviz.ToDOT(g, res.Selection, res.Priorities, res.Root, dotviz.Options{
		Name:      opts.name,
		Names:     names.List(),
		Threshold: opts.threshold,
	})
	if err != nil {
		return err
	}

	if opts.dot {
		path := filepath.Join(opts.outDir, fileDOT)
		if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
			return err
		}
		logger.Debug("wrote drawing", "path", path)
	}
	if opts.svg {
		svg, err := dotviz.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.outDir, fileSVG)
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return err
		}
		logger.Debug("wrote drawing", "path", path)
	}
	return nil
}
