// Package generator runs the catalog pipeline: base node discovery, parsing,
// hierarchy resolution, the robot ancestor and slot passes, assembly and the
// final write.
package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/protolist-labs/protolist/internal/catalog"
	"github.com/protolist-labs/protolist/internal/config"
	"github.com/protolist-labs/protolist/internal/registry"
	"github.com/protolist-labs/protolist/internal/resolve"
	"go.uber.org/zap"
)

// Options configure a run.
type Options struct {
	Home     string           // scan root, usually $WEBOTS_HOME
	Tag      string           // release tag; empty selects local urls
	Settings *config.Settings // merged settings
	Output   string           // overrides Settings.Output when set
	Format   string           // overrides Settings.Format when set
	Workers  int              // overrides Settings.Workers when > 0
	Logger   *zap.Logger
}

// Result summarizes a run.
type Result struct {
	Catalog  *catalog.Catalog
	Prefix   string
	Output   string // written file, empty for Check
	Format   catalog.Format
	Flagged  int // entries needing a robot ancestor
	Slots    int // entries with a slot type
	Duration time.Duration
}

// Generate resolves every descriptor under opts.Home and writes the catalog.
// Nothing is written when any step fails.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	res, err := Check(ctx, opts)
	if err != nil {
		return nil, err
	}

	res.Output = outputPath(opts)
	if err := catalog.WriteFile(res.Output, res.Catalog, res.Format); err != nil {
		return nil, err
	}

	logger(opts).Info("catalog written",
		zap.String("path", res.Output),
		zap.String("format", string(res.Format)),
		zap.Int("protos", len(res.Catalog.Protos)))
	return res, nil
}

// Check runs the whole pipeline without writing.
func Check(ctx context.Context, opts Options) (*Result, error) {
	if opts.Settings == nil {
		return nil, fmt.Errorf("generator: settings are required")
	}
	if opts.Home == "" {
		return nil, config.ErrHomeNotSet
	}
	log := logger(opts)
	start := time.Now()

	format, err := catalog.ParseFormat(firstNonEmpty(opts.Format, opts.Settings.Format))
	if err != nil {
		return nil, err
	}

	workers := opts.Settings.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	base, err := registry.LoadBaseNodes(filepath.Join(opts.Home, filepath.FromSlash(registry.NodesDir)))
	if err != nil {
		return nil, err
	}
	log.Debug("base nodes loaded", zap.Int("count", len(base)))

	discover := registry.DiscoverOptions{
		Extension: opts.Settings.Extension,
		Skipped:   opts.Settings.Skipped,
	}
	reg, err := registry.LoadTree(ctx, opts.Home, discover, workers, log)
	if err != nil {
		return nil, err
	}

	cfg := resolve.Config{
		BaseNodes:  base,
		Devices:    opts.Settings.Devices,
		Containers: opts.Settings.Containers,
		SlotNode:   opts.Settings.SlotNode,
		Workers:    workers,
	}
	if err := resolve.Run(ctx, reg, cfg, log); err != nil {
		return nil, err
	}

	prefix := catalog.Prefix(opts.Settings.RemoteURL, opts.Settings.LocalURL, opts.Tag)
	cat, err := catalog.Build(reg, opts.Home, prefix)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Catalog:  cat,
		Prefix:   prefix,
		Format:   format,
		Duration: time.Since(start),
	}
	for i := range cat.Protos {
		if cat.Protos[i].NeedsRobotAncestor != "" {
			res.Flagged++
		}
		if cat.Protos[i].SlotType != nil {
			res.Slots++
		}
	}

	log.Info("catalog resolved",
		zap.Int("protos", len(cat.Protos)),
		zap.Int("needs_robot_ancestor", res.Flagged),
		zap.Int("slots", res.Slots),
		zap.Duration("duration", res.Duration))
	return res, nil
}

func outputPath(opts Options) string {
	if opts.Output != "" {
		if filepath.IsAbs(opts.Output) {
			return opts.Output
		}
		abs, err := filepath.Abs(opts.Output)
		if err == nil {
			return abs
		}
		return opts.Output
	}
	return opts.Settings.OutputPath(opts.Home)
}

func logger(opts Options) *zap.Logger {
	if opts.Logger == nil {
		return zap.NewNop()
	}
	return opts.Logger
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
