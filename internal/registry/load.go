package registry

import (
	"context"
	"fmt"
	"runtime"

	"github.com/protolist-labs/protolist/internal/proto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Load parses every path and returns a populated registry. Files are parsed
// on at most workers goroutines (runtime.NumCPU() when workers <= 0), then
// inserted in path order so duplicate-name errors are reproducible. The first
// error aborts the load.
func Load(ctx context.Context, paths []string, workers int, logger *zap.Logger) (*Registry, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	parsed := make([]*proto.Descriptor, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := proto.ParseFile(path)
			if err != nil {
				return err
			}
			parsed[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := New()
	for _, d := range parsed {
		if err := reg.Add(d); err != nil {
			return nil, err
		}
		logger.Debug("loaded proto",
			zap.String("name", d.Name),
			zap.String("proto_type", d.ProtoType),
			zap.Int("parameters", len(d.Parameters)))
	}

	logger.Info("registry loaded", zap.Int("protos", reg.Len()))
	return reg, nil
}

// LoadTree discovers and loads all descriptors under root.
func LoadTree(ctx context.Context, root string, opts DiscoverOptions, workers int, logger *zap.Logger) (*Registry, error) {
	paths, err := Discover(root, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered proto files", zap.String("root", root), zap.Int("count", len(paths)))

	reg, err := Load(ctx, paths, workers, logger)
	if err != nil {
		return nil, fmt.Errorf("loading protos under %s: %w", root, err)
	}
	return reg, nil
}
